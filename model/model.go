package model

type NotificationType string

const (
	Recovery        NotificationType = "RECOVERY"
	Problem         NotificationType = "PROBLEM"
	DowntimeStart   NotificationType = "DOWNTIMESTART"
	DowntimeEnd     NotificationType = "DOWNTIMEEND"
	DowntimeRemoved NotificationType = "DOWNTIMEREMOVED"
	Custom          NotificationType = "CUSTOM"
	FlappingStart   NotificationType = "FLAPPINGSTART"
	FlappingEnd     NotificationType = "FLAPPINGEND"
	Acknowledgement NotificationType = "ACKNOWLEDGEMENT"
)

// AlertParameters is one Icinga notification as handed to the command.
type AlertParameters struct {
	Type          NotificationType
	HostAlias     string
	HostObject    string
	HostState     string
	HostOutput    string
	ServiceDesc   string
	ServiceState  string
	ServiceOutput string
	ServiceIcon   string
	Username      string
	IconURL       string
	Channel       string
	Author        string
	Comment       string
	OneLine       bool
	Domain        string

	// Supplied holds the flag names given on the command line, so an empty
	// value that was passed explicitly is told apart from one never passed.
	Supplied map[string]bool
}

// ServiceScoped reports whether the alert concerns a service rather than the whole host.
func (p AlertParameters) ServiceScoped() bool {
	return p.ServiceState != ""
}

// Has reports whether name carries a value or was passed, even as "".
func (p AlertParameters) Has(name, value string) bool {
	return value != "" || p.Supplied[name]
}

type MessagePayload struct {
	Username    string       `json:"username"`
	IconURL     string       `json:"icon_url"`
	Channel     string       `json:"channel,omitempty"`
	Attachments []Attachment `json:"attachments"`
}

type Attachment struct {
	Fallback   string   `json:"fallback"`
	Color      string   `json:"color"`
	MarkdownIn []string `json:"mrkdwn_in,omitempty"`
	AuthorName string   `json:"author_name,omitempty"`
	AuthorIcon string   `json:"author_icon,omitempty"`
	Fields     []Field  `json:"fields"`
}

type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}
