package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/multierr"

	"icinga-mattermost/helper"
	"icinga-mattermost/model"
)

var emojis = map[model.NotificationType]string{
	model.Recovery:        ":white_check_mark:",
	model.Problem:         ":stop_sign:",
	model.DowntimeStart:   ":pause_button:",
	model.DowntimeEnd:     ":arrow_forward:",
	model.DowntimeRemoved: ":record_button:",
	model.Custom:          ":loop:",
	model.FlappingStart:   ":cloud:",
	model.FlappingEnd:     ":sunny:",
	model.Acknowledgement: ":exclamation:",
}

var colors = map[model.NotificationType]string{
	model.Recovery:        "#1FD743",
	model.Problem:         "#D7311F",
	model.DowntimeStart:   "#000000",
	model.DowntimeEnd:     "#FFFFFF",
	model.DowntimeRemoved: "#FFFFFF",
	model.Custom:          "#E47529",
	model.FlappingStart:   "#E47529",
	model.FlappingEnd:     "#E429A1",
	model.Acknowledgement: "#2976E4",
}

// Emoji returns the chat emoji code for t, or "" for an unknown type.
func Emoji(t model.NotificationType) string {
	return emojis[t]
}

// MessageColor returns the attachment color for t, or "" for an unknown type.
func MessageColor(t model.NotificationType) string {
	return colors[t]
}

// MissingFieldError reports the alert fields a template needed but were
// never supplied. Err combines one error per field.
type MissingFieldError struct {
	Err error
}

func (e *MissingFieldError) Error() string {
	return "missing alert fields: " + strings.Join(e.Fields(), ", ")
}

func (e *MissingFieldError) Unwrap() []error {
	return multierr.Errors(e.Err)
}

// Fields returns the missing field names in template order.
func (e *MissingFieldError) Fields() []string {
	var names []string
	for _, err := range multierr.Errors(e.Err) {
		names = append(names, err.Error())
	}
	return names
}

type placeholder struct {
	name  string
	value string
}

func requireAll(p model.AlertParameters, placeholders ...placeholder) error {
	var err error
	for _, ph := range placeholders {
		if !p.Has(ph.name, ph.value) {
			err = multierr.Append(err, errors.New(ph.name))
		}
	}
	if err == nil {
		return nil
	}
	return &MissingFieldError{Err: err}
}

func renderFallback(p model.AlertParameters) (string, error) {
	var text string
	if p.ServiceScoped() {
		if err := requireAll(p,
			placeholder{"notificationtype", string(p.Type)},
			placeholder{"hostalias", p.HostAlias},
			placeholder{"servicedesc", p.ServiceDesc},
			placeholder{"servicestate", p.ServiceState},
			placeholder{"serviceoutput", p.ServiceOutput},
		); err != nil {
			return "", err
		}
		text = fmt.Sprintf("__%s__ %s/%s is %s - %s", p.Type, p.HostAlias, p.ServiceDesc, p.ServiceState, p.ServiceOutput)
	} else {
		if err := requireAll(p,
			placeholder{"notificationtype", string(p.Type)},
			placeholder{"hostalias", p.HostAlias},
			placeholder{"hoststate", p.HostState},
			placeholder{"hostoutput", p.HostOutput},
		); err != nil {
			return "", err
		}
		text = fmt.Sprintf("__%s__ %s is %s - %s", p.Type, p.HostAlias, p.HostState, p.HostOutput)
	}

	if p.OneLine {
		text = helper.FirstLine(text)
	}
	if p.Author != "" {
		text += " authored by " + p.Author
	}
	if p.Comment != "" {
		text += " commented with " + p.Comment
	}
	return text, nil
}

func hostObject(p model.AlertParameters) string {
	if p.HostObject != "" {
		return p.HostObject
	}
	return p.HostAlias
}

func hostURL(p model.AlertParameters) string {
	return helper.JoinURL(p.Domain, "/monitoring/host/show", url.Values{
		"host": {hostObject(p)},
	})
}

func serviceURL(p model.AlertParameters) string {
	return helper.JoinURL(p.Domain, "/monitoring/service/show", url.Values{
		"host":    {hostObject(p)},
		"service": {p.ServiceDesc},
	})
}

func buildFields(p model.AlertParameters) []model.Field {
	title := model.Field{Title: string(p.Type)}
	if p.ServiceScoped() {
		title.Value = fmt.Sprintf("%s on %s", p.ServiceDesc, p.HostAlias)
	} else {
		title.Value = fmt.Sprintf("%s is %s", p.HostAlias, p.HostState)
	}

	fields := []model.Field{
		title,
		{
			Title: "Host",
			Value: helper.MarkdownLink(hostObject(p), hostURL(p)),
			Short: true,
		},
	}

	if !p.ServiceScoped() {
		return fields
	}

	fields = append(fields, model.Field{
		Title: "Service",
		Value: helper.MarkdownLink(p.ServiceDesc, serviceURL(p)),
		Short: true,
	})

	// output says nothing useful once the service has recovered
	if p.Type != model.Recovery {
		fields = append(fields, model.Field{
			Title: "Output",
			Value: helper.Bold(helper.MarkdownLink(p.ServiceOutput, serviceURL(p))),
		})
	}

	return fields
}

// BuildPayload turns one alert into the webhook message. It performs no I/O.
func BuildPayload(p model.AlertParameters) (*model.MessagePayload, error) {
	fallback, err := renderFallback(p)
	if err != nil {
		return nil, fmt.Errorf("failed to render fallback text: %w", err)
	}

	return &model.MessagePayload{
		Username: p.Username,
		IconURL:  p.IconURL,
		Channel:  p.Channel,
		Attachments: []model.Attachment{
			{
				Fallback:   fallback,
				Color:      MessageColor(p.Type),
				MarkdownIn: []string{"text", "fallback"},
				AuthorName: p.Author,
				AuthorIcon: p.ServiceIcon,
				Fields:     buildFields(p),
			},
		},
	}, nil
}

// EncodePayload serializes the message as the single "payload" form value
// expected by Mattermost incoming webhooks.
func EncodePayload(payload *model.MessagePayload) (url.Values, error) {
	data, err := sonic.ConfigStd.MarshalToString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return url.Values{"payload": {data}}, nil
}
