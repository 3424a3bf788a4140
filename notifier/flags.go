package notifier

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"icinga-mattermost/model"
)

const (
	Name    = "icinga-mattermost"
	Version = "1.3.0"

	DefaultUsername = "Icinga"
	DefaultIconURL  = "https://s3.amazonaws.com/cloud.ohloh.net/attachments/50631/icinga_logo_med.png"
)

var errVersion = errors.New("version requested")

// UsageError is a command line that could not be turned into an alert.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

type invocation struct {
	WebhookURL string
	Alert      model.AlertParameters
}

func newFlagSet(inv *invocation, version *bool, w io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(Name, pflag.ContinueOnError)
	fs.SetOutput(w)
	fs.SortFlags = false
	fs.Usage = func() { printUsage(fs.Output(), fs) }

	a := &inv.Alert
	fs.StringVar(&inv.WebhookURL, "url", "", "Incoming Webhook URL (required)")
	fs.StringVar(&a.Domain, "domain", "", "Link to the web interface")
	fs.StringVar(&a.Channel, "channel", "", "Channel to notify")
	fs.StringVar(&a.Username, "username", DefaultUsername, "Username to notify as")
	fs.StringVar(&a.IconURL, "iconurl", DefaultIconURL, "URL of icon to use for username")
	fs.Var(newTypeValue(&a.Type), "notificationtype", "Notification Type (required)")
	fs.StringVar(&a.HostAlias, "hostalias", "", "Host Alias (required)")
	fs.StringVar(&a.HostObject, "hostobject", "", "Host object")
	fs.StringVar(&a.HostState, "hoststate", "", "Host State")
	fs.StringVar(&a.HostOutput, "hostoutput", "", "Host Output")
	fs.StringVar(&a.ServiceDesc, "servicedesc", "", "Service Description")
	fs.StringVar(&a.ServiceState, "servicestate", "", "Service State")
	fs.StringVar(&a.ServiceOutput, "serviceoutput", "", "Service Output")
	fs.StringVar(&a.ServiceIcon, "serviceicon", "", "an icon for the service")
	fs.StringVar(&a.Author, "author", "", "Author")
	fs.StringVar(&a.Comment, "comment", "", "Comment")
	fs.BoolVar(&a.OneLine, "oneline", false, "Print only one line")
	fs.BoolVar(version, "version", false, "show program's version number and exit")

	return fs
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage of %s:\nSends alerts to Mattermost\n%s", Name, fs.FlagUsages())
}

// parseArgs reads one alert from args. It returns errVersion when --version
// was given and pflag.ErrHelp for --help. Usage errors are reported on w
// exactly once, as the usage text followed by the error.
func parseArgs(args []string, w io.Writer) (*invocation, error) {
	inv := &invocation{}
	var version bool

	// anything pflag prints while parsing is held back so a failed parse
	// does not repeat the usage text
	var parseOut bytes.Buffer
	fs := newFlagSet(inv, &version, &parseOut)

	usageError := func(err error) error {
		printUsage(w, fs)
		fmt.Fprintf(w, "%s: error: %v\n", Name, err)
		return &UsageError{Err: err}
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			_, _ = parseOut.WriteTo(w)
			return nil, err
		}
		return nil, usageError(err)
	}

	if version {
		return nil, errVersion
	}

	if fs.NArg() > 0 {
		return nil, usageError(fmt.Errorf("unrecognized arguments: %s", strings.Join(fs.Args(), " ")))
	}

	var missing []string
	for _, name := range []string{"url", "notificationtype", "hostalias"} {
		if !fs.Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return nil, usageError(fmt.Errorf("the following arguments are required: %s", strings.Join(missing, ", ")))
	}

	inv.Alert.Supplied = map[string]bool{}
	fs.Visit(func(f *pflag.Flag) {
		inv.Alert.Supplied[f.Name] = true
	})

	return inv, nil
}

type typeValue struct {
	t *model.NotificationType
}

func newTypeValue(t *model.NotificationType) *typeValue {
	return &typeValue{t: t}
}

func (v *typeValue) String() string {
	if v.t == nil {
		return ""
	}
	return string(*v.t)
}

func (v *typeValue) Set(s string) error {
	*v.t = model.NotificationType(s)
	return nil
}

func (v *typeValue) Type() string { return "string" }
