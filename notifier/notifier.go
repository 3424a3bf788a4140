package notifier

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/op/go-logging"
	"github.com/spf13/pflag"

	"icinga-mattermost/service"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// successBody is what a Mattermost incoming webhook answers on delivery.
const successBody = "ok"

type Notifier struct {
	Webhook service.IWebhookSender
	Log     *logging.Logger
}

// Run handles one notification command line and returns the process exit code.
func (n *Notifier) Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	inv, err := parseArgs(args, stderr)
	switch {
	case errors.Is(err, errVersion):
		fmt.Fprintf(stdout, "%s %s\n", Name, Version)
		return ExitOK
	case errors.Is(err, pflag.ErrHelp):
		return ExitOK
	case err != nil:
		return ExitUsage
	}

	n.Log.Debugf("got alert: %+v", inv.Alert)

	payload, err := service.BuildPayload(inv.Alert)
	if err != nil {
		n.Log.Errorf("failed to build payload: %v", err)
		return ExitFailure
	}

	form, err := service.EncodePayload(payload)
	if err != nil {
		n.Log.Errorf("failed to encode payload: %v", err)
		return ExitFailure
	}

	n.Log.Infof("sending %s %s alert for %s: %s", service.Emoji(inv.Alert.Type), inv.Alert.Type, inv.Alert.HostAlias, form.Get("payload"))

	resp, err := n.Webhook.Send(ctx, inv.WebhookURL, form)
	if err != nil {
		n.Log.Errorf("message delivery failed: %v", err)
		return ExitFailure
	}

	n.Log.Infof("got: %s", resp)

	if string(resp) != successBody {
		n.Log.Errorf("unexpected webhook response: %q", resp)
		return ExitFailure
	}

	return ExitOK
}
