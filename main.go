package main

import (
	"context"
	"fmt"
	"os"

	"icinga-mattermost/config"
	"icinga-mattermost/logger"
	"icinga-mattermost/notifier"
	"icinga-mattermost/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return notifier.ExitFailure
	}

	log, err := logger.New(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return notifier.ExitFailure
	}

	webhook, err := service.NewWebhookSender(cfg)
	if err != nil {
		log.Errorf("Error creating webhook sender: %v", err)
		return notifier.ExitFailure
	}

	n := notifier.Notifier{
		Webhook: webhook,
		Log:     log,
	}

	return n.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}
