package logger

import (
	"fmt"
	"io"

	"github.com/op/go-logging"

	"icinga-mattermost/config"
)

const Module = "icinga-mattermost"

var stderrFormat = logging.MustStringFormatter(
	`%{time:2006-01-02 15:04:05.000} %{module} %{level:.4s} %{message}`,
)

var syslogFormat = logging.MustStringFormatter(`%{module}: %{message}`)

// New builds the logger for one invocation. It always writes to w and adds a
// syslog backend when enabled; a syslog that cannot be opened is reported on
// the returned logger rather than failing the notification.
func New(cfg *config.Config, w io.Writer) (*logging.Logger, error) {
	level, err := logging.LogLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	backends := []logging.Backend{
		logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), stderrFormat),
	}

	var syslogErr error
	if cfg.Syslog {
		sb, err := logging.NewSyslogBackend("")
		if err != nil {
			syslogErr = err
		} else {
			backends = append(backends, logging.NewBackendFormatter(sb, syslogFormat))
		}
	}

	log := WithBackends(level, backends...)
	if syslogErr != nil {
		log.Warningf("syslog unavailable, logging to stderr only: %v", syslogErr)
	}

	return log, nil
}

// WithBackends returns a logger writing to the given backends at level.
func WithBackends(level logging.Level, backends ...logging.Backend) *logging.Logger {
	leveled := logging.MultiLogger(backends...)
	leveled.SetLevel(level, Module)

	log := logging.MustGetLogger(Module)
	log.SetBackend(leveled)
	return log
}
