package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/op/go-logging"

	"icinga-mattermost/config"
)

func TestNewStderrOnly(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&config.Config{LogLevel: "INFO"}, &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.Debug("hidden")
	log.Info("sending payload")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged at INFO: %s", out)
	}
	if !strings.Contains(out, "sending payload") || !strings.Contains(out, Module) || !strings.Contains(out, "INFO") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(&config.Config{LogLevel: "LOUD"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestWithBackendsIsolated(t *testing.T) {
	var a, b bytes.Buffer
	la := WithBackends(logging.ERROR, logging.NewLogBackend(&a, "", 0))
	lb := WithBackends(logging.DEBUG, logging.NewLogBackend(&b, "", 0))

	la.Warning("quiet")
	lb.Debug("loud")

	if a.Len() != 0 {
		t.Errorf("warning passed an ERROR logger: %q", a.String())
	}
	if !strings.Contains(b.String(), "loud") {
		t.Errorf("debug missing from DEBUG logger: %q", b.String())
	}
}
