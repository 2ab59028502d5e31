package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/coreos/pkg/capnslog"
)

// registered before Setup runs, like the package loggers of the compiler
var plog = capnslog.NewPackageLogger(Repo, "logging_test")

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	if err := Setup("warning", &buf); err != nil {
		t.Fatal(err)
	}

	plog.Info("hidden")
	plog.Warning("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	if err := Setup("loud", &bytes.Buffer{}); err == nil {
		t.Fatalf("expected an error for an unknown level")
	}
}
