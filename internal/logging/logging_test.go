package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")
	log.Info("quiet")
	log.Warn("loud", "k", "v")
	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info record emitted at warn level:\n%s", out)
	}
	if !strings.Contains(out, "loud") || !strings.Contains(out, "k=v") {
		t.Fatalf("warn record missing:\n%s", out)
	}
}

func TestNewDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "bogus")
	log.Debug("hidden")
	log.Info("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
