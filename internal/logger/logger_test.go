package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitHonoursEnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	defer func() { Log = newDefault() }()

	var buf bytes.Buffer
	Init("error", "text")
	SetOutput(&buf)

	if Log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v, want debug", Log.GetLevel())
	}
	For("level").Debug("built")
	if !strings.Contains(buf.String(), `"component":"level"`) {
		t.Errorf("expected json output with component field, got %q", buf.String())
	}
}

func TestInitFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	defer func() { Log = newDefault() }()
	Init("not-a-level", "text")
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", Log.GetLevel())
	}
}
