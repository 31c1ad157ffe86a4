package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"ERROR":   LevelError,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLogRespectsMinimumLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Output: &buf, Prefix: "mvim"})
	l.Info("ignored")
	if buf.Len() != 0 {
		t.Errorf("expected Info below the Warn threshold to be suppressed, got %q", buf.String())
	}
	l.Warn("heads up")
	if !strings.Contains(buf.String(), "heads up") {
		t.Errorf("expected Warn at the threshold to be written, got %q", buf.String())
	}
}

func TestDisableSuppressesAllOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf})
	l.Disable()
	l.Error("should not appear")
	if buf.Len() != 0 {
		t.Errorf("expected Disable to suppress all output, got %q", buf.String())
	}
	l.Enable()
	l.Error("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("expected Enable to resume output, got %q", buf.String())
	}
}

func TestWithFieldAddsStructuredContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelInfo, Output: &buf}).WithField("backend", "gap")
	l.Info("opened")
	if !strings.Contains(buf.String(), "backend=gap") {
		t.Errorf("expected the field to appear in the output, got %q", buf.String())
	}
}

func TestWithComponentIsAWithFieldShorthand(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelInfo, Output: &buf}).WithComponent("editor")
	l.Info("ready")
	if !strings.Contains(buf.String(), "component=editor") {
		t.Errorf("expected the component field in the output, got %q", buf.String())
	}
}

func TestNullLoggerDiscardsEverything(t *testing.T) {
	// Null has no Output set; logging through it must not panic and must
	// produce nothing observable since it is permanently disabled.
	Null.Info("anything")
}

func TestMessageFormattingWithArgs(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelInfo, Output: &buf})
	l.Info("opened %s at line %d", "main.go", 3)
	if !strings.Contains(buf.String(), "opened main.go at line 3") {
		t.Errorf("expected formatted message, got %q", buf.String())
	}
}
