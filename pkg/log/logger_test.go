package log

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

var _ core.Logger = New("interface-check")

func TestLevels(t *testing.T) {
	defer SetSink(os.Stderr)

	tests := []struct {
		name      string
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{"notice hides info", Notice, false, false},
		{"info shows info", Info, false, true},
		{"debug shows everything", Debug, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetSink(&buf)
			SetLevel(tt.level)

			logger := New("pathtracer-test")
			logger.Debugf("debug %d", 1)
			logger.Infof("info %d", 2)
			logger.Noticef("notice %d", 3)

			out := buf.String()
			if got := strings.Contains(out, "debug 1"); got != tt.wantDebug {
				t.Errorf("debug line present = %v, want %v:\n%s", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "info 2"); got != tt.wantInfo {
				t.Errorf("info line present = %v, want %v:\n%s", got, tt.wantInfo, out)
			}
			if !strings.Contains(out, "notice 3") {
				t.Errorf("Expected notice line, got:\n%s", out)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	defer SetSink(os.Stderr)

	var buf bytes.Buffer
	SetSink(&buf)
	New("scene").Noticef("built %s", "quads")

	out := buf.String()
	for _, want := range []string{"[scene]", "[NOTICE]", "built quads"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
}

func TestLevel_BackendLevel(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{Debug, "DEBUG"},
		{Info, "INFO"},
		{Notice, "NOTICE"},
		{Warning, "WARNING"},
		{Error, "ERROR"},
		{Level(42), "NOTICE"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.backendLevel().String(); got != tt.want {
				t.Errorf("backendLevel() = %s, want %s", got, tt.want)
			}
		})
	}
}
