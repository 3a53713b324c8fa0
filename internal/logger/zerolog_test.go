package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("MapWidget", "bounds recalculated", map[string]interface{}{
		"zoom": 12,
	})

	out := buf.String()
	for _, want := range []string{`"component":"MapWidget"`, `"zoom":12`, "bounds recalculated"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestZerologAdapterLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Debug("MapWidget", "should be filtered", nil)
	if buf.Len() != 0 {
		t.Errorf("debug entry emitted below threshold: %s", buf.String())
	}

	log.Warning("MapWidget", "kept", nil)
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Errorf("warning entry missing: %s", buf.String())
	}
}
