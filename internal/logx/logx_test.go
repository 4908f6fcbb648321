package logx

import (
	"strings"
	"testing"
	"time"

	"github.com/apex/log"
)

func TestNewHandlerWithDefaultSettings(t *testing.T) {
	h := NewHandlerWithDefaultSettings()
	if h.Emoji {
		t.Fatal("expected no emoji by default")
	}
	if h.Now == nil || h.Writer == nil {
		t.Fatal("missing mandatory fields")
	}
}

func TestHandleLog(t *testing.T) {
	t.Run("without emoji", func(t *testing.T) {
		sb := &strings.Builder{}
		start := time.Date(2017, time.March, 27, 11, 3, 0, 0, time.UTC)
		h := &Handler{
			Now: func() time.Time {
				return start.Add(250 * time.Millisecond)
			},
			StartTime: start,
			Writer:    sb,
		}
		entry := &log.Entry{
			Level:   log.InfoLevel,
			Message: "downloading hdf5",
		}
		if err := h.HandleLog(entry); err != nil {
			t.Fatal(err)
		}
		out := sb.String()
		if !strings.Contains(out, "0.250000") {
			t.Fatal("missing elapsed time", out)
		}
		if !strings.Contains(out, "downloading hdf5") {
			t.Fatal("missing message", out)
		}
	})

	t.Run("with emoji", func(t *testing.T) {
		sb := &strings.Builder{}
		start := time.Now()
		h := &Handler{
			Emoji:     true,
			Now:       time.Now,
			StartTime: start,
			Writer:    sb,
		}
		entry := &log.Entry{
			Level:   log.WarnLevel,
			Message: "mocked warning",
		}
		if err := h.HandleLog(entry); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(sb.String(), "🔥") {
			t.Fatal("missing emoji", sb.String())
		}
	})
}
