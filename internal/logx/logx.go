// Package logx contains logging extensions.
package logx

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/fatih/color"
)

// Handler is a log handler emitting to [Handler.Writer] lines
// prefixed by the elapsed time since program startup. The zero
// value is invalid; construct using [NewHandlerWithDefaultSettings].
type Handler struct {
	// Emoji is OPTIONAL and indicates whether to enable emojis.
	Emoji bool

	// Now is MANDATORY and returns the current time.
	Now func() time.Time

	// StartTime is MANDATORY and is when we started logging.
	StartTime time.Time

	// Writer is MANDATORY and is the underlying writer.
	Writer io.Writer

	// mu serializes writes.
	mu sync.Mutex
}

// NewHandlerWithDefaultSettings creates a new [*Handler]
// emitting on the standard error.
func NewHandlerWithDefaultSettings() *Handler {
	return &Handler{
		Emoji:     false,
		Now:       time.Now,
		StartTime: time.Now(),
		Writer:    os.Stderr,
	}
}

var _ log.Handler = &Handler{}

// levelColor maps an apex/log level to the color used to render it. The
// color package automatically disables itself when the output is not
// a terminal.
var levelColor = map[log.Level]*color.Color{
	log.DebugLevel: color.New(color.FgWhite),
	log.InfoLevel:  color.New(color.FgBlue),
	log.WarnLevel:  color.New(color.FgYellow),
	log.ErrorLevel: color.New(color.FgRed),
	log.FatalLevel: color.New(color.FgRed, color.Bold),
}

// levelEmoji maps an apex/log level to the emoji used to render it.
var levelEmoji = map[log.Level]string{
	log.WarnLevel:  "🔥",
	log.ErrorLevel: "🚨",
	log.FatalLevel: "🚨",
}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	elapsed := h.Now().Sub(h.StartTime)
	level := e.Level.String()
	if c := levelColor[e.Level]; c != nil {
		level = c.Sprint(level)
	}
	if h.Emoji {
		if emoji := levelEmoji[e.Level]; emoji != "" {
			level = emoji
		}
	}
	s := fmt.Sprintf("[%10.6f] <%s> %s", elapsed.Seconds(), level, e.Message)
	for _, name := range e.Fields.Names() {
		s += fmt.Sprintf(" %s=%+v", name, e.Fields.Get(name))
	}
	s += "\n"
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.Writer, s)
	return err
}
