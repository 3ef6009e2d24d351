package utils

import (
	"fmt"
	"io"
	"log"

	"github.com/logrusorgru/aurora"
)

// Logger prefixes each line with a colored level tag
type Logger struct {
	*log.Logger
	au aurora.Aurora
}

// NewLogger writes timestamped lines to w; colors turns the level tags' ANSI colors on
func NewLogger(w io.Writer, colors bool) *Logger {
	return &Logger{
		Logger: log.New(w, "", log.LstdFlags),
		au:     aurora.NewAurora(colors),
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.Printf("%s %s", l.au.Cyan("INFO"), fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Printf("%s %s", l.au.Yellow("WARN"), fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Printf("%s %s", l.au.Red("ERROR"), fmt.Sprintf(format, args...))
}
