package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Info("ready")
	if !strings.Contains(buf.String(), "ready") {
		t.Errorf("logger output %q should contain the message", buf.String())
	}
}

func TestNewLoggerLevelFiltering(t *testing.T) {
	cases := map[string]struct {
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		"info at info":   {log.InfoLevel, func(l *log.Logger) { l.Info("m") }, true},
		"debug at info":  {log.InfoLevel, func(l *log.Logger) { l.Debug("m") }, false},
		"debug at debug": {log.DebugLevel, func(l *log.Logger) { l.Debug("m") }, true},
		"warn at info":   {log.InfoLevel, func(l *log.Logger) { l.Warn("m") }, true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tc.level)
			tc.emit(logger)

			if got := buf.Len() > 0; got != tc.want {
				t.Errorf("output written = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProgressReportsElapsed(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	time.Sleep(5 * time.Millisecond)
	prog.done("rendered diagram")

	out := buf.String()
	if !strings.Contains(out, "rendered diagram") {
		t.Errorf("done() output %q should contain the message", out)
	}
	// Any duration string ends in a seconds-family unit.
	if !strings.Contains(out, "s)") {
		t.Errorf("done() output %q should report elapsed time", out)
	}
}

func TestNewSetsLogger(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)

	if c.Logger == nil {
		t.Fatal("New() should set a logger")
	}

	c.Logger.Info("hello")
	if buf.Len() == 0 {
		t.Error("CLI logger should write to provided writer")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug message should be filtered at info level")
	}

	c.SetLogLevel(log.DebugLevel)
	c.Logger.Debug("visible")
	if buf.Len() == 0 {
		t.Error("debug message should pass after SetLogLevel(debug)")
	}
}
