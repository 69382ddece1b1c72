package textflow

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

// captureLogs routes the package logger into a buffer for the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	SetLogger(custom)

	got := Logger()
	if got != custom {
		t.Error("Logger() did not return the custom logger set via SetLogger")
	}

	got.Info("test message", "key", "value")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected log output to contain 'test message', got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())

	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestMeasureRangeWarnsThroughLogger(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	e, _ := newTestEngine(t)
	e.text = "ab\ncd"
	var line Line
	e.measureRange(&line, 0, len(e.text), Unbounded)

	if !strings.Contains(buf.String(), "newline inside measured range") {
		t.Errorf("expected a newline warning, got: %s", buf.String())
	}
}

func TestWrapLogsAtDebug(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	e, _ := newTestEngine(t, WithText("a\nb"))
	e.Height()
	if !strings.Contains(buf.String(), "lines=2") {
		t.Errorf("expected wrap debug record with lines=2, got: %s", buf.String())
	}

	buf.Reset()
	e.Height()
	if buf.Len() != 0 {
		t.Errorf("clean engine logged a second wrap: %s", buf.String())
	}
}

func TestMeasureRangeQuietWithoutNewline(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	e, _ := newTestEngine(t)
	e.text = "ab\tcd\n"
	var line Line
	e.measureRange(&line, 0, len(e.text), Unbounded)

	if strings.Contains(buf.String(), "newline inside") {
		t.Errorf("trailing newline should not warn, got: %s", buf.String())
	}
}

func TestLoggerConcurrent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		}()
		go func() {
			defer wg.Done()
			if Logger() == nil {
				t.Error("Logger() returned nil during concurrent SetLogger")
			}
		}()
	}
	wg.Wait()
}
