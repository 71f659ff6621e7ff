package logging

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestConsoleLogger_VerboseEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(true, &buf)

	logger.Verbose("parsed %d records", 7)

	expected := "[VERBOSE] parsed 7 records\n"
	if buf.String() != expected {
		t.Errorf("got %q, want %q", buf.String(), expected)
	}
}

func TestConsoleLogger_VerboseDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(false, &buf)

	logger.Verbose("should not appear")

	if buf.Len() != 0 {
		t.Errorf("verbose output written while disabled: %q", buf.String())
	}
}

func TestConsoleLogger_InfoAndError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(false, &buf)

	logger.Info("comparing %s", "dumps")
	logger.Error("read failed: %s", "source.txt")

	out := buf.String()
	if !strings.Contains(out, "comparing dumps\n") {
		t.Errorf("missing info line in %q", out)
	}
	if !strings.Contains(out, "[ERROR] read failed: source.txt\n") {
		t.Errorf("missing error line in %q", out)
	}
}

func TestConsoleLogger_NoArgsFormatNotInterpreted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(false, &buf)

	logger.Info("literal %s percent")

	if buf.String() != "literal %s percent\n" {
		t.Errorf("format interpreted without args: %q", buf.String())
	}
}

func TestConsoleLogger_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(true, &buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.Info(fmt.Sprintf("line %d", n))
		}(i)
	}
	wg.Wait()

	lines := strings.Count(buf.String(), "\n")
	if lines != 20 {
		t.Errorf("expected 20 complete lines, got %d: %q", lines, buf.String())
	}
}

func TestNullLogger_Discards(t *testing.T) {
	logger := NewNullLogger()
	logger.Verbose("a %d", 1)
	logger.Info("b")
	logger.Error("c %s", "x")
}
