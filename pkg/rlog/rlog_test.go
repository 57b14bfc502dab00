package rlog

import (
	"bytes"
	"os"
	"testing"
	"time"
)

func TestProgressLoggerThrottlesAndAlwaysLogsFinal(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	logger := Get("test-progress")
	p := NewProgressLogger(logger, time.Hour)

	p.Report(0, 5)
	firstLen := buf.Len()
	if firstLen == 0 {
		t.Fatal("expected first report to log immediately")
	}

	p.Report(1, 5)
	if buf.Len() != firstLen {
		t.Fatal("expected second report within the interval to be throttled")
	}

	p.Report(4, 5)
	if buf.Len() == firstLen {
		t.Fatal("expected the final iteration to log even within the interval")
	}
}
