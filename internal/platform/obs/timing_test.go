package obs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestTimeLogsRunIDAndError(t *testing.T) {
	buf := captureLog(t)

	ctx := WithRunID(context.Background())
	id := RunID(ctx)
	if id == "" {
		t.Fatal("expected run id to be set")
	}

	err := errors.New("boom")
	Time(ctx, "opencage.Resolve")(&err)

	line := buf.String()
	for _, want := range []string{"run_id=" + id, "op=opencage.Resolve", "err=boom"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
}

func TestTimeWithoutError(t *testing.T) {
	buf := captureLog(t)

	var err error
	Time(context.Background(), "openweather.CurrentTemperature")(&err)

	line := buf.String()
	if strings.Contains(line, "err=") {
		t.Fatalf("unexpected err field in %q", line)
	}
	if !strings.Contains(line, "run_id= ") {
		t.Fatalf("expected empty run_id in %q", line)
	}
}
