package logger

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"ERR", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"something", zerolog.InfoLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Fatalf("parseLevel(%q)=%v, want %v", c.in, got, c.want)
		}
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("X", "val")
	if v := getenv("X", "def"); v != "val" {
		t.Fatalf("getenv returned %q, want 'val'", v)
	}
	if v := getenv("Y_UNSET_FOR_TEST", "def"); v != "def" {
		t.Fatalf("getenv returned %q, want 'def'", v)
	}
}

func TestInitAndL(t *testing.T) {
	_ = os.Unsetenv("LOG_LEVEL")
	_ = os.Unsetenv("LOG_PRETTY")
	Init()
	if L().GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %v", L().GetLevel())
	}

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")
	Init()
	if L().GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", L().GetLevel())
	}
}

func TestLoggerAccessor_NotNil(t *testing.T) {
	base = zerolog.Logger{}
	lg := L()
	if lg.GetLevel() == zerolog.NoLevel {
		t.Fatalf("logger level not initialized")
	}
}

func TestCtx_FallsBackToGlobal(t *testing.T) {
	Init()
	if Ctx(context.Background()) != L() {
		t.Fatalf("expected global logger without request logger in context")
	}
}

func TestWithRequestID_TagsEntries(t *testing.T) {
	var buf bytes.Buffer
	base = zerolog.New(&buf).Level(zerolog.InfoLevel)

	ctx := WithRequestID(context.Background(), "rid-42")
	Ctx(ctx).Info().Msg("hello")

	if !strings.Contains(buf.String(), `"request_id":"rid-42"`) {
		t.Fatalf("request id missing from %q", buf.String())
	}
}

func TestSetOutput_KeepsLevelAndService(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	Init()

	var buf bytes.Buffer
	SetOutput(&buf)
	L().Info().Msg("dropped")
	L().Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.Contains(out, `"service":"hotelboard"`) {
		t.Fatalf("service field missing from %q", out)
	}
}
