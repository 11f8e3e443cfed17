package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/cosmosis/cosmosis-go/pkg/datablock/logging"
)

func TestLoggerForwardsToSlog(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log := logging.New(base).With("component", "seed")
	log.Info(context.Background(), "loaded entries", "count", 3)

	out := buf.String()
	if !strings.Contains(out, "loaded entries") || !strings.Contains(out, "component=seed") || !strings.Contains(out, "count=3") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestKeyGroupsSectionAndName(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	logging.New(base).Info(context.Background(), "seeding entry",
		logging.Key("cosmological_parameters", "omega_m"))

	out := buf.String()
	if !strings.Contains(out, "key.section=cosmological_parameters") || !strings.Contains(out, "key.name=omega_m") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestNewNilUsesDefault(t *testing.T) {
	if logging.New(nil) == nil {
		t.Fatal("New(nil) returned nil")
	}
}
