package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"montage/internal/logging"
	"montage/internal/services"
)

func TestNewJSONLoggerEmitsStandardKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("construct logger: %v", err)
	}

	logger.Info("wrote project document", logging.String("path", "/tmp/out.fcpxml"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if payload["msg"] != "wrote project document" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if payload["path"] != "/tmp/out.fcpxml" {
		t.Fatalf("unexpected path attr: %v", payload["path"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatal("expected ts key")
	}
}

func TestConsoleLoggerRendersComponentHeader(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("construct logger: %v", err)
	}

	logger.Info("assembly complete",
		logging.String(logging.FieldComponent, "timeline"),
		logging.Int("clips", 4),
	)

	out := buf.String()
	if !strings.Contains(out, "[timeline]") {
		t.Fatalf("expected component header, got: %q", out)
	}
	if !strings.Contains(out, "assembly complete") {
		t.Fatalf("expected message, got: %q", out)
	}
	if !strings.Contains(out, "clips: 4") {
		t.Fatalf("expected attr line, got: %q", out)
	}
}

func TestUnsupportedFormatRejected(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextStampsJobID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("construct logger: %v", err)
	}

	ctx := services.WithJobID(context.Background(), "job_42")
	ctx = services.WithComponent(ctx, "mixdown")
	logging.WithContext(ctx, logger).Info("derived mix request")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if payload[logging.FieldJobID] != "job_42" {
		t.Fatalf("expected job id attr, got: %v", payload)
	}
	if payload[logging.FieldComponent] != "mixdown" {
		t.Fatalf("expected component attr, got: %v", payload)
	}
}
