// File: logger_test.go
// Title: Logger Tests
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	tkerror "github.com/msto63/textkit/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below the minimum level were written: %q", out)
	}
	if !strings.Contains(out, "[WRN] visible") {
		t.Errorf("warning missing: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.WithName("config").WithField("path", "textkit.toml").Debug("loaded", Field("keys", 3))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if decoded["level"] != "debug" || decoded["message"] != "loaded" || decoded["logger"] != "config" {
		t.Errorf("unexpected entry: %v", decoded)
	}
	if decoded["path"] != "textkit.toml" || decoded["keys"] != float64(3) {
		t.Errorf("fields missing: %v", decoded)
	}
}

func TestTextFormatSortsFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger.Info("check", Fields{"b": 2, "a": 1})

	if !strings.Contains(buf.String(), "check [a=1 b=2]") {
		t.Errorf("fields not sorted: %q", buf.String())
	}
}

func TestLogfmtFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatLogfmt)
	logger.ErrorWithErr("decode", errors.New("bad input"), Field("name", "x"))

	out := buf.String()
	for _, want := range []string{`level=error`, `message="decode"`, `name="x"`, `error="bad input"`} {
		if !strings.Contains(out, want) {
			t.Errorf("logfmt output missing %s: %q", want, out)
		}
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatText)
	_ = parent.WithField("child", true)
	parent.Info("parent")

	if strings.Contains(buf.String(), "child") {
		t.Errorf("parent logger picked up child field: %q", buf.String())
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatText)

	logger.LogError(tkerror.New("bad input").WithCode(tkerror.CodeInvalidFormat))
	logger.LogError(tkerror.New("guard").WithCode(tkerror.CodePreconditionFailed))
	logger.LogError(nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[INF]") || !strings.Contains(lines[0], "error_code=INVALID_FORMAT") {
		t.Errorf("low severity should log at info: %q", lines[0])
	}
	if !strings.Contains(lines[1], "[ERR]") {
		t.Errorf("high severity should log at error: %q", lines[1])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARNING ", LevelWarn, false},
		{"information", LevelInfo, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("logfmt"); err != nil || f != FormatLogfmt {
		t.Errorf("ParseFormat(logfmt) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("discard logger should not enable any level")
	}
	logger.Error("nothing")
}
