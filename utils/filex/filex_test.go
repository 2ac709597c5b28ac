// File: filex_test.go
// Title: File System Utilities Tests
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12

package filex

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tkerror "github.com/msto63/textkit/core/error"
)

func TestExistsAndIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !Exists(dir) || !Exists(file) {
		t.Error("Exists should report existing paths")
	}
	if Exists(filepath.Join(dir, "missing")) {
		t.Error("Exists reported a missing path")
	}
	if !IsFile(file) {
		t.Error("IsFile(file) = false")
	}
	if IsFile(dir) {
		t.Error("IsFile(dir) = true")
	}
}

func TestReadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "in.json")
	if err := os.WriteFile(file, []byte(`{"a":1}`), 0o600); err != nil {
		t.Fatal(err)
	}

	content, err := ReadFile(file)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != `{"a":1}` {
		t.Errorf("ReadFile() = %q", content)
	}

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing"))
	if !tkerror.HasCode(err, tkerror.CodeNotFound) {
		t.Errorf("missing file code = %v, want NOT_FOUND", tkerror.GetCode(err))
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("the os error should stay in the chain")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestReadInput(t *testing.T) {
	content, err := ReadInput(strings.NewReader("[1]"), StdinName)
	if err != nil || string(content) != "[1]" {
		t.Errorf("ReadInput(stdin) = %q, %v", content, err)
	}

	_, err = ReadInput(failingReader{}, StdinName)
	if !tkerror.HasCode(err, tkerror.CodeInternal) {
		t.Errorf("failing stdin code = %v, want INTERNAL", tkerror.GetCode(err))
	}

	_, err = ReadInput(strings.NewReader(""), filepath.Join(t.TempDir(), "nope"))
	if !tkerror.HasCode(err, tkerror.CodeNotFound) {
		t.Errorf("missing file code = %v, want NOT_FOUND", tkerror.GetCode(err))
	}
}
