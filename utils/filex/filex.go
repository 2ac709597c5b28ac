// File: filex.go
// Title: File System Utilities
// Description: File existence checks and reads that report failures as
//              textkit errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with file operations
// - 2026-10-12 v0.2.0: Reduced to existence checks and input reading

package filex

import (
	"io"
	"os"

	tkerror "github.com/msto63/textkit/core/error"
)

// StdinName is the source name that selects standard input
const StdinName = "-"

// ===============================
// File Existence and Basic Info
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ===============================
// File Reading Operations
// ===============================

// ReadFile reads the entire file. A missing file yields CodeNotFound, any
// other failure CodeInternal.
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		code := tkerror.CodeInternal
		if os.IsNotExist(err) {
			code = tkerror.CodeNotFound
		}
		return nil, tkerror.Wrap(err, "failed to read file").
			WithCode(code).
			WithOperation("filex.ReadFile").
			WithDetail("file", path)
	}
	return content, nil
}

// ReadInput reads all of stdin when source is "-", otherwise the file
func ReadInput(stdin io.Reader, source string) ([]byte, error) {
	if source != StdinName {
		return ReadFile(source)
	}

	content, err := io.ReadAll(stdin)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to read standard input").
			WithCode(tkerror.CodeInternal).
			WithOperation("filex.ReadInput")
	}
	return content, nil
}
