// File: errors.go
// Title: Module Error Standards
// Description: Module identifiers, an ErrorBuilder and the constructors used by
//              convertx, guardx, jsonx, mathx and config to build structured
//              errors with consistent codes and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-12 v0.2.0: Rebuilt around the toolkit modules, added Precondition

package errors

import (
	"fmt"

	tkerror "github.com/msto63/textkit/core/error"
)

// Module identifiers for error categorization
const (
	ModuleConvertx    = "convertx"
	ModuleValidationx = "validationx"
	ModuleGuardx      = "guardx"
	ModuleJsonx       = "jsonx"
	ModuleMathx       = "mathx"
	ModuleTimex       = "timex"
	ModuleConfig      = "config"
	ModuleI18n        = "i18n"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	code      tkerror.Code
	severity  *tkerror.Severity
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
		code:    tkerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code tkerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity tkerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *tkerror.Error {
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module

	var err *tkerror.Error
	if eb.cause != nil {
		err = tkerror.Wrap(eb.cause, eb.message)
	} else {
		err = tkerror.New(eb.message)
	}

	err = err.WithCode(eb.code).WithDetails(eb.details)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	if eb.severity != nil {
		err = err.WithSeverity(*eb.severity)
	}
	return err
}

// InvalidFormat reports input that does not match an expected data format
func InvalidFormat(module, operation, expectedFormat string, cause error) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("input is not valid %s", expectedFormat).
		Cause(cause).
		Code(tkerror.CodeInvalidFormat).
		Detail("expected_format", expectedFormat).
		Build()
}

// Precondition reports a violated precondition on a named parameter. An empty
// message produces the standard "The given input <param> was <reason>." text.
func Precondition(operation, parameter, reason, message string) *tkerror.Error {
	if message == "" {
		if parameter != "" {
			message = fmt.Sprintf("The given input %s was %s.", parameter, reason)
		} else {
			message = fmt.Sprintf("The given input was %s.", reason)
		}
	}
	b := NewErrorBuilder(ModuleGuardx).
		Operation(operation).
		Message(message).
		Code(tkerror.CodePreconditionFailed).
		Detail("reason", reason)
	if parameter != "" {
		b = b.Detail("parameter", parameter)
	}
	return b.Build()
}

// OperationFailed wraps an unexpected failure of a module operation
func OperationFailed(module, operation string, cause error) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Cause(cause).
		Code(tkerror.CodeInternal).
		Build()
}

// ConfigInvalid reports a configuration value rejected during validation
func ConfigInvalid(key string, value interface{}, reason string) *tkerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("invalid configuration value for %s: %s", key, reason).
		Code(tkerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Build()
}

// ExtractModule returns the module recorded on a textkit error
func ExtractModule(err error) string {
	if e, ok := err.(*tkerror.Error); ok {
		if m, ok := e.Detail("module"); ok {
			if s, ok := m.(string); ok {
				return s
			}
		}
	}
	return ""
}
