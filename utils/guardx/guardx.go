// File: guardx.go
// Title: Precondition Guards
// Description: Fail-fast checks for programmer errors: nil arguments, blank
//              strings, empty identifiers, violated invariants and undefined
//              enumeration values. Each check returns the validated value or
//              a PRECONDITION_FAILED error naming the parameter.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package guardx

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"

	tkerror "github.com/msto63/textkit/core/error"
	"github.com/msto63/textkit/core/errors"
	"github.com/msto63/textkit/utils/slicex"
	"github.com/msto63/textkit/utils/stringx"
)

const (
	reasonNull        = "null"
	reasonNullOrEmpty = "null or empty"
	reasonNotDefined  = "not defined"
	reasonFalse       = "false"
	reasonTrue        = "true"
)

// NotNil returns v, or an error when v is a nil pointer, map, slice,
// channel, function or interface
func NotNil[T any](v T, param string) (T, error) {
	if IsNil(v) {
		return v, errors.Precondition("NotNil", param, reasonNull, "")
	}
	return v, nil
}

// NotNilMsg is NotNil reporting message instead of the standard text. A
// blank message falls back to NotNil.
func NotNilMsg[T any](v T, param, message string) (T, error) {
	if stringx.IsBlank(message) {
		return NotNil(v, param)
	}
	if IsNil(v) {
		return v, errors.Precondition("NotNil", param, reasonNull, message)
	}
	return v, nil
}

// NotBlank returns s, or an error when s is empty or whitespace-only
func NotBlank(s, param string) (string, error) {
	if stringx.IsBlank(s) {
		return s, errors.Precondition("NotBlank", param, reasonNullOrEmpty, "")
	}
	return s, nil
}

// NotEmptyUUID returns *id, or an error when id is nil or uuid.Nil
func NotEmptyUUID(id *uuid.UUID, param string) (uuid.UUID, error) {
	if id == nil {
		return uuid.Nil, errors.Precondition("NotEmptyUUID", param, reasonNull, "")
	}
	if *id == uuid.Nil {
		return uuid.Nil, errors.Precondition("NotEmptyUUID", param, reasonNullOrEmpty, "")
	}
	return *id, nil
}

// False fails with message when cond is false
func False(cond bool, message string) (bool, error) {
	if !cond {
		return cond, errors.Precondition("False", "", reasonFalse, message)
	}
	return cond, nil
}

// True fails with message when cond is true
func True(cond bool, message string) (bool, error) {
	if cond {
		return cond, errors.Precondition("True", "", reasonTrue, message)
	}
	return cond, nil
}

// DefinedEnum fails when v is not one of members
func DefinedEnum[T comparable](v T, param string, members ...T) error {
	if slicex.Contains(members, v) {
		return nil
	}

	message := "The given input is not defined or does not exist."
	if param != "" {
		message = fmt.Sprintf("The given input %s is not defined or does not exist.", param)
	}
	return errors.Precondition("DefinedEnum", param, reasonNotDefined, message).
		WithDetail("value", fmt.Sprintf("%v", v))
}

// Must returns v and panics when err is not nil
//
//	name := guardx.Must(guardx.NotBlank(name, "name"))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Assert panics when err is not nil
//
//	guardx.Assert(guardx.DefinedEnum(level, "level", Low, High))
func Assert(err error) {
	if err != nil {
		panic(err)
	}
}

// IsPrecondition reports whether err is a failed guard
func IsPrecondition(err error) bool {
	return tkerror.HasCode(err, tkerror.CodePreconditionFailed)
}

// IsNil reports whether v is nil or a nil value of a nillable kind
func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// AsNotNil returns s, or an empty slice when s is nil
func AsNotNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
