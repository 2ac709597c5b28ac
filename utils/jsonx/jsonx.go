// File: jsonx.go
// Title: JSON Serialization Defaults
// Description: Marshals values with camelCase property names, null properties
//              omitted and indented output; unmarshals with case-insensitive
//              property matching.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/msto63/textkit/core/errors"
	"github.com/msto63/textkit/utils/stringx"
)

// DefaultIndent is the indentation of Marshal output
const DefaultIndent = "  "

type options struct {
	naming     func(string) string
	ignoreNull bool
	indent     string
}

func defaultOptions() options {
	return options{
		naming:     stringx.CamelCaseName,
		ignoreNull: true,
		indent:     DefaultIndent,
	}
}

// Option overrides one of the serialization defaults
type Option func(*options)

// WithNaming sets the property and map key naming function. Nil keeps the
// names produced by encoding/json.
func WithNaming(naming func(string) string) Option {
	return func(o *options) {
		o.naming = naming
	}
}

// WithIgnoreNull controls whether null-valued properties are omitted
func WithIgnoreNull(ignore bool) Option {
	return func(o *options) {
		o.ignoreNull = ignore
	}
}

// WithIndent sets the indentation string; empty produces compact output
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// Marshal encodes v with encoding/json and rewrites the result: property
// names and map keys pass through the naming function, null properties are
// dropped and the output is indented. Property order is preserved. Array
// elements are never dropped.
func Marshal(v interface{}, opts ...Option) ([]byte, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleJsonx, "Marshal", err).
			WithDetail("type", fmt.Sprintf("%T", v))
	}

	r := &rewriter{dec: json.NewDecoder(bytes.NewReader(raw)), opts: o}
	r.dec.UseNumber()

	tok, err := r.dec.Token()
	if err == nil {
		err = r.value(tok, 0)
	}
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleJsonx, "Marshal", err)
	}
	return r.out.Bytes(), nil
}

// ToJSON is Marshal returning a string
func ToJSON(v interface{}, opts ...Option) (string, error) {
	data, err := Marshal(v, opts...)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Reformat decodes arbitrary JSON text and re-encodes it with the options.
// Numbers keep their exact text.
func Reformat(data []byte, opts ...Option) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		return nil, errors.InvalidFormat(errors.ModuleJsonx, "Reformat", "JSON", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.InvalidFormat(errors.ModuleJsonx, "Reformat", "JSON", fmt.Errorf("unexpected data after top-level value"))
	}

	r := &rewriter{dec: json.NewDecoder(bytes.NewReader(data)), opts: defaultOptions()}
	for _, opt := range opts {
		opt(&r.opts)
	}
	r.dec.UseNumber()

	tok, err := r.dec.Token()
	if err == nil {
		err = r.value(tok, 0)
	}
	if err != nil {
		return nil, errors.InvalidFormat(errors.ModuleJsonx, "Reformat", "JSON", err)
	}
	return r.out.Bytes(), nil
}

// Unmarshal decodes data into v. Property names match case-insensitively.
func Unmarshal(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return errors.InvalidFormat(errors.ModuleJsonx, "Unmarshal", "JSON", err).
			WithDetail("type", fmt.Sprintf("%T", v))
	}
	return nil
}

// FromJSON decodes text into a new T
func FromJSON[T any](text string) (T, error) {
	var v T
	err := Unmarshal([]byte(text), &v)
	return v, err
}

// rewriter re-emits a token stream with renamed keys and indentation
type rewriter struct {
	dec  *json.Decoder
	opts options
	out  bytes.Buffer
}

func (r *rewriter) value(tok json.Token, depth int) error {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return r.object(depth)
		case '[':
			return r.array(depth)
		}
		return fmt.Errorf("unexpected delimiter %q", t)
	case nil:
		r.out.WriteString("null")
	case bool:
		r.out.WriteString(strconv.FormatBool(t))
	case json.Number:
		r.out.WriteString(t.String())
	case string:
		r.writeString(t)
	default:
		return fmt.Errorf("unexpected token %v", t)
	}
	return nil
}

func (r *rewriter) object(depth int) error {
	r.out.WriteByte('{')
	count := 0

	for r.dec.More() {
		keyTok, err := r.dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", keyTok)
		}

		valTok, err := r.dec.Token()
		if err != nil {
			return err
		}
		if valTok == nil && r.opts.ignoreNull {
			continue
		}

		if count > 0 {
			r.out.WriteByte(',')
		}
		r.newline(depth + 1)
		if r.opts.naming != nil {
			key = r.opts.naming(key)
		}
		r.writeString(key)
		r.out.WriteByte(':')
		if r.opts.indent != "" {
			r.out.WriteByte(' ')
		}
		if err := r.value(valTok, depth+1); err != nil {
			return err
		}
		count++
	}

	if _, err := r.dec.Token(); err != nil {
		return err
	}
	if count > 0 {
		r.newline(depth)
	}
	r.out.WriteByte('}')
	return nil
}

func (r *rewriter) array(depth int) error {
	r.out.WriteByte('[')
	count := 0

	for r.dec.More() {
		tok, err := r.dec.Token()
		if err != nil {
			return err
		}
		if count > 0 {
			r.out.WriteByte(',')
		}
		r.newline(depth + 1)
		if err := r.value(tok, depth+1); err != nil {
			return err
		}
		count++
	}

	if _, err := r.dec.Token(); err != nil {
		return err
	}
	if count > 0 {
		r.newline(depth)
	}
	r.out.WriteByte(']')
	return nil
}

func (r *rewriter) newline(depth int) {
	if r.opts.indent == "" {
		return
	}
	r.out.WriteByte('\n')
	for i := 0; i < depth; i++ {
		r.out.WriteString(r.opts.indent)
	}
}

func (r *rewriter) writeString(s string) {
	// json.Marshal of a string cannot fail
	b, _ := json.Marshal(s)
	r.out.Write(b)
}
