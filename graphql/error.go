/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
	"strings"
)

// Op names the operation that failed, such as "attribute.FieldArgs".
type Op string

// ErrKind classifies an Error.
type ErrKind uint8

// Error kinds
const (
	ErrKindOther      ErrKind = iota // not printed
	ErrKindSyntax                    // malformed type expression
	ErrKindValidation                // invalid type or field definition
	ErrKindInternal
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindSyntax:
		return "syntax error"
	case ErrKindValidation:
		return "validation error"
	case ErrKindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// ErrorLocation points into the source text of an error. Line and Column start at 1.
type ErrorLocation struct {
	Line   uint
	Column uint
}

// ErrorWithLocations is implemented by errors that know where in the source they occurred.
// NewError takes the locations of a wrapped error through it when none are given.
type ErrorWithLocations interface {
	Locations() []ErrorLocation
}

// Error is the error type of the type system and of the declarations built on it. It serializes
// to JSON as a GraphQL error, that is, only its message and locations.
//
// An Error may wrap another error, following upspin.io/errors. The wrapped error's locations and
// kind carry over to the new Error unless given explicitly.
type Error struct {
	Message string

	// Locations in the source text (e.g., a type expression) the error refers to
	Locations []ErrorLocation

	// Err is the wrapped error, if any.
	Err error

	Op   Op
	Kind ErrKind
}

var _ error = (*Error)(nil)

// NewError builds an *Error from a message and any of: an ErrorLocation, a []ErrorLocation, an
// error to wrap, an Op and an ErrKind. Any other argument yields a plain error describing the bad
// call.
//
// See https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{Message: message}

	for _, arg := range args {
		switch arg := arg.(type) {
		case ErrorLocation:
			e.Locations = []ErrorLocation{arg}
		case []ErrorLocation:
			e.Locations = arg
		case error:
			e.Err = arg
		case Op:
			e.Op = arg
		case ErrKind:
			e.Kind = arg
		default:
			_, file, line, _ := runtime.Caller(1)
			slog.Warn("bad NewError call", "caller", fmt.Sprintf("%s:%d", file, line), "args", args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	if e.Err == nil {
		return e
	}

	if len(e.Locations) == 0 {
		switch inner := e.Err.(type) {
		case ErrorWithLocations:
			e.Locations = inner.Locations()
		case *Error:
			if len(inner.Locations) > 0 {
				e.Locations = append([]ErrorLocation(nil), inner.Locations...)
			}
		}
	}

	if inner, ok := e.Err.(*Error); ok && e.Kind == ErrKindOther {
		e.Kind = inner.Kind
	}

	return e
}

// WrapError wraps err with message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf wraps err with a formatted message.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// Error prints the chain of wrapped Errors one per line. Locations and kinds equal to those of the
// enclosing Error are left out.
func (e *Error) Error() string {
	var b strings.Builder
	e.write(&b, nil)
	return b.String()
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) write(b *strings.Builder, outer *Error) {
	start := b.Len()
	sep := func(s string) {
		if b.Len() > start {
			b.WriteString(s)
		}
	}

	b.WriteString(string(e.Op))

	if len(e.Message) > 0 {
		sep(": ")
		b.WriteString(e.Message)
	}

	if e.Locations != nil && (outer == nil || !reflect.DeepEqual(outer.Locations, e.Locations)) {
		if b.Len() > start {
			b.WriteString(" at ")
		} else {
			b.WriteString("At ")
		}
		fmt.Fprintf(b, "%+v", e.Locations)
	}

	if e.Kind != ErrKindOther && (outer == nil || outer.Kind != e.Kind) {
		sep(": ")
		b.WriteString(e.Kind.String())
	}

	switch inner := e.Err.(type) {
	case nil:
	case *Error:
		sep(":\n  ")
		inner.write(b, e)
	default:
		sep(": ")
		b.WriteString(inner.Error())
	}
}
