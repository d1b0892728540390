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
	"strings"
)

// NewSyntaxError reports a syntax error in a single-line source such as a type expression. column
// is 1-based and points at the offending character.
func NewSyntaxError(source string, column uint, description string) error {
	return NewError(
		fmt.Sprintf("Syntax Error: %s in %q", description, source),
		ErrorLocation{Line: 1, Column: column},
		ErrKindSyntax,
	)
}

// Errors collects the errors of a validation pass. It is a struct rather than a slice so that
// callers test HaveOccurred instead of comparing against nil.
type Errors struct {
	Errors []*Error
}

// NoErrors returns an empty Errors.
func NoErrors() Errors {
	return Errors{}
}

// ErrorsOf builds an Errors from leading errors, optionally followed by a message and the
// remaining arguments for NewError. It panics on any other argument.
//
//	graphql.ErrorsOf(err1, err2)
//	graphql.ErrorsOf("Unknown type \"Foo\".", graphql.ErrKindValidation)
func ErrorsOf(args ...interface{}) Errors {
	var errs Errors
	for i, arg := range args {
		switch arg := arg.(type) {
		case error:
			errs.Append(arg)
		case string:
			errs.Emplace(arg, args[i+1:]...)
			return errs
		default:
			panic(fmt.Sprintf("ErrorsOf: unexpected argument %T", arg))
		}
	}
	return errs
}

// Emplace appends NewError(message, args...).
func (errs *Errors) Emplace(message string, args ...interface{}) {
	errs.Append(NewError(message, args...))
}

// Append appends errors. Errors that are not *Error are converted to one with the same message.
func (errs *Errors) Append(e ...error) {
	for _, err := range e {
		graphqlErr, ok := err.(*Error)
		if !ok {
			graphqlErr = &Error{Message: err.Error()}
		}
		errs.Errors = append(errs.Errors, graphqlErr)
	}
}

// AppendErrors appends every error in e.
func (errs *Errors) AppendErrors(e ...Errors) {
	for _, other := range e {
		errs.Errors = append(errs.Errors, other.Errors...)
	}
}

// HaveOccurred returns true if errs is not empty.
func (errs Errors) HaveOccurred() bool {
	return len(errs.Errors) > 0
}

// Error joins the messages of all errors with newlines.
func (errs Errors) Error() string {
	messages := make([]string, len(errs.Errors))
	for i, err := range errs.Errors {
		messages[i] = err.Error()
	}
	return strings.Join(messages, "\n")
}
