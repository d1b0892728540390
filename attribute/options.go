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

package attribute

// Keys of FieldOptions emitted by FieldArgs
const (
	// OptionNull is true when the field may resolve to null.
	OptionNull = "null"

	// OptionCamelize is false when the field name must be registered as declared.
	OptionCamelize = "camelize"

	// OptionDescription carries the field description when one was supplied.
	OptionDescription = "description"

	// OptionMaxPageSize carries the maximum page size of a paginated field.
	OptionMaxPageSize = "max_page_size"

	// OptionDefaultPageSize carries the page size used when a paginated field is queried without
	// an explicit limit.
	OptionDefaultPageSize = "default_page_size"
)

// NameFormat controls how an attribute name is turned into a field name.
type NameFormat string

// Enumeration of NameFormat
const (
	// NameFormatDefault camelizes the field name. An unset NameFormat behaves the same.
	NameFormatDefault NameFormat = "default"

	// NameFormatOriginal keeps the field name as declared.
	NameFormatOriginal NameFormat = "original"
)

// PaginationOptions configures a paginated attribute. Zero values are treated as not supplied and
// are not emitted.
type PaginationOptions struct {
	// MaxPageSize limits the number of nodes in a page.
	MaxPageSize int

	// DefaultPageSize is used when no page size is requested.
	DefaultPageSize int

	// Extra holds pagination keys interpreted by the registration side only. They are emitted as is.
	Extra map[string]interface{}
}

// merge overlays other onto opts key by key.
func (opts PaginationOptions) merge(other PaginationOptions) PaginationOptions {
	if other.MaxPageSize != 0 {
		opts.MaxPageSize = other.MaxPageSize
	}
	if other.DefaultPageSize != 0 {
		opts.DefaultPageSize = other.DefaultPageSize
	}
	opts.Extra = mergeExtra(opts.Extra, other.Extra)
	return opts
}

// Options is the configuration of an attribute. Unset fields leave the decision to the naming
// conventions.
type Options struct {
	// Required overrides the requiredness inferred from the type expression and the name.
	Required *bool

	// Description of the field
	Description *string

	// NameFormat of the field name
	NameFormat NameFormat

	// Pagination is non-nil if the field returns a connection over its type.
	Pagination *PaginationOptions

	// Extra holds keys that are not interpreted by attributes. They are passed through to the
	// field options untouched.
	Extra map[string]interface{}
}

// Merge overlays other onto opts: every field set in other replaces the one in opts and Extra
// maps are merged key by key. Neither operand is modified.
func (opts Options) Merge(other Options) Options {
	if other.Required != nil {
		required := *other.Required
		opts.Required = &required
	}
	if other.Description != nil {
		description := *other.Description
		opts.Description = &description
	}
	if len(other.NameFormat) > 0 {
		opts.NameFormat = other.NameFormat
	}
	if other.Pagination != nil {
		var pagination PaginationOptions
		if opts.Pagination != nil {
			pagination = *opts.Pagination
		}
		pagination = pagination.merge(*other.Pagination)
		opts.Pagination = &pagination
	}
	opts.Extra = mergeExtra(opts.Extra, other.Extra)
	return opts
}

// clone returns a deep copy of opts so that callers cannot mutate an attribute through it.
func (opts Options) clone() Options {
	return Options{}.Merge(opts)
}

// mergeExtra returns a fresh map containing the entries of a overridden by those of b.
func mergeExtra(a, b map[string]interface{}) map[string]interface{} {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	result := make(map[string]interface{}, len(a)+len(b))
	for key, value := range a {
		result[key] = value
	}
	for key, value := range b {
		result[key] = value
	}
	return result
}

// Bool returns a pointer to b. It is a helper for filling Options.Required.
func Bool(b bool) *bool {
	return &b
}

// String returns a pointer to s. It is a helper for filling Options.Description.
func String(s string) *string {
	return &s
}

// FieldOptions is the options mapping produced by FieldArgs. Keys are listed in the Option*
// constants; pass-through keys from Options.Extra and PaginationOptions.Extra may be present too.
type FieldOptions map[string]interface{}

// Null returns the value of OptionNull. Fields are nullable unless stated otherwise.
func (options FieldOptions) Null() bool {
	null, ok := options[OptionNull].(bool)
	return !ok || null
}

// Camelize returns the value of OptionCamelize. Camelization is on unless explicitly disabled.
func (options FieldOptions) Camelize() bool {
	camelize, ok := options[OptionCamelize].(bool)
	return !ok || camelize
}

// Description returns the value of OptionDescription and whether it was set.
func (options FieldOptions) Description() (string, bool) {
	description, ok := options[OptionDescription].(string)
	return description, ok
}

// MaxPageSize returns the value of OptionMaxPageSize and whether it was set.
func (options FieldOptions) MaxPageSize() (int, bool) {
	size, ok := options[OptionMaxPageSize].(int)
	return size, ok
}

// DefaultPageSize returns the value of OptionDefaultPageSize and whether it was set.
func (options FieldOptions) DefaultPageSize() (int, bool) {
	size, ok := options[OptionDefaultPageSize].(int)
	return size, ok
}
