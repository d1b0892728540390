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
	"context"
	"fmt"
	"sort"
)

// FieldResolver computes the value of a field from source, the value already resolved for the
// enclosing object.
type FieldResolver interface {
	Resolve(ctx context.Context, source interface{}) (interface{}, error)
}

// FieldResolverFunc adapts a function to FieldResolver.
type FieldResolverFunc func(ctx context.Context, source interface{}) (interface{}, error)

// Resolve calls f(ctx, source).
func (f FieldResolverFunc) Resolve(ctx context.Context, source interface{}) (interface{}, error) {
	return f(ctx, source)
}

// FieldExtensions carries data about a field that the type system itself does not interpret.
type FieldExtensions map[string]interface{}

// Fields maps field names to their configuration.
type Fields map[string]FieldConfig

// FieldConfig describes one field of an Object.
type FieldConfig struct {
	Description string

	// Type is resolved when the enclosing Object is built.
	Type TypeDefinition

	Args     ArgumentConfigMap
	Resolver FieldResolver

	// Nil unless the field is deprecated
	Deprecation *Deprecation

	Extensions FieldExtensions
}

// ArgumentConfigMap maps argument names to their configuration.
type ArgumentConfigMap map[string]ArgumentConfig

// ArgumentConfig describes one argument of a field.
type ArgumentConfig struct {
	Description string

	// Type must resolve to a scalar or a list or non-null of one.
	Type TypeDefinition

	// DefaultValue is used when a query omits the argument. Nil means none.
	DefaultValue interface{}
}

// Field is a built field of an Object.
type Field interface {
	Name() string
	Description() string
	Type() Type

	// Args returns the field's arguments sorted by name.
	Args() []Argument

	Resolver() FieldResolver
	Deprecation() *Deprecation
	Extensions() FieldExtensions
}

// FieldMap maps field names to built fields.
type FieldMap map[string]Field

// Names returns the field names in lexical order.
func (m FieldMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type field struct {
	name   string
	config FieldConfig
	ttype  Type
	args   []Argument
}

var _ Field = (*field)(nil)

func (f *field) Name() string                { return f.name }
func (f *field) Description() string         { return f.config.Description }
func (f *field) Type() Type                  { return f.ttype }
func (f *field) Args() []Argument            { return f.args }
func (f *field) Resolver() FieldResolver     { return f.config.Resolver }
func (f *field) Deprecation() *Deprecation   { return f.config.Deprecation }
func (f *field) Extensions() FieldExtensions { return f.config.Extensions }

// Argument is a built argument of a field.
type Argument struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
}

func (arg *Argument) Name() string        { return arg.name }
func (arg *Argument) Description() string { return arg.description }
func (arg *Argument) Type() Type          { return arg.ttype }

// HasDefaultValue returns true if the argument has a non-nil default.
func (arg *Argument) HasDefaultValue() bool {
	return arg.defaultValue != nil
}

func (arg *Argument) DefaultValue() interface{} {
	return arg.defaultValue
}

func buildFieldMap(objectName string, configs Fields, resolve typeResolver) (FieldMap, error) {
	if len(configs) == 0 {
		return nil, nil
	}

	fields := make(FieldMap, len(configs))
	for name, config := range configs {
		t, err := resolve(config.Type)
		switch {
		case err != nil:
			return nil, err
		case t == nil:
			return nil, NewError(fmt.Sprintf("Must provide type for %s.%s.", objectName, name),
				ErrKindValidation)
		// A wrapper around a type still finalizing up the stack has no named type yet.
		case !IsOutputType(t) && NamedTypeOf(t) != nil:
			return nil, NewError(fmt.Sprintf("The type of %s.%s must be Output Type but got: %s.",
				objectName, name, t), ErrKindValidation)
		}

		args, err := buildArguments(objectName, name, config.Args, resolve)
		if err != nil {
			return nil, err
		}

		fields[name] = &field{
			name:   name,
			config: config,
			ttype:  t,
			args:   args,
		}
	}
	return fields, nil
}

func buildArguments(
	objectName string,
	fieldName string,
	configs ArgumentConfigMap,
	resolve typeResolver) ([]Argument, error) {

	if len(configs) == 0 {
		return nil, nil
	}

	args := make([]Argument, 0, len(configs))
	for name, config := range configs {
		t, err := resolve(config.Type)
		if err != nil {
			return nil, err
		}
		// Only scalars are input types in this type system.
		if t == nil || !IsScalarType(NamedTypeOf(t)) {
			return nil, NewError(fmt.Sprintf("The type of %s.%s(%s:) must be Input Type but got: %v.",
				objectName, fieldName, name, t), ErrKindValidation)
		}

		args = append(args, Argument{
			name:         name,
			description:  config.Description,
			ttype:        t,
			defaultValue: config.DefaultValue,
		})
	}

	sort.Slice(args, func(i, j int) bool {
		return args[i].name < args[j].name
	})
	return args, nil
}
