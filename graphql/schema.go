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
	"reflect"
	"sort"
)

// TypeMap indexes the named types reachable from a schema by name.
type TypeMap struct {
	types map[string]Type
}

// Lookup returns the type with the given name, or nil.
func (typeMap TypeMap) Lookup(name string) Type {
	return typeMap.types[name]
}

// Names returns the type names in lexical order.
func (typeMap TypeMap) Names() []string {
	names := make([]string, 0, len(typeMap.types))
	for name := range typeMap.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// collect adds t and every type reachable from it. Two distinct types with one name are rejected.
func (typeMap TypeMap) collect(t Type) error {
	pending := []Type{t}
	for len(pending) > 0 {
		n := len(pending) - 1
		t := pending[n]
		pending = pending[:n]

		// A nil pointer may hide in a non-nil Type.
		if t == nil || reflect.ValueOf(t).IsNil() {
			continue
		}

		if named, ok := t.(TypeWithName); ok {
			name := named.Name()
			if seen, exists := typeMap.types[name]; exists {
				if seen != t {
					return NewError(fmt.Sprintf(
						"Schema must contain unique named types but contains multiple types named %s.", name),
						ErrKindValidation)
				}
				continue
			}
			typeMap.types[name] = t
		}

		switch t := t.(type) {
		case Scalar:
		case Object:
			for _, f := range t.Fields() {
				pending = append(pending, f.Type())
				for _, arg := range f.Args() {
					pending = append(pending, arg.Type())
				}
			}
		case List:
			pending = append(pending, t.ElementType())
		case NonNull:
			pending = append(pending, t.InnerType())
		default:
			return NewError(fmt.Sprintf("Cannot add %s to schema: unsupported type %T", t, t))
		}
	}
	return nil
}

// SchemaConfig lists the roots of a Schema.
type SchemaConfig struct {
	// Query is optional. Without it the schema only gathers Types, which is enough for printing.
	Query Object

	// Types are added even when nothing else references them.
	Types []Type
}

// Schema is the set of types a GraphQL service exposes, rooted at its query type. It is immutable
// once built.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Schema
type Schema struct {
	query   Object
	typeMap TypeMap
}

// NewSchema gathers every type reachable from config. The built-in scalars are always included.
func NewSchema(config *SchemaConfig) (*Schema, error) {
	typeMap := TypeMap{types: map[string]Type{}}

	roots := make([]Type, 0, len(config.Types)+6)
	if config.Query != nil {
		roots = append(roots, config.Query)
	}
	roots = append(roots, Int(), Float(), String(), Boolean(), ID())
	roots = append(roots, config.Types...)

	for _, t := range roots {
		if err := typeMap.collect(t); err != nil {
			return nil, err
		}
	}

	return &Schema{
		query:   config.Query,
		typeMap: typeMap,
	}, nil
}

// TypeMap returns the named types of the schema.
func (schema *Schema) TypeMap() TypeMap {
	return schema.typeMap
}

// Query returns the root query type, or nil.
func (schema *Schema) Query() Object {
	return schema.query
}
