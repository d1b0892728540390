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

// Package sdl prints types of package graphql in the GraphQL Schema Definition Language. Types are
// converted into the AST of github.com/vektah/gqlparser, which also formats the output, so the
// printed schema can be consumed by gqlparser-based tools such as gqlgen.
package sdl

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"github.com/botobag/gqlmodel/graphql"
)

// Document converts the named types reachable from types into a schema document. Wrapping types
// are unwrapped. Built-in scalars are not included. Definitions are sorted by name.
func Document(types ...graphql.Type) (*ast.SchemaDocument, error) {
	named := map[string]graphql.Type{}

	stack := make([]graphql.Type, 0, len(types))
	stack = append(stack, types...)
	for len(stack) > 0 {
		var t graphql.Type
		t, stack = graphql.NamedTypeOf(stack[len(stack)-1]), stack[:len(stack)-1]
		if t == nil || graphql.IsBuiltinScalar(t) {
			continue
		}

		namedType, ok := t.(graphql.TypeWithName)
		if !ok {
			return nil, graphql.NewError(fmt.Sprintf("Cannot print %s: unsupported type %T", t, t))
		}

		name := namedType.Name()
		if prev, exists := named[name]; exists {
			if prev != t {
				return nil, graphql.NewError(
					fmt.Sprintf("Cannot print multiple types named %s.", name), graphql.ErrKindValidation)
			}
			continue
		}
		named[name] = t

		if object, ok := t.(graphql.Object); ok {
			for _, field := range object.Fields() {
				stack = append(stack, field.Type())
				for _, arg := range field.Args() {
					stack = append(stack, arg.Type())
				}
			}
		}
	}

	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)

	doc := &ast.SchemaDocument{}
	for _, name := range names {
		def, err := definitionOf(named[name])
		if err != nil {
			return nil, err
		}
		doc.Definitions = append(doc.Definitions, def)
	}

	return doc, nil
}

// SchemaDocument converts all types in schema into a schema document.
func SchemaDocument(schema *graphql.Schema) (*ast.SchemaDocument, error) {
	typeMap := schema.TypeMap()
	names := typeMap.Names()
	types := make([]graphql.Type, len(names))
	for i, name := range names {
		types[i] = typeMap.Lookup(name)
	}
	return Document(types...)
}

// Print returns the SDL of the named types reachable from types.
func Print(types ...graphql.Type) (string, error) {
	doc, err := Document(types...)
	if err != nil {
		return "", err
	}
	return format(doc), nil
}

// PrintSchema returns the SDL of all types in schema.
func PrintSchema(schema *graphql.Schema) (string, error) {
	doc, err := SchemaDocument(schema)
	if err != nil {
		return "", err
	}
	return format(doc), nil
}

func format(doc *ast.SchemaDocument) string {
	var b strings.Builder
	formatter.NewFormatter(&b, formatter.WithIndent("  ")).FormatSchemaDocument(doc)
	return b.String()
}

func definitionOf(t graphql.Type) (*ast.Definition, error) {
	switch t := t.(type) {
	case graphql.Scalar:
		return &ast.Definition{
			Kind:        ast.Scalar,
			Name:        t.Name(),
			Description: t.Description(),
		}, nil

	case graphql.Object:
		def := &ast.Definition{
			Kind:        ast.Object,
			Name:        t.Name(),
			Description: t.Description(),
		}

		fields := t.Fields()
		for _, name := range fields.Names() {
			fieldDef, err := fieldDefinitionOf(fields[name])
			if err != nil {
				return nil, err
			}
			def.Fields = append(def.Fields, fieldDef)
		}
		return def, nil
	}

	return nil, graphql.NewError(fmt.Sprintf("Cannot print %s: unsupported type %T", t, t))
}

func fieldDefinitionOf(field graphql.Field) (*ast.FieldDefinition, error) {
	def := &ast.FieldDefinition{
		Name:        field.Name(),
		Description: field.Description(),
		Type:        typeOf(field.Type()),
	}

	for _, arg := range field.Args() {
		argDef := &ast.ArgumentDefinition{
			Name:        arg.Name(),
			Description: arg.Description(),
			Type:        typeOf(arg.Type()),
		}
		if arg.HasDefaultValue() {
			value, err := valueOf(arg.DefaultValue())
			if err != nil {
				return nil, graphql.NewError(
					fmt.Sprintf("Cannot print default value of argument %s of field %s", arg.Name(), field.Name()), err)
			}
			argDef.DefaultValue = value
		}
		def.Arguments = append(def.Arguments, argDef)
	}

	if deprecation := field.Deprecation(); deprecation.Defined() {
		directive := &ast.Directive{
			Name: "deprecated",
		}
		if len(deprecation.Reason) > 0 {
			directive.Arguments = ast.ArgumentList{
				{
					Name: "reason",
					Value: &ast.Value{
						Kind: ast.StringValue,
						Raw:  deprecation.Reason,
					},
				},
			}
		}
		def.Directives = append(def.Directives, directive)
	}

	return def, nil
}

// typeOf converts a type reference into its AST.
func typeOf(t graphql.Type) *ast.Type {
	switch t := t.(type) {
	case graphql.NonNull:
		inner := *typeOf(t.InnerType())
		inner.NonNull = true
		return &inner

	case graphql.List:
		return ast.ListType(typeOf(t.ElementType()), nil)

	case graphql.TypeWithName:
		return ast.NamedType(t.Name(), nil)
	}

	return ast.NamedType(t.String(), nil)
}

// valueOf converts a default value of a scalar argument into its AST.
func valueOf(value interface{}) (*ast.Value, error) {
	switch value := value.(type) {
	case string:
		return &ast.Value{Kind: ast.StringValue, Raw: value}, nil
	case bool:
		return &ast.Value{Kind: ast.BooleanValue, Raw: strconv.FormatBool(value)}, nil
	case int:
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.Itoa(value)}, nil
	case int32:
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatInt(int64(value), 10)}, nil
	case int64:
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatInt(value, 10)}, nil
	case float32:
		return &ast.Value{Kind: ast.FloatValue, Raw: strconv.FormatFloat(float64(value), 'g', -1, 32)}, nil
	case float64:
		return &ast.Value{Kind: ast.FloatValue, Raw: strconv.FormatFloat(value, 'g', -1, 64)}, nil
	}
	return nil, fmt.Errorf("unsupported default value %v (%T)", value, value)
}
