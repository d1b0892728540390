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

import (
	"fmt"

	"github.com/botobag/gqlmodel/graphql"
	"github.com/botobag/gqlmodel/graphql/relay"
	"github.com/botobag/gqlmodel/internal/util"
)

const opFieldArgs graphql.Op = "attribute.FieldArgs"

// FieldArgs is the result of Attribute.FieldArgs. It carries everything the owning type needs to
// define the field.
type FieldArgs struct {
	// Name of the field with the naming markers stripped; camelization is left to the consumer.
	Name string

	// Type of the field without the outer non-null wrapper; Options.Null tells whether the consumer
	// should add one.
	Type graphql.TypeDefinition

	// Options of the field
	Options FieldOptions
}

// FieldArgs derives the field name, type and options from the attribute. It does not modify the
// attribute, so calling it again without changing the attribute gives an equal result.
//
// The returned error is a *graphql.Error: a malformed type expression is reported with
// graphql.ErrKindSyntax, and unknown types or pagination over a non-object type with
// graphql.ErrKindValidation.
func (a *Attribute) FieldArgs() (FieldArgs, error) {
	class := ClassifyName(a.name)
	if len(class.Name) == 0 {
		return FieldArgs{}, graphql.NewError(
			fmt.Sprintf("Must provide name for attribute %q.", a.name),
			opFieldArgs, graphql.ErrKindValidation)
	}

	var (
		required = class.Required
		// The named type before being wrapped by list or non-null
		baseType graphql.TypeDefinition
		// The type of the field
		fieldType graphql.TypeDefinition
	)

	switch {
	case a.typeDef != nil:
		baseType = a.typeDef
		fieldType = a.typeDef

	case len(a.typeExpr) > 0:
		expr, err := ParseTypeExpr(a.typeExpr)
		if err != nil {
			return FieldArgs{}, graphql.NewError(
				fmt.Sprintf("Invalid type expression for attribute %q", a.name), err, opFieldArgs)
		}

		baseType, err = a.resolveTypeName(expr.Name)
		if err != nil {
			return FieldArgs{}, err
		}

		required = expr.Required
		fieldType = baseType
		if expr.List {
			elementType := baseType
			if expr.ElementRequired {
				elementType = graphql.NonNullOf(elementType)
			}
			fieldType = graphql.ListOf(elementType)
		}

	default:
		baseType = graphql.T(class.Scalar.Scalar())
		fieldType = baseType
	}

	if a.options.Required != nil {
		required = *a.options.Required
	}

	options := FieldOptions{}
	for key, value := range a.options.Extra {
		options[key] = value
	}

	if pagination := a.options.Pagination; pagination != nil {
		node, ok := baseType.(graphql.ObjectTypeDefinition)
		if !ok {
			return FieldArgs{}, graphql.NewError(
				fmt.Sprintf(`Cannot paginate attribute %q of type "%s": only fields of Object types can be paginated.`,
					a.name, typeDefinitionName(baseType)),
				opFieldArgs, graphql.ErrKindValidation)
		}

		if pagination.MaxPageSize < 0 || pagination.DefaultPageSize < 0 {
			return FieldArgs{}, graphql.NewError(
				fmt.Sprintf("Page sizes of attribute %q must be positive.", a.name),
				opFieldArgs, graphql.ErrKindValidation)
		}

		fieldType = relay.ConnectionOf(node)

		for key, value := range pagination.Extra {
			options[key] = value
		}
		if pagination.MaxPageSize > 0 {
			options[OptionMaxPageSize] = pagination.MaxPageSize
		}
		if pagination.DefaultPageSize > 0 {
			options[OptionDefaultPageSize] = pagination.DefaultPageSize
		}
	}

	options[OptionNull] = !required
	options[OptionCamelize] = a.options.NameFormat != NameFormatOriginal
	if a.options.Description != nil {
		options[OptionDescription] = *a.options.Description
	}

	return FieldArgs{
		Name:    class.Name,
		Type:    fieldType,
		Options: options,
	}, nil
}

// MustFieldArgs is a panic-on-fail version of FieldArgs.
func (a *Attribute) MustFieldArgs() FieldArgs {
	args, err := a.FieldArgs()
	if err != nil {
		panic(err)
	}
	return args
}

// resolveTypeName finds the type named in a type expression. Built-in scalars (and their
// lower-case aliases) shadow the types known by the resolver.
func (a *Attribute) resolveTypeName(name string) (graphql.TypeDefinition, error) {
	if scalar := builtinScalar(name); scalar != nil {
		return graphql.T(scalar), nil
	}

	if a.resolver != nil {
		if typeDef := a.resolver.Lookup(name); typeDef != nil {
			return typeDef, nil
		}
	}

	message := fmt.Sprintf(`Unknown type "%s" for attribute %q.`, name, a.name)
	if suggestions := util.SuggestionList(name, a.knownTypeNames()); len(suggestions) > 0 {
		message += fmt.Sprintf(" Did you mean %s?", util.OrList(suggestions, 5, true))
	}
	return nil, graphql.NewError(message, opFieldArgs, graphql.ErrKindValidation)
}

// knownTypeNames lists the names accepted in a type expression for suggestions.
func (a *Attribute) knownTypeNames() []string {
	names := []string{"String", "Int", "Float", "Boolean", "ID"}
	if lister, ok := a.resolver.(TypeNameLister); ok {
		names = append(names, lister.TypeNames()...)
	}
	return names
}

// typeDefinitionName returns a name of typeDef for error messages.
func typeDefinitionName(typeDef graphql.TypeDefinition) string {
	switch typeDef := typeDef.(type) {
	case graphql.ObjectTypeDefinition:
		return typeDef.TypeName()
	case graphql.ScalarTypeDefinition:
		return typeDef.TypeData().Name
	}
	if t := graphql.TypeOf(typeDef); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", typeDef)
}
