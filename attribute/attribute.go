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
	"github.com/botobag/gqlmodel/graphql"
)

// Attribute declares one field of an object type. It is built with New and configured through
// chained calls:
//
//	attribute.New("full_name", "String!").Description("Name shown on the profile")
//	attribute.New("admin?", "")
//	attribute.New("posts", "").TypeDef(postDefinition).Paginated(attribute.PaginationOptions{
//		MaxPageSize: 50,
//	})
//
// An Attribute is owned by the definition that declares it and is not safe for concurrent
// mutation.
type Attribute struct {
	name     string
	property string
	typeExpr string
	typeDef  graphql.TypeDefinition
	options  Options
	resolver TypeResolver
}

// New creates an attribute with the given name and type expression. An empty typeExpr leaves the
// type to the naming conventions (see ClassifyName).
func New(name string, typeExpr string) *Attribute {
	return &Attribute{
		name:     name,
		typeExpr: typeExpr,
	}
}

// Property overrides the name of the property read from source values when resolving the field.
func (a *Attribute) Property(name string) *Attribute {
	a.property = name
	return a
}

// Options merges opts into the options of the attribute. Every option set in opts replaces the
// current one.
func (a *Attribute) Options(opts Options) *Attribute {
	a.options = a.options.Merge(opts)
	return a
}

// Required marks the field as non-null regardless of its name and type expression.
func (a *Attribute) Required() *Attribute {
	a.options.Required = Bool(true)
	return a
}

// Optional marks the field as nullable regardless of its name and type expression.
func (a *Attribute) Optional() *Attribute {
	a.options.Required = Bool(false)
	return a
}

// Description sets the field description.
func (a *Attribute) Description(description string) *Attribute {
	a.options.Description = String(description)
	return a
}

// Type replaces the type expression. It also drops the type definition set by TypeDef. The
// expression is validated by FieldArgs.
func (a *Attribute) Type(typeExpr string) *Attribute {
	a.typeExpr = typeExpr
	a.typeDef = nil
	return a
}

// TypeDef sets the type of the field to the given definition, typically an object type of an
// association. It takes precedence over the type expression.
func (a *Attribute) TypeDef(typeDef graphql.TypeDefinition) *Attribute {
	a.typeDef = typeDef
	return a
}

// Paginated turns the field into a connection over its object type. Pagination options given in
// opts are merged in order.
func (a *Attribute) Paginated(opts ...PaginationOptions) *Attribute {
	var pagination PaginationOptions
	if a.options.Pagination != nil {
		pagination = *a.options.Pagination
	}
	for _, opt := range opts {
		pagination = pagination.merge(opt)
	}
	a.options.Pagination = &pagination
	return a
}

// WithResolver sets the resolver used to look up named types that are not built-in scalars.
func (a *Attribute) WithResolver(resolver TypeResolver) *Attribute {
	a.resolver = resolver
	return a
}

// Name returns the name of the attribute as declared, including trailing markers.
func (a *Attribute) Name() string {
	return a.name
}

// PropertyName returns the property read from source values. It defaults to the field name.
func (a *Attribute) PropertyName() string {
	if len(a.property) > 0 {
		return a.property
	}
	return ClassifyName(a.name).Name
}

// IsRequired returns true if the attribute marks the field as non-null through its options or
// through its name. Requiredness carried by the type expression is not considered since the
// expression is only parsed by FieldArgs.
func (a *Attribute) IsRequired() bool {
	if a.options.Required != nil {
		return *a.options.Required
	}
	return ClassifyName(a.name).Required
}

// IsPaginated returns true if Paginated has been called on the attribute.
func (a *Attribute) IsPaginated() bool {
	return a.options.Pagination != nil
}

// Descriptor is a snapshot of the state of an attribute.
type Descriptor struct {
	Name     string
	Property string
	TypeExpr string
	TypeDef  graphql.TypeDefinition
	Options  Options
}

// Descriptor returns a copy of the attribute state. Modifying the returned value does not affect
// the attribute.
func (a *Attribute) Descriptor() *Descriptor {
	return &Descriptor{
		Name:     a.name,
		Property: a.PropertyName(),
		TypeExpr: a.typeExpr,
		TypeDef:  a.typeDef,
		Options:  a.options.clone(),
	}
}
