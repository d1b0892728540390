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

package model

import (
	"fmt"

	"github.com/botobag/gqlmodel/attribute"
	"github.com/botobag/gqlmodel/graphql"
)

// Definition declares an object type through its attributes. It implements
// graphql.ObjectTypeDefinition, so it can be passed to graphql.NewObject and referenced by
// attributes of other definitions (or of itself). Fields are derived from attributes when the type
// is created.
//
//	user := model.NewDefinition("User").Description("A registered user")
//	user.Attribute("id!", "")
//	user.Attribute("full_name", "String!")
//	user.Attribute("admin?", "")
//	user.Attribute("friends", "").TypeDef(user).Paginated()
type Definition struct {
	graphql.ThisIsObjectTypeDefinition

	name        string
	description string

	// attributes in declaration order
	attributes []*attribute.Attribute

	// index of attributes by field name (i.e., names with markers stripped)
	index map[string]int

	resolver        attribute.TypeResolver
	propertyOptions []PropertyResolverOption
}

var _ graphql.ObjectTypeDefinition = (*Definition)(nil)

// NewDefinition creates an empty definition for the object type with the given name.
func NewDefinition(name string) *Definition {
	return &Definition{
		name:  name,
		index: map[string]int{},
	}
}

// Description sets the description of the object type.
func (def *Definition) Description(description string) *Definition {
	def.description = description
	return def
}

// WithResolver sets the resolver used by attributes to look up named types. It applies to the
// attributes that are already declared too.
func (def *Definition) WithResolver(resolver attribute.TypeResolver) *Definition {
	def.resolver = resolver
	for _, attr := range def.attributes {
		attr.WithResolver(resolver)
	}
	return def
}

// WithPropertyResolverOptions sets the options of the property resolvers attached to fields.
func (def *Definition) WithPropertyResolverOptions(opts ...PropertyResolverOption) *Definition {
	def.propertyOptions = opts
	return def
}

// Attribute declares an attribute and returns it for further configuration. An optional type
// expression may be given. Declaring a field name again replaces the previous attribute at its
// original position.
func (def *Definition) Attribute(name string, typeExpr ...string) *attribute.Attribute {
	var expr string
	if len(typeExpr) > 0 {
		expr = typeExpr[0]
	}

	attr := attribute.New(name, expr)
	if def.resolver != nil {
		attr.WithResolver(def.resolver)
	}

	key := attribute.ClassifyName(name).Name
	if i, exists := def.index[key]; exists {
		def.attributes[i] = attr
	} else {
		def.index[key] = len(def.attributes)
		def.attributes = append(def.attributes, attr)
	}

	return attr
}

// Attributes returns the declared attributes in declaration order.
func (def *Definition) Attributes() []*attribute.Attribute {
	attributes := make([]*attribute.Attribute, len(def.attributes))
	copy(attributes, def.attributes)
	return attributes
}

// Name returns the name of the object type.
func (def *Definition) Name() string {
	return def.name
}

// TypeName implements graphql.ObjectTypeDefinition.
func (def *Definition) TypeName() string {
	return def.name
}

// TypeData implements graphql.ObjectTypeDefinition. It derives the field of every attribute and
// fails on the first attribute that cannot be turned into a field.
func (def *Definition) TypeData() (graphql.ObjectTypeData, error) {
	fields, errs := def.buildFields(true)
	if errs.HaveOccurred() {
		return graphql.ObjectTypeData{}, errs.Errors[0]
	}

	return graphql.ObjectTypeData{
		Name:        def.name,
		Description: def.description,
		Fields:      fields,
	}, nil
}

// validate reports every attribute that cannot be turned into a field.
func (def *Definition) validate() graphql.Errors {
	_, errs := def.buildFields(false)
	return errs
}

func (def *Definition) buildFields(failFast bool) (graphql.Fields, graphql.Errors) {
	var (
		fields = make(graphql.Fields, len(def.attributes))
		errs   graphql.Errors
	)

	for _, attr := range def.attributes {
		if err := def.defineField(fields, attr); err != nil {
			errs.Append(err)
			if failFast {
				break
			}
		}
	}

	return fields, errs
}

func (def *Definition) defineField(fields graphql.Fields, attr *attribute.Attribute) error {
	args, err := attr.FieldArgs()
	if err == nil {
		_, err = DefineField(fields, args, NewPropertyResolver(attr.PropertyName(), def.propertyOptions...))
	}

	if err != nil {
		return graphql.NewError(fmt.Sprintf(`Cannot define attribute "%s" of %s`, attr.Name(), def.name), err)
	}

	return nil
}
