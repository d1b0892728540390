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
)

// Type is a GraphQL type that a field can be declared with. Types are either named (Scalar and
// Object) or wrap another type (List and NonNull). Values of Type are only created by NewType and
// its variants, which is enforced by the unexported mark.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Types
type Type interface {
	// String returns the type reference as written in SDL (e.g., "[Post!]!").
	fmt.Stringer

	graphqlType()
}

// TypeWithName is implemented by named types.
type TypeWithName interface {
	Name() string
}

// TypeWithDescription is implemented by types that carry documentation.
type TypeWithDescription interface {
	Description() string
}

// WrappingType is implemented by List and NonNull.
type WrappingType interface {
	Type

	// UnwrappedType returns the type wrapped by this one.
	UnwrappedType() Type

	graphqlWrappingType()
}

// Scalar is a named leaf type. Only its name and description matter when declaring fields.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type Scalar interface {
	Type
	TypeWithName
	TypeWithDescription

	graphqlScalarType()
}

// Object is a named type with a set of fields. Model definitions become Objects.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Objects
type Object interface {
	Type
	TypeWithName
	TypeWithDescription

	// Fields returns the fields of the object keyed by name.
	Fields() FieldMap

	graphqlObjectType()
}

// List wraps the type of its elements.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.List
type List interface {
	WrappingType

	// ElementType is the type of the elements.
	ElementType() Type

	graphqlListType()
}

// NonNull wraps a nullable type and excludes null from its values.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Non-Null
type NonNull interface {
	WrappingType

	// InnerType is the nullable type being wrapped.
	InnerType() Type

	graphqlNonNullType()
}

// Deprecation marks a field as deprecated. A nil *Deprecation means the field is not deprecated.
type Deprecation struct {
	// Reason tells clients what to use instead.
	Reason string
}

// Defined returns true for a non-nil deprecation.
func (d *Deprecation) Defined() bool {
	return d != nil
}

//===----------------------------------------------------------------------------------------====//
// Marks
//===----------------------------------------------------------------------------------------====//

// The following structs are embedded by the implementations of each kind of Type.

// ThisIsScalarType marks a Scalar implementation.
type ThisIsScalarType struct{}

func (*ThisIsScalarType) graphqlType()       {}
func (*ThisIsScalarType) graphqlScalarType() {}

// ThisIsObjectType marks an Object implementation.
type ThisIsObjectType struct{}

func (*ThisIsObjectType) graphqlType()       {}
func (*ThisIsObjectType) graphqlObjectType() {}

// ThisIsListType marks a List implementation.
type ThisIsListType struct{}

func (*ThisIsListType) graphqlType()         {}
func (*ThisIsListType) graphqlWrappingType() {}
func (*ThisIsListType) graphqlListType()     {}

// ThisIsNonNullType marks a NonNull implementation.
type ThisIsNonNullType struct{}

func (*ThisIsNonNullType) graphqlType()         {}
func (*ThisIsNonNullType) graphqlWrappingType() {}
func (*ThisIsNonNullType) graphqlNonNullType()  {}
