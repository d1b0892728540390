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

// TypeDefinition describes how to build a Type. A definition is an object implementing one of
// ScalarTypeDefinition, ObjectTypeDefinition, ListTypeDefinition or NonNullTypeDefinition, read
// through interfaces when NewType creates the type. Types referenced by a definition (such as the
// type of a field) are given as definitions too, so definitions can refer to each other, and to
// themselves, without any particular order of initialization.
//
// A definition builds at most one Type: NewType returns the same instance for the same definition.
// Definitions must therefore be comparable values, usually pointers. Once a Type is built, later
// changes to its definition are not seen.
type TypeDefinition interface {
	ThisIsGraphQLTypeDefinition()
}

// ThisIsTypeDefinition is embedded (through the more specific marks below) by every
// TypeDefinition implementation.
type ThisIsTypeDefinition struct{}

// ThisIsGraphQLTypeDefinition implements TypeDefinition.
func (ThisIsTypeDefinition) ThisIsGraphQLTypeDefinition() {}

// NewType builds the Type described by typeDef, or returns the one built before.
func NewType(typeDef TypeDefinition) (Type, error) {
	if wrapper, ok := typeDef.(typeWrapper); ok {
		return wrapper.t, nil
	}
	return newTypeImpl(newCreatorFor(typeDef))
}

// MustNewType is like NewType but panics on error.
func MustNewType(typeDef TypeDefinition) Type {
	t, err := NewType(typeDef)
	if err != nil {
		panic(err)
	}
	return t
}

// typeWrapper is the TypeDefinition returned by T.
type typeWrapper struct {
	ThisIsTypeDefinition
	t Type
}

// T turns a Type that is already built into a TypeDefinition, so it can be referenced from other
// definitions:
//
//	graphql.Fields{
//		"count": {Type: graphql.T(graphql.Int())},
//	}
func T(t Type) TypeDefinition {
	return typeWrapper{t: t}
}

// TypeOf returns the Type given to T. It returns nil for any other TypeDefinition.
func TypeOf(typeDef TypeDefinition) Type {
	if wrapper, ok := typeDef.(typeWrapper); ok {
		return wrapper.t
	}
	return nil
}

//===-----------------------------------------------------------------------------------------====//
// Scalar
//===-----------------------------------------------------------------------------------------====//

// ScalarTypeData is read from a ScalarTypeDefinition.
type ScalarTypeData struct {
	Name        string
	Description string
}

// ScalarTypeDefinition describes a Scalar.
type ScalarTypeDefinition interface {
	TypeDefinition

	TypeData() ScalarTypeData

	ThisIsGraphQLScalarTypeDefinition()
}

// ThisIsScalarTypeDefinition marks a ScalarTypeDefinition implementation.
type ThisIsScalarTypeDefinition struct {
	ThisIsTypeDefinition
}

// ThisIsGraphQLScalarTypeDefinition implements ScalarTypeDefinition.
func (ThisIsScalarTypeDefinition) ThisIsGraphQLScalarTypeDefinition() {}

//===-----------------------------------------------------------------------------------------====//
// Object
//===-----------------------------------------------------------------------------------------====//

// ObjectTypeData is read from an ObjectTypeDefinition.
type ObjectTypeData struct {
	Name        string
	Description string
	Fields      Fields
}

// ObjectTypeDefinition describes an Object.
type ObjectTypeDefinition interface {
	TypeDefinition

	// TypeName returns the name of the Object. It must be cheap and must not call TypeData, because
	// it is used to name types wrapping the Object (e.g., connections) while the Object itself is
	// being built.
	TypeName() string

	// TypeData returns the data of the Object. Definitions that derive fields from declarations
	// report declaration errors here.
	TypeData() (ObjectTypeData, error)

	ThisIsGraphQLObjectTypeDefinition()
}

// ThisIsObjectTypeDefinition marks an ObjectTypeDefinition implementation.
type ThisIsObjectTypeDefinition struct {
	ThisIsTypeDefinition
}

// ThisIsGraphQLObjectTypeDefinition implements ObjectTypeDefinition.
func (ThisIsObjectTypeDefinition) ThisIsGraphQLObjectTypeDefinition() {}

//===-----------------------------------------------------------------------------------------====//
// List and NonNull
//===-----------------------------------------------------------------------------------------====//

// ListTypeDefinition describes a List.
type ListTypeDefinition interface {
	TypeDefinition

	// ElementType describes the type of the elements.
	ElementType() TypeDefinition

	ThisIsGraphQLListTypeDefinition()
}

// ThisIsListTypeDefinition marks a ListTypeDefinition implementation.
type ThisIsListTypeDefinition struct {
	ThisIsTypeDefinition
}

// ThisIsGraphQLListTypeDefinition implements ListTypeDefinition.
func (ThisIsListTypeDefinition) ThisIsGraphQLListTypeDefinition() {}

// NonNullTypeDefinition describes a NonNull.
type NonNullTypeDefinition interface {
	TypeDefinition

	// ElementType describes the nullable type being wrapped.
	ElementType() TypeDefinition

	ThisIsGraphQLNonNullTypeDefinition()
}

// ThisIsNonNullTypeDefinition marks a NonNullTypeDefinition implementation.
type ThisIsNonNullTypeDefinition struct {
	ThisIsTypeDefinition
}

// ThisIsGraphQLNonNullTypeDefinition implements NonNullTypeDefinition.
func (ThisIsNonNullTypeDefinition) ThisIsGraphQLNonNullTypeDefinition() {}
