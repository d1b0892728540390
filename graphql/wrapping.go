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

// listOf is the ListTypeDefinition returned by ListOf.
type listOf struct {
	ThisIsListTypeDefinition
	element TypeDefinition
}

// ElementType implements ListTypeDefinition.
func (typeDef listOf) ElementType() TypeDefinition {
	return typeDef.element
}

// ListOf returns the definition of a list of the given element type. Lists of the same element
// definition are the same definition.
func ListOf(element TypeDefinition) ListTypeDefinition {
	return listOf{element: element}
}

// ListOfType is ListOf for an element type that is already built.
func ListOfType(element Type) ListTypeDefinition {
	return ListOf(T(element))
}

// nonNullOf is the NonNullTypeDefinition returned by NonNullOf.
type nonNullOf struct {
	ThisIsNonNullTypeDefinition
	element TypeDefinition
}

// ElementType implements NonNullTypeDefinition.
func (typeDef nonNullOf) ElementType() TypeDefinition {
	return typeDef.element
}

// NonNullOf returns the definition of the non-null variant of the given type.
func NonNullOf(element TypeDefinition) NonNullTypeDefinition {
	return nonNullOf{element: element}
}

// NonNullOfType is NonNullOf for a type that is already built.
func NonNullOfType(element Type) NonNullTypeDefinition {
	return NonNullOf(T(element))
}

//===----------------------------------------------------------------------------------------====//
// Creation
//===----------------------------------------------------------------------------------------====//

// wrappingCreator builds a List, or a NonNull if nonNull is set.
type wrappingCreator struct {
	typeDef TypeDefinition
	element TypeDefinition
	nonNull bool
}

func (creator *wrappingCreator) definition() TypeDefinition {
	return creator.typeDef
}

func (creator *wrappingCreator) load() (Type, error) {
	if creator.nonNull {
		return &nonNull{}, nil
	}
	return &list{}, nil
}

func (creator *wrappingCreator) finalize(t Type, resolve typeResolver) error {
	element, err := resolve(creator.element)
	if err != nil {
		return err
	}

	switch t := t.(type) {
	case *list:
		if element == nil {
			return NewError("Must provide an non-nil element type for List.")
		}
		t.elementType = element

	case *nonNull:
		if element == nil {
			return NewError("Must provide an non-nil element type for NonNull.")
		} else if IsNonNullType(element) {
			return NewError(fmt.Sprintf("Expected a nullable type for NonNull but got an %s.", element))
		}
		t.innerType = element
	}

	return nil
}

// NewList builds the List described by typeDef.
func NewList(typeDef ListTypeDefinition) (List, error) {
	t, err := newTypeImpl(newCreatorFor(typeDef))
	if err != nil {
		return nil, err
	}
	return t.(List), nil
}

// MustNewList is like NewList but panics on error.
func MustNewList(typeDef ListTypeDefinition) List {
	l, err := NewList(typeDef)
	if err != nil {
		panic(err)
	}
	return l
}

// NewListOf builds a List of the given element definition.
func NewListOf(element TypeDefinition) (List, error) {
	return NewList(ListOf(element))
}

// MustNewListOf is like NewListOf but panics on error.
func MustNewListOf(element TypeDefinition) List {
	return MustNewList(ListOf(element))
}

// NewListOfType builds a List of the given element type.
func NewListOfType(element Type) (List, error) {
	return NewList(ListOfType(element))
}

// MustNewListOfType is like NewListOfType but panics on error.
func MustNewListOfType(element Type) List {
	return MustNewList(ListOfType(element))
}

// NewNonNull builds the NonNull described by typeDef.
func NewNonNull(typeDef NonNullTypeDefinition) (NonNull, error) {
	t, err := newTypeImpl(newCreatorFor(typeDef))
	if err != nil {
		return nil, err
	}
	return t.(NonNull), nil
}

// MustNewNonNull is like NewNonNull but panics on error.
func MustNewNonNull(typeDef NonNullTypeDefinition) NonNull {
	t, err := NewNonNull(typeDef)
	if err != nil {
		panic(err)
	}
	return t
}

// NewNonNullOf builds the non-null variant of the given definition.
func NewNonNullOf(element TypeDefinition) (NonNull, error) {
	return NewNonNull(NonNullOf(element))
}

// MustNewNonNullOf is like NewNonNullOf but panics on error.
func MustNewNonNullOf(element TypeDefinition) NonNull {
	return MustNewNonNull(NonNullOf(element))
}

// NewNonNullOfType builds the non-null variant of the given type.
func NewNonNullOfType(element Type) (NonNull, error) {
	return NewNonNull(NonNullOfType(element))
}

// MustNewNonNullOfType is like NewNonNullOfType but panics on error.
func MustNewNonNullOfType(element Type) NonNull {
	return MustNewNonNull(NonNullOfType(element))
}

//===----------------------------------------------------------------------------------------====//
// Types
//===----------------------------------------------------------------------------------------====//

type list struct {
	ThisIsListType
	elementType Type
}

var _ List = (*list)(nil)

// String is computed on each call; the element may still be finalizing when the list is built.
func (l *list) String() string {
	return "[" + l.elementType.String() + "]"
}

// UnwrappedType implements WrappingType.
func (l *list) UnwrappedType() Type {
	return l.elementType
}

// ElementType implements List.
func (l *list) ElementType() Type {
	return l.elementType
}

type nonNull struct {
	ThisIsNonNullType
	innerType Type
}

var _ NonNull = (*nonNull)(nil)

func (t *nonNull) String() string {
	return t.innerType.String() + "!"
}

// UnwrappedType implements WrappingType.
func (t *nonNull) UnwrappedType() Type {
	return t.innerType
}

// InnerType implements NonNull.
func (t *nonNull) InnerType() Type {
	return t.innerType
}
