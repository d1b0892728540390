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

// NamedTypeOf strips all List and NonNull wrappers off t. It returns nil for nil.
//
// Reference: https://facebook.github.io/graphql/draft/#sec-Wrapping-Types
func NamedTypeOf(t Type) Type {
	for {
		wrapping, ok := t.(WrappingType)
		if !ok || wrapping == nil {
			return t
		}
		t = wrapping.UnwrappedType()
	}
}

// NullableTypeOf strips a NonNull wrapper off t if there is one.
func NullableTypeOf(t Type) Type {
	if nonNull, ok := t.(NonNull); ok && nonNull != nil {
		return nonNull.InnerType()
	}
	return t
}

// IsOutputType returns true if values of t can be yielded by a field. Every Scalar and Object is,
// wrapped or not.
//
// Reference: https://facebook.github.io/graphql/draft/#IsOutputType()
func IsOutputType(t Type) bool {
	named := NamedTypeOf(t)
	return IsScalarType(named) || IsObjectType(named)
}

// IsNullableType returns true if t is not a NonNull.
func IsNullableType(t Type) bool {
	return !IsNonNullType(t)
}

// IsNamedType returns true if t does not wrap another type.
func IsNamedType(t Type) bool {
	return !IsWrappingType(t)
}

// IsWrappingType returns true for List and NonNull.
func IsWrappingType(t Type) bool {
	_, ok := t.(WrappingType)
	return ok
}

// IsScalarType returns true if t is a Scalar.
func IsScalarType(t Type) bool {
	_, ok := t.(Scalar)
	return ok
}

// IsObjectType returns true if t is an Object.
func IsObjectType(t Type) bool {
	_, ok := t.(Object)
	return ok
}

// IsListType returns true if t is a List.
func IsListType(t Type) bool {
	_, ok := t.(List)
	return ok
}

// IsNonNullType returns true if t is a NonNull.
func IsNonNullType(t Type) bool {
	_, ok := t.(NonNull)
	return ok
}
