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

// Package attribute declares fields of a model type in a compact DSL and derives the arguments that
// register them on a GraphQL Object.
//
// An Attribute is created from a name and an optional type expression and can be refined with
// fluent mutators:
//
//	attribute.New("full_name", "String!")
//	attribute.New("admin?", "")                  // Boolean, inferred from the name
//	attribute.New("id", "")                      // ID, inferred from the name
//	attribute.New("tags", "[String!]").Required()
//	attribute.New("posts", "[Post]").Paginated(attribute.PaginationOptions{MaxPageSize: 20})
//
// Naming Conventions
//
// When no type is declared, the name decides the type: a trailing "?" makes a Boolean, "id" makes an
// ID, and anything else is a String. A trailing "!" on the name makes the field non-null unless
// Required or Optional says otherwise. Both markers are stripped from the emitted field name and
// from the default property.
//
// Type Expressions
//
// A type expression names a type, optionally wrapped in a list, with independent "!" markers for
// the list and for its elements:
//
//	Int      Int!      [Int]      [Int]!      [Int!]      [Int!]!
//
// Besides the GraphQL built-in scalars (and lower-case aliases such as "int" or "bool"), names are
// looked up with the TypeResolver given to the attribute.
//
// FieldArgs computes the name, the type and the options for registering the field. It is a pure
// function of the attribute's current state.
package attribute
