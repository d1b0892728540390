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

// Package graphql is the type system that model attributes are declared against. It knows about
// scalars, objects with fields and arguments, and the List and NonNull wrappers, which is all a
// field declaration needs.
//
// Definitions and Types
//
// Types are not constructed from structs directly. A TypeDefinition describes a type through
// methods, and NewType calls them to build the Type. Since the methods run only when the type is
// built, a definition can refer to definitions declared after it, to ones that refer back to it,
// and to itself. That is how a model gets a field of its own type.
//
// A TypeDefinition value builds at most one Type: NewType remembers the Type per definition and
// returns it on later calls, also when the definition is reached through a field of another type.
// Changes made to a definition after its Type was built are therefore not seen. A definition
// whose build failed is not remembered and may be fixed and built again.
package graphql
