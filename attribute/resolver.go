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
	"sort"

	"github.com/botobag/gqlmodel/graphql"
)

// TypeResolver looks up named types that are not built-in scalars. It is provided by the type
// registry that collects the definitions an attribute may refer to.
type TypeResolver interface {
	// Lookup returns the definition of the named type or nil if there is none.
	Lookup(name string) graphql.TypeDefinition
}

// TypeResolverFunc is an adapter to allow the use of ordinary functions as TypeResolver.
type TypeResolverFunc func(name string) graphql.TypeDefinition

// Lookup calls f(name).
func (f TypeResolverFunc) Lookup(name string) graphql.TypeDefinition {
	return f(name)
}

// TypeNameLister can be optionally implemented by a TypeResolver to provide suggestions when an
// unknown type is referenced.
type TypeNameLister interface {
	TypeNames() []string
}

// TypeMapResolver resolves names from a fixed map.
type TypeMapResolver map[string]graphql.TypeDefinition

// Lookup implements TypeResolver.
func (m TypeMapResolver) Lookup(name string) graphql.TypeDefinition {
	return m[name]
}

// TypeNames implements TypeNameLister.
func (m TypeMapResolver) TypeNames() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// scalarAliases maps the lower-case spellings accepted in type expressions to built-in scalars.
var scalarAliases = map[string]func() graphql.Scalar{
	"int":     graphql.Int,
	"integer": graphql.Int,
	"float":   graphql.Float,
	"double":  graphql.Float,
	"decimal": graphql.Float,
	"string":  graphql.String,
	"str":     graphql.String,
	"text":    graphql.String,
	"bool":    graphql.Boolean,
	"boolean": graphql.Boolean,
	"id":      graphql.ID,
}

// builtinScalar returns the built-in scalar for the given name or alias.
func builtinScalar(name string) graphql.Scalar {
	if scalar := graphql.BuiltinScalar(name); scalar != nil {
		return scalar
	}
	if alias, exists := scalarAliases[name]; exists {
		return alias()
	}
	return nil
}
