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
	"log/slog"
	"sort"

	"github.com/botobag/gqlmodel/attribute"
	"github.com/botobag/gqlmodel/graphql"
)

const opRegistry graphql.Op = "model.Registry"

// RegistryOption configures a Registry created by NewRegistry.
type RegistryOption func(*Registry)

// WithLogger sets the logger of a registry. Events are logged at debug level. slog.Default() is
// used if not specified.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(registry *Registry) {
		registry.logger = logger
	}
}

// WithPropertyResolverOptions sets the options of the property resolvers attached to fields of
// every definition created by the registry.
func WithPropertyResolverOptions(opts ...PropertyResolverOption) RegistryOption {
	return func(registry *Registry) {
		registry.propertyOptions = opts
	}
}

// Registry collects the definitions and the other named types of a schema. It resolves the type
// names used in attribute type expressions.
//
// A Registry is meant to be populated once during initialization and is not safe for concurrent
// modification.
type Registry struct {
	logger          *slog.Logger
	propertyOptions []PropertyResolverOption

	// definitions in declaration order
	definitions []*Definition

	// all named types including definitions
	types map[string]graphql.TypeDefinition
}

var (
	_ attribute.TypeResolver   = (*Registry)(nil)
	_ attribute.TypeNameLister = (*Registry)(nil)
)

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	registry := &Registry{
		types: map[string]graphql.TypeDefinition{},
	}

	for _, opt := range opts {
		opt(registry)
	}

	if registry.logger == nil {
		registry.logger = slog.Default()
	}

	return registry
}

// Define creates a definition for the object type with the given name. Attributes of the
// definition resolve type names through the registry.
func (registry *Registry) Define(name string) (*Definition, error) {
	def := NewDefinition(name).
		WithResolver(registry).
		WithPropertyResolverOptions(registry.propertyOptions...)
	if err := registry.add(name, def); err != nil {
		return nil, err
	}
	registry.definitions = append(registry.definitions, def)
	return def, nil
}

// MustDefine is a panic-on-fail version of Define.
func (registry *Registry) MustDefine(name string) *Definition {
	def, err := registry.Define(name)
	if err != nil {
		panic(err)
	}
	return def
}

// Register adds a named type that is not declared through a definition, such as a custom scalar or
// an object type built with graphql.ObjectConfig. A created Type can be registered with graphql.T.
func (registry *Registry) Register(typeDef graphql.TypeDefinition) error {
	name, err := namedTypeDefinitionName(typeDef)
	if err != nil {
		return err
	}
	return registry.add(name, typeDef)
}

func (registry *Registry) add(name string, typeDef graphql.TypeDefinition) error {
	if len(name) == 0 {
		return graphql.NewError("Must provide name for type.", opRegistry, graphql.ErrKindValidation)
	}

	if _, exists := registry.types[name]; exists || graphql.BuiltinScalar(name) != nil {
		return graphql.NewError(fmt.Sprintf(`Type "%s" is already defined.`, name),
			opRegistry, graphql.ErrKindValidation)
	}

	registry.types[name] = typeDef
	registry.logger.Debug("type registered", "type", name)
	return nil
}

// namedTypeDefinitionName returns the name of the type defined by typeDef.
func namedTypeDefinitionName(typeDef graphql.TypeDefinition) (string, error) {
	switch typeDef := typeDef.(type) {
	case graphql.ObjectTypeDefinition:
		return typeDef.TypeName(), nil
	case graphql.ScalarTypeDefinition:
		return typeDef.TypeData().Name, nil
	}

	if t := graphql.TypeOf(typeDef); t != nil && graphql.IsNamedType(t) {
		if named, ok := t.(graphql.TypeWithName); ok {
			return named.Name(), nil
		}
	}

	return "", graphql.NewError(fmt.Sprintf("Cannot register %T: only named types are accepted.", typeDef),
		opRegistry, graphql.ErrKindValidation)
}

// Lookup implements attribute.TypeResolver.
func (registry *Registry) Lookup(name string) graphql.TypeDefinition {
	return registry.types[name]
}

// TypeNames implements attribute.TypeNameLister. Names are in lexical order.
func (registry *Registry) TypeNames() []string {
	names := make([]string, 0, len(registry.types))
	for name := range registry.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns all definitions in declaration order.
func (registry *Registry) Definitions() []*Definition {
	definitions := make([]*Definition, len(registry.definitions))
	copy(definitions, registry.definitions)
	return definitions
}

// Validate checks every attribute of every definition and reports all failures.
func (registry *Registry) Validate() graphql.Errors {
	var errs graphql.Errors
	for _, def := range registry.definitions {
		errs.AppendErrors(def.validate())
	}

	if errs.HaveOccurred() {
		registry.logger.Debug("definitions are invalid", "errors", len(errs.Errors))
	}

	return errs
}

// NewSchema creates the types of all registered definitions and types and collects them in a
// schema. The definition named "Query", if any, becomes the root query type.
func (registry *Registry) NewSchema() (*graphql.Schema, error) {
	config := &graphql.SchemaConfig{}

	for _, name := range registry.TypeNames() {
		t, err := graphql.NewType(registry.types[name])
		if err != nil {
			return nil, err
		}

		if name == "Query" {
			query, ok := t.(graphql.Object)
			if !ok {
				return nil, graphql.NewError(fmt.Sprintf("Query root type must be Object type but got: %s.", t),
					opRegistry, graphql.ErrKindValidation)
			}
			config.Query = query
		}

		config.Types = append(config.Types, t)
	}

	schema, err := graphql.NewSchema(config)
	if err != nil {
		return nil, err
	}

	registry.logger.Debug("schema created", "types", len(schema.TypeMap().Names()))
	return schema, nil
}
