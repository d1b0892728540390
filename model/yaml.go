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
	"os"

	"gopkg.in/yaml.v3"

	"github.com/botobag/gqlmodel/attribute"
	"github.com/botobag/gqlmodel/graphql"
)

const opLoadYAML graphql.Op = "model.LoadYAML"

// Declarations is the document read by LoadYAML.
//
//	types:
//	  - name: User
//	    description: A registered user
//	    attributes:
//	      - name: id!
//	      - name: full_name
//	        type: String!
//	      - name: admin?
//	      - name: posts
//	        type: "[Post!]"
//	        paginated:
//	          max_page_size: 50
//	  - name: Post
//	    attributes:
//	      - name: title
//	        type: String!
type Declarations struct {
	Types []TypeDeclaration `yaml:"types"`
}

// TypeDeclaration declares an object type.
type TypeDeclaration struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description,omitempty"`
	Attributes  []AttributeDeclaration `yaml:"attributes"`
}

// AttributeDeclaration declares an attribute. Fields left out are decided by the naming
// conventions of attributes.
type AttributeDeclaration struct {
	Name        string                 `yaml:"name"`
	Type        string                 `yaml:"type,omitempty"`
	Property    string                 `yaml:"property,omitempty"`
	Description *string                `yaml:"description,omitempty"`
	Required    *bool                  `yaml:"required,omitempty"`
	NameFormat  attribute.NameFormat   `yaml:"name_format,omitempty"`
	Paginated   *PaginationDeclaration `yaml:"paginated,omitempty"`
	Options     map[string]interface{} `yaml:"options,omitempty"`
}

// PaginationDeclaration is either a boolean or a mapping of pagination options:
//
//	paginated: true
//	paginated:
//	  max_page_size: 50
//	  default_page_size: 10
type PaginationDeclaration struct {
	Enabled         bool                   `yaml:"-"`
	MaxPageSize     int                    `yaml:"max_page_size,omitempty"`
	DefaultPageSize int                    `yaml:"default_page_size,omitempty"`
	Extra           map[string]interface{} `yaml:",inline"`
}

// UnmarshalYAML implements yaml.Unmarshaler for PaginationDeclaration.
func (p *PaginationDeclaration) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return err
		}
		*p = PaginationDeclaration{
			Enabled: enabled,
		}
		return nil

	case yaml.MappingNode:
		// Decode through an alias to avoid recursing into this method.
		type plain PaginationDeclaration
		var decl plain
		if err := node.Decode(&decl); err != nil {
			return err
		}
		*p = PaginationDeclaration(decl)
		p.Enabled = true
		return nil
	}

	return fmt.Errorf("line %d: expected boolean or mapping for paginated", node.Line)
}

// LoadYAMLFile reads declarations from the file at path into registry. See LoadYAML.
func LoadYAMLFile(path string, registry *Registry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return graphql.NewError(fmt.Sprintf("cannot read declarations from %s", path), err, opLoadYAML)
	}
	return LoadYAML(data, registry)
}

// LoadYAML reads declarations (see Declarations) into registry. Types are defined before their
// attributes are declared, so attributes may refer to any type in the document regardless of
// order. Type expressions are not checked here; use Registry.Validate or Registry.NewSchema.
func LoadYAML(data []byte, registry *Registry) error {
	var decls Declarations
	if err := yaml.Unmarshal(data, &decls); err != nil {
		return graphql.NewError("cannot parse declarations", err, opLoadYAML)
	}

	definitions := make([]*Definition, len(decls.Types))
	for i, typeDecl := range decls.Types {
		def, err := registry.Define(typeDecl.Name)
		if err != nil {
			return graphql.NewError("cannot load declarations", err, opLoadYAML)
		}
		definitions[i] = def.Description(typeDecl.Description)
	}

	for i, typeDecl := range decls.Types {
		def := definitions[i]
		for _, attrDecl := range typeDecl.Attributes {
			declareAttribute(def, attrDecl)
		}
	}

	registry.logger.Debug("declarations loaded", "types", len(decls.Types))
	return nil
}

func declareAttribute(def *Definition, decl AttributeDeclaration) {
	// Formats other than NameFormatOriginal camelize, as attribute.FieldArgs does.
	attr := def.Attribute(decl.Name, decl.Type).Options(attribute.Options{
		Required:    decl.Required,
		Description: decl.Description,
		NameFormat:  decl.NameFormat,
		Extra:       decl.Options,
	})

	if len(decl.Property) > 0 {
		attr.Property(decl.Property)
	}

	if p := decl.Paginated; p != nil && p.Enabled {
		attr.Paginated(attribute.PaginationOptions{
			MaxPageSize:     p.MaxPageSize,
			DefaultPageSize: p.DefaultPageSize,
			Extra:           p.Extra,
		})
	}
}
