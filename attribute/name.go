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
	"github.com/botobag/gqlmodel/graphql"
)

// ScalarHint is the scalar type inferred from an attribute name when no type is declared.
type ScalarHint uint8

// Enumeration of ScalarHint
const (
	ScalarHintString  ScalarHint = iota // default
	ScalarHintBoolean                   // name ends with "?"
	ScalarHintID                        // name is "id"
)

// Scalar returns the GraphQL scalar represented by the hint.
func (hint ScalarHint) Scalar() graphql.Scalar {
	switch hint {
	case ScalarHintBoolean:
		return graphql.Boolean()
	case ScalarHintID:
		return graphql.ID()
	}
	return graphql.String()
}

// NameClass is the result of ClassifyName.
type NameClass struct {
	// Name with the trailing markers stripped
	Name string

	// Required is true if the name carries a "!" marker.
	Required bool

	// Scalar is the type inferred from the name.
	Scalar ScalarHint
}

// ClassifyName splits an attribute name into the field name and the conventions encoded in it.
// Trailing "!" and "?" markers are consumed in any order: "!" marks the field as required and "?"
// marks it as Boolean. After stripping, the name "id" is classified as an ID.
func ClassifyName(name string) NameClass {
	var class NameClass

	end := len(name)
	for end > 0 {
		switch name[end-1] {
		case '!':
			class.Required = true
		case '?':
			class.Scalar = ScalarHintBoolean
		default:
			class.Name = name[:end]
			if class.Scalar != ScalarHintBoolean && class.Name == "id" {
				class.Scalar = ScalarHintID
			}
			return class
		}
		end--
	}

	// The name only consists of markers.
	return class
}
