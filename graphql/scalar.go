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

// ScalarConfig is a ScalarTypeDefinition given as plain data.
//
//	dateTime := graphql.MustNewScalar(&graphql.ScalarConfig{
//		Name:        "DateTime",
//		Description: "An ISO-8601 encoded UTC date string.",
//	})
type ScalarConfig struct {
	ThisIsScalarTypeDefinition
	Name        string
	Description string
}

var _ ScalarTypeDefinition = (*ScalarConfig)(nil)

// TypeData implements ScalarTypeDefinition.
func (config *ScalarConfig) TypeData() ScalarTypeData {
	return ScalarTypeData{
		Name:        config.Name,
		Description: config.Description,
	}
}

type scalarCreator struct {
	typeDef ScalarTypeDefinition
}

func (creator *scalarCreator) definition() TypeDefinition {
	return creator.typeDef
}

func (creator *scalarCreator) load() (Type, error) {
	data := creator.typeDef.TypeData()
	if len(data.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.")
	}
	return &scalar{data: data}, nil
}

// Scalars reference no other type.
func (*scalarCreator) finalize(Type, typeResolver) error {
	return nil
}

type scalar struct {
	ThisIsScalarType
	data ScalarTypeData
}

var _ Scalar = (*scalar)(nil)

// NewScalar builds the Scalar described by typeDef.
func NewScalar(typeDef ScalarTypeDefinition) (Scalar, error) {
	t, err := newTypeImpl(&scalarCreator{typeDef: typeDef})
	if err != nil {
		return nil, err
	}
	return t.(Scalar), nil
}

// MustNewScalar is like NewScalar but panics on error.
func MustNewScalar(typeDef ScalarTypeDefinition) Scalar {
	s, err := NewScalar(typeDef)
	if err != nil {
		panic(err)
	}
	return s
}

// Name implements TypeWithName.
func (s *scalar) Name() string {
	return s.data.Name
}

// Description implements TypeWithDescription.
func (s *scalar) Description() string {
	return s.data.Description
}

func (s *scalar) String() string {
	return s.data.Name
}

//===----------------------------------------------------------------------------------------====//
// Built-in scalars
//===----------------------------------------------------------------------------------------====//

// builtinScalars holds the scalars every GraphQL schema has, keyed by name. The descriptions are
// the ones of the reference implementation.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
var builtinScalars = map[string]Scalar{}

func newBuiltinScalar(name string, description string) Scalar {
	s := MustNewScalar(&ScalarConfig{
		Name:        name,
		Description: description,
	})
	builtinScalars[name] = s
	return s
}

var (
	intType = newBuiltinScalar("Int",
		"The `Int` scalar type represents non-fractional signed whole numeric values. Int can "+
			"represent values between -(2^31) and 2^31 - 1.")

	floatType = newBuiltinScalar("Float",
		"The `Float` scalar type represents signed double-precision fractional values as specified "+
			"by [IEEE 754](http://en.wikipedia.org/wiki/IEEE_floating_point).")

	stringType = newBuiltinScalar("String",
		"The `String` scalar type represents textual data, represented as UTF-8 character sequences. "+
			"The String type is most often used by GraphQL to represent free-form human-readable text.")

	booleanType = newBuiltinScalar("Boolean",
		"The `Boolean` scalar type represents `true` or `false`.")

	idType = newBuiltinScalar("ID",
		"The `ID` scalar type represents a unique identifier, often used to refetch an object or as "+
			"key for a cache. The ID type appears in a JSON response as a String; however, it is not "+
			"intended to be human-readable. When expected as an input type, any string (such as "+
			"`\"4\"`) or integer (such as `4`) input value will be accepted as an ID.")
)

// Int is the built-in Int scalar.
func Int() Scalar { return intType }

// Float is the built-in Float scalar.
func Float() Scalar { return floatType }

// String is the built-in String scalar.
func String() Scalar { return stringType }

// Boolean is the built-in Boolean scalar.
func Boolean() Scalar { return booleanType }

// ID is the built-in ID scalar.
func ID() Scalar { return idType }

// BuiltinScalar returns the built-in scalar with the given name, or nil if there is none. Names are
// case-sensitive.
func BuiltinScalar(name string) Scalar {
	return builtinScalars[name]
}

// IsBuiltinScalar returns true if t is one of the built-in scalar instances. A custom scalar that
// merely shares a built-in name is not.
func IsBuiltinScalar(t Type) bool {
	s, ok := t.(Scalar)
	return ok && builtinScalars[s.Name()] == s
}
