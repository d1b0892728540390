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

// ObjectConfig is an ObjectTypeDefinition given as plain data. Field types may refer to
// definitions that are not built yet, including the ObjectConfig itself.
type ObjectConfig struct {
	ThisIsObjectTypeDefinition
	Name        string
	Description string
	Fields      Fields
}

var _ ObjectTypeDefinition = (*ObjectConfig)(nil)

// TypeName implements ObjectTypeDefinition.
func (config *ObjectConfig) TypeName() string {
	return config.Name
}

// TypeData implements ObjectTypeDefinition. It never fails.
func (config *ObjectConfig) TypeData() (ObjectTypeData, error) {
	return ObjectTypeData{
		Name:        config.Name,
		Description: config.Description,
		Fields:      config.Fields,
	}, nil
}

type objectCreator struct {
	typeDef ObjectTypeDefinition
}

func (creator *objectCreator) definition() TypeDefinition {
	return creator.typeDef
}

func (creator *objectCreator) load() (Type, error) {
	data, err := creator.typeDef.TypeData()
	if err != nil {
		return nil, err
	}
	if len(data.Name) == 0 {
		return nil, NewError("Must provide name for Object.")
	}
	return &object{data: data}, nil
}

func (creator *objectCreator) finalize(t Type, resolve typeResolver) error {
	o := t.(*object)
	fields, err := buildFieldMap(o.data.Name, o.data.Fields, resolve)
	if err != nil {
		return err
	}
	o.fields = fields
	return nil
}

type object struct {
	ThisIsObjectType
	data   ObjectTypeData
	fields FieldMap
}

var _ Object = (*object)(nil)

// NewObject builds the Object described by typeDef along with every type its fields reference.
func NewObject(typeDef ObjectTypeDefinition) (Object, error) {
	t, err := newTypeImpl(&objectCreator{typeDef: typeDef})
	if err != nil {
		return nil, err
	}
	return t.(Object), nil
}

// MustNewObject is like NewObject but panics on error.
func MustNewObject(typeDef ObjectTypeDefinition) Object {
	o, err := NewObject(typeDef)
	if err != nil {
		panic(err)
	}
	return o
}

func (o *object) Name() string {
	return o.data.Name
}

func (o *object) Description() string {
	return o.data.Description
}

func (o *object) Fields() FieldMap {
	return o.fields
}

func (o *object) String() string {
	return o.data.Name
}
