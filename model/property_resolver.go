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
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/botobag/gqlmodel/graphql"
)

// PropertyResolverOption configures a resolver created by NewPropertyResolver.
type PropertyResolverOption func(*propertyResolver)

// propertyResolver reads a property from the source value of a field. The property is looked up
// as a struct field, a method or a map key.
type propertyResolver struct {
	property            string
	goNames             []string
	UnresolvedAsError   bool   // default: true
	ScanAnonymousFields bool   // default: true
	ScanMethods         bool   // default: true
	FieldTagName        string // default: "graphql"
}

// NewPropertyResolver returns a field resolver that reads the given property from source values.
//
// For a struct source, the resolver returns, in order of preference:
//
//  1. the field whose tag (see FieldTagName) names the property;
//  2. the field named with the camelized property (e.g., "FullName" for "full_name", "UserID" for
//     "user_id");
//  3. the result of calling the method with that name.
//
// For a map source with string keys, the value under the property is returned. Values which are
// functions are called to obtain the result. A function or method may take no argument or a
// context.Context and return a value optionally followed by an error.
func NewPropertyResolver(property string, opts ...PropertyResolverOption) graphql.FieldResolver {
	resolver := &propertyResolver{
		property:            property,
		goNames:             goNamesOf(property),
		UnresolvedAsError:   true,
		ScanAnonymousFields: true,
		ScanMethods:         true,
		FieldTagName:        "graphql",
	}

	for _, opt := range opts {
		opt(resolver)
	}

	return resolver
}

// UnresolvedAsError specifies whether an error should be returned when the property cannot be
// found. If disabled, nil is resolved instead. The feature is enabled by default.
func UnresolvedAsError(enabled bool) PropertyResolverOption {
	return func(resolver *propertyResolver) {
		resolver.UnresolvedAsError = enabled
	}
}

// ScanAnonymousFields specifies whether embedded structs are searched for the property. The feature
// is enabled by default.
func ScanAnonymousFields(enabled bool) PropertyResolverOption {
	return func(resolver *propertyResolver) {
		resolver.ScanAnonymousFields = enabled
	}
}

// ScanMethods specifies whether methods of the source value are searched for the property. The
// feature is enabled by default.
func ScanMethods(enabled bool) PropertyResolverOption {
	return func(resolver *propertyResolver) {
		resolver.ScanMethods = enabled
	}
}

// FieldTagName specifies the struct tag that names properties. For example,
//
//	type User struct {
//		Mail string `graphql:"email"`
//	}
//
// resolves property "email" to the value of Mail. Passing an empty name disables tag matching.
// It is "graphql" by default.
func FieldTagName(name string) PropertyResolverOption {
	return func(resolver *propertyResolver) {
		resolver.FieldTagName = name
	}
}

// goNamesOf returns the exported Go identifiers that a property may be declared as.
func goNamesOf(property string) []string {
	name := inflect.Camelize(property)
	names := []string{name}
	// Follow the Go convention for the common "id" initialism.
	if strings.HasSuffix(name, "Id") {
		names = append(names, strings.TrimSuffix(name, "Id")+"ID")
	}
	if name != property && len(property) > 0 && property[0] >= 'A' && property[0] <= 'Z' {
		names = append(names, property)
	}
	return names
}

// Resolve implements graphql.FieldResolver.
func (resolver *propertyResolver) Resolve(ctx context.Context, source interface{}) (interface{}, error) {
	value := reflect.ValueOf(source)
	if value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil, resolver.unresolvedError(source)
		}
		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Struct:
		return resolver.resolveFromStruct(ctx, source, value)
	case reflect.Map:
		return resolver.resolveFromMap(ctx, source, value)
	}

	return nil, resolver.unresolvedError(source)
}

func (resolver *propertyResolver) unresolvedError(source interface{}) error {
	if !resolver.UnresolvedAsError {
		return nil
	}
	return graphql.NewError(fmt.Sprintf(`cannot resolve property "%s" from %T`, resolver.property, source))
}

// resolveFromValue returns the value, or the result of calling it if it is a function.
func (resolver *propertyResolver) resolveFromValue(ctx context.Context, name string, value reflect.Value) (interface{}, error) {
	if value.Kind() != reflect.Func {
		return value.Interface(), nil
	}
	if value.IsNil() {
		return nil, nil
	}
	return resolver.call(ctx, name, value)
}

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// call invokes f which may take no argument or a context.Context and returns a value optionally
// followed by an error.
func (resolver *propertyResolver) call(ctx context.Context, name string, f reflect.Value) (interface{}, error) {
	ft := f.Type()

	var in []reflect.Value
	switch {
	case ft.NumIn() == 0:
	case ft.NumIn() == 1 && ft.In(0) == contextType:
		in = []reflect.Value{reflect.ValueOf(&ctx).Elem()}
	default:
		return nil, resolver.badSignatureError(name, ft)
	}

	switch {
	case ft.NumOut() == 1:
		return f.Call(in)[0].Interface(), nil
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
		out := f.Call(in)
		if err, _ := out[1].Interface().(error); err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	}

	return nil, resolver.badSignatureError(name, ft)
}

func (resolver *propertyResolver) badSignatureError(name string, ft reflect.Type) error {
	return graphql.NewError(fmt.Sprintf(
		`found %s for property "%s" but cannot call %s. Must be a function that takes no argument `+
			`or a context.Context and returns a value optionally followed by an error.`,
		name, resolver.property, ft))
}

func (resolver *propertyResolver) resolveFromStruct(
	ctx context.Context,
	source interface{},
	sourceValue reflect.Value) (interface{}, error) {

	queue := []reflect.Value{sourceValue}
	tagName := resolver.FieldTagName

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		currentType := current.Type()
		for i := 0; i < current.NumField(); i++ {
			field := currentType.Field(i)

			if resolver.ScanAnonymousFields && field.Anonymous && field.Type.Kind() == reflect.Struct {
				queue = append(queue, current.Field(i))
				continue
			}

			if len(tagName) > 0 && len(field.PkgPath) == 0 {
				tagged := strings.Split(field.Tag.Get(tagName), ",")[0]
				if tagged == resolver.property {
					return resolver.resolveFromValue(
						ctx, currentType.Name()+"."+field.Name, current.Field(i))
				}
			}
		}

		for _, goName := range resolver.goNames {
			// Promoted fields are reached through the queue.
			field, ok := currentType.FieldByName(goName)
			if !ok || len(field.PkgPath) > 0 || len(field.Index) > 1 {
				continue
			}
			return resolver.resolveFromValue(
				ctx, currentType.Name()+"."+goName, current.FieldByIndex(field.Index))
		}
	}

	// Methods declared on pointer receivers are only reachable from an addressable value.
	if resolver.ScanMethods {
		value := reflect.ValueOf(source)
		if value.Kind() != reflect.Ptr && sourceValue.CanAddr() {
			value = sourceValue.Addr()
		}

		for _, goName := range resolver.goNames {
			method := value.MethodByName(goName)
			if method.IsValid() {
				return resolver.call(ctx, sourceValue.Type().Name()+"."+goName, method)
			}
		}
	}

	return nil, resolver.unresolvedError(source)
}

func (resolver *propertyResolver) resolveFromMap(
	ctx context.Context,
	source interface{},
	sourceValue reflect.Value) (interface{}, error) {

	if sourceValue.Type().Key().Kind() != reflect.String {
		return nil, resolver.unresolvedError(source)
	}

	key := reflect.ValueOf(resolver.property).Convert(sourceValue.Type().Key())
	value := sourceValue.MapIndex(key)
	if !value.IsValid() {
		return nil, resolver.unresolvedError(source)
	}

	// Unwrap values stored in map[string]interface{}.
	if value.Kind() == reflect.Interface {
		if value.IsNil() {
			return nil, nil
		}
		value = value.Elem()
	}

	return resolver.resolveFromValue(ctx, fmt.Sprintf("map[%s]", resolver.property), value)
}
