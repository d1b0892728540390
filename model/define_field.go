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

	"github.com/go-openapi/inflect"

	"github.com/botobag/gqlmodel/attribute"
	"github.com/botobag/gqlmodel/graphql"
	"github.com/botobag/gqlmodel/graphql/relay"
)

const opDefineField graphql.Op = "model.DefineField"

// OptionDeprecationReason is a field option that deprecates the field with the given reason. It is
// not interpreted by attributes and reaches DefineField through attribute.Options.Extra.
const OptionDeprecationReason = "deprecation_reason"

// DefineField adds the field described by args to fields. It returns the name of the defined field.
//
// The options in args are applied as follows:
//
//   - attribute.OptionCamelize: the name is converted to lower camel case (e.g., "full_name"
//     becomes "fullName") unless the option is false;
//   - attribute.OptionNull: the type is wrapped in non-null if the option is false;
//   - attribute.OptionDescription: sets the description of the field;
//   - OptionDeprecationReason: deprecates the field.
//
// Connection types (see relay.ConnectionOf) receive the standard connection arguments. Every other
// option, including page sizes, is kept in the Extensions of the field for whoever resolves it.
func DefineField(fields graphql.Fields, args attribute.FieldArgs, resolver graphql.FieldResolver) (string, error) {
	name := args.Name
	if len(name) == 0 {
		return "", graphql.NewError("Must provide name for field.", opDefineField, graphql.ErrKindValidation)
	}
	if args.Options.Camelize() {
		name = inflect.CamelizeDownFirst(name)
	}
	if !isValidName(name) {
		return "", graphql.NewError(
			fmt.Sprintf(`Names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but "%s" does not.`, name),
			opDefineField, graphql.ErrKindValidation)
	}

	if _, exists := fields[name]; exists {
		return "", graphql.NewError(fmt.Sprintf(`Field "%s" is defined more than once.`, name),
			opDefineField, graphql.ErrKindValidation)
	}

	if args.Type == nil {
		return "", graphql.NewError(fmt.Sprintf(`Must provide type for field "%s".`, name),
			opDefineField, graphql.ErrKindValidation)
	}

	config := graphql.FieldConfig{
		Type:     args.Type,
		Resolver: resolver,
	}

	if !args.Options.Null() {
		config.Type = graphql.NonNullOf(config.Type)
	}

	if description, ok := args.Options.Description(); ok {
		config.Description = description
	}

	if relay.IsConnection(args.Type) {
		config.Args = relay.ConnectionArguments()
	}

	for key, value := range args.Options {
		switch key {
		case attribute.OptionNull, attribute.OptionCamelize, attribute.OptionDescription:
			// Handled above.

		case OptionDeprecationReason:
			reason, ok := value.(string)
			if !ok {
				return "", graphql.NewError(
					fmt.Sprintf(`Deprecation reason of field "%s" must be a string but got %T.`, name, value),
					opDefineField, graphql.ErrKindValidation)
			}
			config.Deprecation = &graphql.Deprecation{
				Reason: reason,
			}

		default:
			if config.Extensions == nil {
				config.Extensions = graphql.FieldExtensions{}
			}
			config.Extensions[key] = value
		}
	}

	fields[name] = config
	return name, nil
}

// isValidName returns true if name matches the GraphQL Name rule.
func isValidName(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (i > 0 && c >= '0' && c <= '9') {
			continue
		}
		return false
	}
	return len(name) > 0
}
