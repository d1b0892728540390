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

// Package model declares GraphQL object types from attributes.
//
// A Definition holds the attributes of one object type (see package attribute). When the type is
// created with graphql.NewObject, each attribute derives its field arguments and DefineField turns
// them into a field: the name is camelized, the type is made non-null as requested, connection
// fields receive pagination arguments and every field reads its value from the attribute's
// property of the source value.
//
// A Registry collects definitions so that attributes can refer to each other by name:
//
//	registry := model.NewRegistry()
//	user := registry.MustDefine("User")
//	user.Attribute("id!")
//	user.Attribute("full_name", "String!")
//	user.Attribute("posts", "[Post!]").Paginated()
//
//	post := registry.MustDefine("Post")
//	post.Attribute("title", "String!")
//	post.Attribute("author", "User!")
//
//	if errs := registry.Validate(); errs.HaveOccurred() {
//		...
//	}
//	schema, err := registry.NewSchema()
//
// Definitions can also be loaded from YAML with LoadYAML.
package model
