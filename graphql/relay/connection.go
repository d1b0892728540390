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

// Package relay defines the connection types wrapping paginated collections of an Object type, in
// the shape described by the Relay Cursor Connections Specification.
//
// Reference: https://relay.dev/graphql/connections.htm
package relay

import (
	"github.com/botobag/gqlmodel/graphql"
)

// Names of the arguments that a connection field accepts.
const (
	ArgFirst  = "first"
	ArgAfter  = "after"
	ArgLast   = "last"
	ArgBefore = "before"
)

var pageInfo = &graphql.ObjectConfig{
	Name:        "PageInfo",
	Description: "Information about pagination in a connection.",
	Fields: graphql.Fields{
		"hasNextPage": {
			Description: "When paginating forwards, are there more items?",
			Type:        graphql.NonNullOfType(graphql.Boolean()),
		},
		"hasPreviousPage": {
			Description: "When paginating backwards, are there more items?",
			Type:        graphql.NonNullOfType(graphql.Boolean()),
		},
		"startCursor": {
			Description: "When paginating backwards, the cursor to continue.",
			Type:        graphql.T(graphql.String()),
		},
		"endCursor": {
			Description: "When paginating forwards, the cursor to continue.",
			Type:        graphql.T(graphql.String()),
		},
	},
}

// PageInfo returns the definition of the PageInfo object shared by all connections.
func PageInfo() graphql.ObjectTypeDefinition {
	return pageInfo
}

// ConnectionArguments returns the argument configurations of a connection field.
func ConnectionArguments() graphql.ArgumentConfigMap {
	return graphql.ArgumentConfigMap{
		ArgFirst: {
			Description: "Returns the first _n_ elements from the list.",
			Type:        graphql.T(graphql.Int()),
		},
		ArgAfter: {
			Description: "Returns the elements in the list that come after the specified cursor.",
			Type:        graphql.T(graphql.String()),
		},
		ArgLast: {
			Description: "Returns the last _n_ elements from the list.",
			Type:        graphql.T(graphql.Int()),
		},
		ArgBefore: {
			Description: "Returns the elements in the list that come before the specified cursor.",
			Type:        graphql.T(graphql.String()),
		},
	}
}

//===----------------------------------------------------------------------------------------====//
// Connection
//===----------------------------------------------------------------------------------------====//

// ConnectionTypeDefinition defines a connection Object over a node Object type.
type ConnectionTypeDefinition interface {
	graphql.ObjectTypeDefinition

	// NodeType returns definition of the type being paginated.
	NodeType() graphql.ObjectTypeDefinition

	// EdgeType returns definition of the edge type of the connection.
	EdgeType() graphql.ObjectTypeDefinition
}

// connectionTypeDefinition implements ConnectionTypeDefinition. It is a comparable value so that
// two calls to ConnectionOf with the same node yield the same type.
type connectionTypeDefinition struct {
	graphql.ThisIsObjectTypeDefinition
	node graphql.ObjectTypeDefinition
}

var _ ConnectionTypeDefinition = connectionTypeDefinition{}

// ConnectionOf returns the connection type definition over the given node type. The connection is
// named after the node; for example, the connection of "User" is "UserConnection".
func ConnectionOf(node graphql.ObjectTypeDefinition) ConnectionTypeDefinition {
	return connectionTypeDefinition{
		node: node,
	}
}

// IsConnection returns true if typeDef is a connection type definition.
func IsConnection(typeDef graphql.TypeDefinition) bool {
	_, ok := typeDef.(ConnectionTypeDefinition)
	return ok
}

// NodeType implements ConnectionTypeDefinition.
func (typeDef connectionTypeDefinition) NodeType() graphql.ObjectTypeDefinition {
	return typeDef.node
}

// EdgeType implements ConnectionTypeDefinition.
func (typeDef connectionTypeDefinition) EdgeType() graphql.ObjectTypeDefinition {
	return edgeTypeDefinition{
		node: typeDef.node,
	}
}

// TypeName implements graphql.ObjectTypeDefinition.
func (typeDef connectionTypeDefinition) TypeName() string {
	return typeDef.node.TypeName() + "Connection"
}

// TypeData implements graphql.ObjectTypeDefinition.
func (typeDef connectionTypeDefinition) TypeData() (graphql.ObjectTypeData, error) {
	nodeName := typeDef.node.TypeName()
	return graphql.ObjectTypeData{
		Name:        typeDef.TypeName(),
		Description: "The connection type for " + nodeName + ".",
		Fields: graphql.Fields{
			"edges": {
				Description: "A list of edges.",
				Type:        graphql.ListOf(typeDef.EdgeType()),
			},
			"nodes": {
				Description: "A list of nodes.",
				Type:        graphql.ListOf(typeDef.node),
			},
			"pageInfo": {
				Description: "Information to aid in pagination.",
				Type:        graphql.NonNullOf(pageInfo),
			},
			"total": {
				Description: "Total number of " + nodeName + " items in the collection.",
				Type:        graphql.NonNullOfType(graphql.Int()),
			},
		},
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// Edge
//===----------------------------------------------------------------------------------------====//

// edgeTypeDefinition defines the edge Object in a connection.
type edgeTypeDefinition struct {
	graphql.ThisIsObjectTypeDefinition
	node graphql.ObjectTypeDefinition
}

var _ graphql.ObjectTypeDefinition = edgeTypeDefinition{}

// TypeName implements graphql.ObjectTypeDefinition.
func (typeDef edgeTypeDefinition) TypeName() string {
	return typeDef.node.TypeName() + "Edge"
}

// TypeData implements graphql.ObjectTypeDefinition.
func (typeDef edgeTypeDefinition) TypeData() (graphql.ObjectTypeData, error) {
	return graphql.ObjectTypeData{
		Name:        typeDef.TypeName(),
		Description: "An edge in a connection.",
		Fields: graphql.Fields{
			"cursor": {
				Description: "A cursor for use in pagination.",
				Type:        graphql.NonNullOfType(graphql.String()),
			},
			"node": {
				Description: "The item at the end of the edge.",
				Type:        typeDef.node,
			},
		},
	}, nil
}
