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

package graphql_test

import (
	"context"
	"errors"
	"sync"

	"github.com/botobag/gqlmodel/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// flakyObjectTypeDefinition fails to load its data until it is fixed.
type flakyObjectTypeDefinition struct {
	graphql.ThisIsObjectTypeDefinition
	fixed bool
}

func (typeDef *flakyObjectTypeDefinition) TypeName() string {
	return "Flaky"
}

func (typeDef *flakyObjectTypeDefinition) TypeData() (graphql.ObjectTypeData, error) {
	if !typeDef.fixed {
		return graphql.ObjectTypeData{}, errors.New("not yet")
	}
	return graphql.ObjectTypeData{
		Name: "Flaky",
		Fields: graphql.Fields{
			"ok": {
				Type: graphql.T(graphql.Boolean()),
			},
		},
	}, nil
}

var _ = Describe("Object", func() {
	It("defines an object type with deprecated field", func() {
		TypeWithDeprecatedField, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "foo",
			Fields: graphql.Fields{
				"bar": graphql.FieldConfig{
					Type: graphql.T(graphql.String()),
					Deprecation: &graphql.Deprecation{
						Reason: "A terrible reason",
					},
				},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		bar := TypeWithDeprecatedField.Fields()["bar"]
		Expect(bar).ShouldNot(BeNil())
		Expect(bar.Type()).Should(Equal(graphql.String()))
		Expect(bar.Deprecation()).Should(Equal(&graphql.Deprecation{
			Reason: "A terrible reason",
		}))
		Expect(bar.Deprecation().Defined()).Should(BeTrue())
		Expect(bar.Name()).Should(Equal("bar"))
		Expect(bar.Args()).Should(BeEmpty())
	})

	It("keeps description, resolver and extensions of fields", func() {
		resolver := graphql.FieldResolverFunc(func(ctx context.Context, source interface{}) (interface{}, error) {
			return source.(map[string]interface{})["title"], nil
		})

		object, err := graphql.NewObject(&graphql.ObjectConfig{
			Name:        "Post",
			Description: "A blog post",
			Fields: graphql.Fields{
				"title": {
					Description: "Title of the post",
					Type:        graphql.NonNullOfType(graphql.String()),
					Resolver:    resolver,
					Extensions: graphql.FieldExtensions{
						"max_length": 140,
					},
				},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(object.Name()).Should(Equal("Post"))
		Expect(object.String()).Should(Equal("Post"))
		Expect(object.Description()).Should(Equal("A blog post"))

		title := object.Fields()["title"]
		Expect(title.Description()).Should(Equal("Title of the post"))
		Expect(title.Type().String()).Should(Equal("String!"))
		Expect(title.Deprecation()).Should(BeNil())
		Expect(title.Extensions()).Should(HaveKeyWithValue("max_length", 140))

		value, err := title.Resolver().Resolve(context.Background(), map[string]interface{}{
			"title": "Hello",
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal("Hello"))
	})

	It("sorts arguments by name", func() {
		object, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"search": {
					Type: graphql.ListOfType(graphql.String()),
					Args: graphql.ArgumentConfigMap{
						"term": {
							Type: graphql.NonNullOfType(graphql.String()),
						},
						"limit": {
							Description:  "Maximum number of results",
							Type:         graphql.T(graphql.Int()),
							DefaultValue: 10,
						},
					},
				},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		args := object.Fields()["search"].Args()
		Expect(args).Should(HaveLen(2))
		Expect(args[0].Name()).Should(Equal("limit"))
		Expect(args[0].Description()).Should(Equal("Maximum number of results"))
		Expect(args[0].HasDefaultValue()).Should(BeTrue())
		Expect(args[0].DefaultValue()).Should(Equal(10))
		Expect(args[1].Name()).Should(Equal("term"))
		Expect(args[1].Type().String()).Should(Equal("String!"))
		Expect(args[1].HasDefaultValue()).Should(BeFalse())
	})

	It("lists field names in lexical order", func() {
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Names",
			Fields: graphql.Fields{
				"zeta":  {Type: graphql.T(graphql.Int())},
				"alpha": {Type: graphql.T(graphql.Int())},
				"mu":    {Type: graphql.T(graphql.Int())},
			},
		})
		Expect(object.Fields().Names()).Should(Equal([]string{"alpha", "mu", "zeta"}))
	})

	It("does not mutate passed field definitions", func() {
		fields := graphql.Fields{
			"field1": graphql.FieldConfig{
				Type: graphql.T(graphql.String()),
			},
			"field2": graphql.FieldConfig{
				Type: graphql.T(graphql.String()),
				Args: graphql.ArgumentConfigMap{
					"id": graphql.ArgumentConfig{
						Type: graphql.T(graphql.String()),
					},
				},
			},
		}

		testObject1, err := graphql.NewObject(&graphql.ObjectConfig{
			Name:   "Test1",
			Fields: fields,
		})
		Expect(err).ShouldNot(HaveOccurred())

		testObject2, err := graphql.NewObject(&graphql.ObjectConfig{
			Name:   "Test2",
			Fields: fields,
		})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(testObject1.Fields().Names()).Should(Equal(testObject2.Fields().Names()))
		Expect(fields).Should(HaveLen(2))
		Expect(fields["field2"].Args).Should(HaveKey("id"))
	})

	It("defines a self-referencing object", func() {
		personConfig := &graphql.ObjectConfig{
			Name: "Person",
		}
		personConfig.Fields = graphql.Fields{
			"name": {
				Type: graphql.T(graphql.String()),
			},
			"bestFriend": {
				Type: personConfig,
			},
			"friends": {
				Type: graphql.ListOf(graphql.NonNullOf(personConfig)),
			},
		}

		person, err := graphql.NewObject(personConfig)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(person.Fields()["bestFriend"].Type()).Should(BeIdenticalTo(person))
		Expect(person.Fields()["friends"].Type().String()).Should(Equal("[Person!]"))
		Expect(graphql.NamedTypeOf(person.Fields()["friends"].Type())).Should(BeIdenticalTo(person))

		Expect(graphql.MustNewObject(personConfig)).Should(BeIdenticalTo(person))
	})

	It("defines mutually referencing objects", func() {
		authorConfig := &graphql.ObjectConfig{
			Name: "Author",
		}
		bookConfig := &graphql.ObjectConfig{
			Name: "Book",
			Fields: graphql.Fields{
				"author": {
					Type: authorConfig,
				},
			},
		}
		authorConfig.Fields = graphql.Fields{
			"books": {
				Type: graphql.ListOf(bookConfig),
			},
		}

		book := graphql.MustNewObject(bookConfig)
		author := book.Fields()["author"].Type().(graphql.Object)
		Expect(author.Name()).Should(Equal("Author"))
		Expect(author.Fields()["books"].Type().(graphql.List).ElementType()).Should(BeIdenticalTo(book))
	})

	It("builds a list before the object it contains", func() {
		nodeConfig := &graphql.ObjectConfig{
			Name: "Node",
		}
		nodeConfig.Fields = graphql.Fields{
			"siblings": {
				Type: graphql.NonNullOf(graphql.ListOf(nodeConfig)),
			},
		}

		nodes := graphql.MustNewListOf(nodeConfig)
		Expect(nodes.String()).Should(Equal("[Node]"))

		node := nodes.ElementType().(graphql.Object)
		siblings := node.Fields()["siblings"].Type().(graphql.NonNull)
		Expect(siblings.String()).Should(Equal("[Node]!"))
		Expect(siblings.InnerType()).Should(BeIdenticalTo(nodes))
	})

	It("builds one instance when created from many goroutines", func() {
		config := &graphql.ObjectConfig{
			Name: "Shared",
		}
		config.Fields = graphql.Fields{
			"self": {
				Type: config,
			},
		}

		var (
			wg      sync.WaitGroup
			objects = make([]graphql.Object, 8)
		)
		for i := range objects {
			wg.Add(1)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()
				objects[i] = graphql.MustNewObject(config)
			}(i)
		}
		wg.Wait()

		for _, object := range objects {
			Expect(object).Should(BeIdenticalTo(objects[0]))
			Expect(object.Fields()["self"].Type()).Should(BeIdenticalTo(objects[0]))
		}
	})

	It("rejects an object without name", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{})
		Expect(err).Should(MatchError("Must provide name for Object."))

		Expect(func() {
			graphql.MustNewObject(&graphql.ObjectConfig{})
		}).Should(Panic())
	})

	It("rejects a field without type", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "Untyped",
			Fields: graphql.Fields{
				"f": {},
			},
		})
		Expect(err).Should(MatchError("Must provide type for Untyped.f.: validation error"))
	})

	It("rejects an argument of object type", func() {
		argObject := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "ArgObject",
		})

		_, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "BadArg",
			Fields: graphql.Fields{
				"f": {
					Type: graphql.T(graphql.String()),
					Args: graphql.ArgumentConfigMap{
						"a": {
							Type: graphql.T(argObject),
						},
					},
				},
			},
		})
		Expect(err).Should(MatchError(
			"The type of BadArg.f(a:) must be Input Type but got: ArgObject.: validation error"))
	})

	It("does not keep a type whose definition failed", func() {
		typeDef := &flakyObjectTypeDefinition{}

		_, err := graphql.NewObject(typeDef)
		Expect(err).Should(MatchError("not yet"))

		typeDef.fixed = true
		object, err := graphql.NewObject(typeDef)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(object.Name()).Should(Equal("Flaky"))
		Expect(object.Fields()).Should(HaveKey("ok"))
	})

	It("does not keep a type whose field failed to resolve", func() {
		fieldTypeDef := &flakyObjectTypeDefinition{}
		config := &graphql.ObjectConfig{
			Name: "Holder",
			Fields: graphql.Fields{
				"flaky": {
					Type: fieldTypeDef,
				},
			},
		}

		_, err := graphql.NewObject(config)
		Expect(err).Should(MatchError("not yet"))

		fieldTypeDef.fixed = true
		holder, err := graphql.NewObject(config)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(holder.Fields()["flaky"].Type().(graphql.Object).Name()).Should(Equal("Flaky"))
	})
})
