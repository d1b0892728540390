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

package model_test

import (
	"os"
	"path/filepath"

	"github.com/botobag/gqlmodel/attribute"
	"github.com/botobag/gqlmodel/graphql"
	"github.com/botobag/gqlmodel/internal/testutil"
	"github.com/botobag/gqlmodel/model"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const declarations = `
types:
  - name: User
    description: A registered user
    attributes:
      - name: id!
      - name: full_name
        type: String!
        description: Name shown on the profile
      - name: login
        name_format: original
        required: true
      - name: email
        property: mail
      - name: admin?
      - name: nickname
        options:
          deprecation_reason: Use full_name
      - name: posts
        type: "[Post!]"
        paginated:
          max_page_size: 50
          cursor: id
      - name: drafts
        type: Post
        paginated: true
      - name: archived
        type: "[Post]"
        paginated: false
  - name: Post
    attributes:
      - name: title
        type: String!
      - name: author
        type: User!
`

var _ = Describe("LoadYAML", func() {
	var registry *model.Registry

	BeforeEach(func() {
		registry = model.NewRegistry()
	})

	It("defines types and attributes", func() {
		Expect(model.LoadYAML([]byte(declarations), registry)).Should(Succeed())
		Expect(registry.TypeNames()).Should(Equal([]string{"Post", "User"}))

		user := registry.Lookup("User").(*model.Definition)
		attributes := user.Attributes()
		Expect(attributes).Should(HaveLen(9))

		Expect(attributes[1].MustFieldArgs().Options).Should(Equal(attribute.FieldOptions{
			attribute.OptionNull:        false,
			attribute.OptionCamelize:    true,
			attribute.OptionDescription: "Name shown on the profile",
		}))
		Expect(attributes[2].MustFieldArgs().Options).Should(Equal(attribute.FieldOptions{
			attribute.OptionNull:     false,
			attribute.OptionCamelize: false,
		}))
		Expect(attributes[3].PropertyName()).Should(Equal("mail"))
		Expect(attributes[6].MustFieldArgs().Options).Should(Equal(attribute.FieldOptions{
			attribute.OptionNull:        true,
			attribute.OptionCamelize:    true,
			attribute.OptionMaxPageSize: 50,
			"cursor":                    "id",
		}))
		Expect(attributes[7].IsPaginated()).Should(BeTrue())
		Expect(attributes[8].IsPaginated()).Should(BeFalse())
	})

	It("builds a schema from the declarations", func() {
		Expect(model.LoadYAML([]byte(declarations), registry)).Should(Succeed())
		Expect(registry.Validate().HaveOccurred()).Should(BeFalse())

		schema, err := registry.NewSchema()
		Expect(err).ShouldNot(HaveOccurred())

		user := schema.TypeMap().Lookup("User").(graphql.Object)
		Expect(user.Description()).Should(Equal("A registered user"))

		fields := user.Fields()
		Expect(fields.Names()).Should(Equal([]string{
			"admin",
			"archived",
			"drafts",
			"email",
			"fullName",
			"id",
			"login",
			"nickname",
			"posts",
		}))
		Expect(fields["posts"].Type().String()).Should(Equal("PostConnection"))
		Expect(fields["drafts"].Type().String()).Should(Equal("PostConnection"))
		Expect(fields["archived"].Type().String()).Should(Equal("[Post]"))
		Expect(fields["login"].Type().String()).Should(Equal("String!"))
		Expect(fields["nickname"].Deprecation()).Should(Equal(&graphql.Deprecation{
			Reason: "Use full_name",
		}))

		post := schema.TypeMap().Lookup("Post").(graphql.Object)
		Expect(graphql.NullableTypeOf(post.Fields()["author"].Type())).Should(BeIdenticalTo(user))
	})

	It("loads declarations from file", func() {
		dir, err := os.MkdirTemp("", "gqlmodel")
		Expect(err).ShouldNot(HaveOccurred())
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "models.yaml")
		Expect(os.WriteFile(path, []byte(declarations), 0o644)).Should(Succeed())
		Expect(model.LoadYAMLFile(path, registry)).Should(Succeed())
		Expect(registry.Lookup("Post")).ShouldNot(BeNil())

		err = model.LoadYAMLFile(filepath.Join(dir, "missing.yaml"), model.NewRegistry())
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageContainSubstring("cannot read declarations"),
			testutil.OpIs("model.LoadYAML"),
		))
	})

	It("rejects malformed documents", func() {
		err := model.LoadYAML([]byte("types: [name: User"), registry)
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("cannot parse declarations"),
			testutil.OpIs("model.LoadYAML"),
		))

		err = model.LoadYAML([]byte(`
types:
  - name: User
    attributes:
      - name: posts
        paginated: [1, 2]
`), model.NewRegistry())
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("expected boolean or mapping for paginated"))
	})

	It("camelizes names with an unknown name format", func() {
		Expect(model.LoadYAML([]byte(`
types:
  - name: User
    attributes:
      - name: full_name
        name_format: kebab
`), registry)).Should(Succeed())

		user := registry.Lookup("User").(*model.Definition)
		args := user.Attributes()[0].MustFieldArgs()
		Expect(args.Name).Should(Equal("full_name"))
		Expect(args.Options).Should(HaveKeyWithValue(attribute.OptionCamelize, true))

		schema, err := registry.NewSchema()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(schema.TypeMap().Lookup("User").(graphql.Object).Fields().Names()).Should(
			Equal([]string{"fullName"}))
	})

	It("rejects duplicate types", func() {
		registry.MustDefine("User")

		err := model.LoadYAML([]byte(declarations), registry)
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("cannot load declarations"),
			testutil.KindIs(graphql.ErrKindValidation),
		))
	})
})
