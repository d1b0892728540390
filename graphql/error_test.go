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
	"encoding/json"
	"errors"

	"github.com/botobag/gqlmodel/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func newError(message string, args ...interface{}) *graphql.Error {
	e, ok := graphql.NewError(message, args...).(*graphql.Error)
	Expect(ok).Should(BeTrue())
	return e
}

func wrapError(message string, err error) *graphql.Error {
	e, ok := graphql.WrapError(err, message).(*graphql.Error)
	Expect(ok).Should(BeTrue())
	return e
}

func expectJSON(v interface{}, expected string) {
	s, err := json.Marshal(v)
	Expect(err).ShouldNot(HaveOccurred())
	Expect(s).Should(MatchJSON(expected))
}

func expectMessage(e error, expected string) {
	Expect(e.Error()).Should(Equal(expected), e.Error())
}

// exprError reports where in a type expression parsing stopped.
type exprError struct {
	locations []graphql.ErrorLocation
}

func (e *exprError) Locations() []graphql.ErrorLocation {
	return e.locations
}

func (e *exprError) Error() string {
	return "bad expression"
}

var _ graphql.ErrorWithLocations = (*exprError)(nil)

var _ = Describe("Error", func() {
	var (
		start graphql.ErrorLocation
		end   graphql.ErrorLocation
	)

	BeforeEach(func() {
		start = graphql.ErrorLocation{Line: 1, Column: 3}
		end = graphql.ErrorLocation{Line: 2, Column: 5}
	})

	It("serializes the message only", func() {
		e := newError(`Unknown type "Foo" for attribute "author".`)
		Expect(e.Message).Should(Equal(`Unknown type "Foo" for attribute "author".`))
		expectJSON(e, `{"message":"Unknown type \"Foo\" for attribute \"author\"."}`)
	})

	It("serializes locations", func() {
		e := newError(`Syntax Error: Expected Name, found "]"`, graphql.ErrorLocation{Line: 1, Column: 2})
		expectJSON(e, `{"message":"Syntax Error: Expected Name, found \"]\"","locations":[{"line":1,"column":2}]}`)
		expectMessage(e, `Syntax Error: Expected Name, found "]" at [{Line:1 Column:2}]`)

		e = newError("Duplicate attribute", []graphql.ErrorLocation{start, end})
		expectJSON(e, `{"message":"Duplicate attribute","locations":[{"line":1,"column":3},{"line":2,"column":5}]}`)
		expectMessage(e, "Duplicate attribute at [{Line:1 Column:3} {Line:2 Column:5}]")
	})

	It("wraps a plain error", func() {
		cause := errors.New("resolver is nil")
		e := newError(`Cannot declare "posts"`, cause)
		Expect(e.Err).Should(Equal(cause))
		Expect(errors.Is(e, cause)).Should(BeTrue())
		expectMessage(e, `Cannot declare "posts": resolver is nil`)
	})

	It("prints but does not serialize op and kind", func() {
		const op graphql.Op = "attribute.FieldArgs"

		e := newError(`Unknown type "Foo".`, op, graphql.ErrKindValidation)
		Expect(e.Op).Should(Equal(op))
		Expect(e.Kind).Should(Equal(graphql.ErrKindValidation))
		expectJSON(e, `{"message":"Unknown type \"Foo\"."}`)
		expectMessage(e, `attribute.FieldArgs: Unknown type "Foo".: validation error`)

		expectMessage(newError("", op, graphql.ErrKindInternal), "attribute.FieldArgs: internal error")
		expectMessage(newError("", start), "At [{Line:1 Column:3}]")
	})

	It("takes locations from the wrapped error", func() {
		locations := []graphql.ErrorLocation{start, end}

		e := newError("cannot parse type", &exprError{locations: locations})
		Expect(e.Locations).Should(Equal(locations))
		expectMessage(e, "cannot parse type at [{Line:1 Column:3} {Line:2 Column:5}]: bad expression")

		// The wrapped Error does not repeat the same locations.
		e = wrapError(`cannot declare "tags"`, e)
		Expect(e.Locations).Should(Equal(locations))
		expectJSON(e,
			`{"message":"cannot declare \"tags\"","locations":[{"line":1,"column":3},{"line":2,"column":5}]}`)
		expectMessage(e, `cannot declare "tags" at [{Line:1 Column:3} {Line:2 Column:5}]:
  cannot parse type: bad expression`)

		// Given locations win.
		e = newError(`cannot define "Post"`, e, graphql.ErrorLocation{Line: 10, Column: 30})
		Expect(e.Locations).Should(Equal([]graphql.ErrorLocation{{Line: 10, Column: 30}}))
		expectMessage(e, `cannot define "Post" at [{Line:10 Column:30}]:
  cannot declare "tags" at [{Line:1 Column:3} {Line:2 Column:5}]:
  cannot parse type: bad expression`)
	})

	It("takes kind from the wrapped error", func() {
		e := newError(`Unknown type "Foo".`)
		Expect(e.Kind).Should(Equal(graphql.ErrKindOther))

		e = newError(`invalid attribute "author"`, e)
		Expect(e.Kind).Should(Equal(graphql.ErrKindOther))
		expectMessage(e, `invalid attribute "author":
  Unknown type "Foo".`)

		e = newError(`invalid model "Post"`, e, graphql.ErrKindValidation)
		expectMessage(e, `invalid model "Post": validation error:
  invalid attribute "author":
  Unknown type "Foo".`)

		// The wrapped Error does not repeat the same kind.
		e = newError("registry validation failed", e)
		Expect(e.Kind).Should(Equal(graphql.ErrKindValidation))
		expectMessage(e, `registry validation failed: validation error:
  invalid model "Post":
  invalid attribute "author":
  Unknown type "Foo".`)

		e = newError("cannot print schema", e, graphql.ErrKindInternal)
		Expect(e.Kind).Should(Equal(graphql.ErrKindInternal))
		expectMessage(e, `cannot print schema: internal error:
  registry validation failed: validation error:
  invalid model "Post":
  invalid attribute "author":
  Unknown type "Foo".`)
	})

	It("reports a bad argument", func() {
		e := graphql.NewError("msg", 1)
		Expect(e).ShouldNot(BeAssignableToTypeOf(&graphql.Error{}))
		Expect(e.Error()).Should(Equal("unknown type int, value 1 in error call"))
	})

	It("wraps with a formatted message", func() {
		e := graphql.WrapErrorf(errors.New("boom"), "resolving %q of %s", "author", "Post")
		expectMessage(e, `resolving "author" of Post: boom`)
	})

	It("points a syntax error into the source", func() {
		e, ok := graphql.NewSyntaxError("[Int", 5, `Expected "]", found <EOF>`).(*graphql.Error)
		Expect(ok).Should(BeTrue())
		Expect(e.Kind).Should(Equal(graphql.ErrKindSyntax))
		Expect(e.Locations).Should(Equal([]graphql.ErrorLocation{{Line: 1, Column: 5}}))
		Expect(e.Message).Should(Equal(`Syntax Error: Expected "]", found <EOF> in "[Int"`))
	})
})

var _ = Describe("Errors", func() {
	It("starts empty", func() {
		errs := graphql.NoErrors()
		Expect(errs.HaveOccurred()).Should(BeFalse())
		Expect(errs.Error()).Should(BeEmpty())
	})

	It("collects errors of any type", func() {
		var errs graphql.Errors
		errs.Emplace(`Unknown type "Foo".`, graphql.ErrKindValidation)
		errs.Append(errors.New("resolver is nil"))

		Expect(errs.HaveOccurred()).Should(BeTrue())
		Expect(errs.Errors).Should(HaveLen(2))
		Expect(errs.Errors[0].Kind).Should(Equal(graphql.ErrKindValidation))
		Expect(errs.Errors[1].Message).Should(Equal("resolver is nil"))
		Expect(errs.Error()).Should(Equal("Unknown type \"Foo\".: validation error\nresolver is nil"))
	})

	It("merges other Errors", func() {
		errs := graphql.ErrorsOf(`invalid model "Post"`)
		errs.AppendErrors(graphql.ErrorsOf(newError(`invalid model "User"`), newError(`invalid model "Tag"`)))
		Expect(errs.Errors).Should(HaveLen(3))
		Expect(errs.Errors[2].Message).Should(Equal(`invalid model "Tag"`))
	})

	It("builds from errors followed by arguments of NewError", func() {
		errs := graphql.ErrorsOf(newError(`invalid model "Post"`), "Syntax Error", graphql.ErrorLocation{
			Line:   1,
			Column: 2,
		})
		Expect(errs.Errors).Should(HaveLen(2))
		Expect(errs.Errors[1].Locations).Should(Equal([]graphql.ErrorLocation{{Line: 1, Column: 2}}))

		Expect(func() {
			graphql.ErrorsOf(1)
		}).Should(Panic())
	})

	It("serializes as a list of GraphQL errors", func() {
		errs := graphql.ErrorsOf(
			newError(`invalid model "Post"`),
			newError("Syntax Error", graphql.ErrorLocation{Line: 1, Column: 4}))
		expectJSON(errs.Errors,
			`[{"message":"invalid model \"Post\""},{"message":"Syntax Error","locations":[{"line":1,"column":4}]}]`)
	})
})
