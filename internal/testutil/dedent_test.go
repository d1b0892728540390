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

package testutil_test

import (
	"strings"

	"github.com/botobag/gqlmodel/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Dedent", func() {
	It("removes indentation in typical usage", func() {
		output := testutil.Dedent(`
      type User {
        id: ID!
        fullName: String
      }
    `)

		Expect(output).Should(Equal(strings.Join([]string{
			"type User {",
			"  id: ID!",
			"  fullName: String",
			"}",
			"",
		}, "\n")))
	})

	It("removes only the first level of indentation", func() {
		output := testutil.Dedent(`
            qux
              quux
                quuux
    `)

		Expect(output).Should(Equal("qux\n  quux\n    quuux\n"))
	})

	It("removes indentation using tabs", func() {
		output := testutil.Dedent("\n\t\ttype Query {\n\t\t  me: User\n\t\t}\n\t")
		Expect(output).Should(Equal("type Query {\n  me: User\n}\n"))
	})

	It("removes leading newlines but keeps trailing ones", func() {
		output := testutil.Dedent("\n\n  type Query {\n    me: User\n  }\n\n  ")
		Expect(output).Should(Equal("type Query {\n  me: User\n}\n\n"))
	})

	It("works on text without leading newline", func() {
		Expect(testutil.Dedent("  type Query {\n    me: User\n  }")).Should(Equal("type Query {\n  me: User\n}"))
	})

	It("works on empty string and unindented text", func() {
		Expect(testutil.Dedent("")).Should(Equal(""))
		Expect(testutil.Dedent("\ntype Query {\n  me: User\n}\n")).Should(Equal("type Query {\n  me: User\n}\n"))
	})
})
