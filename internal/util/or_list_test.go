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

package util_test

import (
	"github.com/botobag/gqlmodel/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("OrList", func() {
	It("joins nothing into an empty string", func() {
		Expect(util.OrList(nil, 5, false)).Should(BeEmpty())
		Expect(util.OrList([]string{}, 5, true)).Should(BeEmpty())
	})

	It("prints a single name as is", func() {
		Expect(util.OrList([]string{"Post"}, 5, false)).Should(Equal("Post"))
		Expect(util.OrList([]string{"Post"}, 5, true)).Should(Equal(`"Post"`))
	})

	It("joins two names without comma", func() {
		Expect(util.OrList([]string{"Post", "User"}, 5, false)).Should(Equal("Post or User"))
		Expect(util.OrList([]string{"Post", "User"}, 5, true)).Should(Equal(`"Post" or "User"`))
	})

	It("joins more names with serial comma", func() {
		names := []string{"Int", "Float", "String"}
		Expect(util.OrList(names, 5, false)).Should(Equal("Int, Float, or String"))
		Expect(util.OrList(names, 5, true)).Should(Equal(`"Int", "Float", or "String"`))
	})

	It("keeps at most limit names", func() {
		names := []string{"ID", "Int", "Float", "String", "Boolean", "DateTime"}
		Expect(util.OrList(names, 5, false)).Should(Equal("ID, Int, Float, String, or Boolean"))
		Expect(util.OrList(names[:3], 2, true)).Should(Equal(`"ID" or "Int"`))
		Expect(util.OrList(names[:3], 0, false)).Should(Equal("ID, Int, or Float"))
	})
})
