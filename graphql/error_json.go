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

import (
	"unsafe"

	"github.com/json-iterator/go"
)

func init() {
	jsoniter.RegisterTypeEncoder("graphql.Error", errorEncoder{})
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

// errorEncoder writes an Error in the response format of GraphQL errors:
//
//	{"message": "...", "locations": [{"line": 1, "column": 5}]}
//
// "locations" is omitted when empty. Op, Kind and the wrapped error stay out of the output.
type errorEncoder struct{}

var _ jsoniter.ValEncoder = errorEncoder{}

func (errorEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Error)(ptr) == nil
}

func (errorEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	e := (*Error)(ptr)

	stream.WriteObjectStart()
	stream.WriteObjectField("message")
	stream.WriteString(e.Message)

	if len(e.Locations) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("locations")
		stream.WriteArrayStart()
		for i, location := range e.Locations {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectStart()
			stream.WriteObjectField("line")
			stream.WriteUint(location.Line)
			stream.WriteMore()
			stream.WriteObjectField("column")
			stream.WriteUint(location.Column)
			stream.WriteObjectEnd()
		}
		stream.WriteArrayEnd()
	}

	stream.WriteObjectEnd()
}
