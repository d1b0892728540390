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

package util

import (
	"sort"
	"strings"
)

// SuggestionList returns the options that are close enough to input to be a plausible typo of it,
// most similar first. Options at the same distance keep their relative order.
func SuggestionList(input string, options []string) []string {
	if len(options) == 0 {
		return nil
	}

	type candidate struct {
		option   string
		distance int
	}

	var candidates []candidate
	inputThreshold := len(input) / 2
	for _, option := range options {
		threshold := inputThreshold
		if t := len(option) / 2; t > threshold {
			threshold = t
		}
		if threshold < 1 {
			threshold = 1
		}
		if distance := lexicalDistance(input, option); distance <= threshold {
			candidates = append(candidates, candidate{option, distance})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	result := make([]string, len(candidates))
	for i, c := range candidates {
		result[i] = c.option
	}
	return result
}

// lexicalDistance counts the edits needed to turn a into b, following Damerau-Levenshtein (an edit
// is an insertion, a deletion, a substitution or a swap of two adjacent characters) with one
// alteration: strings that differ only in case are one edit apart.
func lexicalDistance(a string, b string) int {
	if a == b {
		return 0
	}

	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1
	}

	rows, cols := len(a)+1, len(b)+1
	d := make([][]int, rows)
	for i := range d {
		d[i] = make([]int, cols)
		d[i][0] = i
	}
	for j := 1; j < cols; j++ {
		d[0][j] = j
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			best := minInt(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				best = minInt(best, d[i-2][j-2]+cost)
			}
			d[i][j] = best
		}
	}

	return d[rows-1][cols-1]
}

func minInt(first int, rest ...int) int {
	m := first
	for _, v := range rest {
		if v < m {
			m = v
		}
	}
	return m
}
