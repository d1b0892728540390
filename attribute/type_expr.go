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

package attribute

import (
	"fmt"
	"strings"

	"github.com/botobag/gqlmodel/graphql"
)

// TypeExpr is a parsed type expression.
//
//	| expression | Required | List  | ElementRequired |
//	|------------|----------|-------|-----------------|
//	| Int        | false    | false | false           |
//	| Int!       | true     | false | false           |
//	| [Int]      | false    | true  | false           |
//	| [Int]!     | true     | true  | false           |
//	| [Int!]     | false    | true  | true            |
//	| [Int!]!    | true     | true  | true            |
type TypeExpr struct {
	// Name of the named type
	Name string

	// List is true if the named type is wrapped in a list.
	List bool

	// Required is true if the outermost type is non-null.
	Required bool

	// ElementRequired is true if elements of the list are non-null. Only meaningful for lists.
	ElementRequired bool
}

// String prints the expression in its canonical form.
func (expr TypeExpr) String() string {
	var b strings.Builder
	if expr.List {
		b.WriteByte('[')
		b.WriteString(expr.Name)
		if expr.ElementRequired {
			b.WriteByte('!')
		}
		b.WriteByte(']')
	} else {
		b.WriteString(expr.Name)
	}
	if expr.Required {
		b.WriteByte('!')
	}
	return b.String()
}

// typeExprParser is a tiny recursive-descent parser over the grammar
//
//	TypeExpr : NamedType "!"? | "[" NamedType "!"? "]" "!"?
//	NamedType: /[_A-Za-z][_0-9A-Za-z]*/
//
// Spaces and tabs may separate the tokens.
type typeExprParser struct {
	source string
	pos    int
}

// ParseTypeExpr parses a type expression. A malformed expression yields a *graphql.Error of
// graphql.ErrKindSyntax that locates the offending character.
func ParseTypeExpr(source string) (TypeExpr, error) {
	p := &typeExprParser{
		source: source,
	}
	return p.parse()
}

func (p *typeExprParser) parse() (TypeExpr, error) {
	var expr TypeExpr

	p.skipWhitespace()
	if p.peek() == '[' {
		p.pos++
		expr.List = true

		p.skipWhitespace()
		if p.peek() == '[' {
			return expr, p.syntaxError("nested list types are not supported")
		}

		name, err := p.parseName()
		if err != nil {
			return expr, err
		}
		expr.Name = name
		expr.ElementRequired = p.parseBang()

		p.skipWhitespace()
		if err := p.expect(']'); err != nil {
			return expr, err
		}
	} else {
		name, err := p.parseName()
		if err != nil {
			return expr, err
		}
		expr.Name = name
	}

	expr.Required = p.parseBang()

	p.skipWhitespace()
	if !p.eof() {
		return expr, p.syntaxError(fmt.Sprintf("Unexpected %s", p.describe()))
	}

	return expr, nil
}

func (p *typeExprParser) eof() bool {
	return p.pos >= len(p.source)
}

// peek returns the current character or 0 at the end of the source.
func (p *typeExprParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.source[p.pos]
}

func (p *typeExprParser) skipWhitespace() {
	for !p.eof() {
		if c := p.source[p.pos]; c != ' ' && c != '\t' {
			return
		}
		p.pos++
	}
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isNameContinue(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}

func (p *typeExprParser) parseName() (string, error) {
	p.skipWhitespace()
	if p.eof() || !isNameStart(p.peek()) {
		return "", p.syntaxError(fmt.Sprintf("Expected Name, found %s", p.describe()))
	}

	start := p.pos
	for !p.eof() && isNameContinue(p.source[p.pos]) {
		p.pos++
	}
	return p.source[start:p.pos], nil
}

// parseBang consumes an optional "!".
func (p *typeExprParser) parseBang() bool {
	p.skipWhitespace()
	if p.peek() == '!' {
		p.pos++
		return true
	}
	return false
}

func (p *typeExprParser) expect(c byte) error {
	if p.peek() != c {
		return p.syntaxError(fmt.Sprintf("Expected %q, found %s", string(c), p.describe()))
	}
	p.pos++
	return nil
}

// describe names the character at the current position for error messages.
func (p *typeExprParser) describe() string {
	if p.eof() {
		return "<EOF>"
	}
	return fmt.Sprintf("%q", p.source[p.pos:p.pos+1])
}

func (p *typeExprParser) syntaxError(description string) error {
	return graphql.NewSyntaxError(p.source, uint(p.pos+1), description)
}
