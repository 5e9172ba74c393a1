// Package sexpr reads and writes string trees in a small
// parenthesized-list notation: "(a (b c) d)" is a section of three
// children whose second child is itself a section. A bare atom is an
// item. Atoms are runs of characters other than whitespace and
// parentheses.
package sexpr

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/phroun/zipper"
)

// Parse converts src into a tree. Exactly one tree must be present;
// errors report the byte offset of the offending input.
func Parse(src string) (*zipper.Tree[string], error) {
	p := &parser{src: src}
	p.skipSpace()
	if p.eof() {
		return nil, errors.New("empty input")
	}

	tree, err := p.parseTree()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if !p.eof() {
		return nil, errors.Errorf("trailing input at offset %d", p.pos)
	}
	return tree, nil
}

// Format renders a tree back into the notation Parse accepts. It is
// the inverse of Parse for trees whose item values are valid atoms.
func Format(t *zipper.Tree[string]) string {
	var b strings.Builder
	format(t, &b)
	return b.String()
}

func format(t *zipper.Tree[string], b *strings.Builder) {
	if v, ok := t.Value(); ok {
		b.WriteString(v)
		return
	}
	b.WriteByte('(')
	for i, c := range t.Children() {
		if i > 0 {
			b.WriteByte(' ')
		}
		format(c, b)
	}
	b.WriteByte(')')
}

type parser struct {
	src string
	pos int
}

func (p *parser) parseTree() (*zipper.Tree[string], error) {
	switch p.src[p.pos] {
	case '(':
		open := p.pos
		p.pos++

		var children []*zipper.Tree[string]
		for {
			p.skipSpace()
			if p.eof() {
				return nil, errors.Errorf("missing ')' for '(' at offset %d", open)
			}
			if p.src[p.pos] == ')' {
				p.pos++
				return zipper.Section(children...), nil
			}

			child, err := p.parseTree()
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}

	case ')':
		return nil, errors.Errorf("unexpected ')' at offset %d", p.pos)

	default:
		return zipper.Item(p.atom()), nil
	}
}

// atom consumes a maximal run of non-space, non-paren characters.
// Scanning is byte-wise; multibyte UTF-8 sequences never collide with
// the ASCII delimiters, so atoms may hold arbitrary non-ASCII runes.
func (p *parser) atom() string {
	start := p.pos
	for !p.eof() {
		c := p.src[p.pos]
		if c == '(' || c == ')' || isSpace(c) {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}
