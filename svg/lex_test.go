// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package svg

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// lexed is an element as seen by an XML lexer.
type lexed struct {
	tag   string
	depth int
	attrs map[string]string
	text  string
}

// lexDocument tokenizes doc, checks that every element is closed in the
// right order and returns the elements in document order.
func lexDocument(t *testing.T, doc string) []*lexed {
	t.Helper()

	l := xml.NewLexer(parse.NewInputString(doc))
	var (
		out   []*lexed
		open  []*lexed
		cur   *lexed
		inPI  bool
		roots int
	)
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			require.ErrorIs(t, l.Err(), io.EOF, "lexer error")
			require.Empty(t, open, "unclosed elements")
			require.Equal(t, 1, roots, "document must have one root element")
			return out
		case xml.StartTagPIToken:
			inPI = true
		case xml.StartTagClosePIToken:
			inPI = false
		case xml.StartTagToken:
			cur = &lexed{tag: string(l.Text()), depth: len(open), attrs: map[string]string{}}
			if len(open) == 0 {
				roots++
			}
			out = append(out, cur)
		case xml.AttributeToken:
			if inPI {
				continue
			}
			attr := string(l.Text())
			_, dup := cur.attrs[attr]
			require.Falsef(t, dup, "duplicate attribute %q on <%s>", attr, cur.tag)
			cur.attrs[attr] = strings.Trim(string(l.AttrVal()), `"'`)
		case xml.StartTagCloseToken:
			open = append(open, cur)
		case xml.StartTagCloseVoidToken:
			cur = nil
		case xml.TextToken:
			if len(open) > 0 {
				open[len(open)-1].text += string(data)
			}
		case xml.EndTagToken:
			require.NotEmpty(t, open, "end tag without start")
			last := open[len(open)-1]
			require.Equal(t, last.tag, string(l.Text()), "mismatched end tag")
			open = open[:len(open)-1]
		}
	}
}

// findAll returns the lexed elements with the given tag.
func findAll(elems []*lexed, tag string) []*lexed {
	var out []*lexed
	for _, e := range elems {
		if e.tag == tag {
			out = append(out, e)
		}
	}
	return out
}
