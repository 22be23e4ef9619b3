// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package svg

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/surface"
)

// MediaType is the MIME type of the documents this package writes.
const MediaType = "image/svg+xml"

const (
	xmlHeader = `<?xml version="1.0" encoding="utf-8"?>` + "\n"
	svgNS     = "http://www.w3.org/2000/svg"
	xlinkNS   = "http://www.w3.org/1999/xlink"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape replaces the characters reserved in XML attribute values and
// text with entity references. Invalid UTF-8 and runes XML does not allow
// in a document are replaced with U+FFFD.
func Escape(s string) string {
	return escaper.Replace(xmlChars(s))
}

// xmlChars returns s with every invalid byte sequence and every rune
// outside the XML Char production replaced by U+FFFD.
func xmlChars(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, notXMLChar) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if notXMLChar(r) {
			return utf8.RuneError
		}
		return r
	}, strings.ToValidUTF8(s, string(utf8.RuneError)))
}

func notXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return false
	case r < 0x20:
		return true
	case r >= 0xD800 && r <= 0xDFFF, r == 0xFFFE, r == 0xFFFF:
		return true
	}
	return r > utf8.MaxRune
}

// countingWriter counts the bytes that reached w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// docWriter buffers output to a countingWriter. The bufio.Writer keeps
// the first error, so writes after a failure are dropped.
type docWriter struct {
	count countingWriter
	buf   *bufio.Writer
}

func newDocWriter(w io.Writer) *docWriter {
	dw := &docWriter{count: countingWriter{w: w}}
	dw.buf = bufio.NewWriter(&dw.count)
	return dw
}

func (dw *docWriter) str(s string) {
	_, _ = dw.buf.WriteString(s)
}

func (dw *docWriter) escaped(s string) {
	_, _ = escaper.WriteString(dw.buf, xmlChars(s))
}

// finish flushes the buffer and reports the bytes w accepted.
func (dw *docWriter) finish() (int64, error) {
	err := dw.buf.Flush()
	return dw.count.n, err
}

// WriteElement writes e and its subtree depth-first. Attributes are
// written in stored order. An element with no children and blank content
// is self-closed.
func WriteElement(w io.Writer, e *Element) (int64, error) {
	dw := newDocWriter(w)
	writeElement(dw, e)
	return dw.finish()
}

func writeElement(dw *docWriter, e *Element) {
	dw.str("<")
	dw.str(e.Tag)
	for _, a := range e.Attrs {
		dw.str(" ")
		dw.str(a.Key)
		dw.str(`="`)
		dw.escaped(a.Value)
		dw.str(`"`)
	}

	hasContent := strings.TrimSpace(e.Content) != ""
	if len(e.Children) == 0 && !hasContent {
		dw.str("/>")
		return
	}
	dw.str(">")
	for _, c := range e.Children {
		writeElement(dw, c)
	}
	if hasContent {
		dw.escaped(e.Content)
	}
	dw.str("</")
	dw.str(e.Tag)
	dw.str(">")
}

// writeDocument writes the XML header, the svg root with the declared
// size, the definitions (if any) and the content tree.
func writeDocument(w io.Writer, width, height float64, defs []*Element, root *Element) (int64, error) {
	dw := newDocWriter(w)
	dw.str(xmlHeader)
	dw.str(`<svg version="1.1" baseProfile="full" xmlns="` + svgNS + `" xmlns:xlink="` + xlinkNS + `"`)
	dw.str(` width="`)
	dw.str(surface.FormatNumber(width))
	dw.str(`" height="`)
	dw.str(surface.FormatNumber(height))
	dw.str(`">`)
	if len(defs) > 0 {
		writeElement(dw, &Element{Tag: TagDefs, Children: defs})
	}
	writeElement(dw, root)
	dw.str("</svg>")
	return dw.finish()
}
