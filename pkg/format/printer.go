// Package format renders AST nodes back to SQL text.
//
// Compact output is canonical: keywords upper-case, one space between
// tokens, identifiers quoted only when they would not lex back as the same
// bare identifier. Pretty output uses the same spelling but breaks clauses
// onto their own lines.
package format

import (
	"bytes"
	"strings"

	"github.com/siddontang/tidbparser/pkg/dialect"
	"github.com/siddontang/tidbparser/pkg/token"
)

const indentSize = 2

// Printer handles SQL formatting with proper indentation and style.
type Printer struct {
	dialect     *dialect.Dialect
	output      *bytes.Buffer
	pretty      bool
	depth       int
	atLineStart bool
}

func newPrinter(d *dialect.Dialect, pretty bool) *Printer {
	return &Printer{
		dialect:     d,
		output:      &bytes.Buffer{},
		pretty:      pretty,
		atLineStart: true,
	}
}

// String returns the formatted output.
func (p *Printer) String() string {
	return strings.TrimRight(p.output.String(), "\n ")
}

func (p *Printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) writeIndent() {
	for range p.depth * indentSize {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *Printer) keyword(s string) {
	p.write(strings.ToUpper(s))
}

func (p *Printer) indent() {
	p.depth++
}

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *Printer) space() {
	p.output.WriteByte(' ')
}

// sep separates two clauses: a line break in pretty mode, a space otherwise.
func (p *Printer) sep() {
	if p.pretty {
		p.writeln()
		return
	}
	p.space()
}

// clause starts a new clause keyword on its own line in pretty mode.
func (p *Printer) clause(kw string) {
	p.sep()
	p.keyword(kw)
}

// block prints a clause body. Pretty mode puts it on the following lines,
// one level deeper.
func (p *Printer) block(body func()) {
	if !p.pretty {
		p.space()
		body()
		return
	}
	p.writeln()
	p.indent()
	body()
	p.dedent()
}

// nested prints a parenthesized sub-statement.
func (p *Printer) nested(body func()) {
	p.write("(")
	if p.pretty {
		p.writeln()
		p.indent()
		body()
		p.dedent()
		p.writeln()
	} else {
		body()
	}
	p.write(")")
}

// kw prints keywords based on their token types.
func (p *Printer) kw(tokens ...token.TokenType) {
	for i, t := range tokens {
		if i > 0 {
			p.space()
		}
		p.write(t.String())
	}
}

// ident prints an identifier, quoting it when needed.
func (p *Printer) ident(name string) {
	p.write(p.dialect.QuoteIdentifierIfNeeded(name))
}

// formatList prints a list of items with separators.
// count is the number of items, format is called for each index,
// sep is the separator string, multiline adds newlines after separators.
func (p *Printer) formatList(count int, format func(i int), sep string, multiline bool) {
	for i := range count {
		format(i)
		if i < count-1 {
			p.write(sep)
			if multiline {
				p.writeln()
			}
		}
	}
}

// clauseList prints the item list of a clause: one item per line in
// pretty mode, comma separated otherwise.
func (p *Printer) clauseList(count int, format func(i int)) {
	if p.pretty {
		p.formatList(count, format, ",", true)
		return
	}
	p.formatList(count, format, ", ", false)
}

// identList prints "(a, b, c)".
func (p *Printer) identList(names []string) {
	p.write("(")
	p.formatList(len(names), func(i int) { p.ident(names[i]) }, ", ", false)
	p.write(")")
}
