// Package dialect provides SQL dialect configuration.
//
// This package contains the public contract for dialect definitions used by
// the lexer, parser and formatter. Concrete dialect implementations are
// registered from pkg/dialects/*/ packages.
package dialect

import (
	"sort"
	"strings"

	"github.com/siddontang/tidbparser/pkg/spi"
	"github.com/siddontang/tidbparser/pkg/token"
)

// NormStrategy describes how unquoted identifiers are normalized.
type NormStrategy int

// Normalization strategies.
const (
	NormCaseInsensitive NormStrategy = iota
	NormLowercase
	NormUppercase
	NormCaseSensitive
)

// IdentifierConfig describes how a dialect delimits identifiers.
type IdentifierConfig struct {
	Quote         byte // opening and closing delimiter
	Normalization NormStrategy
}

// Dialect represents a SQL dialect configuration.
type Dialect struct {
	Name        string
	Identifiers IdentifierConfig

	// Lexical behavior
	stringQuotes     string // characters that open a string literal
	backslashEscapes bool   // \n, \' etc. inside strings
	hashComments     bool   // # line comments
	bitLiterals      bool   // 0x1F, X'1F', 0b101, b'101'
	digitIdents      bool   // identifiers may start with a digit: 1abc
	stringConcat     bool   // adjacent string literals concatenate: 'a' 'b'

	// Parsing behavior
	dynamicKw     map[string]token.TokenType // Custom keywords: "regexp" -> REGEXP
	precedence    map[token.TokenType]int    // Operator precedence for expressions
	infixHandlers map[token.TokenType]spi.InfixHandler
	likeOps       map[token.TokenType]struct{} // LIKE-family pattern operators

	aggregates map[string]struct{}
	dataTypes  []string
}

// IsStringQuote reports whether ch opens a string literal.
func (d *Dialect) IsStringQuote(ch byte) bool {
	return ch != 0 && strings.IndexByte(d.stringQuotes, ch) >= 0
}

// IsIdentQuote reports whether ch opens a delimited identifier.
func (d *Dialect) IsIdentQuote(ch byte) bool {
	return ch != 0 && ch == d.Identifiers.Quote
}

// BackslashEscapes reports whether backslash escapes are honored in strings.
func (d *Dialect) BackslashEscapes() bool {
	return d.backslashEscapes
}

// HashComments reports whether # starts a line comment.
func (d *Dialect) HashComments() bool {
	return d.hashComments
}

// BitLiterals reports whether hexadecimal and bit-value literals are lexed.
func (d *Dialect) BitLiterals() bool {
	return d.bitLiterals
}

// DigitIdentifiers reports whether an unquoted identifier may begin with a
// digit, as long as it is not a valid number.
func (d *Dialect) DigitIdentifiers() bool {
	return d.digitIdents
}

// StringConcatenation reports whether adjacent string literals form one value.
func (d *Dialect) StringConcatenation() bool {
	return d.stringConcat
}

// NormalizeName normalizes an identifier according to dialect rules.
func (d *Dialect) NormalizeName(name string) string {
	switch d.Identifiers.Normalization {
	case NormUppercase:
		return strings.ToUpper(name)
	case NormLowercase, NormCaseInsensitive:
		return strings.ToLower(name)
	default:
		return name
	}
}

// QuoteIdentifier quotes an identifier using the dialect's quote character.
func (d *Dialect) QuoteIdentifier(name string) string {
	q := string(d.Identifiers.Quote)
	return q + strings.ReplaceAll(name, q, q+q) + q
}

// QuoteIdentifierIfNeeded quotes an identifier only when it would not lex
// back as the same bare identifier.
func (d *Dialect) QuoteIdentifierIfNeeded(name string) string {
	if d.IsReservedWord(name) || !isPlainIdentifier(name) {
		return d.QuoteIdentifier(name)
	}
	return name
}

// IsReservedWord returns true if the word needs quoting when used as an identifier.
func (d *Dialect) IsReservedWord(word string) bool {
	if token.IsReserved(word) {
		return true
	}
	_, ok := d.dynamicKw[strings.ToLower(word)]
	return ok
}

// LookupKeyword returns the token type for a dialect keyword.
// Returns IDENT and false if the word is not a dialect keyword.
func (d *Dialect) LookupKeyword(name string) (token.TokenType, bool) {
	if t, ok := d.dynamicKw[strings.ToLower(name)]; ok {
		return t, true
	}
	return token.IDENT, false
}

// Keywords returns the dialect keywords (sorted, upper case).
func (d *Dialect) Keywords() []string {
	kws := make([]string, 0, len(d.dynamicKw))
	for kw := range d.dynamicKw {
		kws = append(kws, strings.ToUpper(kw))
	}
	sort.Strings(kws)
	return kws
}

// Precedence returns the precedence level for an operator token.
// Returns 0 (PrecedenceNone) if the operator is not recognized.
func (d *Dialect) Precedence(t token.TokenType) int {
	if p, ok := d.precedence[t]; ok {
		return p
	}
	return spi.PrecedenceNone
}

// InfixHandler returns the custom infix handler for an operator token.
func (d *Dialect) InfixHandler(t token.TokenType) spi.InfixHandler {
	if h, ok := d.infixHandlers[t]; ok {
		return h
	}
	return nil
}

// IsLikeOperator reports whether t is a LIKE-family operator (LIKE, REGEXP, ...).
func (d *Dialect) IsLikeOperator(t token.TokenType) bool {
	_, ok := d.likeOps[t]
	return ok
}

// IsAggregate returns true if the function is an aggregate function.
func (d *Dialect) IsAggregate(name string) bool {
	_, ok := d.aggregates[strings.ToUpper(name)]
	return ok
}

// DataTypes returns all supported data types.
func (d *Dialect) DataTypes() []string {
	return d.dataTypes
}

// IsDataType reports whether name is a known column type.
func (d *Dialect) IsDataType(name string) bool {
	upper := strings.ToUpper(name)
	for _, t := range d.dataTypes {
		if t == upper {
			return true
		}
	}
	return false
}

// isPlainIdentifier reports whether s lexes as a single bare identifier.
func isPlainIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// ---------- Builder ----------

// Builder constructs a Dialect with a fluent API.
type Builder struct {
	d *Dialect
}

// NewDialect starts building a dialect with ANSI defaults: double-quoted
// identifiers and single-quoted strings.
func NewDialect(name string) *Builder {
	return &Builder{d: &Dialect{
		Name:          name,
		Identifiers:   IdentifierConfig{Quote: '"', Normalization: NormCaseInsensitive},
		stringQuotes:  "'",
		dynamicKw:     make(map[string]token.TokenType),
		precedence:    make(map[token.TokenType]int),
		infixHandlers: make(map[token.TokenType]spi.InfixHandler),
		likeOps:       make(map[token.TokenType]struct{}),
		aggregates:    make(map[string]struct{}),
	}}
}

// Extends copies the lexical and parsing configuration of a base dialect.
func (b *Builder) Extends(base *Dialect) *Builder {
	b.d.Identifiers = base.Identifiers
	b.d.stringQuotes = base.stringQuotes
	b.d.backslashEscapes = base.backslashEscapes
	b.d.hashComments = base.hashComments
	b.d.bitLiterals = base.bitLiterals
	b.d.digitIdents = base.digitIdents
	b.d.stringConcat = base.stringConcat
	for k, v := range base.dynamicKw {
		b.d.dynamicKw[k] = v
	}
	for k, v := range base.precedence {
		b.d.precedence[k] = v
	}
	for k, v := range base.infixHandlers {
		b.d.infixHandlers[k] = v
	}
	for k := range base.likeOps {
		b.d.likeOps[k] = struct{}{}
	}
	for k := range base.aggregates {
		b.d.aggregates[k] = struct{}{}
	}
	b.d.dataTypes = append(b.d.dataTypes, base.dataTypes...)
	return b
}

// Identifiers sets the identifier delimiter and normalization strategy.
func (b *Builder) Identifiers(quote byte, norm NormStrategy) *Builder {
	b.d.Identifiers = IdentifierConfig{Quote: quote, Normalization: norm}
	return b
}

// StringQuotes sets the characters that open string literals.
func (b *Builder) StringQuotes(quotes string) *Builder {
	b.d.stringQuotes = quotes
	return b
}

// BackslashEscapes enables backslash escapes inside string literals.
func (b *Builder) BackslashEscapes() *Builder {
	b.d.backslashEscapes = true
	return b
}

// HashComments enables # line comments.
func (b *Builder) HashComments() *Builder {
	b.d.hashComments = true
	return b
}

// BitLiterals enables hexadecimal (0x1F, X'1F') and bit-value (0b101,
// b'101') literals.
func (b *Builder) BitLiterals() *Builder {
	b.d.bitLiterals = true
	return b
}

// DigitIdentifiers allows unquoted identifiers that begin with a digit.
func (b *Builder) DigitIdentifiers() *Builder {
	b.d.digitIdents = true
	return b
}

// StringConcatenation makes adjacent string literals concatenate.
func (b *Builder) StringConcatenation() *Builder {
	b.d.stringConcat = true
	return b
}

// AddKeyword registers a dialect keyword and returns the builder.
// The token type is shared across dialects through token.Register.
func (b *Builder) AddKeyword(name string) *Builder {
	b.d.dynamicKw[strings.ToLower(name)] = token.Register(strings.ToUpper(name))
	return b
}

// AddInfix registers an infix operator with its precedence.
func (b *Builder) AddInfix(t token.TokenType, precedence int) *Builder {
	b.d.precedence[t] = precedence
	return b
}

// AddInfixWithHandler registers an infix operator parsed by a custom handler.
func (b *Builder) AddInfixWithHandler(t token.TokenType, precedence int, h spi.InfixHandler) *Builder {
	b.d.precedence[t] = precedence
	b.d.infixHandlers[t] = h
	return b
}

// AddLikeOperator registers a LIKE-family operator: `a op b`, `a NOT op b`.
func (b *Builder) AddLikeOperator(t token.TokenType) *Builder {
	b.d.precedence[t] = spi.PrecedenceComparison
	b.d.likeOps[t] = struct{}{}
	return b
}

// Aggregates adds aggregate function names.
func (b *Builder) Aggregates(names ...string) *Builder {
	for _, n := range names {
		b.d.aggregates[strings.ToUpper(n)] = struct{}{}
	}
	return b
}

// DataTypes adds supported column type names.
func (b *Builder) DataTypes(names ...string) *Builder {
	for _, n := range names {
		b.d.dataTypes = append(b.d.dataTypes, strings.ToUpper(n))
	}
	return b
}

// Build returns the configured dialect.
func (b *Builder) Build() *Dialect {
	return b.d
}
