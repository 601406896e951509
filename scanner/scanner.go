// Package scanner implements the character-level tokenizer that the
// sanitize engine walks left-to-right. It recognizes exactly the spans the
// engine needs to distinguish — comments, literals, the small set of DML/DDL
// verbs and clause keywords that shape a query summary, identifiers, and
// everything else — and nothing more: no AST, no expression grammar, no
// dialect-specific syntax beyond the MySQL/Postgres/T-SQL overlap.
package scanner

import (
	"unicode/utf8"

	"github.com/smasher164/xid"
)

// Scanner is a cursor over a SQL statement. It has no lexer/parser split:
// callers drive NextToken() directly and inspect Token()/TokenType()/
// Keyword() after each call, the same way sqlparser.Scanner is driven
// directly by its caller rather than through an intermediate token stream.
type Scanner struct {
	input string

	startIndex int
	curIndex   int
	tokenType  TokenType

	// keyword holds the canonical upper-case spelling of the match when
	// tokenType is OperationKeywordToken, DDLKeywordToken, or
	// ClauseKeywordToken. Empty otherwise.
	keyword string
}

// New returns a Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Token returns the raw source text of the last token, original case
// preserved.
func (s *Scanner) Token() string {
	return s.input[s.startIndex:s.curIndex]
}

// TokenType returns the type of the last token produced by NextToken.
func (s *Scanner) TokenType() TokenType {
	return s.tokenType
}

// Keyword returns the canonical (upper-case) spelling of the matched
// keyword for Operation/DDL/Clause keyword tokens, or "" otherwise.
func (s *Scanner) Keyword() string {
	return s.keyword
}

// Pos returns the scanner's current byte offset into input.
func (s *Scanner) Pos() int {
	return s.curIndex
}

// AtEOF reports whether the scanner has consumed all of input.
func (s *Scanner) AtEOF() bool {
	return s.curIndex >= len(s.input)
}

// NextToken scans the next token and advances the cursor past it. At end of
// input it returns EOFToken and leaves the cursor unmoved on every further
// call, so callers may loop on NextToken without a separate EOF check.
func (s *Scanner) NextToken() TokenType {
	s.startIndex = s.curIndex
	s.keyword = ""

	input := s.input
	i := s.curIndex
	n := len(input)

	if i >= n {
		s.tokenType = EOFToken
		return s.tokenType
	}

	switch {
	case input[i] == '/' && i+1 < n && input[i+1] == '*':
		s.scanBlockComment()
		return s.tokenType
	case input[i] == '-' && i+1 < n && input[i+1] == '-':
		s.scanLineComment()
		return s.tokenType
	case input[i] == '\'':
		s.scanStringLiteral()
		return s.tokenType
	case input[i] == '0' && i+1 < n && (input[i+1] == 'x' || input[i+1] == 'X'):
		s.scanHexLiteral()
		return s.tokenType
	}

	if end, ok := scanNumberAt(input, i); ok {
		s.curIndex = end
		s.tokenType = NumberLiteralToken
		return s.tokenType
	}

	r, _ := utf8.DecodeRuneInString(input[i:])
	if xid.Start(r) || r == '_' {
		if kw := matchKeywordSet(input, i, OperationKeywords); kw != "" {
			s.curIndex = i + len(kw)
			s.keyword = kw
			s.tokenType = OperationKeywordToken
			return s.tokenType
		}
		if kw := matchKeywordSet(input, i, DDLKeywords); kw != "" {
			s.curIndex = i + len(kw)
			s.keyword = kw
			s.tokenType = DDLKeywordToken
			return s.tokenType
		}
		if kw := matchKeywordSet(input, i, ClauseKeywords); kw != "" {
			s.curIndex = i + len(kw)
			s.keyword = kw
			s.tokenType = ClauseKeywordToken
			return s.tokenType
		}
		s.scanIdentifier()
		return s.tokenType
	}

	s.scanOther()
	return s.tokenType
}

// scanBlockComment assumes the cursor is at the opening '/'.
func (s *Scanner) scanBlockComment() {
	i := s.curIndex + 2
	n := len(s.input)
	for i < n {
		if s.input[i] == '*' && i+1 < n && s.input[i+1] == '/' {
			i += 2
			s.curIndex = i
			s.tokenType = BlockCommentToken
			return
		}
		i++
	}
	// unterminated: runs to end of input, same as a terminated comment as
	// far as the engine is concerned (nothing is emitted either way).
	s.curIndex = n
	s.tokenType = BlockCommentToken
}

// scanLineComment assumes the cursor is at the opening '-'. It stops before
// (not consuming) a trailing \r or \n so that newline survives as a
// separate, later token in sanitized output.
func (s *Scanner) scanLineComment() {
	i := s.curIndex + 2
	n := len(s.input)
	for i < n && s.input[i] != '\r' && s.input[i] != '\n' {
		i++
	}
	s.curIndex = i
	s.tokenType = LineCommentToken
}

// scanStringLiteral assumes the cursor is at the opening '. A doubled ''
// inside the literal is an escaped quote, not a terminator.
func (s *Scanner) scanStringLiteral() {
	i := s.curIndex + 1
	n := len(s.input)
	for i < n {
		if s.input[i] == '\'' {
			if i+1 < n && s.input[i+1] == '\'' {
				i += 2
				continue
			}
			i++
			s.curIndex = i
			s.tokenType = StringLiteralToken
			return
		}
		i++
	}
	// unterminated: the whole remainder becomes the literal span; the
	// engine still emits exactly one ? for it.
	s.curIndex = n
	s.tokenType = StringLiteralToken
}

// scanHexLiteral assumes the cursor is at '0' with 'x'/'X' following. A
// bare 0x with no hex digits after it is still a matched span ("0x" alone).
func (s *Scanner) scanHexLiteral() {
	i := s.curIndex + 2
	n := len(s.input)
	for i < n && isHexDigit(s.input[i]) {
		i++
	}
	s.curIndex = i
	s.tokenType = HexLiteralToken
}

// scanIdentifier assumes the first rune at the cursor has already been
// confirmed as an identifier start.
func (s *Scanner) scanIdentifier() {
	i := s.curIndex
	_, w := utf8.DecodeRuneInString(s.input[i:])
	i += w
	n := len(s.input)
	for i < n {
		r, w := utf8.DecodeRuneInString(s.input[i:])
		if xid.Continue(r) || r == '_' || r == '.' {
			i += w
		} else {
			break
		}
	}
	s.curIndex = i
	s.tokenType = IdentifierToken
}

// scanOther consumes a maximal run of characters that do not start any
// higher-precedence rule. Batching this run (instead of emitting one
// OtherToken per byte) produces the identical sanitized output with far
// fewer token round-trips, since none of these rules care about run length.
func (s *Scanner) scanOther() {
	i := s.curIndex
	n := len(s.input)

	_, w := utf8.DecodeRuneInString(s.input[i:])
	if w == 0 {
		w = 1
	}
	i += w

	for i < n && !startsRule(s.input, i) {
		_, w := utf8.DecodeRuneInString(s.input[i:])
		if w == 0 {
			w = 1
		}
		i += w
	}
	s.curIndex = i
	s.tokenType = OtherToken
}

// startsRule reports whether position i begins a comment, literal, or
// identifier/keyword span — i.e. anything scanOther must stop before.
func startsRule(input string, i int) bool {
	n := len(input)
	if i >= n {
		return true
	}
	c := input[i]
	switch {
	case c == '\'':
		return true
	case c == '/' && i+1 < n && input[i+1] == '*':
		return true
	case c == '-' && i+1 < n && input[i+1] == '-':
		return true
	case c == '0' && i+1 < n && (input[i+1] == 'x' || input[i+1] == 'X'):
		return true
	}
	if _, ok := scanNumberAt(input, i); ok {
		return true
	}
	r, _ := utf8.DecodeRuneInString(input[i:])
	return xid.Start(r) || r == '_'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// scanNumberAt reports whether a numeric literal begins at i, and if so,
// the end of its maximal span. The grammar: an optional leading sign only
// if immediately followed by a digit or '.'; an optional leading '.' only
// if immediately followed by a digit; then a mandatory digit; then a
// maximal run of further digits, at most one more '.' (if one wasn't
// already consumed), and at most one exponent introducer e/E optionally
// followed by a sign.
func scanNumberAt(input string, i int) (end int, ok bool) {
	n := len(input)
	sawDot := false

	if i < n && (input[i] == '+' || input[i] == '-') {
		if i+1 < n && (isDigit(input[i+1]) || input[i+1] == '.') {
			i++
		} else {
			return 0, false
		}
	}

	if i < n && input[i] == '.' {
		if i+1 < n && isDigit(input[i+1]) {
			sawDot = true
			i++
		} else {
			return 0, false
		}
	}

	if i >= n || !isDigit(input[i]) {
		return 0, false
	}
	i++

	sawExp := false
	for i < n {
		c := input[i]
		switch {
		case isDigit(c):
			i++
		case c == '.' && !sawDot:
			sawDot = true
			i++
		case (c == 'e' || c == 'E') && !sawExp:
			sawExp = true
			i++
			if i < n && (input[i] == '+' || input[i] == '-') {
				i++
			}
		default:
			return i, true
		}
	}
	return i, true
}
