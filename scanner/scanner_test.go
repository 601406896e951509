package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextToken(t *testing.T) {
	test := func(input string, expectedTokenType TokenType, expected string, expectedKeyword ...string) func(*testing.T) {
		return func(t *testing.T) {
			s := New(input)
			tt := s.NextToken()
			assert.Equal(t, expectedTokenType, tt)
			assert.Equal(t, expected, s.Token())
			if len(expectedKeyword) == 1 {
				assert.Equal(t, expectedKeyword[0], s.Keyword())
			}
		}
	}

	t.Run("whitespace batched", test("   \t\nabc", OtherToken, "   \t\n"))
	t.Run("single other char", test("=abc", OtherToken, "="))
	t.Run("run of punctuation", test("<> = !abc", OtherToken, "<> = !"))

	t.Run("number plain", test("123", NumberLiteralToken, "123"))
	t.Run("number with trailing identifier stops", test("123abc", NumberLiteralToken, "123"))
	t.Run("number signed", test("+123", NumberLiteralToken, "+123"))
	t.Run("number negative decimal", test("-123.12", NumberLiteralToken, "-123.12"))
	t.Run("number leading dot", test(".25x", NumberLiteralToken, ".25"))
	t.Run("number signed leading dot", test("-.25x", NumberLiteralToken, "-.25"))
	t.Run("number exponent", test("1.5e-3rest", NumberLiteralToken, "1.5e-3"))
	t.Run("number dangling exponent", test("-123.12ea", NumberLiteralToken, "-123.12e"))
	t.Run("bare minus falls through", test("- 1", OtherToken, "- "))
	t.Run("bare dot falls through", test(". x", OtherToken, ". "))

	t.Run("hex literal", test("0xFF,", HexLiteralToken, "0xFF"))
	t.Run("hex literal uppercase marker", test("0Xa1 ", HexLiteralToken, "0Xa1"))
	t.Run("hex literal no digits", test("0x,", HexLiteralToken, "0x"))

	t.Run("string literal", test("'hello'after", StringLiteralToken, "'hello'"))
	t.Run("string literal doubled quote", test("'it''s'after", StringLiteralToken, "'it''s'"))
	t.Run("string literal empty", test("''", StringLiteralToken, "''"))
	t.Run("string literal unterminated", test("'hello", StringLiteralToken, "'hello"))

	t.Run("block comment", test("/* c */after", BlockCommentToken, "/* c */"))
	t.Run("block comment unterminated", test("/* c", BlockCommentToken, "/* c"))
	t.Run("line comment stops before newline", test("-- tail\nafter", LineCommentToken, "-- tail"))
	t.Run("line comment to eof", test("-- tail", LineCommentToken, "-- tail"))

	t.Run("identifier", test("foo_bar123 ", IdentifierToken, "foo_bar123"))
	t.Run("identifier with dot", test("t.col ", IdentifierToken, "t.col"))
	t.Run("identifier underscore start", test("_x ", IdentifierToken, "_x"))

	t.Run("operation keyword", test("SELECT name", OperationKeywordToken, "SELECT", "SELECT"))
	t.Run("operation keyword lowercase", test("select name", OperationKeywordToken, "select", "SELECT"))
	t.Run("operation keyword mixed case", test("SeLeCt name", OperationKeywordToken, "SeLeCt", "SELECT"))
	t.Run("selected is identifier, not keyword", test("SELECTED * FROM t", IdentifierToken, "SELECTED"))
	t.Run("ddl keyword", test("CREATE TABLE", DDLKeywordToken, "CREATE", "CREATE"))
	t.Run("clause keyword from", test("FROM t", ClauseKeywordToken, "FROM", "FROM"))
	t.Run("clause keyword into", test("INTO t", ClauseKeywordToken, "INTO", "INTO"))
	t.Run("clause keyword join", test("JOIN t", ClauseKeywordToken, "JOIN", "JOIN"))

	t.Run("eof", test("", EOFToken, ""))
}

func TestNextTokenAtEOFRepeats(t *testing.T) {
	s := New("x")
	assert.Equal(t, IdentifierToken, s.NextToken())
	assert.Equal(t, EOFToken, s.NextToken())
	assert.Equal(t, EOFToken, s.NextToken())
	assert.True(t, s.AtEOF())
}

func TestMatchKeywordWordBoundary(t *testing.T) {
	assert.True(t, matchKeyword("SELECT x", 0, "SELECT"))
	assert.False(t, matchKeyword("SELECTED x", 0, "SELECT"))
	assert.True(t, matchKeyword("SELECT", 0, "SELECT"))
	assert.False(t, matchKeyword("SEL", 0, "SELECT"))
}
