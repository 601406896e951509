package scanner

// TokenType identifies the kind of span the scanner last consumed. The
// sanitize engine switches on this to decide whether a span is copied
// verbatim, replaced by a placeholder, or dropped.
type TokenType int

const (
	// EOFToken means the scanner is at the end of input; Token() is empty.
	EOFToken TokenType = iota + 1

	// BlockCommentToken is a /* ... */ span, dropped by the engine.
	BlockCommentToken
	// LineCommentToken is a -- ... span up to (not including) the next
	// newline, dropped by the engine.
	LineCommentToken

	// StringLiteralToken is a '...' span, including doubled '' escapes.
	StringLiteralToken
	// HexLiteralToken is a 0x/0X span plus any following hex digits.
	HexLiteralToken
	// NumberLiteralToken is a numeric literal per the grammar in scanNumberAt.
	NumberLiteralToken

	// OperationKeywordToken is SELECT/UPDATE/INSERT/DELETE.
	OperationKeywordToken
	// DDLKeywordToken is CREATE/ALTER/DROP.
	DDLKeywordToken
	// DDLObjectKeywordToken names TABLE/INDEX/PROCEDURE/VIEW/DATABASE. The
	// Scanner never returns it: those words scan as IdentifierToken, and the
	// engine recognizes them itself after a DDLKeywordToken.
	DDLObjectKeywordToken
	// ClauseKeywordToken is INTO/FROM/JOIN.
	ClauseKeywordToken

	// IdentifierToken is a Unicode identifier-start rune or '_', followed by
	// any run of identifier-continue runes, '_' or '.' (via smasher164/xid).
	IdentifierToken

	// OtherToken is a maximal run of characters not matched by a rule above.
	OtherToken
)

func (tt TokenType) String() string {
	return tokenToDescription[tt]
}

func (tt TokenType) GoString() string {
	return tokenToDescription[tt]
}

func init() {
	// make sure we panic if a description isn't declared
	for tt := EOFToken; tt <= OtherToken; tt++ {
		if tokenToDescription[tt] == "" {
			panic("scanner: tokenToDescription missing an entry")
		}
	}
}

var tokenToDescription = map[TokenType]string{
	EOFToken: "EOFToken",

	BlockCommentToken: "BlockCommentToken",
	LineCommentToken:  "LineCommentToken",

	StringLiteralToken: "StringLiteralToken",
	HexLiteralToken:    "HexLiteralToken",
	NumberLiteralToken: "NumberLiteralToken",

	OperationKeywordToken: "OperationKeywordToken",
	DDLKeywordToken:       "DDLKeywordToken",
	DDLObjectKeywordToken: "DDLObjectKeywordToken",
	ClauseKeywordToken:    "ClauseKeywordToken",

	IdentifierToken: "IdentifierToken",
	OtherToken:      "OtherToken",
}
