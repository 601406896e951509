package scanner

// OperationKeywords are DML verbs that both appear in the sanitized SQL and
// become the first word of the summary.
var OperationKeywords = []string{"SELECT", "UPDATE", "INSERT", "DELETE"}

// DDLKeywords are schema verbs; their summary handling differs from
// OperationKeywords (whitespace-normalized append, optional object capture).
var DDLKeywords = []string{"CREATE", "ALTER", "DROP"}

// DDLObjectKeywords are attempted, in this order, right after a DDL verb and
// its following whitespace.
var DDLObjectKeywords = []string{"TABLE", "INDEX", "PROCEDURE", "VIEW", "DATABASE"}

// ClauseKeywords arm capture of the next identifier as a summary target.
// FROM additionally arms in_from_clause so commas re-arm capture.
const (
	KeywordInto = "INTO"
	KeywordFrom = "FROM"
	KeywordJoin = "JOIN"
)

var ClauseKeywords = []string{KeywordInto, KeywordFrom, KeywordJoin}

// isWordByte reports whether b can appear inside a keyword/identifier
// ([A-Za-z0-9_]), used to enforce the word-boundary rule on keyword matches.
func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

// upperByte folds an ASCII letter to upper case, leaving other bytes as-is.
func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// matchKeyword reports whether kw (already upper-case) matches input at pos,
// case-insensitively, and is word-bounded: the byte following the match, if
// any, must not be a word byte. kw itself must be all-ASCII-letters.
func matchKeyword(input string, pos int, kw string) bool {
	if pos+len(kw) > len(input) {
		return false
	}
	for i := 0; i < len(kw); i++ {
		if upperByte(input[pos+i]) != kw[i] {
			return false
		}
	}
	end := pos + len(kw)
	if end < len(input) && isWordByte(input[end]) {
		return false
	}
	return true
}

// matchKeywordSet tries each candidate (assumed upper-case) in order and
// returns the one that matches at pos, or "" if none do.
func matchKeywordSet(input string, pos int, candidates []string) string {
	for _, kw := range candidates {
		if matchKeyword(input, pos, kw) {
			return kw
		}
	}
	return ""
}
