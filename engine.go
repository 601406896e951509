package sqlsanitize

import (
	"bytes"
	"strings"

	"github.com/vippsas/sqlsanitize/scanner"
)

// scanState is the transient per-call state the engine threads through a
// single sanitize pass: the two output buffers, and the two flags that
// decide whether the next identifier-like token joins the summary.
type scanState struct {
	sanitized *bytes.Buffer
	summary   *bytes.Buffer

	// captureNextTokenAsTarget: when true, the next identifier token is
	// also appended to summary (space-prefixed), and the flag is cleared.
	captureNextTokenAsTarget bool

	// inFromClause: when true, a comma at identifier-end re-arms
	// captureNextTokenAsTarget so comma-separated FROM targets all land
	// in the summary.
	inFromClause bool
}

// appendSummaryWord appends word to summary, space-prefixed unless summary
// is still empty.
func (st *scanState) appendSummaryWord(word string) {
	if st.summary.Len() > 0 {
		st.summary.WriteByte(' ')
	}
	st.summary.WriteString(word)
}

func isAllWhitespace(s string) bool {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
	}) == ""
}

// Sanitize runs the uncached engine directly, bypassing the result cache.
// It is exposed primarily for testing; production callers should use Get.
func Sanitize(input string) StatementInfo {
	return sanitize(input)
}

// sanitize is the pure, total scanning engine: comments are dropped,
// literals are replaced by a single ?, and a low-cardinality summary is
// built alongside. It never fails, for any input including the empty
// string.
func sanitize(input string) StatementInfo {
	if input == "" {
		return StatementInfo{}
	}

	sanBuf, releaseSan := acquireBuffer(sanitizedScratch, len(input))
	defer releaseSan()
	sumBuf, releaseSum := acquireBuffer(summaryScratch, len(input)/4+16)
	defer releaseSum()

	st := &scanState{sanitized: sanBuf, summary: sumBuf}
	scnr := scanner.New(input)

	for {
		tt := scnr.NextToken()
		if tt == scanner.EOFToken {
			break
		}
		st.step(scnr, tt)
	}

	return StatementInfo{
		SanitizedSQL: sanBuf.String(),
		Summary:      sumBuf.String(),
	}
}

// step applies one token to the scan state, following the fixed rule
// precedence of the top-level scan: comment, literal, operation keyword,
// DDL keyword, clause keyword, identifier, anything else.
func (st *scanState) step(scnr *scanner.Scanner, tt scanner.TokenType) {
	switch tt {
	case scanner.BlockCommentToken, scanner.LineCommentToken:
		// dropped from sanitized, invisible to summary.

	case scanner.StringLiteralToken, scanner.HexLiteralToken, scanner.NumberLiteralToken:
		st.sanitized.WriteByte('?')

	case scanner.OperationKeywordToken:
		kw := scnr.Token()
		st.sanitized.WriteString(kw)
		st.appendSummaryWord(kw)
		st.inFromClause = false
		// UPDATE names its target directly (UPDATE t SET ...), with no
		// FROM/INTO/JOIN in between, so it alone arms capture here;
		// SELECT/INSERT/DELETE rely on the clause keyword that follows.
		st.captureNextTokenAsTarget = scnr.Keyword() == "UPDATE"

	case scanner.DDLKeywordToken:
		st.handleDDL(scnr)

	case scanner.ClauseKeywordToken:
		kw := scnr.Token()
		st.sanitized.WriteString(kw)
		switch scnr.Keyword() {
		case scanner.KeywordInto:
			st.appendSummaryWord(kw)
			st.captureNextTokenAsTarget = true
		case scanner.KeywordFrom:
			st.captureNextTokenAsTarget = true
			st.inFromClause = true
		case scanner.KeywordJoin:
			st.captureNextTokenAsTarget = true
		}

	case scanner.IdentifierToken:
		st.handleIdentifier(scnr.Token())

	default: // scanner.OtherToken
		text := scnr.Token()
		st.sanitized.WriteString(text)
		if st.inFromClause && strings.Contains(text, ",") {
			st.captureNextTokenAsTarget = true
		}
	}
}

func (st *scanState) handleIdentifier(text string) {
	st.sanitized.WriteString(text)
	if st.captureNextTokenAsTarget {
		st.appendSummaryWord(text)
		st.captureNextTokenAsTarget = false
	}
}

// handleDDL implements the CREATE/ALTER/DROP path: the verb is copied
// verbatim to sanitized and appended to summary; any whitespace/comments
// that follow are consumed (sanitized only) without committing anything
// to summary yet; then one of TABLE/INDEX/PROCEDURE/VIEW/DATABASE is
// attempted at the resulting position. A hit arms target capture and is
// itself appended to summary; a miss leaves summary with the verb alone
// and resumes normal top-level scanning from wherever the cursor sits.
func (st *scanState) handleDDL(scnr *scanner.Scanner) {
	verb := scnr.Token()
	st.sanitized.WriteString(verb)
	st.appendSummaryWord(verb)

	for {
		tt := scnr.NextToken()
		switch tt {
		case scanner.EOFToken:
			return
		case scanner.BlockCommentToken, scanner.LineCommentToken:
			continue
		case scanner.OtherToken:
			text := scnr.Token()
			if isAllWhitespace(text) {
				// Consumed verbatim into sanitized, but left out of summary
				// until it's known whether an object keyword follows.
				st.sanitized.WriteString(text)
				continue
			}
			// Not pure whitespace: ends the DDL lookahead window: run it
			// through the ordinary dispatch and stop.
			st.step(scnr, tt)
			return
		case scanner.IdentifierToken:
			if tok := scnr.Token(); isDDLObjectKeyword(tok) {
				st.sanitized.WriteString(tok)
				st.appendSummaryWord(tok)
				st.captureNextTokenAsTarget = true
				return
			}
			st.step(scnr, tt)
			return
		default:
			st.step(scnr, tt)
			return
		}
	}
}

func isDDLObjectKeyword(token string) bool {
	for _, kw := range scanner.DDLObjectKeywords {
		if strings.EqualFold(token, kw) {
			return true
		}
	}
	return false
}
