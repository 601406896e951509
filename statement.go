// Package sqlsanitize sanitizes a raw SQL statement into a placeholder'd
// form safe to attach to traces and logs, and derives a short, low-
// cardinality summary (operation plus primary target) suitable as a span
// name. It is a single-pass character scanner, not a SQL parser: there is
// no AST, no schema resolution, and no dialect-specific grammar beyond the
// MySQL/Postgres/T-SQL overlap the scanner package recognizes.
package sqlsanitize

// StatementInfo is the immutable result of sanitizing one SQL statement.
// Both fields may be empty; a zero StatementInfo is the result for a nil
// or absent input.
type StatementInfo struct {
	SanitizedSQL string
	Summary      string
}
