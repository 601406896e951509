package sqlsanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeScenarios(t *testing.T) {
	test := func(input, sanitized, summary string) func(*testing.T) {
		return func(t *testing.T) {
			got := Sanitize(input)
			assert.Equal(t, sanitized, got.SanitizedSQL)
			assert.Equal(t, summary, got.Summary)
		}
	}

	t.Run("select from", test(
		"SELECT * FROM users WHERE id = 42",
		"SELECT * FROM users WHERE id = ?",
		"SELECT users",
	))

	t.Run("select from two tables", test(
		"SELECT a.x, b.y FROM a, b WHERE a.id = b.id",
		"SELECT a.x, b.y FROM a, b WHERE a.id = b.id",
		"SELECT a b",
	))

	t.Run("insert into", test(
		"INSERT INTO orders (id, total) VALUES (1, 9.99)",
		"INSERT INTO orders (id, total) VALUES (?, ?)",
		"INSERT INTO orders",
	))

	t.Run("update", test(
		"UPDATE Products SET price = 100 WHERE id = 1",
		"UPDATE Products SET price = ? WHERE id = ?",
		"UPDATE Products",
	))

	t.Run("delete from", test(
		"DELETE FROM sessions WHERE expired = true",
		"DELETE FROM sessions WHERE expired = true",
		"DELETE sessions",
	))

	t.Run("create table", test(
		"CREATE TABLE widgets (id INT)",
		"CREATE TABLE widgets (id INT)",
		"CREATE TABLE widgets",
	))

	t.Run("comments and literals dropped then resumed", test(
		"SELECT 0xFF, 1.5e-3, -.25 /* c */ -- tail\nFROM t",
		"SELECT ?, ?, ?  \nFROM t",
		"SELECT t",
	))

	t.Run("doubled quote string literal", test(
		"SELECT 'it''s' FROM t",
		"SELECT ? FROM t",
		"SELECT t",
	))
}

func TestSanitizeEdgeCases(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		got := Sanitize("")
		assert.Equal(t, StatementInfo{}, got)
	})

	t.Run("unterminated string still one placeholder", func(t *testing.T) {
		got := Sanitize("SELECT 'oops")
		assert.Equal(t, "SELECT ?", got.SanitizedSQL)
	})

	t.Run("bare 0x with no digits", func(t *testing.T) {
		got := Sanitize("SELECT 0x FROM t")
		assert.Equal(t, "SELECT ? FROM t", got.SanitizedSQL)
	})

	t.Run("selected is not the select keyword", func(t *testing.T) {
		got := Sanitize("SELECTED * FROM t")
		assert.Equal(t, "t", got.Summary)
	})

	t.Run("lowercase operation keyword still recognized", func(t *testing.T) {
		got := Sanitize("select * from t")
		assert.Equal(t, "select t", got.Summary)
	})

	t.Run("unknown ddl object leaves summary at verb", func(t *testing.T) {
		got := Sanitize("DROP SCHEMA foo")
		assert.Equal(t, "DROP", got.Summary)
	})

	t.Run("alter table", func(t *testing.T) {
		got := Sanitize("ALTER TABLE widgets ADD COLUMN note TEXT")
		assert.Equal(t, "ALTER TABLE widgets", got.Summary)
	})

	t.Run("join arms capture", func(t *testing.T) {
		got := Sanitize("SELECT * FROM a JOIN b ON a.id = b.id")
		assert.Equal(t, "SELECT a b", got.Summary)
	})

	t.Run("purity: same input same output", func(t *testing.T) {
		a := Sanitize("SELECT * FROM t WHERE x = 1")
		b := Sanitize("SELECT * FROM t WHERE x = 1")
		assert.Equal(t, a, b)
	})
}
