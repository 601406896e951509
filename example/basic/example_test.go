package example

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vippsas/sqlsanitize"
)

func TestExampleStatementIsSanitized(t *testing.T) {
	info := sqlsanitize.Get(`SELECT * FROM orders WHERE customer_id = 42`)
	assert.Equal(t, "SELECT orders", info.Summary)
	assert.Equal(t, "SELECT * FROM orders WHERE customer_id = ?", info.SanitizedSQL)
}
