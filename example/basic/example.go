// Package example is a minimal, runnable demonstration of the sqlsanitize
// package: sanitizing a statement and reading back its summary.
package example

import (
	"fmt"

	"github.com/vippsas/sqlsanitize"
)

func Run() {
	info := sqlsanitize.Get(`SELECT * FROM orders WHERE customer_id = 42`)
	fmt.Println(info.Summary)
	fmt.Println(info.SanitizedSQL)
}
