package cmd

import (
	"context"
	"database/sql"
	"database/sql/driver"
)

// DB is the narrow slice of *sql.DB that watch needs: enough to run the
// dialect-specific poll query and inspect which driver is underneath it.
// Defining it here (rather than taking *sql.DB directly) keeps pollOnce
// testable against a fake.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	Driver() driver.Driver
}

var _ DB = &sql.DB{}
