package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/proxy"
	"gopkg.in/yaml.v3"
)

// DatabaseConfig names one database a `watch` invocation polls for
// in-flight query text. Dialect is inferred from the connection string's
// scheme: sqlserver:// selects go-mssqldb, postgres(ql):// selects pgx.
type DatabaseConfig struct {
	Connection string `yaml:"connection"`
}

// Open opens dbcfg.Connection through the driver matching its scheme. SQL
// Server connections are routed through a SOCKS5 proxy when
// SQLSANITIZE_SOCKS is set; Postgres connections always connect directly.
func (dbcfg DatabaseConfig) Open(ctx context.Context, logger logrus.FieldLogger) (*sql.DB, error) {
	switch {
	case strings.HasPrefix(dbcfg.Connection, "sqlserver://"):
		return openSocks5MSSQL(dbcfg.Connection)
	case strings.HasPrefix(dbcfg.Connection, "postgres://"), strings.HasPrefix(dbcfg.Connection, "postgresql://"):
		return sql.Open("pgx", dbcfg.Connection)
	default:
		return nil, errors.New("expected URI-style dsn; sqlserver:// for SQL Server or postgres:// for Postgres")
	}
}

// openSocks5MSSQL mirrors stdlib's sql.Open("sqlserver", ...) but, when
// SQLSANITIZE_SOCKS names a proxy address, dials through it instead of
// connecting directly — useful when the target database is only reachable
// from inside a network the CLI's host isn't on.
func openSocks5MSSQL(dsn string) (*sql.DB, error) {
	connector, err := mssql.NewConnector(dsn)
	if err != nil {
		return nil, err
	}

	if socksAddr := os.Getenv("SQLSANITIZE_SOCKS"); socksAddr != "" {
		dialer, err := proxy.SOCKS5("tcp", socksAddr, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("could not connect with SOCKS5 to %s: %w", socksAddr, err)
		}
		contextDialer, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return nil, errors.New("SOCKS5 dialer does not support DialContext")
		}
		connector.Dialer = contextDialer
	}

	return sql.OpenDB(connector), nil
}

// Config is the top-level sqlsanitize.yaml shape: the in-process cache
// capacity, an optional service name attached to watch output, and the
// databases a watch invocation can target.
type Config struct {
	CacheCapacity int                       `yaml:"cachecapacity"`
	ServiceName   string                    `yaml:"servicename"`
	Databases     map[string]DatabaseConfig `yaml:"databases"`
}

// LoadConfig reads and parses the file named by the --config flag.
func LoadConfig() (Config, error) {
	var result Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("no config file found at %s", configPath)
	}

	contents, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(contents, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}
