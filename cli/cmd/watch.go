package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgx/v5/stdlib"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vippsas/sqlsanitize"
)

var watchDatabase string
var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll a database's currently executing queries and print their sanitized form",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 {
			_ = cmd.Help()
			return errors.New("too many arguments")
		}

		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		dbcfg, ok := cfg.Databases[watchDatabase]
		if !ok {
			return errors.New("no database named " + watchDatabase + " in config")
		}
		if cfg.CacheCapacity > 0 {
			sqlsanitize.SetCacheCapacity(cfg.CacheCapacity)
		}

		var logger logrus.FieldLogger = logrus.StandardLogger()
		if cfg.ServiceName != "" {
			logger = logrus.StandardLogger().WithField("service", cfg.ServiceName)
		}

		ctx := context.Background()
		db, err := dbcfg.Open(ctx, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		ticker := time.NewTicker(watchInterval)
		defer ticker.Stop()
		for range ticker.C {
			if err := pollOnce(ctx, db, logger); err != nil {
				logger.WithError(err).Warn("poll failed")
			}
		}
		return nil
	},
}

// queryTextFor picks the dialect-specific statement that exposes
// currently-executing query text, switching on db's underlying driver.
func queryTextFor(db DB) (string, error) {
	switch db.Driver().(type) {
	case *mssql.Driver:
		return `select text from sys.dm_exec_requests r
			cross apply sys.dm_exec_sql_text(r.sql_handle)
			where session_id != @@spid`, nil
	case *stdlib.Driver:
		return `select query from pg_stat_activity where pid != pg_backend_pid() and query != ''`, nil
	default:
		return "", errors.New("unsupported driver for watch")
	}
}

func pollOnce(ctx context.Context, db DB, logger logrus.FieldLogger) error {
	qs, err := queryTextFor(db)
	if err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, qs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var rawSQL string
		if err := rows.Scan(&rawSQL); err != nil {
			return err
		}
		if rawSQL == "" {
			continue
		}
		traceID := uuid.Must(uuid.NewV4())
		info := sqlsanitize.Get(rawSQL)
		logger.WithFields(logrus.Fields{
			"trace_id": traceID.String(),
			"summary":  info.Summary,
		}).Info(info.SanitizedSQL)
	}
	return rows.Err()
}

func init() {
	watchCmd.Flags().StringVar(&watchDatabase, "database", "", "name of the database in the config file to poll")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 2*time.Second, "polling interval")
	_ = watchCmd.MarkFlagRequired("database")
	rootCmd.AddCommand(watchCmd)
}
