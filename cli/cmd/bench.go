package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vippsas/sqlsanitize"
	"github.com/vippsas/sqlsanitize/go/mapfs"
	"github.com/vippsas/sqlsanitize/internal/debugprint"
)

var benchCorpusDir string
var benchSkipCache bool

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure sanitize throughput over a directory tree of .sql files",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 {
			_ = cmd.Help()
			return errors.New("too many arguments")
		}

		statements, err := loadSQLCorpus(benchCorpusDir)
		if err != nil {
			return err
		}
		if len(statements) == 0 {
			fmt.Println("no .sql files found under", benchCorpusDir)
			return nil
		}

		sanitizeOne := sqlsanitize.Get
		if benchSkipCache {
			sanitizeOne = sqlsanitize.Sanitize
		}

		start := time.Now()
		var distinctSummaries = map[string]struct{}{}
		for _, stmt := range statements {
			info := sanitizeOne(stmt)
			distinctSummaries[info.Summary] = struct{}{}
		}
		elapsed := time.Since(start)

		result := benchResult{
			Statements:        len(statements),
			DistinctSummaries: len(distinctSummaries),
			Elapsed:           elapsed,
			PerStatement:      elapsed / time.Duration(len(statements)),
			CacheLen:          sqlsanitize.CacheLen(),
		}
		debugprint.Dump("bench", result)

		fmt.Printf("statements:          %d\n", result.Statements)
		fmt.Printf("distinct summaries:  %d\n", result.DistinctSummaries)
		fmt.Printf("elapsed:             %s\n", result.Elapsed)
		fmt.Printf("per statement:       %s\n", result.PerStatement)
		fmt.Printf("cache entries:       %d / %d\n", result.CacheLen, sqlsanitize.CacheCapacity())
		return nil
	},
}

type benchResult struct {
	Statements        int
	DistinctSummaries int
	Elapsed           time.Duration
	PerStatement      time.Duration
	CacheLen          int
}

// loadSQLCorpus assembles every *.sql file under dir into a MapFS and reads
// each one, splitting its contents into one statement per
// semicolon-terminated chunk.
func loadSQLCorpus(dir string) ([]string, error) {
	corpus, err := mapfs.WalkSQLCorpus(dir)
	if err != nil {
		return nil, err
	}

	var statements []string
	for _, name := range corpus.Files() {
		contents, err := corpus.ReadFile(name)
		if err != nil {
			return nil, err
		}
		for _, stmt := range strings.Split(string(contents), ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt != "" {
				statements = append(statements, stmt)
			}
		}
	}
	return statements, nil
}

func init() {
	benchCmd.Flags().StringVarP(&benchCorpusDir, "dir", "d", ".", "directory tree to scan for *.sql files")
	benchCmd.Flags().BoolVar(&benchSkipCache, "no-cache", false, "bypass the result cache and measure the raw scanner")
	rootCmd.AddCommand(benchCmd)
}
