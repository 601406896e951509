package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vippsas/sqlsanitize"
	"github.com/vippsas/sqlsanitize/internal/debugprint"
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize [file]",
	Short: "Sanitize one SQL statement per line from a file, or stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			_ = cmd.Help()
			return errors.New("too many arguments")
		}

		var in io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			info := sqlsanitize.Get(line)
			debugprint.Dump("sanitize", info)
			fmt.Printf("%s\t%s\n", info.Summary, info.SanitizedSQL)
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(sanitizeCmd)
}
