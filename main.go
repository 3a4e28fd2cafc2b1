package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Accepted puzzle ranges.
const (
	minDay  = 1
	maxDay  = 31
	minYear = 2015
	maxYear = 2024
)

func main() {
	_ = godotenv.Load()
	log := newLogger()
	if err := run(context.Background(), log, os.Args[1:]); err != nil {
		log.err(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger, args []string) error {
	cmd := newRootCmd(log)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newRootCmd(log *logger) *cobra.Command {
	var (
		req        problemRequest
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "aoc-fetch -d DAY -y YEAR [-s SESSION] [-t TEMPLATE]",
		Short: "Download the input of an Advent of Code problem",
		Long: `Downloads the input for a particular day/year of Advent of Code.

It creates a folder named day-<day>-<year> in the current directory with
the input saved as input.txt. If a template folder is given, everything
inside it is copied into day-<day>-<year> as well.

The session cookie passed with -s is saved in .session.lock and reused by
later runs. If .session.lock is missing, -s must be provided.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			log.setVerbose(verbose)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			log.debugf("config: base_url=%s session_file=%s timeout=%s", cfg.BaseURL, cfg.SessionFile, cfg.Timeout)

			_, err = newProblemFetcher(cfg, ".", log).run(cmd.Context(), req)
			return err
		},
	}

	f := cmd.Flags()
	f.SortFlags = false
	f.VarP(newBoundedInt(&req.Day, minDay, maxDay), "day", "d", "the day of the problem (1-31)")
	f.VarP(newBoundedInt(&req.Year, minYear, maxYear), "year", "y", "the year of the problem (2015-2024)")
	f.StringVarP(&req.Session, "session", "s", "", "session cookie; saved in .session.lock for future runs")
	f.StringVarP(&req.TemplatePath, "template", "t", "", "path to a template folder copied into the problem folder")
	f.StringVar(&configPath, "config", defaultConfigFile, "path to an optional JSON config file")
	f.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

// boundedInt is a pflag.Value that rejects integers outside [min, max].
type boundedInt struct {
	val      *int
	min, max int
}

var _ pflag.Value = (*boundedInt)(nil)

func newBoundedInt(p *int, lo, hi int) *boundedInt {
	return &boundedInt{val: p, min: lo, max: hi}
}

func (b *boundedInt) String() string {
	if b.val == nil {
		return "0"
	}
	return strconv.Itoa(*b.val)
}

func (b *boundedInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	if n < b.min || n > b.max {
		return fmt.Errorf("%d is not in %d..=%d", n, b.min, b.max)
	}
	*b.val = n
	return nil
}

func (b *boundedInt) Type() string { return "int" }
