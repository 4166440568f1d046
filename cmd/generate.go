package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kilianp07/pmrs/config"
	"github.com/kilianp07/pmrs/core/band"
	"github.com/kilianp07/pmrs/core/schedule"
	"github.com/kilianp07/pmrs/infra/logger"
	"github.com/kilianp07/pmrs/infra/metrics"
	"github.com/kilianp07/pmrs/pkg/export"
)

// DateHint is printed when a date argument cannot be parsed.
const DateHint = "Please ensure dates are in the format YYYY-MM-DD"

type generateOptions struct {
	days   int
	start  string
	band   string
	output string
	dir    string
	stdout bool
}

func newGenerateCmd(load func() (*config.Config, error)) *cobra.Command {
	var opts generateOptions
	c := &cobra.Command{
		Use:   "generate <user1-dob> <user2-dob>",
		Short: "Generate a schedule from two dates of birth",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			overrideSchedule(cmd, &cfg.Schedule, opts)
			err = runGenerate(cmd, cfg, args[0], args[1], opts)
			if errors.Is(err, schedule.ErrInvalidInput) {
				fmt.Fprintln(cmd.ErrOrStderr(), DateHint)
			}
			return err
		},
	}
	f := c.Flags()
	f.IntVarP(&opts.days, "days", "d", 0, "days in the rotation (default from config, 14)")
	f.StringVar(&opts.start, "start", "", "calendar date of day 1, YYYY-MM-DD (default today)")
	f.StringVarP(&opts.band, "band", "b", "", "band profile name")
	f.StringVarP(&opts.output, "output", "o", "", "formats: text, csv, chirp, json or all, comma separated")
	f.StringVar(&opts.dir, "dir", "", "output directory")
	f.BoolVar(&opts.stdout, "stdout", false, "write artifacts to stdout instead of files")
	return c
}

func overrideSchedule(cmd *cobra.Command, sc *config.ScheduleConfig, opts generateOptions) {
	f := cmd.Flags()
	if f.Changed("days") {
		sc.Days = opts.days
	}
	if f.Changed("band") {
		sc.Band = band.Name(opts.band)
	}
	if f.Changed("output") {
		sc.Output = opts.output
	}
	if f.Changed("dir") {
		sc.Dir = opts.dir
	}
}

func runGenerate(cmd *cobra.Command, cfg *config.Config, dob1, dob2 string, opts generateOptions) error {
	formats, err := export.ParseFormats(cfg.Schedule.Output)
	if err != nil {
		return err
	}
	var start time.Time
	if strings.TrimSpace(opts.start) != "" {
		start, err = schedule.ParseDate(opts.start)
		if err != nil {
			return &schedule.InvalidInputError{Field: "start", Value: opts.start, Err: err}
		}
	}
	reg, err := cfg.BandRegistry()
	if err != nil {
		return err
	}

	log := logger.NewZerologLoggerWithOptions("generate", logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Out:    cmd.ErrOrStderr(),
		Fields: map[string]string{"run_id": uuid.NewString()},
	})
	rec, err := metrics.NewPromRecorder()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	defer func() {
		if cfg.Metrics.Textfile == "" {
			return
		}
		if err := rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			log.Errorf("write metrics textfile: %v", err)
		}
	}()

	gen := schedule.New(reg, schedule.WithLogger(log), schedule.WithObserver(rec))
	plan, err := gen.Generate(schedule.Request{
		User1: dob1,
		User2: dob2,
		Days:  cfg.Schedule.Days,
		Start: start,
		Band:  cfg.Schedule.Band,
	})
	if err != nil {
		return err
	}

	summary := cmd.OutOrStdout()
	if opts.stdout {
		for _, f := range formats {
			if err := export.Write(cmd.OutOrStdout(), f, plan); err != nil {
				return err
			}
		}
		summary = cmd.ErrOrStderr()
	} else {
		paths, err := export.WriteFiles(cfg.Schedule.Dir, plan, formats)
		if err != nil {
			return err
		}
		for _, p := range paths {
			log.Infof("wrote %s", p)
			fmt.Fprintf(summary, "Saved %s\n", p)
		}
	}
	printSummary(summary, plan)
	return nil
}

func printSummary(w io.Writer, plan *schedule.Plan) {
	st := plan.Schedule.Stats()
	fmt.Fprintf(w, "Emergency schedule successfully generated with %d days in rotation.\n", plan.Meta.CycleDays)
	fmt.Fprintf(w, "This schedule uses %d different %s channels.\n", st.DistinctChannels, strings.ToUpper(string(plan.Meta.Band)))
	fmt.Fprintf(w, "This schedule uses %d different CTCSS tones.\n", st.DistinctTones)
	fmt.Fprintf(w, "Total memory channels in CHIRP file: %d\n", st.Memories)
	fmt.Fprintf(w, "Channel usage: mean %.2f, stddev %.2f, entropy %.3f nats\n",
		st.ChannelUsageMean, st.ChannelUsageStdDev, st.ChannelEntropy)
}
