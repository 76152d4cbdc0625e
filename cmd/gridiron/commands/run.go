package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func newRunCmd(global *globalOptions) *cobra.Command {
	opts := &keyOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "baseline + forecast 모두 실행",
		Long: `같은 (league, year, week) 에 대해 baseline 과 forecast 파이프라인을
모두 실행합니다. 두 파이프라인은 독립적이며 한쪽이 실패해도
다른 쪽의 결과는 기록됩니다.

Example:
  go run ./cmd/gridiron run --year 2025 --week 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(global)
			if err != nil {
				return err
			}
			defer rt.Close()

			if opts.league == "" {
				opts.league = rt.cfg.DefaultLeague
			}
			key, err := artifactKey(opts.league, opts.season, opts.week)
			if err != nil {
				return err
			}

			start := time.Now()
			out := cmd.OutOrStdout()
			PrintRunHeader(out, RunMetadata{RunID: rt.runID, Command: "Baseline + Forecast", Key: key, Timestamp: start})

			asm, err := rt.assembler(cmd.Context(), true)
			if err != nil {
				return err
			}
			results, runErr := asm.Run(cmd.Context(), key)
			for _, res := range results {
				PrintWrote(out, res.Records, res.Path)
			}
			if runErr != nil {
				return runErr
			}

			PrintRunCompletion(out, rt.runID, time.Since(start))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.season, "year", 0, "season year (required)")
	cmd.Flags().IntVar(&opts.week, "week", 0, "week number (required)")
	cmd.Flags().StringVar(&opts.league, "league", "", "league (default DEFAULT_LEAGUE)")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("week")

	return cmd
}
