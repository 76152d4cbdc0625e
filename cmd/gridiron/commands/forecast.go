package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func newForecastCmd(global *globalOptions) *cobra.Command {
	opts := &keyOptions{}

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "주간 포인트 시계열 예측 생성",
		Long: `직전 주들의 선수 스탯을 스코어링 테이블로 주간 포인트로 환산하고,
선수별 시계열을 예측해 forecast.json 을 생성합니다.

History source (HISTORY_SOURCE):
  file      {DATA_DIR}/weekly/{league}/{season}/week={w}.json
  postgres  stats.weekly_player_stats

Output:
  {DATA_DIR}/projections/{league}/{season}/week={week}/forecast.json

Example:
  go run ./cmd/gridiron forecast --season 2025 --week 5`,
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
			PrintRunHeader(out, RunMetadata{RunID: rt.runID, Command: "Forecast", Key: key, Timestamp: start})

			asm, err := rt.assembler(cmd.Context(), true)
			if err != nil {
				return err
			}
			res, err := asm.BuildForecast(cmd.Context(), key)
			if err != nil {
				return err
			}

			PrintWrote(out, res.Records, res.Path)
			PrintRunCompletion(out, rt.runID, time.Since(start))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.season, "season", 0, "season year (required)")
	cmd.Flags().IntVar(&opts.week, "week", 0, "target week (required)")
	cmd.Flags().StringVar(&opts.league, "league", "", "league (default DEFAULT_LEAGUE)")
	_ = cmd.MarkFlagRequired("season")
	_ = cmd.MarkFlagRequired("week")

	return cmd
}
