package commands

import (
	"time"

	"github.com/spf13/cobra"
)

type keyOptions struct {
	league string
	season int
	week   int
}

func newBaselineCmd(global *globalOptions) *cobra.Command {
	opts := &keyOptions{}

	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "벤더 스탯 블렌딩 baseline 생성",
		Long: `벤더별 주간 스탯 파일을 읽어 (player_id, stat_name) 단위 평균으로
블렌딩한 baseline.json 을 생성합니다.

Input:
  {DATA_DIR}/stats/{league}/{year}/week={week}/{vendor}.json

Output:
  {DATA_DIR}/projections/{league}/{year}/week={week}/baseline.json

Example:
  go run ./cmd/gridiron baseline --year 2025 --week 5
  go run ./cmd/gridiron baseline --year 2025 --week 5 --league nfl`,
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
			PrintRunHeader(out, RunMetadata{RunID: rt.runID, Command: "Baseline", Key: key, Timestamp: start})

			asm, err := rt.assembler(cmd.Context(), false)
			if err != nil {
				return err
			}
			res, err := asm.BuildBaseline(cmd.Context(), key)
			if err != nil {
				return err
			}

			PrintWrote(out, res.Records, res.Path)
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
