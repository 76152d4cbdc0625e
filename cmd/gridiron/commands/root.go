package commands

import (
	"github.com/spf13/cobra"
)

// globalOptions holds persistent flags shared by every command
type globalOptions struct {
	configFile string
	verbose    bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "gridiron",
		Short: "gridiron - 판타지 풋볼 프로젝션 파이프라인",
		Long: `gridiron CLI

벤더 스탯 블렌딩(baseline)과 주간 포인트 시계열 예측(forecast)
두 개의 독립 파이프라인으로 (league, season, week) 아티팩트를 생성.

Usage:
  go run ./cmd/gridiron [command]

Examples:
  go run ./cmd/gridiron baseline --year 2025 --week 5
  go run ./cmd/gridiron forecast --season 2025 --week 5
  go run ./cmd/gridiron run --year 2025 --week 5 --league nfl
  go run ./cmd/gridiron fetch --year 2025 --week 5 --vendor espn
  go run ./cmd/gridiron validate data/stats/nfl/2025/week=5/espn.json
  go run ./cmd/gridiron serve`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "env file to load (default is .env)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		newBaselineCmd(opts),
		newForecastCmd(opts),
		newRunCmd(opts),
		newFetchCmd(opts),
		newValidateCmd(opts),
		newServeCmd(opts),
	)

	return rootCmd
}

// Execute runs the root command.
// This is called by main.main(). It only needs to happen once.
func Execute() error {
	return NewRootCmd().Execute()
}
