package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/gridiron/internal/vendorfile"
)

func newValidateCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "벤더 스탯 파일 스키마 검사",
		Long: `벤더 스탯 파일의 각 행이 필수 필드를 모두 갖고 value 가 숫자인지
검사합니다. 실패한 행마다 "Row i: <message>" 를 출력하고 실패로 종료합니다.

Example:
  go run ./cmd/gridiron validate data/stats/nfl/2025/week=5/espn.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failures, rows, err := vendorfile.NewValidator().ValidateFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range failures {
				fmt.Fprintln(out, f.Error())
			}
			if len(failures) > 0 {
				return fmt.Errorf("%d of %d rows failed validation", len(failures), rows)
			}

			fmt.Fprintln(out, "OK")
			return nil
		},
	}
}
