package history

import (
	"context"

	"github.com/wonny/gridiron/internal/contracts"
)

// Fetcher 주간 원시 스탯 히스토리 공급자
type Fetcher interface {
	FetchWeekly(ctx context.Context, league string, season int, weeks []int) ([]contracts.WeeklyStatRow, error)
}

// Window returns the n weeks immediately before week, oldest first,
// clamped at week 1. The result is empty for week 1 or n <= 0.
func Window(week, n int) []int {
	if n <= 0 || week <= 1 {
		return []int{}
	}
	start := week - n
	if start < 1 {
		start = 1
	}
	weeks := make([]int, 0, week-start)
	for w := start; w < week; w++ {
		weeks = append(weeks, w)
	}
	return weeks
}
