package scoring

import "sort"

// DefaultVersion 기본 스코어링 테이블 버전
const DefaultVersion = "std-ppr-v1"

// Table 스탯별 가중치 스코어링 테이블 (버전 관리)
// ⭐ SSOT: 판타지 포인트 가중치는 이 테이블에서만 정의
type Table struct {
	Version string             `yaml:"version" json:"version"`
	Weights map[string]float64 `yaml:"weights" json:"weights"`
}

// DefaultTable returns the built-in full-PPR table
func DefaultTable() *Table {
	return &Table{
		Version: DefaultVersion,
		Weights: map[string]float64{
			"pass_yds":     0.04,
			"pass_td":      4,
			"int":          -2,
			"rush_yds":     0.1,
			"rush_td":      6,
			"rec":          1,
			"rec_yds":      0.1,
			"rec_td":       6,
			"fumbles_lost": -2,
			"two_pt":       2,
		},
	}
}

// Weight returns the weight for stat; unknown stats weigh zero
func (t *Table) Weight(stat string) float64 {
	return t.Weights[stat]
}

// Points 한 행의 판타지 포인트 (가중합)
// 스탯 이름 순으로 합산해 실행마다 같은 부동소수 결과를 보장
func (t *Table) Points(stats map[string]float64) float64 {
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0.0
	for _, name := range names {
		total += t.Weight(name) * stats[name]
	}
	return total
}
