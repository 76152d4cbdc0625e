package contracts

// WeeklyStatRow 선수 한 주의 원시 스탯 (히스토리 수집기 출력)
type WeeklyStatRow struct {
	PlayerID EntityID           `json:"player_id"`
	Week     int                `json:"week"`
	Stats    map[string]float64 `json:"stats"`
}

// SeriesPoint 주차별 판타지 포인트
type SeriesPoint struct {
	PlayerID      EntityID `json:"player_id"`
	Week          int      `json:"week"`
	FantasyPoints float64  `json:"fantasy_points"`
}

// Series 한 선수의 주차 오름차순 포인트 시계열
type Series struct {
	PlayerID EntityID
	Points   []SeriesPoint
}

// Len returns the number of weekly points
func (s Series) Len() int {
	return len(s.Points)
}

// Values returns the fantasy points in week order
func (s Series) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.FantasyPoints
	}
	return out
}

// Contiguous reports whether weeks ascend by exactly one with no gaps
func (s Series) Contiguous() bool {
	for i := 1; i < len(s.Points); i++ {
		if s.Points[i].Week != s.Points[i-1].Week+1 {
			return false
		}
	}
	return true
}
