package analytics

// Sparkline 最近 7 天的班级概览，四个数组按日期对齐且最旧的在前
type Sparkline struct {
	Submissions    []int     `json:"submissions"`
	Pending        []int     `json:"pending"`
	AverageScores  []float64 `json:"classAvg"`
	ActiveStudents []int     `json:"activeStudents"`
}

// ClassMetrics 教师端的全班汇总指标
type ClassMetrics struct {
	ClassAverage   float64   `json:"classAverage"`
	ActiveStudents int       `json:"activeStudents"`
	PendingCount   int       `json:"pendingCount"`
	Sparkline      Sparkline `json:"sparkline"`
}

const sparklineDays = 7

// ClassSummary 汇总所有学生的记录：全班平均分（不分板块）、
// 活跃学生数、待评分数量，以及 7 天滚动 sparkline。
func ClassSummary(records []Record, today Day) ClassMetrics {
	var sum float64
	var graded int
	owners := make(map[uint]struct{})
	for _, r := range records {
		owners[r.OwnerID] = struct{}{}
		if score, ok := EventScore(r); ok {
			sum += score
			graded++
		}
	}

	classAvg := 0.0
	if graded > 0 {
		classAvg = Round1(sum / float64(graded))
	}

	return ClassMetrics{
		ClassAverage:   classAvg,
		ActiveStudents: len(owners),
		PendingCount:   len(records) - graded,
		Sparkline:      buildSparkline(records, today),
	}
}

func buildSparkline(records []Record, today Day) Sparkline {
	start := today.AddDays(-(sparklineDays - 1))

	submissions := make(map[Day]int)
	pending := make(map[Day]int)
	scores := make(map[Day][]float64)
	students := make(map[Day]map[uint]struct{})

	for _, r := range records {
		day := DayOf(r.OccurredAt)
		if day.Before(start) || today.Before(day) {
			continue
		}
		submissions[day]++
		if score, ok := EventScore(r); ok {
			scores[day] = append(scores[day], score)
		} else {
			pending[day]++
		}
		if students[day] == nil {
			students[day] = make(map[uint]struct{})
		}
		students[day][r.OwnerID] = struct{}{}
	}

	sp := Sparkline{
		Submissions:    make([]int, sparklineDays),
		Pending:        make([]int, sparklineDays),
		AverageScores:  make([]float64, sparklineDays),
		ActiveStudents: make([]int, sparklineDays),
	}
	for i := 0; i < sparklineDays; i++ {
		day := start.AddDays(i)
		sp.Submissions[i] = submissions[day]
		sp.Pending[i] = pending[day]
		if dayScores := scores[day]; len(dayScores) > 0 {
			var s float64
			for _, v := range dayScores {
				s += v
			}
			sp.AverageScores[i] = Round1(s / float64(len(dayScores)))
		}
		sp.ActiveStudents[i] = len(students[day])
	}
	return sp
}
