package analytics

// WeeklyGoal 本周提交目标的完成情况
type WeeklyGoal struct {
	Current    int `json:"current"`
	Target     int `json:"target"`
	Percentage int `json:"percentage"`
	Remaining  int `json:"remaining"`
}

// WeekStart 返回该日所在周的周一
func WeekStart(today Day) Day {
	// time.Weekday 以周日为 0，换算成 ISO 的周一偏移
	offset := (int(today.Time().Weekday()) + 6) % 7
	return today.AddDays(-offset)
}

// WeeklyProgress 统计本周（周一起算）的提交数对固定目标的进度。
// 百分比向下取整并封顶 100，剩余数不为负；target 是外部配置值。
func WeeklyProgress(submissionDays []Day, today Day, target int) WeeklyGoal {
	weekStart := WeekStart(today)

	current := 0
	for _, day := range submissionDays {
		if !day.Before(weekStart) {
			current++
		}
	}

	percentage := 0
	if target > 0 {
		percentage = current * 100 / target
		if percentage > 100 {
			percentage = 100
		}
	}

	remaining := target - current
	if remaining < 0 {
		remaining = 0
	}

	return WeeklyGoal{
		Current:    current,
		Target:     target,
		Percentage: percentage,
		Remaining:  remaining,
	}
}
