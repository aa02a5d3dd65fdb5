package analytics

// CurrentStreak 计算截至 today 的连续活跃天数。
// 从 today 起向前逐日回溯，遇到第一个无活动的日期即停止；
// today 本身无活动时返回 0，历史上再长的连胜也不计入。
func CurrentStreak(activityDays map[Day]struct{}, today Day) int {
	streak := 0
	check := today
	for {
		if _, ok := activityDays[check]; !ok {
			return streak
		}
		streak++
		check = check.AddDays(-1)
	}
}

// ActivityDays 收集记录出现过的所有日历日
func ActivityDays(records []Record) map[Day]struct{} {
	days := make(map[Day]struct{}, len(records))
	for _, r := range records {
		days[DayOf(r.OccurredAt)] = struct{}{}
	}
	return days
}
