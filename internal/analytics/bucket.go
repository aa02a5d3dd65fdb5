package analytics

import "time"

// Event 带时间戳的分值事件，供按日聚合使用
type Event struct {
	At    time.Time
	Value float64
}

// BucketByDay 将事件按 UTC 日历日分桶。
// 桶内保持到达顺序；桶之间无序，调用方自行排序。
func BucketByDay(events []Event) map[Day][]float64 {
	buckets := make(map[Day][]float64)
	for _, e := range events {
		day := DayOf(e.At)
		buckets[day] = append(buckets[day], e.Value)
	}
	return buckets
}
