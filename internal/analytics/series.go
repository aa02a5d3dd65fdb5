package analytics

import "sort"

// Series 多板块共享 X 轴的折线图数据。
// 每个板块的数组与 Dates 等长且按下标对齐。
type Series struct {
	Dates  []Day
	Values map[Area][]float64
}

// BuildSeries 把各板块独立的按日事件合并为一张对齐的图表。
// X 轴是所有板块日期的并集（升序）；某板块当日无事件时填 0，
// 有事件时取当日均值并保留一位小数。
func BuildSeries(perArea map[Area][]Event) Series {
	buckets := make(map[Area]map[Day][]float64, len(perArea))
	daySet := make(map[Day]struct{})
	for area, events := range perArea {
		b := BucketByDay(events)
		buckets[area] = b
		for day := range b {
			daySet[day] = struct{}{}
		}
	}

	dates := make([]Day, 0, len(daySet))
	for day := range daySet {
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	values := make(map[Area][]float64, len(perArea))
	for area := range perArea {
		points := make([]float64, len(dates))
		for i, day := range dates {
			// 缺日期填 0 而不是空洞，前端按可见的 0 渲染
			if scores, ok := buckets[area][day]; ok && len(scores) > 0 {
				var sum float64
				for _, v := range scores {
					sum += v
				}
				points[i] = Round1(sum / float64(len(scores)))
			}
		}
		values[area] = points
	}

	return Series{Dates: dates, Values: values}
}
