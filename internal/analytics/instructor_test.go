package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClassSummaryEmpty(t *testing.T) {
	m := ClassSummary(nil, Day{2025, time.March, 10})
	require.Equal(t, 0.0, m.ClassAverage)
	require.Equal(t, 0, m.ActiveStudents)
	require.Equal(t, 0, m.PendingCount)
	require.Len(t, m.Sparkline.Submissions, 7)
	require.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, m.Sparkline.Submissions)
}

func TestClassSummaryAggregatesAllStudents(t *testing.T) {
	today := Day{2025, time.March, 10}
	records := []Record{
		{OwnerID: 1, Kind: RecordWriting, OccurredAt: at(10), Score: fp(80)},
		{OwnerID: 1, Kind: RecordWriting, OccurredAt: at(9)}, // 待评分
		{OwnerID: 2, Kind: RecordHandwritten, OccurredAt: at(10), Score: fp(60)},
		{OwnerID: 3, Kind: RecordSpeaking, OccurredAt: at(8), Pronunciation: fp(90), Fluency: fp(70)},
	}

	m := ClassSummary(records, today)
	// (80 + 60 + 80) / 3
	require.Equal(t, 73.3, m.ClassAverage)
	require.Equal(t, 3, m.ActiveStudents)
	require.Equal(t, 1, m.PendingCount)
}

func TestClassSummarySparklineWindow(t *testing.T) {
	today := Day{2025, time.March, 10}
	records := []Record{
		// 窗口之外（8 天前），完全忽略
		{OwnerID: 1, Kind: RecordWriting, OccurredAt: at(2), Score: fp(100)},
		// 窗口最旧一天（3 月 4 日）
		{OwnerID: 1, Kind: RecordWriting, OccurredAt: at(4), Score: fp(50)},
		// 今天：两个学生，一条待评分
		{OwnerID: 1, Kind: RecordWriting, OccurredAt: at(10), Score: fp(80)},
		{OwnerID: 2, Kind: RecordHandwritten, OccurredAt: at(10)},
	}

	m := ClassSummary(records, today)
	sp := m.Sparkline

	require.Equal(t, []int{1, 0, 0, 0, 0, 0, 2}, sp.Submissions)
	require.Equal(t, []int{0, 0, 0, 0, 0, 0, 1}, sp.Pending)
	require.Equal(t, []float64{50, 0, 0, 0, 0, 0, 80}, sp.AverageScores)
	require.Equal(t, []int{1, 0, 0, 0, 0, 0, 2}, sp.ActiveStudents)
}

func TestClassSummarySparklineAveragesPerDay(t *testing.T) {
	today := Day{2025, time.March, 10}
	records := []Record{
		{OwnerID: 1, Kind: RecordWriting, OccurredAt: at(10), Score: fp(80)},
		{OwnerID: 1, Kind: RecordWriting, OccurredAt: at(10), Score: fp(85)},
		{OwnerID: 1, Kind: RecordWriting, OccurredAt: at(10), Score: fp(82)},
	}

	m := ClassSummary(records, today)
	require.Equal(t, 82.3, m.Sparkline.AverageScores[6])
	require.Equal(t, []int{0, 0, 0, 0, 0, 0, 1}, m.Sparkline.ActiveStudents)
}
