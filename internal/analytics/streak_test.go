package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func days(ds ...Day) map[Day]struct{} {
	set := make(map[Day]struct{}, len(ds))
	for _, d := range ds {
		set[d] = struct{}{}
	}
	return set
}

func TestCurrentStreak(t *testing.T) {
	today := Day{2025, time.March, 10}

	cases := []struct {
		name string
		days map[Day]struct{}
		want int
	}{
		{"no activity", days(), 0},
		{"only today", days(today), 1},
		{"three consecutive days", days(today, today.AddDays(-1), today.AddDays(-2)), 3},
		{"gap breaks streak even with older activity", days(today.AddDays(-2)), 0},
		{"yesterday without today yields zero", days(today.AddDays(-1), today.AddDays(-2)), 0},
		{"gap in the middle stops the scan", days(today, today.AddDays(-1), today.AddDays(-3)), 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CurrentStreak(tc.days, today))
		})
	}
}

func TestCurrentStreakCrossesMonthBoundary(t *testing.T) {
	today := Day{2025, time.March, 1}
	set := days(today, Day{2025, time.February, 28}, Day{2025, time.February, 27})
	require.Equal(t, 3, CurrentStreak(set, today))
}

func TestActivityDays(t *testing.T) {
	records := []Record{
		{Kind: RecordWriting, OccurredAt: at(1)},
		{Kind: RecordSpeaking, OccurredAt: at(1)},
		{Kind: RecordHandwritten, OccurredAt: at(5)},
	}
	set := ActivityDays(records)
	require.Len(t, set, 2)
	require.Contains(t, set, Day{2025, time.March, 1})
	require.Contains(t, set, Day{2025, time.March, 5})
}
