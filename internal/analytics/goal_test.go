package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeekStartIsMondayAnchored(t *testing.T) {
	// 2025-03-10 是周一
	monday := Day{2025, time.March, 10}

	require.Equal(t, monday, WeekStart(monday))
	require.Equal(t, monday, WeekStart(Day{2025, time.March, 12}))
	require.Equal(t, monday, WeekStart(Day{2025, time.March, 16})) // 周日仍属本周
	require.Equal(t, Day{2025, time.March, 3}, WeekStart(Day{2025, time.March, 9}))
}

func TestWeeklyProgress(t *testing.T) {
	today := Day{2025, time.March, 12} // 周三

	cases := []struct {
		name   string
		subs   []Day
		target int
		want   WeeklyGoal
	}{
		{
			name:   "no submissions",
			subs:   nil,
			target: 5,
			want:   WeeklyGoal{Current: 0, Target: 5, Percentage: 0, Remaining: 5},
		},
		{
			name:   "partial progress floors percentage",
			subs:   []Day{{2025, time.March, 10}, {2025, time.March, 11}},
			target: 3,
			want:   WeeklyGoal{Current: 2, Target: 3, Percentage: 66, Remaining: 1},
		},
		{
			name: "overshoot clamps percentage and floors remaining",
			subs: []Day{
				{2025, time.March, 10}, {2025, time.March, 10}, {2025, time.March, 11},
				{2025, time.March, 11}, {2025, time.March, 12}, {2025, time.March, 12},
				{2025, time.March, 12},
			},
			target: 5,
			want:   WeeklyGoal{Current: 7, Target: 5, Percentage: 100, Remaining: 0},
		},
		{
			name:   "last week submissions do not count",
			subs:   []Day{{2025, time.March, 9}, {2025, time.March, 3}},
			target: 5,
			want:   WeeklyGoal{Current: 0, Target: 5, Percentage: 0, Remaining: 5},
		},
		{
			name:   "zero target yields zero percentage",
			subs:   []Day{{2025, time.March, 10}},
			target: 0,
			want:   WeeklyGoal{Current: 1, Target: 0, Percentage: 0, Remaining: 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, WeeklyProgress(tc.subs, today, tc.target))
		})
	}
}
