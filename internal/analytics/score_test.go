package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func at(day int) time.Time {
	return time.Date(2025, time.March, day, 10, 0, 0, 0, time.UTC)
}

func TestAverageScoreEmptyInput(t *testing.T) {
	for _, kind := range []RecordKind{RecordSpeaking, RecordWriting, RecordHandwritten, RecordQuiz} {
		require.Equal(t, 0.0, AverageScore(nil, kind))
	}
}

func TestAverageScoreSpeakingCombinesSubScores(t *testing.T) {
	records := []Record{
		{Kind: RecordSpeaking, OccurredAt: at(1), Pronunciation: fp(80), Fluency: fp(60)},
		{Kind: RecordSpeaking, OccurredAt: at(2), Pronunciation: fp(90), Fluency: fp(70)},
	}
	// (70 + 80) / 2
	require.Equal(t, 75.0, AverageScore(records, RecordSpeaking))
}

func TestAverageScoreSpeakingExcludesPartialSubScores(t *testing.T) {
	records := []Record{
		{Kind: RecordSpeaking, OccurredAt: at(1), Pronunciation: fp(80)},
		{Kind: RecordSpeaking, OccurredAt: at(2), Pronunciation: fp(80), Fluency: fp(60)},
	}
	require.Equal(t, 70.0, AverageScore(records, RecordSpeaking))
}

func TestAverageScoreExcludesUngradedAndOtherKinds(t *testing.T) {
	records := []Record{
		{Kind: RecordWriting, OccurredAt: at(1), Score: fp(90)},
		{Kind: RecordWriting, OccurredAt: at(2)}, // 未评分
		{Kind: RecordHandwritten, OccurredAt: at(3), Score: fp(40)},
	}
	require.Equal(t, 90.0, AverageScore(records, RecordWriting))
	require.Equal(t, 40.0, AverageScore(records, RecordHandwritten))
}

func TestAverageScoreRoundsFinalValueOnly(t *testing.T) {
	records := []Record{
		{Kind: RecordWriting, OccurredAt: at(1), Score: fp(85)},
		{Kind: RecordWriting, OccurredAt: at(2), Score: fp(80)},
		{Kind: RecordWriting, OccurredAt: at(3), Score: fp(82)},
	}
	// 247/3 = 82.333... -> 82.3
	require.Equal(t, 82.3, AverageScore(records, RecordWriting))
}

func TestRound1HalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{82.35, 82.4},
		{82.34, 82.3},
		{0.05, 0.1},
		{-82.35, -82.4},
		{70.0, 70.0},
	}
	for _, tc := range cases {
		require.InDelta(t, tc.want, Round1(tc.in), 1e-9, "Round1(%v)", tc.in)
	}
}

func TestQuizAverage(t *testing.T) {
	require.Equal(t, 0.0, QuizAverage(nil))

	attempts := []QuizAttempt{
		{Score: 60, TakenAt: at(1)},
		{Score: 75, TakenAt: at(2)},
	}
	require.Equal(t, 67.5, QuizAverage(attempts))
}
