package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsightsPicksStrongestAndWeakest(t *testing.T) {
	in := Insights(map[Area]float64{
		AreaSpeaking:    70.0,
		AreaWriting:     90.0,
		AreaQuiz:        85.0,
		AreaHandwritten: 60.0,
	})
	require.Equal(t, AreaWriting, in.Strongest)
	require.Equal(t, 90.0, in.StrongestScore)
	require.Equal(t, AreaHandwritten, in.Weakest)
	require.Equal(t, 60.0, in.WeakestScore)
}

func TestInsightsExcludesZeroScores(t *testing.T) {
	// 0 分代表没有数据，不能被选为最弱项
	in := Insights(map[Area]float64{
		AreaSpeaking:    0,
		AreaWriting:     90.0,
		AreaQuiz:        75.0,
		AreaHandwritten: 0,
	})
	require.Equal(t, AreaWriting, in.Strongest)
	require.Equal(t, AreaQuiz, in.Weakest)
	require.Equal(t, 75.0, in.WeakestScore)
}

func TestInsightsAllZeroFallsBackToDefaults(t *testing.T) {
	in := Insights(map[Area]float64{
		AreaSpeaking:    0,
		AreaWriting:     0,
		AreaQuiz:        0,
		AreaHandwritten: 0,
	})
	require.Equal(t, AreaSpeaking, in.Strongest)
	require.Equal(t, 0.0, in.StrongestScore)
	require.Equal(t, AreaHandwritten, in.Weakest)
	require.Equal(t, 0.0, in.WeakestScore)
}

func TestInsightsTieBreakFollowsAreaPriority(t *testing.T) {
	in := Insights(map[Area]float64{
		AreaSpeaking:    80.0,
		AreaWriting:     80.0,
		AreaQuiz:        80.0,
		AreaHandwritten: 80.0,
	})
	// 同分时按固定优先序取先者
	require.Equal(t, AreaSpeaking, in.Strongest)
	require.Equal(t, AreaSpeaking, in.Weakest)
}

func TestInsightsSingleNonZeroArea(t *testing.T) {
	in := Insights(map[Area]float64{AreaQuiz: 55.0})
	require.Equal(t, AreaQuiz, in.Strongest)
	require.Equal(t, AreaQuiz, in.Weakest)
	require.Equal(t, 55.0, in.StrongestScore)
	require.Equal(t, 55.0, in.WeakestScore)
}

func TestRecommendPriorityChain(t *testing.T) {
	cases := []struct {
		name string
		in   RecommendInput
		want Recommendation
	}{
		{
			name: "no speaking yet",
			in:   RecommendInput{HasWriting: true, WritingScore: 90},
			want: recommendSpeaking,
		},
		{
			name: "no writing yet",
			in:   RecommendInput{HasSpeaking: true, SpeakingScore: 90},
			want: recommendWriting,
		},
		{
			name: "weak speaking beats weak writing",
			in:   RecommendInput{HasSpeaking: true, HasWriting: true, SpeakingScore: 65, WritingScore: 60},
			want: recommendSpeaking,
		},
		{
			name: "weak writing",
			in:   RecommendInput{HasSpeaking: true, HasWriting: true, SpeakingScore: 75, WritingScore: 69.9},
			want: recommendWriting,
		},
		{
			name: "no quizzes",
			in:   RecommendInput{HasSpeaking: true, HasWriting: true, SpeakingScore: 75, WritingScore: 80},
			want: recommendQuiz,
		},
		{
			name: "all thresholds met",
			in:   RecommendInput{HasSpeaking: true, HasWriting: true, SpeakingScore: 75, WritingScore: 80, QuizzesCompleted: 2},
			want: recommendDefault,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Recommend(tc.in))
		})
	}
}

// 对应一个典型新学员场景的整条链路：一条口语(80/60)加一条写作(90)。
func TestEndToEndSingleSpeakingAndWriting(t *testing.T) {
	records := []Record{
		{Kind: RecordSpeaking, OccurredAt: at(1), Pronunciation: fp(80), Fluency: fp(60)},
		{Kind: RecordWriting, OccurredAt: at(2), Score: fp(90)},
	}

	speaking := AverageScore(records, RecordSpeaking)
	writing := AverageScore(records, RecordWriting)
	require.Equal(t, 70.0, speaking)
	require.Equal(t, 90.0, writing)

	in := Insights(map[Area]float64{
		AreaSpeaking:    speaking,
		AreaWriting:     writing,
		AreaQuiz:        0,
		AreaHandwritten: 0,
	})
	require.Equal(t, AreaWriting, in.Strongest)
	require.Equal(t, 90.0, in.StrongestScore)
	require.Equal(t, AreaSpeaking, in.Weakest)
	require.Equal(t, 70.0, in.WeakestScore)

	rec := Recommend(RecommendInput{
		HasSpeaking:   true,
		HasWriting:    true,
		SpeakingScore: speaking,
		WritingScore:  writing,
	})
	require.Equal(t, recommendQuiz, rec)
}
