package service

import (
	"testing"
	"time"

	"lingua_edu_backend/internal/analytics"
	"lingua_edu_backend/internal/model"

	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func mkSubmission(id uint, subType model.SubmissionType, createdAt time.Time, grade *model.Grade) model.Submission {
	sub := model.Submission{
		StudentID: 1,
		Type:      subType,
		Grade:     grade,
	}
	sub.ID = id
	sub.CreatedAt = createdAt
	return sub
}

func TestSubmissionToRecord(t *testing.T) {
	created := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	ungraded := submissionToRecord(mkSubmission(1, model.SubmissionWriting, created, nil))
	require.Equal(t, analytics.RecordWriting, ungraded.Kind)
	require.Nil(t, ungraded.Score)
	require.False(t, ungraded.Graded())

	speaking := submissionToRecord(mkSubmission(2, model.SubmissionSpeaking, created, &model.Grade{
		PronunciationScore: fp(80),
		FluencyScore:       fp(70),
	}))
	require.Equal(t, analytics.RecordSpeaking, speaking.Kind)
	require.True(t, speaking.Graded())
	score, ok := analytics.EventScore(speaking)
	require.True(t, ok)
	require.Equal(t, 75.0, score)
}

func TestQuizToRecordAlwaysGraded(t *testing.T) {
	quiz := model.Quiz{UserID: 1, Title: "Grammar Quiz", Score: 88.5, TakenAt: time.Now()}
	quiz.ID = 3

	record := quizToRecord(quiz)
	require.Equal(t, analytics.RecordQuiz, record.Kind)
	require.True(t, record.Graded())
	require.Equal(t, 88.5, *record.Score)
}

func TestChartEventsSkipsUngradedAndRoundsSpeaking(t *testing.T) {
	created := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	records := []analytics.Record{
		{Kind: analytics.RecordSpeaking, OccurredAt: created, Pronunciation: fp(80.5), Fluency: fp(70)},
		{Kind: analytics.RecordWriting, OccurredAt: created}, // 未评分，不进图表
		{Kind: analytics.RecordHandwritten, OccurredAt: created, Score: fp(65)},
	}
	attempts := []analytics.QuizAttempt{
		{Score: 90, TakenAt: created},
	}

	perArea := chartEvents(records, attempts)

	require.Len(t, perArea[analytics.AreaSpeaking], 1)
	// (80.5+70)/2 = 75.25 -> 75.3
	require.Equal(t, 75.3, perArea[analytics.AreaSpeaking][0].Value)
	require.Empty(t, perArea[analytics.AreaWriting])
	require.Len(t, perArea[analytics.AreaHandwritten], 1)
	require.Len(t, perArea[analytics.AreaQuiz], 1)
	require.Equal(t, 90.0, perArea[analytics.AreaQuiz][0].Value)
}

func TestChartEventsKeepRawTimestamps(t *testing.T) {
	morning := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.March, 10, 21, 30, 0, 0, time.UTC)

	perArea := chartEvents(
		[]analytics.Record{{Kind: analytics.RecordWriting, OccurredAt: morning, Score: fp(80)}},
		[]analytics.QuizAttempt{{Score: 70, TakenAt: morning}, {Score: 90, TakenAt: evening}},
	)

	// 事件保留原始时间戳，归日由分桶完成
	require.Equal(t, morning, perArea[analytics.AreaWriting][0].At)
	require.Equal(t, evening, perArea[analytics.AreaQuiz][1].At)

	chart := toChartData(analytics.BuildSeries(perArea))
	require.Equal(t, []string{"10 Mar"}, chart.Dates)
	require.Equal(t, []float64{80}, chart.WritingScores)
	require.Equal(t, []float64{80}, chart.QuizScores) // (70+90)/2
}

func TestToChartDataAlignsAndFormatsDates(t *testing.T) {
	day1 := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC)

	records := []analytics.Record{
		{Kind: analytics.RecordWriting, OccurredAt: day1, Score: fp(80)},
	}
	attempts := []analytics.QuizAttempt{
		{Score: 90, TakenAt: day2},
	}

	chart := toChartData(analytics.BuildSeries(chartEvents(records, attempts)))

	require.Equal(t, []string{"10 Mar", "12 Mar"}, chart.Dates)
	require.Equal(t, []float64{80, 0}, chart.WritingScores)
	require.Equal(t, []float64{0, 90}, chart.QuizScores)
	require.Equal(t, []float64{0, 0}, chart.SpeakingScores)
	require.Equal(t, []float64{0, 0}, chart.HandwrittenScores)
}
