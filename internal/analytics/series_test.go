package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBucketByDayGroupsAcrossTimezonesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	events := []Event{
		{At: time.Date(2025, time.March, 2, 8, 0, 0, 0, loc), Value: 50}, // 2025-03-01 UTC
		{At: time.Date(2025, time.March, 1, 23, 0, 0, 0, time.UTC), Value: 70},
		{At: time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC), Value: 90},
	}

	buckets := BucketByDay(events)
	require.Len(t, buckets, 2)
	require.Equal(t, []float64{50, 70}, buckets[Day{2025, time.March, 1}])
	require.Equal(t, []float64{90}, buckets[Day{2025, time.March, 2}])
}

func TestBuildSeriesAlignsAllAreasToSharedDates(t *testing.T) {
	perArea := map[Area][]Event{
		AreaSpeaking: {
			{At: at(3), Value: 70},
			{At: at(1), Value: 60},
		},
		AreaWriting: {
			{At: at(2), Value: 90},
		},
		AreaQuiz:        {},
		AreaHandwritten: nil,
	}

	series := BuildSeries(perArea)

	require.Equal(t, []Day{
		{2025, time.March, 1},
		{2025, time.March, 2},
		{2025, time.March, 3},
	}, series.Dates)

	for area, points := range series.Values {
		require.Len(t, points, len(series.Dates), "area %s", area)
	}

	require.Equal(t, []float64{60, 0, 70}, series.Values[AreaSpeaking])
	require.Equal(t, []float64{0, 90, 0}, series.Values[AreaWriting])
	require.Equal(t, []float64{0, 0, 0}, series.Values[AreaQuiz])
	require.Equal(t, []float64{0, 0, 0}, series.Values[AreaHandwritten])
}

func TestBuildSeriesAveragesSameDayEvents(t *testing.T) {
	perArea := map[Area][]Event{
		AreaWriting: {
			{At: at(1), Value: 80},
			{At: at(1), Value: 85},
			{At: at(1), Value: 82},
		},
	}

	series := BuildSeries(perArea)
	require.Len(t, series.Dates, 1)
	// 多次提交取当日均值而不是求和
	require.Equal(t, []float64{82.3}, series.Values[AreaWriting])
}

func TestBuildSeriesEmptyInput(t *testing.T) {
	series := BuildSeries(map[Area][]Event{})
	require.Empty(t, series.Dates)
	require.Empty(t, series.Values)
}
