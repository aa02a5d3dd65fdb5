package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lingua_edu_backend/internal/analytics"
	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DashboardService 学生仪表盘：加载活动快照，交给分析引擎计算派生指标。
// 指标不落库，仅在 Redis 做短时缓存。
type DashboardService struct {
	SubmissionRepo *repository.SubmissionRepository
	QuizRepo       *repository.QuizRepository
	Redis          *redis.Client
	Cfg            *config.Config
	Logger         *zap.Logger
}

func NewDashboardService(
	submissionRepo *repository.SubmissionRepository,
	quizRepo *repository.QuizRepository,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		SubmissionRepo: submissionRepo,
		QuizRepo:       quizRepo,
		Redis:          rdb,
		Cfg:            cfg,
		Logger:         logger,
	}
}

// submissionToRecord 把持久化的提交映射为分析引擎的活动记录
func submissionToRecord(sub model.Submission) analytics.Record {
	r := analytics.Record{
		ID:         sub.ID,
		OwnerID:    sub.StudentID,
		Kind:       analytics.RecordKind(sub.Type),
		OccurredAt: sub.CreatedAt,
	}
	if sub.Grade != nil {
		r.Score = sub.Grade.Score
		r.Pronunciation = sub.Grade.PronunciationScore
		r.Fluency = sub.Grade.FluencyScore
	}
	return r
}

func quizToAttempt(q model.Quiz) analytics.QuizAttempt {
	return analytics.QuizAttempt{
		ID:      q.ID,
		OwnerID: q.UserID,
		Title:   q.Title,
		Score:   q.Score,
		TakenAt: q.TakenAt,
	}
}

// quizToRecord 测验也算一次学习活动，参与打卡统计
func quizToRecord(q model.Quiz) analytics.Record {
	score := q.Score
	return analytics.Record{
		ID:         q.ID,
		OwnerID:    q.UserID,
		Kind:       analytics.RecordQuiz,
		OccurredAt: q.TakenAt,
		Score:      &score,
	}
}

func (s *DashboardService) cacheKey(userID uint) string {
	return fmt.Sprintf("dashboard:student:%d", userID)
}

// GetStudentDashboard 组装学生仪表盘。优先读缓存，缺失时重算并回写。
func (s *DashboardService) GetStudentDashboard(ctx context.Context, userID uint) (*model.StudentDashboard, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, s.cacheKey(userID)).Result(); err == nil {
			var dashboard model.StudentDashboard
			if err := json.Unmarshal([]byte(cached), &dashboard); err == nil {
				return &dashboard, nil
			}
		}
	}

	dashboard, err := s.buildDashboard(userID, time.Now())
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(dashboard); err == nil {
			ttl := time.Duration(s.Cfg.Analytics.DashboardCacheTTL) * time.Second
			if err := s.Redis.Set(ctx, s.cacheKey(userID), payload, ttl).Err(); err != nil {
				s.Logger.Warn("写入仪表盘缓存失败", zap.Uint("userID", userID), zap.Error(err))
			}
		}
	}

	return dashboard, nil
}

// InvalidateCache 新提交或新测验后让缓存失效
func (s *DashboardService) InvalidateCache(ctx context.Context, userID uint) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, s.cacheKey(userID)).Err(); err != nil {
		s.Logger.Warn("清除仪表盘缓存失败", zap.Uint("userID", userID), zap.Error(err))
	}
}

// buildDashboard 在一份点时快照上执行全部派生指标计算
func (s *DashboardService) buildDashboard(userID uint, now time.Time) (*model.StudentDashboard, error) {
	subs, err := s.SubmissionRepo.FindByStudent(userID)
	if err != nil {
		return nil, err
	}
	quizzes, err := s.QuizRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	today := analytics.DayOf(now)

	records := make([]analytics.Record, 0, len(subs))
	submissionDays := make([]analytics.Day, 0, len(subs))
	for _, sub := range subs {
		r := submissionToRecord(sub)
		records = append(records, r)
		submissionDays = append(submissionDays, analytics.DayOf(r.OccurredAt))
	}

	attempts := make([]analytics.QuizAttempt, 0, len(quizzes))
	allActivity := append([]analytics.Record(nil), records...)
	for _, q := range quizzes {
		attempts = append(attempts, quizToAttempt(q))
		allActivity = append(allActivity, quizToRecord(q))
	}

	// 各板块平均分
	speakingScore := analytics.AverageScore(records, analytics.RecordSpeaking)
	writingScore := analytics.AverageScore(records, analytics.RecordWriting)
	handwrittenScore := analytics.AverageScore(records, analytics.RecordHandwritten)
	quizScore := analytics.QuizAverage(attempts)

	// 打卡与周目标：未评分的提交同样计入活跃度
	streak := analytics.CurrentStreak(analytics.ActivityDays(allActivity), today)
	weekly := analytics.WeeklyProgress(submissionDays, today, s.Cfg.Analytics.WeeklyGoalTarget)

	// 图表：每板块按日事件 → 对齐的多折线序列
	series := analytics.BuildSeries(chartEvents(records, attempts))

	insight := analytics.Insights(map[analytics.Area]float64{
		analytics.AreaSpeaking:    speakingScore,
		analytics.AreaWriting:     writingScore,
		analytics.AreaQuiz:        quizScore,
		analytics.AreaHandwritten: handwrittenScore,
	})

	hasSpeaking, hasWriting := false, false
	gradedCount := 0
	var gradedSum float64
	for _, r := range records {
		switch r.Kind {
		case analytics.RecordSpeaking:
			hasSpeaking = true
		case analytics.RecordWriting:
			hasWriting = true
		}
		if score, ok := analytics.EventScore(r); ok {
			gradedSum += score
			gradedCount++
		}
	}

	recommendation := analytics.Recommend(analytics.RecommendInput{
		HasSpeaking:      hasSpeaking,
		HasWriting:       hasWriting,
		SpeakingScore:    speakingScore,
		WritingScore:     writingScore,
		QuizzesCompleted: len(attempts),
	})

	averageScore := 0.0
	if gradedCount > 0 {
		averageScore = analytics.Round1(gradedSum / float64(gradedCount))
	}

	return &model.StudentDashboard{
		SpeakingScore:    speakingScore,
		WritingScore:     writingScore,
		HandwrittenScore: handwrittenScore,
		QuizScore:        quizScore,
		CompletedQuizzes: len(attempts),
		CurrentStreak:    streak,
		WeeklyGoal: model.WeeklyGoalProgress{
			Current:    weekly.Current,
			Target:     weekly.Target,
			Percentage: weekly.Percentage,
			Remaining:  weekly.Remaining,
		},
		ChartData: toChartData(series),
		Insight: model.PerformanceInsight{
			StrongestArea:  string(insight.Strongest),
			StrongestScore: insight.StrongestScore,
			WeakestArea:    string(insight.Weakest),
			WeakestScore:   insight.WeakestScore,
		},
		Recommended: model.RecommendedAction{
			Action: recommendation.Action,
			Link:   recommendation.Link,
		},
		TotalSubmissions: len(records),
		AverageScore:     averageScore,
		PendingCount:     len(records) - gradedCount,
	}, nil
}

// chartEvents 把已评分的事件按板块整理为 (日期, 分数) 序列。
// 口语事件分取发音与流利度的均值，与平均分口径一致。
func chartEvents(records []analytics.Record, attempts []analytics.QuizAttempt) map[analytics.Area][]analytics.Event {
	perArea := map[analytics.Area][]analytics.Event{
		analytics.AreaSpeaking:    {},
		analytics.AreaWriting:     {},
		analytics.AreaQuiz:        {},
		analytics.AreaHandwritten: {},
	}

	kindToArea := map[analytics.RecordKind]analytics.Area{
		analytics.RecordSpeaking:    analytics.AreaSpeaking,
		analytics.RecordWriting:     analytics.AreaWriting,
		analytics.RecordHandwritten: analytics.AreaHandwritten,
	}

	for _, r := range records {
		area, ok := kindToArea[r.Kind]
		if !ok {
			continue
		}
		score, graded := analytics.EventScore(r)
		if !graded {
			continue
		}
		// 口语事件分进入图表前先取一位小数，与展示口径一致
		if r.Kind == analytics.RecordSpeaking {
			score = analytics.Round1(score)
		}
		perArea[area] = append(perArea[area], analytics.Event{
			At:    r.OccurredAt,
			Value: score,
		})
	}

	for _, a := range attempts {
		perArea[analytics.AreaQuiz] = append(perArea[analytics.AreaQuiz], analytics.Event{
			At:    a.TakenAt,
			Value: a.Score,
		})
	}

	return perArea
}

func toChartData(series analytics.Series) model.ChartData {
	dates := make([]string, len(series.Dates))
	for i, day := range series.Dates {
		dates[i] = day.Format(util.ChartDateFormat)
	}
	return model.ChartData{
		Dates:             dates,
		SpeakingScores:    series.Values[analytics.AreaSpeaking],
		WritingScores:     series.Values[analytics.AreaWriting],
		QuizScores:        series.Values[analytics.AreaQuiz],
		HandwrittenScores: series.Values[analytics.AreaHandwritten],
	}
}
