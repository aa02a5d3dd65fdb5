// Package analytics 将已加载的学习记录快照计算为派生指标。
// 所有函数都是纯函数：不读时钟、不访问数据库，参考日期由调用方传入。
package analytics

import "time"

// Area 四个技能板块
type Area string

const (
	AreaSpeaking    Area = "Speaking"
	AreaWriting     Area = "Writing"
	AreaQuiz        Area = "Quiz"
	AreaHandwritten Area = "Handwritten"
)

// AreaPriority 板块的固定优先序，用于最强/最弱项打平时的确定性选择
var AreaPriority = []Area{AreaSpeaking, AreaWriting, AreaQuiz, AreaHandwritten}

// RecordKind 活动记录的来源类型
type RecordKind string

const (
	RecordSpeaking    RecordKind = "SPEAKING"
	RecordWriting     RecordKind = "WRITING"
	RecordHandwritten RecordKind = "HANDWRITTEN"
	RecordQuiz        RecordKind = "QUIZ"
)

// Record 单条活动记录。分数字段为 nil 表示尚未评分，
// 未评分记录不参与平均分，但仍计入打卡/目标等活跃度指标。
type Record struct {
	ID            uint
	OwnerID       uint
	Kind          RecordKind
	OccurredAt    time.Time
	Score         *float64
	Pronunciation *float64
	Fluency       *float64
}

// Graded 记录是否已评分。口语记录要求两个子分数同时存在。
func (r Record) Graded() bool {
	if r.Kind == RecordSpeaking {
		return r.Pronunciation != nil && r.Fluency != nil
	}
	return r.Score != nil
}

// QuizAttempt 一次测验完成记录，总是带分数
type QuizAttempt struct {
	ID      uint
	OwnerID uint
	Title   string
	Score   float64
	TakenAt time.Time
}

// Day 以 UTC 日历日为粒度的日期
type Day struct {
	Year  int
	Month time.Month
	Date  int
}

// DayOf 将时间戳归一化为 UTC 日历日
func DayOf(t time.Time) Day {
	u := t.UTC()
	return Day{Year: u.Year(), Month: u.Month(), Date: u.Day()}
}

// Time 返回该日零点的 UTC 时间
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Date, 0, 0, 0, 0, time.UTC)
}

// AddDays 前后移动若干天
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

// Before 日期先后比较
func (d Day) Before(other Day) bool {
	return d.Time().Before(other.Time())
}

// Format 按给定布局格式化该日
func (d Day) Format(layout string) string {
	return d.Time().Format(layout)
}
