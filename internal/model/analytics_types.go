package model

// 派生指标视图模型：每次请求由分析引擎重新计算，不落库。

// ChartData 学生端多折线图，四个分数数组与 Dates 按下标对齐
type ChartData struct {
	Dates             []string  `json:"dates"`
	SpeakingScores    []float64 `json:"speakingScores"`
	WritingScores     []float64 `json:"writingScores"`
	QuizScores        []float64 `json:"quizScores"`
	HandwrittenScores []float64 `json:"handwrittenScores"`
}

// WeeklyGoalProgress 本周提交目标进度
type WeeklyGoalProgress struct {
	Current    int `json:"current"`
	Target     int `json:"target"`
	Percentage int `json:"percentage"`
	Remaining  int `json:"remaining"`
}

// PerformanceInsight 最强/最弱板块
type PerformanceInsight struct {
	StrongestArea  string  `json:"strongestArea"`
	StrongestScore float64 `json:"strongestScore"`
	WeakestArea    string  `json:"weakestArea"`
	WeakestScore   float64 `json:"weakestScore"`
}

// RecommendedAction 下一步建议，Link 供前端跳转
type RecommendedAction struct {
	Action string `json:"action"`
	Link   string `json:"link"`
}

// StudentDashboard 学生仪表盘聚合视图
// swagger:model StudentDashboard
type StudentDashboard struct {
	SpeakingScore    float64            `json:"speakingScore"`
	WritingScore     float64            `json:"writingScore"`
	HandwrittenScore float64            `json:"handwrittenScore"`
	QuizScore        float64            `json:"quizScore"`
	CompletedQuizzes int                `json:"completedQuizzes"`
	CurrentStreak    int                `json:"currentStreak"`
	WeeklyGoal       WeeklyGoalProgress `json:"weeklyGoal"`
	ChartData        ChartData          `json:"chartData"`
	Insight          PerformanceInsight `json:"insight"`
	Recommended      RecommendedAction  `json:"recommended"`
	TotalSubmissions int                `json:"totalSubmissions"`
	AverageScore     float64            `json:"averageScore"`
	PendingCount     int                `json:"pendingCount"`
}

// SparklineData 教师端最近 7 天概览，最旧的在前
type SparklineData struct {
	Submissions    []int     `json:"submissions"`
	Pending        []int     `json:"pending"`
	ClassAvg       []float64 `json:"classAvg"`
	ActiveStudents []int     `json:"activeStudents"`
}

// ClassOverview 教师仪表盘聚合视图。
// ActiveStudents 统计有提交的学生，RegisteredStudents 统计在册学生。
// swagger:model ClassOverview
type ClassOverview struct {
	ClassAverage       float64       `json:"classAverage"`
	ActiveStudents     int           `json:"activeStudents"`
	RegisteredStudents int64         `json:"registeredStudents"`
	PendingCount       int           `json:"pendingCount"`
	Sparkline          SparklineData `json:"sparkline"`
}
