package analytics

// Insight 最强与最弱板块的判定结果
type Insight struct {
	Strongest      Area    `json:"strongestArea"`
	StrongestScore float64 `json:"strongestScore"`
	Weakest        Area    `json:"weakestArea"`
	WeakestScore   float64 `json:"weakestScore"`
}

// Insights 从各板块平均分中选出最强与最弱项。
// 0 分板块视为"无信号"而非最差表现，先行剔除；
// 全部为 0 时返回面向新学员的固定占位（最强口语、最弱手写）。
// 同分时按 AreaPriority 的固定顺序取先者，保证结果确定。
func Insights(scores map[Area]float64) Insight {
	var strongest, weakest Area
	var strongestScore, weakestScore float64
	found := false

	for _, area := range AreaPriority {
		score, ok := scores[area]
		if !ok || score == 0 {
			continue
		}
		if !found {
			strongest, weakest = area, area
			strongestScore, weakestScore = score, score
			found = true
			continue
		}
		if score > strongestScore {
			strongest, strongestScore = area, score
		}
		if score < weakestScore {
			weakest, weakestScore = area, score
		}
	}

	if !found {
		return Insight{
			Strongest:      AreaSpeaking,
			StrongestScore: 0.0,
			Weakest:        AreaHandwritten,
			WeakestScore:   0.0,
		}
	}

	return Insight{
		Strongest:      strongest,
		StrongestScore: strongestScore,
		Weakest:        weakest,
		WeakestScore:   weakestScore,
	}
}

// Recommendation 下一步学习建议及其跳转链接。
// 链接对引擎而言只是透传的导航标记。
type Recommendation struct {
	Action string `json:"action"`
	Link   string `json:"link"`
}

// RecommendInput 建议规则的输入快照
type RecommendInput struct {
	HasSpeaking      bool
	HasWriting       bool
	SpeakingScore    float64
	WritingScore     float64
	QuizzesCompleted int
}

// 各分支的固定建议
var (
	recommendSpeaking = Recommendation{Action: "Improve Your Speaking", Link: "/speaking"}
	recommendWriting  = Recommendation{Action: "Improve Your Writing", Link: "/submit/writing"}
	recommendQuiz     = Recommendation{Action: "Take a Quiz", Link: "/quizzes"}
	recommendDefault  = Recommendation{Action: "Start Your First Activity", Link: "/assignments"}
)

// Recommend 按固定优先级求值建议规则，首个命中即返回
func Recommend(in RecommendInput) Recommendation {
	switch {
	case !in.HasSpeaking:
		return recommendSpeaking
	case !in.HasWriting:
		return recommendWriting
	case in.SpeakingScore < 70:
		return recommendSpeaking
	case in.WritingScore < 70:
		return recommendWriting
	case in.QuizzesCompleted == 0:
		return recommendQuiz
	default:
		return recommendDefault
	}
}
