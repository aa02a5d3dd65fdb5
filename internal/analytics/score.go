package analytics

import "math"

// Round1 保留一位小数，远离零方向取整
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// SpeakingEventScore 单条口语记录的得分：发音分与流利度分的算术平均。
// 任一子分数缺失时返回 false。
func SpeakingEventScore(r Record) (float64, bool) {
	if r.Pronunciation == nil || r.Fluency == nil {
		return 0, false
	}
	return (*r.Pronunciation + *r.Fluency) / 2, true
}

// EventScore 记录在其所属板块下的单事件分数，未评分返回 false
func EventScore(r Record) (float64, bool) {
	if r.Kind == RecordSpeaking {
		return SpeakingEventScore(r)
	}
	if r.Score == nil {
		return 0, false
	}
	return *r.Score, true
}

// AverageScore 计算指定类型下所有已评分记录的平均分。
// 只在最终平均值上做一位小数取整；没有合格记录时返回 0.0。
func AverageScore(records []Record, kind RecordKind) float64 {
	var sum float64
	var n int
	for _, r := range records {
		if r.Kind != kind {
			continue
		}
		score, ok := EventScore(r)
		if !ok {
			continue
		}
		sum += score
		n++
	}
	if n == 0 {
		return 0.0
	}
	return Round1(sum / float64(n))
}

// QuizAverage 测验平均分，测验总是带分数
func QuizAverage(attempts []QuizAttempt) float64 {
	if len(attempts) == 0 {
		return 0.0
	}
	var sum float64
	for _, a := range attempts {
		sum += a.Score
	}
	return Round1(sum / float64(len(attempts)))
}
