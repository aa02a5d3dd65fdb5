package model

type SubmissionType string

const (
	SubmissionSpeaking    SubmissionType = "SPEAKING"
	SubmissionWriting     SubmissionType = "WRITING"
	SubmissionHandwritten SubmissionType = "HANDWRITTEN"
)

// Submission 学生提交记录，评分存放在关联的 Grade 中。
// 提交后评分可能延迟到达（AI 评分失败时保持未评分状态）。
// swagger:model Submission
type Submission struct {
	BaseModel
	StudentID   uint           `gorm:"index;type:bigint unsigned;not null" json:"studentId"`
	ActivityID  *uint          `gorm:"index;type:bigint unsigned" json:"activityId"`
	Type        SubmissionType `gorm:"type:enum('SPEAKING','WRITING','HANDWRITTEN');not null;index" json:"type"`
	FilePath    string         `gorm:"size:255" json:"filePath"`
	TextContent string         `gorm:"type:text" json:"textContent"`
	// 语音提交的音频时长（秒），由 ffmpeg 探测
	AudioDuration float64 `gorm:"default:0" json:"audioDuration"`
	Grade         *Grade  `gorm:"foreignKey:SubmissionID" json:"grade,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}

// Graded 判断该提交是否已有有效评分。
// 口语提交要求发音分和流利度分同时存在。
func (s *Submission) Graded() bool {
	if s.Grade == nil {
		return false
	}
	if s.Type == SubmissionSpeaking {
		return s.Grade.PronunciationScore != nil && s.Grade.FluencyScore != nil
	}
	return s.Grade.Score != nil
}

// Grade AI 评分结果，分数缺失表示上游评分服务未返回
// swagger:model Grade
type Grade struct {
	BaseModel
	SubmissionID       uint     `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"submissionId"`
	Score              *float64 `json:"score"`
	PronunciationScore *float64 `json:"pronunciationScore"`
	FluencyScore       *float64 `json:"fluencyScore"`
	GrammarErrors      JSONList `gorm:"type:json" json:"grammarErrors"`
	VocabSuggestions   JSONList `gorm:"type:json" json:"vocabSuggestions"`
	GeneralFeedback    string   `gorm:"type:text" json:"generalFeedback"`
}

func (Grade) TableName() string {
	return "grades"
}
