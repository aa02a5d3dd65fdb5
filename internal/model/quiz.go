package model

import (
	"time"
)

// Quiz 一次测验完成记录。与提交不同，测验总是即时计分。
// swagger:model Quiz
type Quiz struct {
	BaseModel
	UserID  uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Title   string    `gorm:"size:255;not null" json:"title"`
	Score   float64   `gorm:"not null" json:"score"`
	TakenAt time.Time `gorm:"not null;index" json:"takenAt"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizQuestion 测验题库中的选择题
type QuizQuestion struct {
	BaseModel
	Prompt        string `gorm:"type:text;not null" json:"prompt"`
	OptionA       string `gorm:"size:255;not null" json:"optionA"`
	OptionB       string `gorm:"size:255;not null" json:"optionB"`
	OptionC       string `gorm:"size:255;not null" json:"optionC"`
	OptionD       string `gorm:"size:255;not null" json:"optionD"`
	CorrectAnswer string `gorm:"size:5;not null" json:"-"`
	Category      string `gorm:"size:50;index" json:"category"`
	Enabled       bool   `gorm:"default:true" json:"enabled"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
