package model

import "time"

// LearningActivity 教师布置的学习任务
// swagger:model LearningActivity
type LearningActivity struct {
	BaseModel
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Type        SubmissionType `gorm:"type:enum('SPEAKING','WRITING','HANDWRITTEN');not null" json:"type"`
	DueDate     *time.Time     `gorm:"type:datetime;index" json:"dueDate"`
	CreatedBy   uint           `gorm:"type:bigint unsigned" json:"createdBy"`
}

func (LearningActivity) TableName() string {
	return "learning_activities"
}
