package model

// LearningGoal 学生自定义的学习目标
// swagger:model LearningGoal
type LearningGoal struct {
	BaseModel
	UserID       uint   `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	GoalName     string `gorm:"size:255;not null" json:"goalName"`
	Category     string `gorm:"size:50;default:'General'" json:"category"`
	TargetValue  int    `gorm:"not null" json:"targetValue"`
	CurrentValue int    `gorm:"default:0" json:"currentValue"`
}

func (LearningGoal) TableName() string {
	return "learning_goals"
}
