package model

import (
	"time"
)

type UserRole string

const (
	Student    UserRole = "student"
	Instructor UserRole = "instructor"
	Admin      UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name       string   `gorm:"size:100;not null" json:"name"`
	Email      string   `gorm:"size:100;unique;not null" json:"email"`
	Password   string   `gorm:"size:100;not null" json:"-"`
	Role       UserRole `gorm:"type:enum('student','instructor','admin');default:'student'" json:"role"`
	Avatar     string   `gorm:"size:255" json:"avatar"`
	Bio        string   `gorm:"type:text" json:"bio"`
	University string   `gorm:"size:100" json:"university"`
	Grade      string   `gorm:"size:50" json:"grade"`
	Phone      string   `gorm:"size:30" json:"phone"`
	Language   string   `gorm:"size:10;default:'en'" json:"language"`
	Disabled   bool     `gorm:"default:false" json:"disabled"`

	// AI 偏好设置
	AITone    string    `gorm:"size:50;default:'supportive'" json:"aiTone"`
	AISpeed   float64   `gorm:"default:1.0" json:"aiSpeed"`
	AIReports bool      `gorm:"default:false" json:"aiReports"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
