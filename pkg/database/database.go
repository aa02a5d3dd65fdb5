package database

import (
	"fmt"
	"log"

	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Submission{},
		&model.Grade{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.LearningActivity{},
		&model.LearningGoal{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认的测验题库（题库为空时插入一组基础英语选择题）
	var qCount int64
	db.Model(&model.QuizQuestion{}).Count(&qCount)
	if qCount == 0 {
		defaultQuestions := []model.QuizQuestion{
			{
				Prompt:        "Choose the correct sentence.",
				OptionA:       "She don't like coffee.",
				OptionB:       "She doesn't likes coffee.",
				OptionC:       "She doesn't like coffee.",
				OptionD:       "She not like coffee.",
				CorrectAnswer: "C",
				Category:      "grammar",
				Enabled:       true,
			},
			{
				Prompt:        "Which word is a synonym of \"rapid\"?",
				OptionA:       "slow",
				OptionB:       "quick",
				OptionC:       "late",
				OptionD:       "calm",
				CorrectAnswer: "B",
				Category:      "vocabulary",
				Enabled:       true,
			},
			{
				Prompt:        "Fill in the blank: \"I have lived here ___ 2019.\"",
				OptionA:       "for",
				OptionB:       "since",
				OptionC:       "during",
				OptionD:       "from",
				CorrectAnswer: "B",
				Category:      "grammar",
				Enabled:       true,
			},
			{
				Prompt:        "Choose the correctly spelled word.",
				OptionA:       "recieve",
				OptionB:       "receeve",
				OptionC:       "receive",
				OptionD:       "reseive",
				CorrectAnswer: "C",
				Category:      "spelling",
				Enabled:       true,
			},
			{
				Prompt:        "What is the past tense of \"go\"?",
				OptionA:       "goed",
				OptionB:       "gone",
				OptionC:       "went",
				OptionD:       "going",
				CorrectAnswer: "C",
				Category:      "grammar",
				Enabled:       true,
			},
		}
		for _, q := range defaultQuestions {
			db.Create(&q)
		}
	}

	return db, nil
}
