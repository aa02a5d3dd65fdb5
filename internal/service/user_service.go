package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/util"
)

// ProfileUpdate 可更新的个人资料字段
// swagger:model ProfileUpdate
type ProfileUpdate struct {
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	University string `json:"university"`
	Grade      string `json:"grade"`
	Phone      string `json:"phone"`
	Language   string `json:"language"`
}

// AIPreferences AI 助手偏好设置
// swagger:model AIPreferences
type AIPreferences struct {
	Tone    string  `json:"tone"`
	Speed   float64 `json:"speed"`
	Reports bool    `json:"reports"`
}

// UserService 处理用户资料相关的业务逻辑
type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Storage:  storage,
	}
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile 更新个人资料，空字段保持原值
func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Bio != "" {
		user.Bio = update.Bio
	}
	if update.University != "" {
		user.University = update.University
	}
	if update.Grade != "" {
		user.Grade = update.Grade
	}
	if update.Phone != "" {
		user.Phone = update.Phone
	}
	if update.Language != "" {
		user.Language = update.Language
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateAIPreferences 更新 AI 助手的语气、语速和周报开关
func (s *UserService) UpdateAIPreferences(userID uint, prefs AIPreferences) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if prefs.Tone != "" {
		user.AITone = prefs.Tone
	}
	if prefs.Speed > 0 {
		user.AISpeed = prefs.Speed
	}
	user.AIReports = prefs.Reports

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UploadAvatar 上传头像并更新用户记录
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (string, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return "", util.ErrUserNotFound
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{util.MimeImage})
	if err != nil || !util.IsImage(mimeType) {
		return "", util.ErrUnsupportedFileType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("avatars/%d_%d%s", userID, time.Now().Unix(), filepath.Ext(file.Filename))
	url, err := s.Storage.Upload(ctx, objectName, src, file.Size, mimeType)
	if err != nil {
		return "", err
	}

	user.Avatar = url
	if err := s.UserRepo.Update(user); err != nil {
		return "", err
	}
	return url, nil
}
