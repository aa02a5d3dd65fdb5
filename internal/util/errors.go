package util

import "errors"

var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrEmailRegistered     = errors.New("该邮箱已被注册")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrEmptySubmission     = errors.New("submission has no content")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
