package util

import "errors"

var (
	ErrUserNotFound     = errors.New("用户不存在")
	ErrEmailRegistered  = errors.New("该邮箱已被注册")
	ErrPermissionDenied = errors.New("permission denied")
	ErrToolNotFound     = errors.New("ai tool not found")
	ErrBundleNotFound   = errors.New("ai bundle not found")
	ErrQuestionNotFound = errors.New("quiz question not found")
	ErrPackageNotFound  = errors.New("custom package not found")
	ErrAlreadyFavorited = errors.New("item already in favorites")
)
