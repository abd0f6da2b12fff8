package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrDistrictNotFound   = errors.New("district not found")
	ErrSchoolNotFound     = errors.New("school not found")
	ErrSurveyNotFound     = errors.New("survey not found")
	ErrSurveyPublished    = errors.New("survey is already published")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrResponseNotFound   = errors.New("response not found")
)
