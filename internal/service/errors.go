package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUserAlreadyExists   = errors.New("user with given login or email already exists")
	ErrForbidden           = errors.New("resource belongs to another user")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrEmptyImportFile       = errors.New("import file contains no rows")
	ErrUnsupportedImportCell = errors.New("import cell has unsupported value")
)
