package apiary

import "errors"

var (
	ErrNotFound  = errors.New("apiary not found")
	ErrForbidden = errors.New("forbidden")
)
