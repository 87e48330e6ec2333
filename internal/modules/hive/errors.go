package hive

import "errors"

var (
	ErrNotFound       = errors.New("hive not found")
	ErrApiaryNotFound = errors.New("apiary not found")
	ErrForbidden      = errors.New("forbidden")
)
