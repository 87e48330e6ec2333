package inspection

import "errors"

var (
	ErrNotFound     = errors.New("inspection not found")
	ErrHiveNotFound = errors.New("hive not found")
	ErrForbidden    = errors.New("forbidden")
)
