package db

import "errors"

var (
	ErrEmptySnapshot = errors.New("no dataset snapshot stored")
	ErrDataCorrupted = errors.New("data is corrupted")
)
