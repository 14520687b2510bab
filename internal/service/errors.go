package service

import "errors"

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidRoster  = errors.New("invalid roster")
	ErrPlayerExists   = errors.New("player already exists")
)
