package service

import (
	"errors"

	"github.com/rl1809/volunteer-checkin/internal/core/domain"
)

var (
	ErrNotRegistered      = errors.New("no registration found for this email address")
	ErrStorageUnavailable = errors.New("registry unavailable")
	ErrNameUpdateFailed   = errors.New("display name update failed")

	ErrInvalidState     = errors.New("invalid registration state")
	ErrPositionNotFound = domain.ErrPositionNotFound
)
