package service

import "errors"

// Not-found errors
var (
	ErrListNotFound       = errors.New("list not found")
	ErrDefaultListMissing = errors.New("default list not found")
	ErrAdjectiveNotFound  = errors.New("adjective not found in this list")
	ErrSessionNotFound    = errors.New("session not found")
	ErrShareLinkNotFound  = errors.New("share link not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrSchoolNotFound     = errors.New("school not found")
)

// Forbidden errors; the access gate fails with the first reason that applies
var (
	ErrListNotShared   = errors.New("this list is not shared")
	ErrShareExpired    = errors.New("share link has expired")
	ErrOwnerNotActive  = errors.New("owner account is not active")
	ErrSchoolNotActive = errors.New("owner's school is not active")
	ErrNotListOwner    = errors.New("only the list owner can modify this list")
	ErrListReadOnly    = errors.New("this list cannot be modified")
)

// Invalid-input errors
var (
	ErrInvalidBucket    = errors.New("bucket must be one of: manchmal, oft, selten")
	ErrSessionHasNoList = errors.New("session has no associated list")
	ErrEmptyWord        = errors.New("word must not be empty")
	ErrEmptyListName    = errors.New("list name must not be empty")
	ErrSharingDisabled  = errors.New("list sharing is not enabled")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

// Authentication errors
var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrSchoolNameTaken      = errors.New("school name already in use")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrLoginSessionNotFound = errors.New("login session not found")
	ErrLoginSessionExpired  = errors.New("login session expired")
)
