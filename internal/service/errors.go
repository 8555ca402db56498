package service

import "errors"

var (
	ErrPageNotFound       = errors.New("page not found")
	ErrSectionNotFound    = errors.New("section not found")
	ErrUnknownSectionType = errors.New("unknown section type")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoChange reports a mutation that resolved to a no-op: the target
	// field, item or selection node could not be found, or the repeater is
	// full. No-ops never corrupt sibling state, but they are surfaced so
	// clients and tests can observe them.
	ErrNoChange = errors.New("operation had no effect")

	ErrUnsupportedLanguage = errors.New("language is not enabled for this site")
)
