package domain

import "errors"

// ============================================================================
// Request Errors
// ============================================================================

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidArtistName  = errors.New("artist name is required")
)

// ============================================================================
// Upstream Errors
// ============================================================================

// Not found errors
var (
	ErrArtistNotFound = errors.New("could not find artist")
	ErrAlbumNotFound  = errors.New("could not find albums")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Transport errors
var (
	ErrUpstream = errors.New("music catalog request failed")
)
