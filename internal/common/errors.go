package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Content errors
	ErrUnknownContentType = errors.New("unknown content type")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrAuditEntryMissing  = errors.New("delete audit entry missing")

	// Recommendation errors
	ErrSelfRecommend = errors.New("cannot recommend own content")

	// Report/penalty errors
	ErrReportNotFound  = errors.New("report not found")
	ErrPenaltyNotFound = errors.New("penalty not found")
	ErrInvalidStatus   = errors.New("invalid status")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
