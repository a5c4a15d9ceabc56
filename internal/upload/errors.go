// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package upload

import (
	"errors"
	"fmt"
	"strings"
)

// Category sentinels. Every [*Error] matches exactly one of them with
// [errors.Is].
var (
	// ErrValidation is detected before any network call.
	ErrValidation = errors.New("validation error")

	// ErrTransport means the request never reached the endpoint or its
	// answer never reached us (network down, blocked cross-origin request).
	ErrTransport = errors.New("transport error")

	// ErrRemote means the endpoint answered with a non-2xx status or a body
	// that does not have the expected shape.
	ErrRemote = errors.New("remote error")

	// ErrQuota means the endpoint signalled a rate or quota limit.
	ErrQuota = errors.New("quota error")
)

// Validation sentinels.
var (
	ErrNoFiles      = errors.New("no files supplied")
	ErrTooManyFiles = errors.New("too many files")
	ErrFileTooLarge = errors.New("file too large")

	// ErrInvalidPlanConfig is returned by Plan for a non-positive ceiling or
	// negative overheads.
	ErrInvalidPlanConfig = errors.New("invalid plan configuration")

	// ErrInvalidFileOptions is returned for print options that cannot be
	// encoded as JSON.
	ErrInvalidFileOptions = errors.New("invalid file options")

	// ErrInvalidOrder is returned for empty order ids or negative totals.
	ErrInvalidOrder = errors.New("invalid order metadata")
)

// Category is the coarse failure class of an aborted batch.
type Category int

const (
	CategoryValidation Category = iota
	CategoryTransport
	CategoryRemote
	CategoryQuota
)

func (c Category) String() string {
	switch c {
	case CategoryValidation:
		return "validation"
	case CategoryTransport:
		return "transport"
	case CategoryRemote:
		return "remote"
	case CategoryQuota:
		return "quota"
	default:
		return "unknown"
	}
}

func (c Category) sentinel() error {
	switch c {
	case CategoryValidation:
		return ErrValidation
	case CategoryTransport:
		return ErrTransport
	case CategoryQuota:
		return ErrQuota
	default:
		return ErrRemote
	}
}

// CategoryOf maps a classified kind to the category that aborts a batch.
func CategoryOf(kind Kind) Category {
	switch kind {
	case KindCorsBlocked, KindNetworkUnreachable:
		return CategoryTransport
	case KindQuotaExceeded:
		return CategoryQuota
	default:
		return CategoryRemote
	}
}

// Error is the error returned by a failed upload. Message is meant for the
// end user; Err keeps the underlying cause for logs and errors.Is/As.
type Error struct {
	Category Category
	Kind     Kind
	Message  string

	// File names the offending file, if any.
	File string

	// ChunkIndex is the zero-based chunk that failed, or -1 before transport.
	ChunkIndex int

	// StatusCode is the HTTP status of the failed request, if any.
	StatusCode int

	Err error
}

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Category.String())
	b.WriteString(" error")
	if e.ChunkIndex >= 0 {
		fmt.Fprintf(&b, " (chunk %d)", e.ChunkIndex+1)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// Unwrap exposes both the category sentinel and the cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Category.sentinel()}
	}
	return []error{e.Category.sentinel(), e.Err}
}

// NewValidationError wraps one of the validation sentinels.
func NewValidationError(cause error, file, message string) *Error {
	kind := KindUnknown
	if errors.Is(cause, ErrFileTooLarge) {
		kind = KindFileTooLarge
	}
	return &Error{
		Category:   CategoryValidation,
		Kind:       kind,
		Message:    message,
		File:       file,
		ChunkIndex: -1,
		Err:        cause,
	}
}

// NewTransportFailure classifies a failed chunk send into an [*Error].
func NewTransportFailure(f Failure, chunkIndex int) *Error {
	c := Classify(f)
	return &Error{
		Category:   CategoryOf(c.Kind),
		Kind:       c.Kind,
		Message:    c.Message,
		ChunkIndex: chunkIndex,
		StatusCode: f.StatusCode,
		Err:        f.Err,
	}
}

// NewCanceledError reports a batch stopped by its context before or while
// sending the chunk at chunkIndex.
func NewCanceledError(cause error, chunkIndex int) *Error {
	return &Error{
		Category:   CategoryTransport,
		Kind:       KindUnknown,
		Message:    "upload canceled",
		ChunkIndex: chunkIndex,
		Err:        cause,
	}
}
