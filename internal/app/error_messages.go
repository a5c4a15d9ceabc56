// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// ingestion endpoint handlers and middleware.
//
// Msg* constants are the human-readable texts written into the "error" field
// of JSON responses. Code* constants are the machine-readable "errorCode"
// values the upload client classifies before falling back to text matching.
package app

const (
	// MsgInvalidJSON is returned when the request body is not a chunk request.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidChunkRequest prefixes validation failures of a chunk request.
	MsgInvalidChunkRequest = "invalid chunk request"

	// MsgInvalidOrderID is returned when a lookup or download names an
	// order id that can never exist.
	MsgInvalidOrderID = "invalid order id"

	// MsgOrderNotFound is returned by the lookup for unknown orders.
	MsgOrderNotFound = "Order not found"

	// MsgFileNotFound is returned by the file download for unknown files.
	MsgFileNotFound = "File not found"

	// MsgPayloadTooLarge is returned when the request body exceeds the
	// configured request size.
	MsgPayloadTooLarge = "request payload too large"

	// MsgMethodNotAllowed is returned for unsupported methods on a known path.
	MsgMethodNotAllowed = "method not allowed"

	// MsgNotFound is returned for unknown paths.
	MsgNotFound = "not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeOrderNotFound    = "ORDER_NOT_FOUND"
	CodeFileNotFound     = "FILE_NOT_FOUND"
	CodePayloadTooLarge  = "PAYLOAD_TOO_LARGE"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL"
)
