package client

import "errors"

var (
	ErrNoFilesGiven     = errors.New("no files given")
	ErrConflictingModes = errors.New("-health, -lookup and -history are mutually exclusive")
	ErrInvalidTotal     = errors.New("invalid order total")
)
