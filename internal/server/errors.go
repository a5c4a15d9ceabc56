package server

import "errors"

// errNoHTTPHandler is returned when the server has nothing to serve.
var errNoHTTPHandler = errors.New("ingestion http handler is not created")
