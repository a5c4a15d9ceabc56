package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrNegativeTotal         = errors.New("total must not be negative")
	ErrInvalidVPA            = errors.New("invalid UPI VPA")
	ErrInvalidChunkIndex     = errors.New("invalid chunk index")
	ErrNoFiles               = errors.New("files list cannot be empty")
	ErrEmptyFileName         = errors.New("file name is required")
	ErrEmptyFileData         = errors.New("file data is required")
	ErrInvalidFileSize       = errors.New("invalid file size")
	ErrMultiplePaymentProofs = errors.New("only one payment screenshot is allowed")
)
