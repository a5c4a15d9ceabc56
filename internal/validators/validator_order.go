package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-order-intake/models"
)

var (
	orderIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
	vpaPattern     = regexp.MustCompile(`^[A-Za-z0-9._-]{2,256}@[A-Za-z][A-Za-z0-9]{1,64}$`)
)

type OrderValidator struct {
}

func NewOrderValidator() Validator {
	return &OrderValidator{}
}

// Validate checks order metadata, a chunk request or one of its files.
func (v *OrderValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.OrderMetadata:
		return v.validateOrderMetadata(ctx, value, fields...)
	case *models.OrderMetadata:
		return v.validateOrderMetadata(ctx, *value, fields...)

	case models.OrderData:
		return v.validateOrderData(ctx, value, fields...)
	case *models.OrderData:
		return v.validateOrderData(ctx, *value, fields...)

	case models.ChunkRequest:
		return v.validateChunkRequest(ctx, value, fields...)
	case *models.ChunkRequest:
		return v.validateChunkRequest(ctx, *value, fields...)

	case models.WireFile:
		return v.validateWireFile(ctx, value, fields...)
	case *models.WireFile:
		return v.validateWireFile(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *OrderValidator) validateOrderMetadata(ctx context.Context, order models.OrderMetadata, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOrderID, FieldTotal, FieldVPA}
	}

	for _, f := range fields {
		switch f {
		case FieldOrderID:
			id := strings.TrimSpace(order.OrderID)
			if id == "" || len(id) > maxOrderIDLength || !orderIDPattern.MatchString(id) {
				return ErrInvalidOrderID
			}
		case FieldTotal:
			if order.Total.IsNegative() {
				return ErrNegativeTotal
			}
		case FieldVPA:
			// optional; validated only when present
			if order.VPA != "" && !vpaPattern.MatchString(order.VPA) {
				return ErrInvalidVPA
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *OrderValidator) validateOrderData(ctx context.Context, data models.OrderData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOrderID, FieldTotal, FieldVPA, FieldChunkIndex}
	}

	orderFields := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != FieldChunkIndex {
			orderFields = append(orderFields, f)
			continue
		}
		if data.TotalChunks < 1 || data.ChunkIndex < 0 || data.ChunkIndex >= data.TotalChunks {
			return ErrInvalidChunkIndex
		}
	}
	if len(orderFields) == 0 {
		return nil
	}

	return v.validateOrderMetadata(ctx, models.OrderMetadata{
		OrderID: data.OrderID,
		Total:   data.Total,
		VPA:     data.VPA,
	}, orderFields...)
}

func (v *OrderValidator) validateChunkRequest(ctx context.Context, request models.ChunkRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFiles, FieldPaymentScreenshot}
	}

	for _, f := range fields {
		switch f {
		case FieldFiles:
			if len(request.Files) == 0 {
				return ErrNoFiles
			}
		case FieldPaymentScreenshot:
			proofs := 0
			for _, file := range request.Files {
				if file.IsPaymentScreenshot {
					proofs++
				}
			}
			if proofs > 1 {
				return ErrMultiplePaymentProofs
			}
		default:
			return ErrUnknownField
		}
	}

	return v.validateOrderData(ctx, request.OrderData)
}

// validateWireFile checks the shape of one file. Problems found here are
// per-file errors on the ingestion side and do not fail the chunk.
func (v *OrderValidator) validateWireFile(ctx context.Context, file models.WireFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName, FieldFileData, FieldFileSize}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			if strings.TrimSpace(file.Name) == "" {
				return ErrEmptyFileName
			}
		case FieldFileData:
			if file.Data == "" && file.Size > 0 {
				return ErrEmptyFileData
			}
		case FieldFileSize:
			if file.Size < 0 {
				return ErrInvalidFileSize
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
