package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderMetadata_ForChunk(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	order := OrderMetadata{OrderID: "ORD-7", Total: decimal.RequireFromString("149.50"), VPA: "a@ybl"}

	data := order.ForChunk(1, 3, time.Date(2026, 10, 15, 12, 0, 0, 0, ist))

	assert.Equal(t, "ORD-7", data.OrderID)
	assert.Equal(t, 1, data.ChunkIndex)
	assert.Equal(t, 3, data.TotalChunks)
	assert.Equal(t, time.UTC, data.Timestamp.Location())
	assert.Equal(t, "2026-10-15T06:30:00Z", data.Timestamp.Format(time.RFC3339))
}

func TestOrderData_MarshalJSON_TotalIsNumber(t *testing.T) {
	data := OrderData{
		OrderID:     "ORD-7",
		Total:       decimal.RequireFromString("149.50"),
		VPA:         "a@ybl",
		Timestamp:   time.Date(2026, 10, 15, 6, 30, 0, 0, time.UTC),
		ChunkIndex:  0,
		TotalChunks: 1,
	}

	body, err := json.Marshal(data)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"orderId": "ORD-7",
		"total": 149.5,
		"vpa": "a@ybl",
		"timestamp": "2026-10-15T06:30:00Z",
		"chunkIndex": 0,
		"totalChunks": 1
	}`, string(body))

	// сервер принимает число обратно в decimal без потерь
	var decoded OrderData
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.True(t, data.Total.Equal(decoded.Total))
}

func TestEncodedFile_Wire(t *testing.T) {
	f := EncodedFile{
		FileDescriptor: FileDescriptor{
			Name:                "upi.png",
			RawBytes:            []byte("png"),
			MimeType:            "image/png",
			Size:                3,
			IsPaymentScreenshot: true,
		},
		Data: "cG5n",
	}

	body, err := json.Marshal(f.Wire())
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"upi.png","data":"cG5n","mimeType":"image/png","size":3,"isPaymentScreenshot":true}`, string(body))
}
