package validators

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldOrderID targets the order identifier shared by all chunks.
	FieldOrderID = "order_id"

	// FieldTotal targets the order amount.
	FieldTotal = "total"

	// FieldVPA targets the payer's UPI virtual payment address.
	FieldVPA = "vpa"

	// FieldChunkIndex targets chunkIndex/totalChunks of a chunk request.
	FieldChunkIndex = "chunk_index"

	// FieldFiles targets the files list of a chunk request.
	FieldFiles = "files"

	// FieldFileName targets the name of one file.
	FieldFileName = "file_name"

	// FieldFileData targets the base64 payload of one file.
	FieldFileData = "file_data"

	// FieldFileSize targets the declared size of one file.
	FieldFileSize = "file_size"

	// FieldPaymentScreenshot targets the at-most-one payment proof rule.
	FieldPaymentScreenshot = "payment_screenshot"
)

// maxOrderIDLength bounds order ids; they end up in file paths and
// spreadsheet cells on the remote side.
const maxOrderIDLength = 64
