package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// Accepted upload types for question import files.
const (
	MimeCSV         = "text/csv"
	MimeJSON        = "application/json"
	MimePlainText   = "text/plain"
	MimeOctetStream = "application/octet-stream"
)

var AllowedImportExtensions = []string{".csv", ".json", ".txt"}
