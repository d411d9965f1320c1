package models

// SubmitLogResponse is returned by POST /api/log: the stored record with its
// assigned ID.
type SubmitLogResponse struct {
	LogRecord
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}

// ErrorResponse is the JSON body for client errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
