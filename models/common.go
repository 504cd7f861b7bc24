package models

// Mensaje is the confirmation body returned by mutating endpoints.
type Mensaje struct {
	Mensaje string `json:"mensaje"`
}

// ErrorRespuesta is the structured error payload.
type ErrorRespuesta struct {
	Error  string   `json:"error"`
	Campos []string `json:"campos,omitempty"` // fields that failed validation
}

