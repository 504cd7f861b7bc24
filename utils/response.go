package utils

import (
	"encoding/json"
	"net/http"

	"github.com/kelydev/apiCitas/models"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"error": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, models.ErrorRespuesta{Error: msg})
}

// Message writes {"mensaje": msg}.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, models.Mensaje{Mensaje: msg})
}
