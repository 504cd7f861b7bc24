package controllers

import (
	"net/http"

	"github.com/kelydev/apiCitas/utils"
)

// HealthHandler answers GET /healthz while the process is up.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
