package utils

import (
	"errors"
	"math"
	"net/http"
	"strconv"
)

// GetPaginationParams parses page and limit query parameters from a request.
// ok is false when the request asks for neither, meaning "return everything".
// Otherwise page defaults to 1 and limit to 20, capped at 100.
func GetPaginationParams(r *http.Request) (page, limit int, ok bool) {
	pageStr := r.URL.Query().Get("page")
	limitStr := r.URL.Query().Get("limit")
	if pageStr == "" && limitStr == "" {
		return 0, 0, false
	}

	page, err := strconv.Atoi(pageStr)
	switch {
	case errors.Is(err, strconv.ErrRange) && page > 0:
		// too large to parse; Offset rejects it
		page = math.MaxInt
	case err != nil || page < 1:
		page = 1
	}

	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit, true
}

// ErrPageOutOfRange is returned by Offset when page*limit does not fit in an int.
var ErrPageOutOfRange = errors.New("page out of range")

// Offset returns the number of rows to skip before page.
func Offset(page, limit int) (int, error) {
	if page > math.MaxInt/limit {
		return 0, ErrPageOutOfRange
	}
	return (page - 1) * limit, nil
}
