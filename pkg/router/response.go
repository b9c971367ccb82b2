package router

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/famquest-app/backend/pkg/errorx"
)

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{Code: 0, Data: data}
}

// newErrorResponse exposes the code and message of errorx values; anything
// else collapses to Unknown so internals never leak to clients.
func newErrorResponse(err error) response {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return response{
			Code:  int64(errx.Code),
			Error: errx.Message,
		}
	}

	return response{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

func writeJson(w http.ResponseWriter, resp response) {
	w.Header().Set("Content-Type", "application/json")

	b, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "cannot marshal the response", http.StatusInternalServerError)
		return
	}

	w.Write(b)
}
