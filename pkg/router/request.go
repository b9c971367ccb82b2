package router

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/famquest-app/backend/pkg/errorx"
)

// bindRequest fills req from the query string for reads and from the JSON
// body for writes. Query binding covers the string and int fields the request
// models use, keyed by their json tags.
func bindRequest(r *http.Request, method string, req any) error {
	switch method {
	case http.MethodGet, http.MethodDelete:
		return bindQuery(r, req)
	default:
		return bindBody(r, req)
	}
}

func bindQuery(r *http.Request, req any) error {
	v := reflect.ValueOf(req).Elem()
	for i := 0; i < v.NumField(); i++ {
		name := v.Type().Field(i).Tag.Get("json")
		queryVal := r.URL.Query().Get(name)
		if queryVal == "" {
			continue
		}

		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(queryVal)

		case reflect.Int:
			val, err := strconv.Atoi(queryVal)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid number for field %s", name)
			}
			v.Field(i).SetInt(int64(val))

		case reflect.Bool:
			val, err := strconv.ParseBool(queryVal)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid boolean for field %s", name)
			}
			v.Field(i).SetBool(val)
		}
	}

	return nil
}

func bindBody(r *http.Request, req any) error {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return errorx.New(errorx.BadRequest, "Cannot read the request body")
	}

	if len(b) == 0 {
		return nil
	}

	if err := json.Unmarshal(b, req); err != nil {
		return errorx.New(errorx.BadRequest, "Cannot parse the request body")
	}

	return nil
}
