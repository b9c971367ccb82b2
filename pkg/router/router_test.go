package router

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/famquest-app/backend/config"
	"github.com/famquest-app/backend/pkg/errorx"
	"github.com/famquest-app/backend/pkg/logger"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type echoResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestRouter() *Router {
	return New(nil, config.Configs{}, logger.NewLogger(logger.SILENCE))
}

func TestRouterBindsQueryOnGet(t *testing.T) {
	r := newTestRouter()
	GET(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Name: req.Name, Count: req.Count}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/echo?name=avery&count=3", nil))

	require.Equal(t, 200, w.Code)
	require.JSONEq(t, `{"code":0,"data":{"name":"avery","count":3}}`, w.Body.String())
}

func TestRouterBindsBodyOnPost(t *testing.T) {
	r := newTestRouter()
	POST(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Name: req.Name, Count: req.Count}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(
		"POST", "/echo", strings.NewReader(`{"name":"jordan","count":7}`)))

	require.Equal(t, 200, w.Code)
	require.JSONEq(t, `{"code":0,"data":{"name":"jordan","count":7}}`, w.Body.String())
}

func TestRouterExposesErrorxCodes(t *testing.T) {
	r := newTestRouter()
	GET(r, "/fail", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errorx.New(errorx.NotFound, "Not found member")
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/fail", nil))
	require.JSONEq(t, `{"code":100002,"error":"Not found member"}`, w.Body.String())
}

func TestRouterCollapsesUnknownErrors(t *testing.T) {
	r := newTestRouter()
	GET(r, "/boom", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, context.DeadlineExceeded
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/boom", nil))
	require.JSONEq(t, `{"code":100000,"error":"Request failed"}`, w.Body.String())
}
