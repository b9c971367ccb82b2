package router

import (
	"context"
	"net/http"

	"github.com/famquest-app/backend/config"
	"github.com/famquest-app/backend/pkg/logger"
	"github.com/famquest-app/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// Router registers generic JSON endpoints on a ServeMux. Every request gets
// a context carrying the database handle, logger and configs, the same shape
// the domain layer sees in tests.
type Router struct {
	mux    *http.ServeMux
	db     *gorm.DB
	cfg    config.Configs
	logger logger.Logger
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	handle(r, http.MethodGet, pattern, handler)
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	handle(r, http.MethodPost, pattern, handler)
}

func handle[Request, Response any](
	r *Router, method, pattern string, handler HandlerFunc[Request, Response],
) {
	r.mux.HandleFunc(pattern, func(w http.ResponseWriter, req *http.Request) {
		if req.Method != method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := req.Context()
		ctx = xcontext.WithConfigs(ctx, r.cfg)
		ctx = xcontext.WithLogger(ctx, r.logger)
		ctx = xcontext.WithDB(ctx, r.db)

		var body Request
		if err := bindRequest(req, method, &body); err != nil {
			r.logger.Warnf("Cannot bind request of %s: %v", pattern, err)
			writeJson(w, newErrorResponse(err))
			return
		}

		resp, err := handler(ctx, &body)
		if err != nil {
			writeJson(w, newErrorResponse(err))
			return
		}

		writeJson(w, newResponse(resp))
	})
}

func (r *Router) Handler() http.Handler {
	return r.mux
}
