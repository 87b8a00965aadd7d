package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/JMURv/authcore/internal/config"
	"github.com/JMURv/authcore/internal/ctrl"
	mid "github.com/JMURv/authcore/internal/hdl/http/middleware"
	"github.com/JMURv/authcore/internal/hdl/http/utils"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RateLimiter throttles the public recovery endpoints.
type RateLimiter interface {
	Allow(ctx context.Context, key string) error
}

type Handler struct {
	router  *chi.Mux
	srv     *http.Server
	ctrl    ctrl.AppCtrl
	cookies utils.CookiePolicy
	limiter RateLimiter
	appURL  string
}

func New(app ctrl.AppCtrl, conf config.Config, limiter RateLimiter) *Handler {
	return &Handler{
		router:  chi.NewRouter(),
		ctrl:    app,
		cookies: utils.NewCookiePolicy(conf),
		limiter: limiter,
		appURL:  conf.Server.AppURL,
	}
}

func (h *Handler) Start(port int) {
	h.router.Use(
		mid.Logger(zap.L()),
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		mid.Prometheus,
		mid.OT,
	)

	h.RegisterRoutes()
	h.router.Get(
		"/health", func(w http.ResponseWriter, r *http.Request) {
			utils.SuccessResponse(w, http.StatusOK, map[string]string{"status": "OK"})
		},
	)

	h.srv = &http.Server{
		Handler:      h.router,
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info(
		"Starting HTTP server",
		zap.String("addr", h.srv.Addr),
	)

	err := h.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}
