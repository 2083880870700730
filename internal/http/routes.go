package http

import (
	"context"

	"login_checker/internal/http/handlers"
	"login_checker/internal/http/middleware"
)

func initRoutes(_ context.Context, r *Router, reporter handlers.LoginReporter) {
	r.httpRouter.Use(middleware.MetricsMiddleware)
	r.httpRouter.Use(middleware.RequestIDLoggerMiddleware(r.log))
	// Routes
	r.httpRouter.Get("/ready", handlers.NewReadyHandler().Handle)
	r.httpRouter.Post("/login/attempt", handlers.NewLoginAttemptHandler(reporter, r.log).Handle)
}
