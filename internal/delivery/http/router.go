package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"uniboard/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	certificateController *controllers.CertificateController,
	demoRequestController *controllers.DemoRequestController,
	systemController *controllers.SystemController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// System
	mux.HandleFunc("GET /healthz", systemController.Health)

	// Demo requests
	mux.HandleFunc("POST /demo-request", demoRequestController.Submit)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Certificate verification
	mux.HandleFunc("GET /{organization}/certificates/{certificatenumber}", certificateController.Verify)
	mux.HandleFunc("GET /{organization}/certificates/{certificatenumber}/image", certificateController.Image)

	return mux
}
