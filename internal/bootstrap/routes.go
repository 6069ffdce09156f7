package bootstrap

import (
	"net/http"

	"page-cache/internal/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func InitRoutes(pageHandler *handlers.PageHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("OK"))
	})

	r.Get("/page", pageHandler.GetPage)
	r.Get("/page/stats", pageHandler.GetStats)

	return r
}
