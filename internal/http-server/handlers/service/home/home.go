package home

import (
	"log/slog"
	"net/http"

	"serviceBooker/internal/lib/logger/sl"
	"serviceBooker/internal/models"
	"serviceBooker/internal/web"
)

// recentLimit caps the landing page at the six newest services.
const recentLimit = 6

type PageData struct {
	Flash    string
	Services []models.Service
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ServiceLister
type ServiceLister interface {
	ListServices(limit int) ([]models.Service, error)
}

func New(log *slog.Logger, services ServiceLister, renderer *web.Renderer, flash *web.Flash) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.service.home.New"

		log = log.With(slog.String("op", op))

		list, err := services.ListServices(recentLimit)
		if err != nil {
			log.Error("failed to list services", sl.Err(err))
			http.Error(w, "failed to list services", http.StatusInternalServerError)
			return
		}

		log.Info("services listed", slog.Int("count", len(list)))

		if err = renderer.Render(w, r, "index.html", PageData{
			Flash:    flash.Pop(w, r),
			Services: list,
		}); err != nil {
			log.Error("failed to render page", sl.Err(err))
			http.Error(w, "failed to render page", http.StatusInternalServerError)
		}
	}
}
