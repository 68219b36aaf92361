package serviceDetail

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"serviceBooker/internal/lib/logger/sl"
	"serviceBooker/internal/models"
	"serviceBooker/internal/storage"
	"serviceBooker/internal/web"

	"github.com/go-chi/chi/v5"
)

type PageData struct {
	Flash    string
	Service  *models.Service
	Bookings []models.Booking
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ServiceGetter
type ServiceGetter interface {
	GetServiceWithBookings(id int64) (*models.Service, []models.Booking, error)
}

func New(log *slog.Logger, services ServiceGetter, renderer *web.Renderer, flash *web.Flash) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.service.serviceDetail.New"

		log = log.With(slog.String("op", op))

		serviceID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid service id format", sl.Err(err))
			http.Error(w, "invalid service id format", http.StatusBadRequest)
			return
		}

		log = log.With(slog.Int64("service_id", serviceID))

		service, bookings, err := services.GetServiceWithBookings(serviceID)
		if err != nil {
			if errors.Is(err, storage.ErrServiceNotFound) {
				log.Info("service not found")
				renderer.NotFound(w, r, "service not found")
				return
			}

			log.Error("failed to get service", sl.Err(err))
			http.Error(w, "failed to get service", http.StatusInternalServerError)
			return
		}

		log.Info("service retrieved", slog.Int("bookings", len(bookings)))

		if err = renderer.Render(w, r, "service_detail.html", PageData{
			Flash:    flash.Pop(w, r),
			Service:  service,
			Bookings: bookings,
		}); err != nil {
			log.Error("failed to render page", sl.Err(err))
			http.Error(w, "failed to render page", http.StatusInternalServerError)
		}
	}
}
