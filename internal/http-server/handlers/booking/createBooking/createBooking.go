package createBooking

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"serviceBooker/internal/lib/logger/sl"
	"serviceBooker/internal/models"
	"serviceBooker/internal/storage"
	"serviceBooker/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// bookingDateLayout is the fixed calendar-date format the form submits.
const bookingDateLayout = "2006-01-02"

type BookingRequest struct {
	ClientName  string `validate:"required"`
	ClientEmail string `validate:"required"`
	BookingDate string `validate:"required"`
}

type FormPage struct {
	Flash   string
	Error   string
	Service *models.Service
	Form    BookingRequest
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSaver
type BookingSaver interface {
	GetService(id int64) (*models.Service, error)
	SaveBooking(serviceID int64, clientName, clientEmail string, bookingDate time.Time) (int64, error)
}

// Form renders the booking form bound to the service from the path.
func Form(log *slog.Logger, bookings BookingSaver, renderer *web.Renderer, flash *web.Flash) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.Form"

		log = log.With(slog.String("op", op))

		service, ok := lookupService(log, bookings, renderer, w, r)
		if !ok {
			return
		}

		if err := renderer.Render(w, r, "book_service.html", FormPage{
			Flash:   flash.Pop(w, r),
			Service: service,
		}); err != nil {
			log.Error("failed to render page", sl.Err(err))
			http.Error(w, "failed to render page", http.StatusInternalServerError)
		}
	}
}

// New handles the booking submission: the service must exist, the date must
// be a calendar date, and the booking is stored pending.
func New(log *slog.Logger, bookings BookingSaver, renderer *web.Renderer, flash *web.Flash) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		service, ok := lookupService(log, bookings, renderer, w, r)
		if !ok {
			return
		}

		log = log.With(slog.Int64("service_id", service.ID))

		if err := r.ParseForm(); err != nil {
			log.Error("failed to parse form", sl.Err(err))
			renderForm(log, renderer, w, r, service, BookingRequest{}, "failed to parse form")
			return
		}

		req := BookingRequest{
			ClientName:  r.PostFormValue("client_name"),
			ClientEmail: r.PostFormValue("client_email"),
			BookingDate: r.PostFormValue("booking_date"),
		}

		log.Info("form decoded", slog.Any("request", req))

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			renderForm(log, renderer, w, r, service, req, web.ValidationMsg(validateErr))
			return
		}

		bookingDate, err := time.Parse(bookingDateLayout, req.BookingDate)
		if err != nil {
			log.Error("invalid booking date", sl.Err(err))
			renderForm(log, renderer, w, r, service, req, "booking date must be in YYYY-MM-DD format")
			return
		}

		id, err := bookings.SaveBooking(service.ID, req.ClientName, req.ClientEmail, bookingDate)
		if err != nil {
			log.Error("failed to save booking", sl.Err(err))
			http.Error(w, "failed to save booking", http.StatusInternalServerError)
			return
		}

		log.Info("booking saved", slog.Int64("id", id))

		if err = flash.Set(w, r, "Service booked successfully!"); err != nil {
			log.Error("failed to set flash", sl.Err(err))
		}

		http.Redirect(w, r, fmt.Sprintf("/service/%d", service.ID), http.StatusFound)
	}
}

func lookupService(log *slog.Logger, bookings BookingSaver, renderer *web.Renderer, w http.ResponseWriter, r *http.Request) (*models.Service, bool) {
	serviceID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("invalid service id format", sl.Err(err))
		http.Error(w, "invalid service id format", http.StatusBadRequest)
		return nil, false
	}

	service, err := bookings.GetService(serviceID)
	if err != nil {
		if errors.Is(err, storage.ErrServiceNotFound) {
			log.Info("service not found", slog.Int64("service_id", serviceID))
			renderer.NotFound(w, r, "service not found")
			return nil, false
		}

		log.Error("failed to get service", sl.Err(err))
		http.Error(w, "failed to get service", http.StatusInternalServerError)
		return nil, false
	}

	return service, true
}

func renderForm(log *slog.Logger, renderer *web.Renderer, w http.ResponseWriter, r *http.Request, service *models.Service, form BookingRequest, errMsg string) {
	render.Status(r, http.StatusBadRequest)

	if err := renderer.Render(w, r, "book_service.html", FormPage{
		Error:   errMsg,
		Service: service,
		Form:    form,
	}); err != nil {
		log.Error("failed to render page", sl.Err(err))
	}
}
