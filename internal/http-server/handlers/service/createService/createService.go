package createService

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"serviceBooker/internal/lib/logger/sl"
	"serviceBooker/internal/web"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// ServiceRequest mirrors the creation form. Price stays a string here so a
// failed parse can be reported back on the re-rendered form.
type ServiceRequest struct {
	Title         string `validate:"required"`
	Description   string `validate:"required"`
	Price         string `validate:"required"`
	ProviderName  string `validate:"required"`
	ProviderEmail string `validate:"required"`
}

type FormPage struct {
	Flash string
	Error string
	Form  ServiceRequest
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ServiceSaver
type ServiceSaver interface {
	SaveService(title, description string, price float64, providerName, providerEmail string) (int64, error)
}

// Form renders the empty creation form.
func Form(log *slog.Logger, renderer *web.Renderer, flash *web.Flash) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.service.createService.Form"

		log = log.With(slog.String("op", op))

		if err := renderer.Render(w, r, "new_service.html", FormPage{
			Flash: flash.Pop(w, r),
		}); err != nil {
			log.Error("failed to render page", sl.Err(err))
			http.Error(w, "failed to render page", http.StatusInternalServerError)
		}
	}
}

// New handles the form submission: validate, insert, flash, redirect.
func New(log *slog.Logger, services ServiceSaver, renderer *web.Renderer, flash *web.Flash) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.service.createService.New"

		log = log.With(slog.String("op", op))

		if err := r.ParseForm(); err != nil {
			log.Error("failed to parse form", sl.Err(err))
			renderForm(log, renderer, w, r, ServiceRequest{}, "failed to parse form")
			return
		}

		req := ServiceRequest{
			Title:         r.PostFormValue("title"),
			Description:   r.PostFormValue("description"),
			Price:         r.PostFormValue("price"),
			ProviderName:  r.PostFormValue("provider_name"),
			ProviderEmail: r.PostFormValue("provider_email"),
		}

		log.Info("form decoded", slog.Any("request", req))

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			renderForm(log, renderer, w, r, req, web.ValidationMsg(validateErr))
			return
		}

		price, err := strconv.ParseFloat(req.Price, 64)
		if err != nil {
			log.Error("invalid price", sl.Err(err))
			renderForm(log, renderer, w, r, req, "price must be a number")
			return
		}

		id, err := services.SaveService(req.Title, req.Description, price, req.ProviderName, req.ProviderEmail)
		if err != nil {
			log.Error("failed to save service", sl.Err(err))
			http.Error(w, "failed to save service", http.StatusInternalServerError)
			return
		}

		log.Info("service saved", slog.Int64("id", id))

		if err = flash.Set(w, r, "Service posted successfully!"); err != nil {
			log.Error("failed to set flash", sl.Err(err))
		}

		http.Redirect(w, r, "/services", http.StatusFound)
	}
}

func renderForm(log *slog.Logger, renderer *web.Renderer, w http.ResponseWriter, r *http.Request, form ServiceRequest, errMsg string) {
	render.Status(r, http.StatusBadRequest)

	if err := renderer.Render(w, r, "new_service.html", FormPage{
		Error: errMsg,
		Form:  form,
	}); err != nil {
		log.Error("failed to render page", sl.Err(err))
	}
}
