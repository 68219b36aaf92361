package createBooking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"serviceBooker/internal/http-server/handlers/booking/createBooking/mocks"
	"serviceBooker/internal/lib/logger/handlers/slogdiscard"
	"serviceBooker/internal/models"
	"serviceBooker/internal/storage"
	"serviceBooker/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testService = &models.Service{
	ID:            1,
	Title:         "Logo Design",
	Description:   "Custom logos",
	Price:         49.99,
	ProviderName:  "Ana",
	ProviderEmail: "ana@x.com",
	CreatedAt:     time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC),
}

func validForm() url.Values {
	return url.Values{
		"client_name":  {"Bo"},
		"client_email": {"bo@x.com"},
		"booking_date": {"2024-05-01"},
	}
}

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	flash := web.NewFlash("test-secret")

	bookingDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name             string
		url              string
		form             url.Values
		mockSetup        func(mock *mocks.BookingSaver)
		expectedStatus   int
		expectedLocation string
		checkBody        func(t *testing.T, body string)
	}{
		{
			name: "Success",
			url:  "/book/1",
			form: validForm(),
			mockSetup: func(mock *mocks.BookingSaver) {
				mock.On("GetService", int64(1)).Return(testService, nil)
				mock.On("SaveBooking", int64(1), "Bo", "bo@x.com", bookingDate).Return(int64(1), nil)
			},
			expectedStatus:   http.StatusFound,
			expectedLocation: "/service/1",
		},
		{
			name: "Service not found",
			url:  "/book/9999",
			form: validForm(),
			mockSetup: func(mock *mocks.BookingSaver) {
				mock.On("GetService", int64(9999)).Return(nil, storage.ErrServiceNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "service not found")
			},
		},
		{
			name: "Missing client fields",
			url:  "/book/1",
			form: url.Values{"booking_date": {"2024-05-01"}},
			mockSetup: func(mock *mocks.BookingSaver) {
				mock.On("GetService", int64(1)).Return(testService, nil)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "ClientName")
				assert.Contains(t, body, "ClientEmail")
			},
		},
		{
			name: "Unparsable booking date",
			url:  "/book/1",
			form: func() url.Values {
				f := validForm()
				f.Set("booking_date", "May 1st")
				return f
			}(),
			mockSetup: func(mock *mocks.BookingSaver) {
				mock.On("GetService", int64(1)).Return(testService, nil)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "YYYY-MM-DD")
			},
		},
		{
			name:           "Invalid id format",
			url:            "/book/abc",
			form:           validForm(),
			mockSetup:      func(mock *mocks.BookingSaver) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Storage error on save",
			url:  "/book/1",
			form: validForm(),
			mockSetup: func(mock *mocks.BookingSaver) {
				mock.On("GetService", int64(1)).Return(testService, nil)
				mock.On("SaveBooking", int64(1), "Bo", "bo@x.com", bookingDate).Return(int64(0), errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSaver := mocks.NewBookingSaver(t)
			tc.mockSetup(mockSaver)

			router := chi.NewRouter()
			router.Post("/book/{id}", New(logger, mockSaver, renderer, flash))

			req := httptest.NewRequest("POST", tc.url, strings.NewReader(tc.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedLocation != "" {
				assert.Equal(t, tc.expectedLocation, rr.Header().Get("Location"))
				assert.NotEmpty(t, rr.Header().Get("Set-Cookie"), "flash cookie expected")
			}

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestBookingForm(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	flash := web.NewFlash("test-secret")

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(mock *mocks.BookingSaver)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Form bound to service",
			url:  "/book/1",
			mockSetup: func(mock *mocks.BookingSaver) {
				mock.On("GetService", int64(1)).Return(testService, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Logo Design")
				assert.Contains(t, body, `name="booking_date"`)
				assert.Contains(t, body, `action="/book/1"`)
			},
		},
		{
			name: "Service not found",
			url:  "/book/9999",
			mockSetup: func(mock *mocks.BookingSaver) {
				mock.On("GetService", int64(9999)).Return(nil, storage.ErrServiceNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSaver := mocks.NewBookingSaver(t)
			tc.mockSetup(mockSaver)

			router := chi.NewRouter()
			router.Get("/book/{id}", Form(logger, mockSaver, renderer, flash))

			req := httptest.NewRequest("GET", tc.url, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
