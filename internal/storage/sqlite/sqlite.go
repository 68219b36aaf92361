package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"serviceBooker/internal/models"
	"serviceBooker/internal/storage"

	_ "modernc.org/sqlite"
)

type Storage struct {
	DB *sql.DB
}

// New opens the database file at storagePath, creating it and the schema on
// first run. Schema creation is idempotent and runs on every startup.
func New(storagePath string) (*Storage, error) {
	db, err := sql.Open("sqlite", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to open the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *Storage) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS services (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			price REAL NOT NULL,
			provider_name TEXT NOT NULL,
			provider_email TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			service_id INTEGER NOT NULL REFERENCES services(id),
			client_name TEXT NOT NULL,
			client_email TEXT NOT NULL,
			booking_date TIMESTAMP NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP NOT NULL
		)`,
	}

	for _, query := range queries {
		if _, err := s.DB.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) SaveService(title, description string, price float64, providerName, providerEmail string) (int64, error) {
	query := `
		INSERT INTO services (title, description, price, provider_name, provider_email, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	res, err := s.DB.Exec(query, title, description, price, providerName, providerEmail, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to save service: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get service id: %w", err)
	}

	return id, nil
}

func (s *Storage) GetService(id int64) (*models.Service, error) {
	query := `
		SELECT id, title, description, price, provider_name, provider_email, created_at
		FROM services
		WHERE id = ?`

	var service models.Service
	err := s.DB.QueryRow(query, id).Scan(
		&service.ID,
		&service.Title,
		&service.Description,
		&service.Price,
		&service.ProviderName,
		&service.ProviderEmail,
		&service.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return &service, nil
}

// ListServices returns services newest first. A limit <= 0 means no limit;
// the landing page passes 6.
func (s *Storage) ListServices(limit int) ([]models.Service, error) {
	query := `
		SELECT id, title, description, price, provider_name, provider_email, created_at
		FROM services
		ORDER BY created_at DESC, id DESC`

	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.DB.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = s.DB.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get services: %w", err)
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var service models.Service
		err = rows.Scan(
			&service.ID,
			&service.Title,
			&service.Description,
			&service.Price,
			&service.ProviderName,
			&service.ProviderEmail,
			&service.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, service)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating services: %w", err)
	}

	return services, nil
}

func (s *Storage) GetServiceWithBookings(id int64) (*models.Service, []models.Booking, error) {
	service, err := s.GetService(id)
	if err != nil {
		return nil, nil, err
	}

	query := `
		SELECT id, service_id, client_name, client_email, booking_date, status, created_at
		FROM bookings
		WHERE service_id = ?
		ORDER BY created_at DESC, id DESC`

	rows, err := s.DB.Query(query, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.ServiceID,
			&booking.ClientName,
			&booking.ClientEmail,
			&booking.BookingDate,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return service, bookings, nil
}

func (s *Storage) SaveBooking(serviceID int64, clientName, clientEmail string, bookingDate time.Time) (int64, error) {
	query := `
		INSERT INTO bookings (service_id, client_name, client_email, booking_date, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	res, err := s.DB.Exec(query, serviceID, clientName, clientEmail, bookingDate, models.BookingStatusPending, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to save booking: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get booking id: %w", err)
	}

	return id, nil
}
