package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

// BookingService stores tutoring requests.
type BookingService struct {
	db *gorm.DB
}

// BookingInput represents a validated booking form.
type BookingInput struct {
	Name           string
	Level          string
	ExamBoard      string
	Email          string
	PreferredTimes string
	Message        string
}

// NewBookingService creates a BookingService instance.
func NewBookingService(gdb *gorm.DB) *BookingService {
	return &BookingService{db: gdb}
}

// Create persists a booking in its own transaction.
func (s *BookingService) Create(ctx context.Context, input BookingInput) (*db.Booking, error) {
	booking := db.Booking{
		Reference:      uuid.NewString(),
		Name:           strings.TrimSpace(input.Name),
		Level:          strings.TrimSpace(input.Level),
		ExamBoard:      strings.TrimSpace(input.ExamBoard),
		Email:          strings.TrimSpace(input.Email),
		PreferredTimes: strings.TrimSpace(input.PreferredTimes),
		Message:        strings.TrimSpace(input.Message),
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&booking).Error
	}); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	return &booking, nil
}

// ListAll returns every booking, newest first.
func (s *BookingService) ListAll(ctx context.Context) ([]db.Booking, error) {
	var bookings []db.Booking
	if err := s.db.WithContext(ctx).Order("created_at desc, id desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
