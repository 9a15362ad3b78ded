package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

// ReviewService manages testimonials and their approval.
type ReviewService struct {
	db *gorm.DB
}

// ReviewInput represents a validated review form.
type ReviewInput struct {
	Name         string
	ReviewerType string
	Role         string
	Message      string
}

// NewReviewService creates a ReviewService instance.
func NewReviewService(gdb *gorm.DB) *ReviewService {
	return &ReviewService{db: gdb}
}

// Create stores an unapproved review. The role is kept only for colleagues.
func (s *ReviewService) Create(ctx context.Context, input ReviewInput) (*db.Review, error) {
	review := db.Review{
		Name:         strings.TrimSpace(input.Name),
		ReviewerType: strings.TrimSpace(input.ReviewerType),
		Message:      strings.TrimSpace(input.Message),
	}

	role := strings.TrimSpace(input.Role)
	if review.ReviewerType == db.ReviewerColleague && role != "" {
		review.Role = &role
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&review).Error
	}); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	return &review, nil
}

// ListApproved returns the reviews visible on the public site, newest first.
func (s *ReviewService) ListApproved(ctx context.Context) ([]db.Review, error) {
	var reviews []db.Review
	if err := s.db.WithContext(ctx).
		Where("approved = ?", true).
		Order("created_at desc, id desc").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListPending returns reviews awaiting approval, oldest first.
func (s *ReviewService) ListPending(ctx context.Context) ([]db.Review, error) {
	var reviews []db.Review
	if err := s.db.WithContext(ctx).
		Where("approved = ?", false).
		Order("created_at asc, id asc").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Approve makes a review publicly visible.
func (s *ReviewService) Approve(ctx context.Context, id uint) (*db.Review, error) {
	var review db.Review
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, id).Error; err != nil {
			return err
		}
		review.Approved = true
		return tx.Model(&review).Update("approved", true).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("approve review %d: %w", id, err)
	}
	return &review, nil
}
