package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrBlogNotFound = errors.New("blog not found")
	ErrSlugRequired = errors.New("blog slug is required")
)

// BlogService manages blog rows.
type BlogService struct {
	db *gorm.DB
}

// BlogInput holds every mutable field of a blog post. ReadTime is derived
// from Content.
type BlogInput struct {
	Slug         string
	CardPosition int
	Title        string
	Meta         string
	Summary      string
	Content      string
	Published    bool
}

// NewBlogService creates a BlogService instance.
func NewBlogService(gdb *gorm.DB) *BlogService {
	return &BlogService{db: gdb}
}

// Upsert inserts a post or overwrites the existing one with the same slug,
// so seeding the same content twice leaves a single row.
func (s *BlogService) Upsert(ctx context.Context, input BlogInput) (*db.Blog, error) {
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		return nil, ErrSlugRequired
	}

	var blog db.Blog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// soft-deleted rows still own their slug in the unique index
		err := tx.Unscoped().Where("slug = ?", slug).First(&blog).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			blog = db.Blog{Slug: slug}
			applyBlogInput(&blog, input)
			return tx.Create(&blog).Error
		case err != nil:
			return err
		}

		applyBlogInput(&blog, input)
		blog.DeletedAt = gorm.DeletedAt{}
		return tx.Unscoped().Save(&blog).Error
	})
	if err != nil {
		return nil, fmt.Errorf("upsert blog %q: %w", slug, err)
	}

	return &blog, nil
}

func applyBlogInput(blog *db.Blog, input BlogInput) {
	blog.CardPosition = input.CardPosition
	blog.Title = strings.TrimSpace(input.Title)
	blog.Meta = strings.TrimSpace(input.Meta)
	blog.Summary = strings.TrimSpace(input.Summary)
	blog.Content = input.Content
	blog.ReadTime = EstimateReadTime(input.Content)
	blog.Published = input.Published
}

// ListPublished returns published posts ordered by card position.
func (s *BlogService) ListPublished(ctx context.Context) ([]db.Blog, error) {
	var blogs []db.Blog
	if err := s.db.WithContext(ctx).
		Where("published = ?", true).
		Order("card_position asc, id asc").
		Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// GetPublishedBySlug fetches one published post.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*db.Blog, error) {
	var blog db.Blog
	if err := s.db.WithContext(ctx).
		Where("slug = ? AND published = ?", strings.TrimSpace(slug), true).
		First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// LatestUpdate returns the most recent update time across published posts.
// The boolean is false when nothing is published.
func (s *BlogService) LatestUpdate(ctx context.Context) (time.Time, bool, error) {
	var blog db.Blog
	err := s.db.WithContext(ctx).
		Where("published = ?", true).
		Order("updated_at desc").
		First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	return blog.UpdatedAt, true, nil
}

// Clear permanently removes every blog row.
func (s *BlogService) Clear(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&db.Blog{})
	if result.Error != nil {
		return 0, fmt.Errorf("clear blogs: %w", result.Error)
	}
	return result.RowsAffected, nil
}
