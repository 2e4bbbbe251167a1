package venues

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for venue operations
type Repository interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	GetByName(ctx context.Context, name string) (*Venue, error)
	List(ctx context.Context, filters VenueFilters) ([]Venue, int64, error)
	Update(ctx context.Context, venue *Venue) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).First(&venue, "LOWER(name) = LOWER(?)", name).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *repository) List(ctx context.Context, filters VenueFilters) ([]Venue, int64, error) {
	var venues []Venue
	var total int64

	query := r.db.WithContext(ctx).Model(&Venue{})

	if filters.Search != "" {
		query = query.Where("name ILIKE ?", fmt.Sprintf("%%%s%%", filters.Search))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// The list view only needs ids and names
	offset := (filters.Page - 1) * filters.Limit
	err := query.Select("id", "name").
		Order("name ASC").
		Offset(offset).
		Limit(filters.Limit).
		Find(&venues).Error
	if err != nil {
		return nil, 0, err
	}

	return venues, total, nil
}

func (r *repository) Update(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Save(venue).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Venue{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
