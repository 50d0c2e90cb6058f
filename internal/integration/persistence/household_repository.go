// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
	"github.com/finance-advisor/backend/internal/integration/persistence/model"
)

// householdRepository implements the adapter.HouseholdRepository interface.
type householdRepository struct {
	db *gorm.DB
}

// NewHouseholdRepository creates a new household repository instance.
func NewHouseholdRepository(db *gorm.DB) adapter.HouseholdRepository {
	return &householdRepository{
		db: db,
	}
}

// FindByID retrieves a household profile by its ID.
func (r *householdRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HouseholdProfile, error) {
	var profileModel model.HouseholdProfileModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProfileNotFound
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}

// Save creates or fully replaces a household profile. Save by primary key is
// an upsert, which gives the documented most-recent-writer-wins behavior.
func (r *householdRepository) Save(ctx context.Context, profile *entity.HouseholdProfile) error {
	profileModel := model.HouseholdProfileFromEntity(profile)
	result := r.db.WithContext(ctx).Save(profileModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a household profile.
func (r *householdRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.HouseholdProfileModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProfileNotFound
	}
	return nil
}
