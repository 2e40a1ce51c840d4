package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/estospaces/realtysvc/domain"
)

// PropertyRepositoryImpl implements domain.PropertyRepository using GORM
type PropertyRepositoryImpl struct {
	db *gorm.DB
}

// DBProperty represents the database model for Property (with GORM tags)
type DBProperty struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"size:255"`
	Description  string
	PropertyType string  `gorm:"index;size:64"`
	Price        float64 `gorm:"index"`
	ManagerID    uint    `gorm:"index"`
	AreaNumeric  float64
	AreaUnit     string `gorm:"size:16"`
	Status       string `gorm:"index;size:32"`
	IsPublished  bool   `gorm:"index"`
	PublishedAt  *time.Time
	Country      string `gorm:"index;size:64"`
	Note         string
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBProperty) TableName() string {
	return "properties"
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) domain.PropertyRepository {
	return &PropertyRepositoryImpl{db: db}
}

// Create implements domain.PropertyRepository
func (r *PropertyRepositoryImpl) Create(ctx context.Context, property *domain.Property) error {
	dbProp := r.domainToDB(property)
	if err := r.db.WithContext(ctx).Create(dbProp).Error; err != nil {
		return err
	}
	property.ID = dbProp.ID
	property.CreatedAt = dbProp.CreatedAt
	property.UpdatedAt = dbProp.UpdatedAt
	return nil
}

// FindByID implements domain.PropertyRepository. The country filter is
// the tenant boundary: a row under another country is reported exactly
// like a missing row.
func (r *PropertyRepositoryImpl) FindByID(ctx context.Context, id uint, country string) (*domain.Property, error) {
	var dbProp DBProperty
	err := r.db.WithContext(ctx).Where("id = ? AND country = ?", id, country).First(&dbProp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbProp), nil
}

// Patch implements domain.PropertyRepository. Only the allow-listed
// columns carried by PropertyPatch can ever reach this update.
func (r *PropertyRepositoryImpl) Patch(ctx context.Context, id uint, patch domain.PropertyPatch) (*domain.Property, error) {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.PropertyType != nil {
		updates["property_type"] = *patch.PropertyType
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.AreaNumeric != nil {
		updates["area_numeric"] = *patch.AreaNumeric
	}
	if patch.AreaUnit != nil {
		updates["area_unit"] = *patch.AreaUnit
	}
	if patch.Note != nil {
		updates["note"] = *patch.Note
	}
	return r.mutate(ctx, id, updates)
}

// Archive implements domain.PropertyRepository. Soft delete: the row
// stays, only the status flips.
func (r *PropertyRepositoryImpl) Archive(ctx context.Context, id uint) (*domain.Property, error) {
	return r.mutate(ctx, id, map[string]interface{}{"status": domain.PropertyStatusArchived})
}

// SetPublished implements domain.PropertyRepository
func (r *PropertyRepositoryImpl) SetPublished(ctx context.Context, id uint, published bool) (*domain.Property, error) {
	updates := map[string]interface{}{"is_published": published}
	if published {
		updates["published_at"] = time.Now()
	} else {
		updates["published_at"] = nil
	}
	return r.mutate(ctx, id, updates)
}

// SetStatus implements domain.PropertyRepository
func (r *PropertyRepositoryImpl) SetStatus(ctx context.Context, id uint, status, note string) (*domain.Property, error) {
	return r.mutate(ctx, id, map[string]interface{}{"status": status, "note": note})
}

// mutate applies the updates and returns the resulting row, reporting
// ErrPropertyNotFound when no row matched.
func (r *PropertyRepositoryImpl) mutate(ctx context.Context, id uint, updates map[string]interface{}) (*domain.Property, error) {
	res := r.db.WithContext(ctx).Model(&DBProperty{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrPropertyNotFound
	}

	var dbProp DBProperty
	if err := r.db.WithContext(ctx).First(&dbProp, id).Error; err != nil {
		return nil, err
	}
	return r.dbToDomain(&dbProp), nil
}

func (r *PropertyRepositoryImpl) domainToDB(p *domain.Property) *DBProperty {
	return &DBProperty{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		PropertyType: p.PropertyType,
		Price:        p.Price,
		ManagerID:    p.ManagerID,
		AreaNumeric:  p.AreaNumeric,
		AreaUnit:     p.AreaUnit,
		Status:       p.Status,
		IsPublished:  p.IsPublished,
		PublishedAt:  p.PublishedAt,
		Country:      p.Country,
		Note:         p.Note,
	}
}

func (r *PropertyRepositoryImpl) dbToDomain(dbProp *DBProperty) *domain.Property {
	return &domain.Property{
		ID:           dbProp.ID,
		Title:        dbProp.Title,
		Description:  dbProp.Description,
		PropertyType: dbProp.PropertyType,
		Price:        dbProp.Price,
		ManagerID:    dbProp.ManagerID,
		AreaNumeric:  dbProp.AreaNumeric,
		AreaUnit:     dbProp.AreaUnit,
		Status:       dbProp.Status,
		IsPublished:  dbProp.IsPublished,
		PublishedAt:  dbProp.PublishedAt,
		Country:      dbProp.Country,
		Note:         dbProp.Note,
		CreatedAt:    dbProp.CreatedAt,
		UpdatedAt:    dbProp.UpdatedAt,
	}
}
