package services

import (
	"context"

	"github.com/estospaces/realtysvc/domain"
)

// PropertyServiceImpl implements domain.PropertyService
type PropertyServiceImpl struct {
	propertyRepo domain.PropertyRepository
}

// NewPropertyService creates a new property service
func NewPropertyService(propertyRepo domain.PropertyRepository) domain.PropertyService {
	return &PropertyServiceImpl{propertyRepo: propertyRepo}
}

// Create implements domain.PropertyService. New listings start out
// active and unpublished, stamped with the manager's country scope.
func (s *PropertyServiceImpl) Create(ctx context.Context, input domain.CreatePropertyInput) (*domain.Property, error) {
	areaUnit := input.AreaUnit
	if areaUnit == "" {
		areaUnit = domain.DefaultAreaUnit
	}

	property := &domain.Property{
		Title:        input.Title,
		Description:  input.Description,
		PropertyType: input.PropertyType,
		Price:        input.Price,
		ManagerID:    input.ManagerID,
		AreaNumeric:  input.AreaNumeric,
		AreaUnit:     areaUnit,
		Status:       domain.PropertyStatusActive,
		Country:      input.Country,
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// Get implements domain.PropertyService
func (s *PropertyServiceImpl) Get(ctx context.Context, id uint, country string) (*domain.Property, error) {
	return s.propertyRepo.FindByID(ctx, id, country)
}

// Update implements domain.PropertyService. The patch type is the
// allow-list: only listing content fields can be changed here, never
// status, publication state or country.
func (s *PropertyServiceImpl) Update(ctx context.Context, id uint, patch domain.PropertyPatch) (*domain.Property, error) {
	if patch.Empty() {
		return nil, domain.ErrEmptyPatch
	}
	return s.propertyRepo.Patch(ctx, id, patch)
}

// Delete implements domain.PropertyService. Soft delete only.
func (s *PropertyServiceImpl) Delete(ctx context.Context, id uint) (*domain.Property, error) {
	return s.propertyRepo.Archive(ctx, id)
}

// Publish implements domain.PropertyService. Idempotent.
func (s *PropertyServiceImpl) Publish(ctx context.Context, id uint) (*domain.Property, error) {
	return s.propertyRepo.SetPublished(ctx, id, true)
}

// Unpublish implements domain.PropertyService. Idempotent.
func (s *PropertyServiceImpl) Unpublish(ctx context.Context, id uint) (*domain.Property, error) {
	return s.propertyRepo.SetPublished(ctx, id, false)
}

// UpdateStatus implements domain.PropertyService. Status strings are
// accepted as-is at this layer.
func (s *PropertyServiceImpl) UpdateStatus(ctx context.Context, id uint, status, note string) (*domain.Property, error) {
	return s.propertyRepo.SetStatus(ctx, id, status, note)
}
