package mocks

import (
	"context"

	"github.com/estospaces/realtysvc/domain"
)

// MockPropertyRepository implements domain.PropertyRepository for testing
type MockPropertyRepository struct {
	CreateFunc       func(ctx context.Context, property *domain.Property) error
	FindByIDFunc     func(ctx context.Context, id uint, country string) (*domain.Property, error)
	PatchFunc        func(ctx context.Context, id uint, patch domain.PropertyPatch) (*domain.Property, error)
	ArchiveFunc      func(ctx context.Context, id uint) (*domain.Property, error)
	SetPublishedFunc func(ctx context.Context, id uint, published bool) (*domain.Property, error)
	SetStatusFunc    func(ctx context.Context, id uint, status, note string) (*domain.Property, error)
}

// NewMockPropertyRepository creates a new MockPropertyRepository with default behaviors
func NewMockPropertyRepository() *MockPropertyRepository {
	return &MockPropertyRepository{}
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, property)
	}
	property.ID = 1
	return nil
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id uint, country string) (*domain.Property, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id, country)
	}
	return nil, domain.ErrPropertyNotFound
}

func (m *MockPropertyRepository) Patch(ctx context.Context, id uint, patch domain.PropertyPatch) (*domain.Property, error) {
	if m.PatchFunc != nil {
		return m.PatchFunc(ctx, id, patch)
	}
	return nil, domain.ErrPropertyNotFound
}

func (m *MockPropertyRepository) Archive(ctx context.Context, id uint) (*domain.Property, error) {
	if m.ArchiveFunc != nil {
		return m.ArchiveFunc(ctx, id)
	}
	return nil, domain.ErrPropertyNotFound
}

func (m *MockPropertyRepository) SetPublished(ctx context.Context, id uint, published bool) (*domain.Property, error) {
	if m.SetPublishedFunc != nil {
		return m.SetPublishedFunc(ctx, id, published)
	}
	return nil, domain.ErrPropertyNotFound
}

func (m *MockPropertyRepository) SetStatus(ctx context.Context, id uint, status, note string) (*domain.Property, error) {
	if m.SetStatusFunc != nil {
		return m.SetStatusFunc(ctx, id, status, note)
	}
	return nil, domain.ErrPropertyNotFound
}

var _ domain.PropertyRepository = (*MockPropertyRepository)(nil)
