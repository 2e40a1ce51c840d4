package mocks

import (
	"context"

	"github.com/estospaces/realtysvc/domain"
)

// MockPropertyService implements domain.PropertyService for testing
type MockPropertyService struct {
	CreateFunc       func(ctx context.Context, input domain.CreatePropertyInput) (*domain.Property, error)
	GetFunc          func(ctx context.Context, id uint, country string) (*domain.Property, error)
	UpdateFunc       func(ctx context.Context, id uint, patch domain.PropertyPatch) (*domain.Property, error)
	DeleteFunc       func(ctx context.Context, id uint) (*domain.Property, error)
	PublishFunc      func(ctx context.Context, id uint) (*domain.Property, error)
	UnpublishFunc    func(ctx context.Context, id uint) (*domain.Property, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status, note string) (*domain.Property, error)
}

// NewMockPropertyService creates a new MockPropertyService with default behaviors
func NewMockPropertyService() *MockPropertyService {
	return &MockPropertyService{}
}

func (m *MockPropertyService) Create(ctx context.Context, input domain.CreatePropertyInput) (*domain.Property, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return &domain.Property{ID: 1, Title: input.Title, Status: domain.PropertyStatusActive}, nil
}

func (m *MockPropertyService) Get(ctx context.Context, id uint, country string) (*domain.Property, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id, country)
	}
	return nil, domain.ErrPropertyNotFound
}

func (m *MockPropertyService) Update(ctx context.Context, id uint, patch domain.PropertyPatch) (*domain.Property, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return nil, domain.ErrPropertyNotFound
}

func (m *MockPropertyService) Delete(ctx context.Context, id uint) (*domain.Property, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, domain.ErrPropertyNotFound
}

func (m *MockPropertyService) Publish(ctx context.Context, id uint) (*domain.Property, error) {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, id)
	}
	return nil, domain.ErrPropertyNotFound
}

func (m *MockPropertyService) Unpublish(ctx context.Context, id uint) (*domain.Property, error) {
	if m.UnpublishFunc != nil {
		return m.UnpublishFunc(ctx, id)
	}
	return nil, domain.ErrPropertyNotFound
}

func (m *MockPropertyService) UpdateStatus(ctx context.Context, id uint, status, note string) (*domain.Property, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, note)
	}
	return nil, domain.ErrPropertyNotFound
}

var _ domain.PropertyService = (*MockPropertyService)(nil)
