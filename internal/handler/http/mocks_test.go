package http

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockContactSvc struct {
	listFn   func(ctx context.Context) ([]models.ContactDTO, error)
	getFn    func(ctx context.Context, id int64) (models.ContactDTO, error)
	createFn func(ctx context.Context, dto models.ContactDTO) (models.ContactDTO, error)
	updateFn func(ctx context.Context, id int64, dto models.ContactDTO) (models.ContactDTO, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockContactSvc) List(ctx context.Context) ([]models.ContactDTO, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.ContactDTO{}, nil
}

func (m *mockContactSvc) Get(ctx context.Context, id int64) (models.ContactDTO, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.ContactDTO{ID: &id}, nil
}

func (m *mockContactSvc) Create(ctx context.Context, dto models.ContactDTO) (models.ContactDTO, error) {
	if m.createFn != nil {
		return m.createFn(ctx, dto)
	}
	return dto, nil
}

func (m *mockContactSvc) Update(ctx context.Context, id int64, dto models.ContactDTO) (models.ContactDTO, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, dto)
	}
	return dto, nil
}

func (m *mockContactSvc) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockEnrollSvc struct {
	enrollFn func(ctx context.Context) (string, error)
	existsFn func(ctx context.Context, ownerID string) (bool, error)
}

func (m *mockEnrollSvc) Enroll(ctx context.Context) (string, error) {
	if m.enrollFn != nil {
		return m.enrollFn(ctx)
	}
	return testOwner, nil
}

func (m *mockEnrollSvc) Exists(ctx context.Context, ownerID string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, ownerID)
	}
	return ownerID == testOwner, nil
}

type mockAppInfoSvc struct {
	version string
}

func (m *mockAppInfoSvc) GetAppVersion(_ context.Context) string {
	return m.version
}
