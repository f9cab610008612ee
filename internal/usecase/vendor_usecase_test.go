package usecase

import (
	"context"
	"errors"
	"testing"

	"kept_house/internal/domain/entities"
	mock_interfaces "kept_house/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestVendorUseCase_Create(t *testing.T) {
	t.Run("defaults type and service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIVendorRepository(ctrl)
		uc := NewVendorUseCase(repo)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v entities.Vendor) (entities.Vendor, error) { return v, nil })

		v, err := uc.Create(context.Background(), CreateVendorInput{Name: " Goodwill "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Name != "Goodwill" || v.Type != entities.VendorTypeOther || v.ServiceType != entities.VendorServiceBoth || !v.Active {
			t.Fatalf("unexpected vendor: %+v", v)
		}
	})

	t.Run("unknown service type", func(t *testing.T) {
		uc := NewVendorUseCase(nil)
		_, err := uc.Create(context.Background(), CreateVendorInput{Name: "X", ServiceType: "painting"})
		if !errors.Is(err, ErrInvalidVendorInput) {
			t.Fatalf("expected ErrInvalidVendorInput, got %v", err)
		}
	})
}

func TestVendorUseCase_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIVendorRepository(ctrl)
	uc := NewVendorUseCase(repo)
	repo.EXPECT().GetByID(gomock.Any(), "v9").Return(entities.Vendor{}, nil)

	_, err := uc.GetByID(context.Background(), "v9")
	if !errors.Is(err, ErrVendorNotFound) {
		t.Fatalf("expected ErrVendorNotFound, got %v", err)
	}
}
