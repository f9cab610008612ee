package usecase

import (
	"context"
	"errors"
	"strings"

	"kept_house/internal/domain/entities"
	"kept_house/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidVendorInput = errors.New("invalid vendor input")

type CreateVendorInput struct {
	Name        string
	Email       string
	Phone       string
	Type        entities.VendorType
	ServiceType entities.VendorServiceType
}

type IVendorUseCase interface {
	Create(ctx context.Context, in CreateVendorInput) (entities.Vendor, error)
	GetByID(ctx context.Context, id string) (entities.Vendor, error)
	List(ctx context.Context) ([]entities.Vendor, error)
}

type VendorUseCase struct {
	vendors interfaces.IVendorRepository
	now     clock
}

var _ IVendorUseCase = (*VendorUseCase)(nil)

func NewVendorUseCase(vendors interfaces.IVendorRepository) *VendorUseCase {
	return &VendorUseCase{vendors: vendors, now: utcNow}
}

func (u *VendorUseCase) Create(ctx context.Context, in CreateVendorInput) (entities.Vendor, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Vendor{}, ErrInvalidVendorInput
	}
	switch in.Type {
	case entities.VendorTypeDonationPartner, entities.VendorTypeHauler, entities.VendorTypeCleaner, entities.VendorTypeOther:
	case "":
		in.Type = entities.VendorTypeOther
	default:
		return entities.Vendor{}, ErrInvalidVendorInput
	}
	switch in.ServiceType {
	case entities.VendorServiceHauling, entities.VendorServiceDonation, entities.VendorServiceBoth:
	case "":
		in.ServiceType = entities.VendorServiceBoth
	default:
		return entities.Vendor{}, ErrInvalidVendorInput
	}

	now := u.now()
	return u.vendors.Create(ctx, entities.Vendor{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Type:        in.Type,
		ServiceType: in.ServiceType,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (u *VendorUseCase) GetByID(ctx context.Context, id string) (entities.Vendor, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Vendor{}, ErrInvalidID
	}
	v, err := u.vendors.GetByID(ctx, id)
	if err != nil {
		return entities.Vendor{}, err
	}
	if v.ID == "" {
		return entities.Vendor{}, ErrVendorNotFound
	}
	return v, nil
}

func (u *VendorUseCase) List(ctx context.Context) ([]entities.Vendor, error) {
	return u.vendors.List(ctx)
}
