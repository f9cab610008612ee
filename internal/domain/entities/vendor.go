package entities

import "time"

type VendorType string

const (
	VendorTypeDonationPartner VendorType = "donation_partner"
	VendorTypeHauler          VendorType = "hauler"
	VendorTypeCleaner         VendorType = "cleaner"
	VendorTypeOther           VendorType = "other"
)

type VendorServiceType string

const (
	VendorServiceHauling  VendorServiceType = "hauling"
	VendorServiceDonation VendorServiceType = "donation"
	VendorServiceBoth     VendorServiceType = "both"
)

type Vendor struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Type        VendorType        `json:"type"`
	ServiceType VendorServiceType `json:"service_type"`
	Active      bool              `json:"active"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
