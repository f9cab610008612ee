package repository

import (
	"context"

	"kept_house/internal/domain/entities"
	"kept_house/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultVendorsTableName = "vendors"

type vendorItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Email       string `dynamodbav:"email,omitempty"`
	Phone       string `dynamodbav:"phone,omitempty"`
	Type        string `dynamodbav:"type"`
	ServiceType string `dynamodbav:"service_type"`
	Active      bool   `dynamodbav:"active"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// VendorDynamoRepository persists vendors (PK: id). The directory is small,
// so List scans.
type VendorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVendorRepository = (*VendorDynamoRepository)(nil)

func NewVendorDynamoRepository(ddb *dynamodb.Client, tableName string) *VendorDynamoRepository {
	return &VendorDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultVendorsTableName),
	}
}

func (r *VendorDynamoRepository) Create(ctx context.Context, v entities.Vendor) (entities.Vendor, error) {
	av, err := attributevalue.MarshalMap(vendorItem{
		ID:          v.ID,
		Name:        v.Name,
		Email:       v.Email,
		Phone:       v.Phone,
		Type:        string(v.Type),
		ServiceType: string(v.ServiceType),
		Active:      v.Active,
		CreatedAt:   timeToString(v.CreatedAt),
		UpdatedAt:   timeToString(v.UpdatedAt),
	})
	if err != nil {
		return entities.Vendor{}, err
	}
	if err := putIfAbsent(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Vendor{}, err
	}
	return v, nil
}

func (r *VendorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vendor, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(raw) == 0 {
		return entities.Vendor{}, err
	}
	var it vendorItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Vendor{}, err
	}
	return fromVendorItem(it), nil
}

func (r *VendorDynamoRepository) List(ctx context.Context) ([]entities.Vendor, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	var items []vendorItem
	if err := attributevalue.UnmarshalListOfMaps(raws, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Vendor, 0, len(items))
	for _, it := range items {
		out = append(out, fromVendorItem(it))
	}
	return out, nil
}

func fromVendorItem(it vendorItem) entities.Vendor {
	return entities.Vendor{
		ID:          it.ID,
		Name:        it.Name,
		Email:       it.Email,
		Phone:       it.Phone,
		Type:        entities.VendorType(it.Type),
		ServiceType: entities.VendorServiceType(it.ServiceType),
		Active:      it.Active,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
