package repository

import (
	"context"

	"kept_house/internal/domain/entities"
	"kept_house/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultItemsTableName = "item_documents"
	itemsJobIndex         = "job_id-index"
	itemsStatusIndex      = "status-index"
)

type suggestionItem struct {
	PhotoIndices []int  `dynamodbav:"photo_indices"`
	Title        string `dynamodbav:"title"`
	Description  string `dynamodbav:"description"`
	Category     string `dynamodbav:"category"`
	PriceLow     string `dynamodbav:"price_low"`
	PriceHigh    string `dynamodbav:"price_high"`
}

type approvedItemItem struct {
	ItemNumber      int    `dynamodbav:"item_number"`
	PhotoIndices    []int  `dynamodbav:"photo_indices"`
	Title           string `dynamodbav:"title"`
	Description     string `dynamodbav:"description"`
	Category        string `dynamodbav:"category"`
	Price           string `dynamodbav:"price,omitempty"`
	PriceLow        string `dynamodbav:"price_low"`
	PriceHigh       string `dynamodbav:"price_high"`
	EstateSalePrice string `dynamodbav:"estate_sale_price,omitempty"`
	Disposition     string `dynamodbav:"disposition,omitempty"`
	DispositionAt   string `dynamodbav:"disposition_at,omitempty"`
	DispositionBy   string `dynamodbav:"disposition_by,omitempty"`
}

type reopenItem struct {
	Reason string `dynamodbav:"reason"`
	By     string `dynamodbav:"by"`
	At     string `dynamodbav:"at"`
}

type itemDocumentItem struct {
	ID                  string             `dynamodbav:"id"`
	JobID               string             `dynamodbav:"job_id"`
	Title               string             `dynamodbav:"title,omitempty"`
	Photos              []string           `dynamodbav:"photos"`
	Status              string             `dynamodbav:"status"`
	Suggestions         []suggestionItem   `dynamodbav:"suggestions,omitempty"`
	ApprovedItems       []approvedItemItem `dynamodbav:"approved_items"`
	SoldPhotoIndices    []int              `dynamodbav:"sold_photo_indices,omitempty"`
	DonatedPhotoIndices []int              `dynamodbav:"donated_photo_indices,omitempty"`
	HauledPhotoIndices  []int              `dynamodbav:"hauled_photo_indices,omitempty"`
	SoldAt              string             `dynamodbav:"sold_at,omitempty"`
	ReopenHistory       []reopenItem       `dynamodbav:"reopen_history,omitempty"`
	Version             int64              `dynamodbav:"version"`
	CreatedAt           string             `dynamodbav:"created_at"`
	UpdatedAt           string             `dynamodbav:"updated_at"`
}

// ItemDocumentDynamoRepository persists ItemDocument entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//   - GSI: status-index (PK: status)
type ItemDocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IItemDocumentRepository = (*ItemDocumentDynamoRepository)(nil)

func NewItemDocumentDynamoRepository(ddb *dynamodb.Client, tableName string) *ItemDocumentDynamoRepository {
	return &ItemDocumentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultItemsTableName),
	}
}

func (r *ItemDocumentDynamoRepository) Create(ctx context.Context, d entities.ItemDocument) (entities.ItemDocument, error) {
	d.Version = 1
	av, err := attributevalue.MarshalMap(toItemDocumentItem(d))
	if err != nil {
		return entities.ItemDocument{}, err
	}
	if err := putIfAbsent(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.ItemDocument{}, err
	}
	return d, nil
}

func (r *ItemDocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ItemDocument, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(raw) == 0 {
		return entities.ItemDocument{}, err
	}
	var it itemDocumentItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.ItemDocument{}, err
	}
	return fromItemDocumentItem(it), nil
}

func (r *ItemDocumentDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.ItemDocument, error) {
	raws, err := queryIndex(ctx, r.ddb, r.tableName, itemsJobIndex, "job_id", jobID)
	if err != nil {
		return nil, err
	}
	return r.decodeAll(raws)
}

func (r *ItemDocumentDynamoRepository) ListByStatus(ctx context.Context, status entities.ItemStatus) ([]entities.ItemDocument, error) {
	raws, err := queryIndex(ctx, r.ddb, r.tableName, itemsStatusIndex, "status", string(status))
	if err != nil {
		return nil, err
	}
	return r.decodeAll(raws)
}

func (r *ItemDocumentDynamoRepository) Update(ctx context.Context, d entities.ItemDocument) (entities.ItemDocument, error) {
	expected := d.Version
	d.Version = expected + 1
	av, err := attributevalue.MarshalMap(toItemDocumentItem(d))
	if err != nil {
		return entities.ItemDocument{}, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, expected); err != nil {
		return entities.ItemDocument{}, err
	}
	return d, nil
}

func (r *ItemDocumentDynamoRepository) decodeAll(raws []map[string]types.AttributeValue) ([]entities.ItemDocument, error) {
	var items []itemDocumentItem
	if err := attributevalue.UnmarshalListOfMaps(raws, &items); err != nil {
		return nil, err
	}
	docs := make([]entities.ItemDocument, 0, len(items))
	for _, it := range items {
		docs = append(docs, fromItemDocumentItem(it))
	}
	return docs, nil
}

func toItemDocumentItem(d entities.ItemDocument) itemDocumentItem {
	suggestions := make([]suggestionItem, 0, len(d.Suggestions))
	for _, s := range d.Suggestions {
		suggestions = append(suggestions, suggestionItem{
			PhotoIndices: s.PhotoIndices,
			Title:        s.Title,
			Description:  s.Description,
			Category:     s.Category,
			PriceLow:     floatToString(s.PriceLow),
			PriceHigh:    floatToString(s.PriceHigh),
		})
	}
	approved := make([]approvedItemItem, 0, len(d.ApprovedItems))
	for _, a := range d.ApprovedItems {
		approved = append(approved, approvedItemItem{
			ItemNumber:      a.ItemNumber,
			PhotoIndices:    a.PhotoIndices,
			Title:           a.Title,
			Description:     a.Description,
			Category:        a.Category,
			Price:           optionalFloat(a.Price),
			PriceLow:        floatToString(a.PriceLow),
			PriceHigh:       floatToString(a.PriceHigh),
			EstateSalePrice: optionalFloat(a.EstateSalePrice),
			Disposition:     string(a.Disposition),
			DispositionAt:   optionalTime(a.DispositionAt),
			DispositionBy:   a.DispositionBy,
		})
	}
	history := make([]reopenItem, 0, len(d.ReopenHistory))
	for _, h := range d.ReopenHistory {
		history = append(history, reopenItem{Reason: h.Reason, By: h.By, At: timeToString(h.At)})
	}
	return itemDocumentItem{
		ID:                  d.ID,
		JobID:               d.JobID,
		Title:               d.Title,
		Photos:              d.Photos,
		Status:              string(d.Status),
		Suggestions:         suggestions,
		ApprovedItems:       approved,
		SoldPhotoIndices:    d.SoldPhotoIndices,
		DonatedPhotoIndices: d.DonatedPhotoIndices,
		HauledPhotoIndices:  d.HauledPhotoIndices,
		SoldAt:              optionalTime(d.SoldAt),
		ReopenHistory:       history,
		Version:             d.Version,
		CreatedAt:           timeToString(d.CreatedAt),
		UpdatedAt:           timeToString(d.UpdatedAt),
	}
}

func fromItemDocumentItem(it itemDocumentItem) entities.ItemDocument {
	var suggestions []entities.Suggestion
	for _, s := range it.Suggestions {
		suggestions = append(suggestions, entities.Suggestion{
			PhotoIndices: s.PhotoIndices,
			Title:        s.Title,
			Description:  s.Description,
			Category:     s.Category,
			PriceLow:     parseFloat(s.PriceLow),
			PriceHigh:    parseFloat(s.PriceHigh),
		})
	}
	approved := make([]entities.ApprovedItem, 0, len(it.ApprovedItems))
	for _, a := range it.ApprovedItems {
		approved = append(approved, entities.ApprovedItem{
			ItemNumber:      a.ItemNumber,
			PhotoIndices:    a.PhotoIndices,
			Title:           a.Title,
			Description:     a.Description,
			Category:        a.Category,
			Price:           parseOptionalFloat(a.Price),
			PriceLow:        parseFloat(a.PriceLow),
			PriceHigh:       parseFloat(a.PriceHigh),
			EstateSalePrice: parseOptionalFloat(a.EstateSalePrice),
			Disposition:     entities.Disposition(a.Disposition),
			DispositionAt:   parseOptionalTime(a.DispositionAt),
			DispositionBy:   a.DispositionBy,
		})
	}
	var history []entities.ReopenEvent
	for _, h := range it.ReopenHistory {
		history = append(history, entities.ReopenEvent{Reason: h.Reason, By: h.By, At: parseTime(h.At)})
	}
	return entities.ItemDocument{
		ID:                  it.ID,
		JobID:               it.JobID,
		Title:               it.Title,
		Photos:              it.Photos,
		Status:              entities.ItemStatus(it.Status),
		Suggestions:         suggestions,
		ApprovedItems:       approved,
		SoldPhotoIndices:    it.SoldPhotoIndices,
		DonatedPhotoIndices: it.DonatedPhotoIndices,
		HauledPhotoIndices:  it.HauledPhotoIndices,
		SoldAt:              parseOptionalTime(it.SoldAt),
		ReopenHistory:       history,
		Version:             it.Version,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
