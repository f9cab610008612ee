package repository

import (
	"context"
	"strconv"

	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
	"kept_house/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBidsTableName = "bids"
	bidsJobIndex         = "job_id-index"
	bidsVendorIndex      = "vendor_id-index"
)

type bidItem struct {
	ID            string `dynamodbav:"id"`
	JobID         string `dynamodbav:"job_id"`
	VendorID      string `dynamodbav:"vendor_id"`
	BidType       string `dynamodbav:"bid_type,omitempty"`
	Amount        string `dynamodbav:"amount"`
	Notes         string `dynamodbav:"notes,omitempty"`
	Status        string `dynamodbav:"status"`
	AcceptedAt    string `dynamodbav:"accepted_at,omitempty"`
	RejectedAt    string `dynamodbav:"rejected_at,omitempty"`
	WorkCompleted bool   `dynamodbav:"work_completed"`
	CompletedAt   string `dynamodbav:"completed_at,omitempty"`
	IsPaid        bool   `dynamodbav:"is_paid"`
	PaidAt        string `dynamodbav:"paid_at,omitempty"`
	PaidAmount    string `dynamodbav:"paid_amount,omitempty"`
	Version       int64  `dynamodbav:"version"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// BidDynamoRepository persists Bid entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//   - GSI: vendor_id-index (PK: vendor_id)
type BidDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBidRepository = (*BidDynamoRepository)(nil)

func NewBidDynamoRepository(ddb *dynamodb.Client, tableName string) *BidDynamoRepository {
	return &BidDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultBidsTableName),
	}
}

func (r *BidDynamoRepository) Create(ctx context.Context, b entities.Bid) (entities.Bid, error) {
	b.Version = 1
	av, err := attributevalue.MarshalMap(toBidItem(b))
	if err != nil {
		return entities.Bid{}, err
	}
	if err := putIfAbsent(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Bid{}, err
	}
	return b, nil
}

func (r *BidDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bid, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(raw) == 0 {
		return entities.Bid{}, err
	}
	var it bidItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Bid{}, err
	}
	return fromBidItem(it), nil
}

func (r *BidDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Bid, error) {
	return r.listByIndex(ctx, bidsJobIndex, "job_id", jobID)
}

func (r *BidDynamoRepository) ListByVendorID(ctx context.Context, vendorID string) ([]entities.Bid, error) {
	return r.listByIndex(ctx, bidsVendorIndex, "vendor_id", vendorID)
}

func (r *BidDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Bid, error) {
	raws, err := queryIndex(ctx, r.ddb, r.tableName, index, attr, value)
	if err != nil {
		return nil, err
	}
	var items []bidItem
	if err := attributevalue.UnmarshalListOfMaps(raws, &items); err != nil {
		return nil, err
	}
	bids := make([]entities.Bid, 0, len(items))
	for _, it := range items {
		bids = append(bids, fromBidItem(it))
	}
	return bids, nil
}

func (r *BidDynamoRepository) Update(ctx context.Context, b entities.Bid) (entities.Bid, error) {
	expected := b.Version
	b.Version = expected + 1
	av, err := attributevalue.MarshalMap(toBidItem(b))
	if err != nil {
		return entities.Bid{}, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, expected); err != nil {
		return entities.Bid{}, err
	}
	return b, nil
}

// ApplyAcceptance commits the accepted bid and every rejection atomically.
// Each write requires the stored bid to still be submitted at the version
// that was planned against; any mismatch cancels the whole transaction.
func (r *BidDynamoRepository) ApplyAcceptance(ctx context.Context, plan ledger.AcceptancePlan) error {
	writes := make([]types.TransactWriteItem, 0, len(plan.Rejected)+1)
	for _, b := range append([]entities.Bid{plan.Accepted}, plan.Rejected...) {
		w, err := r.transitionFromSubmitted(b)
		if err != nil {
			return err
		}
		writes = append(writes, w)
	}
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return conflict(err)
}

func (r *BidDynamoRepository) transitionFromSubmitted(b entities.Bid) (types.TransactWriteItem, error) {
	expected := b.Version
	b.Version = expected + 1
	av, err := attributevalue.MarshalMap(toBidItem(b))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :submitted AND #version = :expected"),
			ExpressionAttributeNames: map[string]string{
				"#id":      "id",
				"#status":  "status",
				"#version": "version",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":submitted": &types.AttributeValueMemberS{Value: string(entities.BidStatusSubmitted)},
				":expected":  &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
			},
		},
	}, nil
}

func toBidItem(b entities.Bid) bidItem {
	paid := ""
	if b.IsPaid || b.PaidAmount != 0 {
		paid = floatToString(b.PaidAmount)
	}
	return bidItem{
		ID:            b.ID,
		JobID:         b.JobID,
		VendorID:      b.VendorID,
		BidType:       string(b.BidType),
		Amount:        floatToString(b.Amount),
		Notes:         b.Notes,
		Status:        string(b.Status),
		AcceptedAt:    optionalTime(b.AcceptedAt),
		RejectedAt:    optionalTime(b.RejectedAt),
		WorkCompleted: b.WorkCompleted,
		CompletedAt:   optionalTime(b.CompletedAt),
		IsPaid:        b.IsPaid,
		PaidAt:        optionalTime(b.PaidAt),
		PaidAmount:    paid,
		Version:       b.Version,
		CreatedAt:     timeToString(b.CreatedAt),
		UpdatedAt:     timeToString(b.UpdatedAt),
	}
}

func fromBidItem(it bidItem) entities.Bid {
	return entities.Bid{
		ID:            it.ID,
		JobID:         it.JobID,
		VendorID:      it.VendorID,
		BidType:       entities.BidType(it.BidType),
		Amount:        parseFloat(it.Amount),
		Notes:         it.Notes,
		Status:        entities.BidStatus(it.Status),
		AcceptedAt:    parseOptionalTime(it.AcceptedAt),
		RejectedAt:    parseOptionalTime(it.RejectedAt),
		WorkCompleted: it.WorkCompleted,
		CompletedAt:   parseOptionalTime(it.CompletedAt),
		IsPaid:        it.IsPaid,
		PaidAt:        parseOptionalTime(it.PaidAt),
		PaidAmount:    parseFloat(it.PaidAmount),
		Version:       it.Version,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
