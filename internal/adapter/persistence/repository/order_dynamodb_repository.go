package repository

import (
	"context"

	"kept_house/internal/domain/entities"
	"kept_house/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersUserIndex        = "user_id-index"
)

type orderLineItem struct {
	ListingID      string `dynamodbav:"listing_id"`
	ItemDocumentID string `dynamodbav:"item_document_id"`
	JobID          string `dynamodbav:"job_id"`
	ItemNumber     int    `dynamodbav:"item_number"`
	PhotoIndices   []int  `dynamodbav:"photo_indices"`
	Title          string `dynamodbav:"title"`
	PhotoURL       string `dynamodbav:"photo_url,omitempty"`
	UnitPrice      string `dynamodbav:"unit_price"`
	Quantity       int    `dynamodbav:"quantity"`
}

type addressItem struct {
	Line1      string `dynamodbav:"line1"`
	Line2      string `dynamodbav:"line2,omitempty"`
	City       string `dynamodbav:"city"`
	State      string `dynamodbav:"state"`
	PostalCode string `dynamodbav:"postal_code"`
	Country    string `dynamodbav:"country"`
}

type orderItem struct {
	ID                 string          `dynamodbav:"id"`
	UserID             string          `dynamodbav:"user_id"`
	BuyerName          string          `dynamodbav:"buyer_name,omitempty"`
	BuyerEmail         string          `dynamodbav:"buyer_email,omitempty"`
	Items              []orderLineItem `dynamodbav:"items"`
	Subtotal           string          `dynamodbav:"subtotal"`
	DeliveryFee        string          `dynamodbav:"delivery_fee"`
	Tax                string          `dynamodbav:"tax"`
	Total              string          `dynamodbav:"total"`
	DeliveryType       string          `dynamodbav:"delivery_type"`
	ShippingAddress    *addressItem    `dynamodbav:"shipping_address,omitempty"`
	PaymentStatus      string          `dynamodbav:"payment_status"`
	FulfillmentStatus  string          `dynamodbav:"fulfillment_status"`
	ProviderCheckoutID string          `dynamodbav:"provider_checkout_id,omitempty"`
	CheckoutURL        string          `dynamodbav:"checkout_url,omitempty"`
	ProviderPaymentRef string          `dynamodbav:"provider_payment_ref,omitempty"`
	PaidAt             string          `dynamodbav:"paid_at,omitempty"`
	RefundedAt         string          `dynamodbav:"refunded_at,omitempty"`
	CreatedAt          string          `dynamodbav:"created_at"`
	UpdatedAt          string          `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}
	if err := putIfAbsent(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(raw) == 0 {
		return entities.Order{}, err
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	raws, err := queryIndex(ctx, r.ddb, r.tableName, ordersUserIndex, "user_id", userID)
	if err != nil {
		return nil, err
	}
	var items []orderItem
	if err := attributevalue.UnmarshalListOfMaps(raws, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(items))
	for _, it := range items {
		out = append(out, fromOrderItem(it))
	}
	return out, nil
}

// Update replaces the order while its stored payment status is still expected.
func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order, expected entities.PaymentStatus) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #payment_status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#payment_status": "payment_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expected)},
		},
	})
	if err != nil {
		return entities.Order{}, conflict(err)
	}
	return o, nil
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, l := range o.Items {
		lines = append(lines, orderLineItem{
			ListingID:      l.ListingID,
			ItemDocumentID: l.ItemDocumentID,
			JobID:          l.JobID,
			ItemNumber:     l.ItemNumber,
			PhotoIndices:   l.PhotoIndices,
			Title:          l.Title,
			PhotoURL:       l.PhotoURL,
			UnitPrice:      floatToString(l.UnitPrice),
			Quantity:       l.Quantity,
		})
	}
	var addr *addressItem
	if a := o.ShippingAddress; a != nil {
		addr = &addressItem{
			Line1:      a.Line1,
			Line2:      a.Line2,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		}
	}
	return orderItem{
		ID:                 o.ID,
		UserID:             o.UserID,
		BuyerName:          o.BuyerName,
		BuyerEmail:         o.BuyerEmail,
		Items:              lines,
		Subtotal:           floatToString(o.Subtotal),
		DeliveryFee:        floatToString(o.DeliveryFee),
		Tax:                floatToString(o.Tax),
		Total:              floatToString(o.Total),
		DeliveryType:       string(o.DeliveryType),
		ShippingAddress:    addr,
		PaymentStatus:      string(o.PaymentStatus),
		FulfillmentStatus:  string(o.FulfillmentStatus),
		ProviderCheckoutID: o.ProviderCheckoutID,
		CheckoutURL:        o.CheckoutURL,
		ProviderPaymentRef: o.ProviderPaymentRef,
		PaidAt:             optionalTime(o.PaidAt),
		RefundedAt:         optionalTime(o.RefundedAt),
		CreatedAt:          timeToString(o.CreatedAt),
		UpdatedAt:          timeToString(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	lines := make([]entities.OrderItem, 0, len(it.Items))
	for _, l := range it.Items {
		lines = append(lines, entities.OrderItem{
			ListingID:      l.ListingID,
			ItemDocumentID: l.ItemDocumentID,
			JobID:          l.JobID,
			ItemNumber:     l.ItemNumber,
			PhotoIndices:   l.PhotoIndices,
			Title:          l.Title,
			PhotoURL:       l.PhotoURL,
			UnitPrice:      parseFloat(l.UnitPrice),
			Quantity:       l.Quantity,
		})
	}
	var addr *entities.Address
	if a := it.ShippingAddress; a != nil {
		addr = &entities.Address{
			Line1:      a.Line1,
			Line2:      a.Line2,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		}
	}
	return entities.Order{
		ID:                 it.ID,
		UserID:             it.UserID,
		BuyerName:          it.BuyerName,
		BuyerEmail:         it.BuyerEmail,
		Items:              lines,
		Subtotal:           parseFloat(it.Subtotal),
		DeliveryFee:        parseFloat(it.DeliveryFee),
		Tax:                parseFloat(it.Tax),
		Total:              parseFloat(it.Total),
		DeliveryType:       entities.DeliveryType(it.DeliveryType),
		ShippingAddress:    addr,
		PaymentStatus:      entities.PaymentStatus(it.PaymentStatus),
		FulfillmentStatus:  entities.FulfillmentStatus(it.FulfillmentStatus),
		ProviderCheckoutID: it.ProviderCheckoutID,
		CheckoutURL:        it.CheckoutURL,
		ProviderPaymentRef: it.ProviderPaymentRef,
		PaidAt:             parseOptionalTime(it.PaidAt),
		RefundedAt:         parseOptionalTime(it.RefundedAt),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
