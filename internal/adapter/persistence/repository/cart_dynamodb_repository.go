package repository

import (
	"context"

	"kept_house/internal/domain/entities"
	"kept_house/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultCartsTableName = "carts"

type cartLineItem struct {
	ListingID string `dynamodbav:"listing_id"`
	AddedAt   string `dynamodbav:"added_at"`
}

type cartItem struct {
	UserID    string         `dynamodbav:"user_id"`
	Lines     []cartLineItem `dynamodbav:"lines"`
	UpdatedAt string         `dynamodbav:"updated_at"`
}

// CartDynamoRepository keeps one item per buyer (PK: user_id).
type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client, tableName string) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCartsTableName),
	}
}

func (r *CartDynamoRepository) Get(ctx context.Context, userID string) (entities.Cart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("user_id", userID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{UserID: userID}, nil
	}
	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it), nil
}

func (r *CartDynamoRepository) Save(ctx context.Context, c entities.Cart) error {
	lines := make([]cartLineItem, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, cartLineItem{ListingID: l.ListingID, AddedAt: timeToString(l.AddedAt)})
	}
	av, err := attributevalue.MarshalMap(cartItem{
		UserID:    c.UserID,
		Lines:     lines,
		UpdatedAt: timeToString(c.UpdatedAt),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *CartDynamoRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("user_id", userID),
	})
	return err
}

func fromCartItem(it cartItem) entities.Cart {
	lines := make([]entities.CartLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		lines = append(lines, entities.CartLine{ListingID: l.ListingID, AddedAt: parseTime(l.AddedAt)})
	}
	return entities.Cart{
		UserID:    it.UserID,
		Lines:     lines,
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
