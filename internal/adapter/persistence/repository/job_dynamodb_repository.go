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
	defaultJobsTableName = "jobs"
	jobsStatusIndex      = "status-index"
)

type ledgerEntryItem struct {
	Label  string `dynamodbav:"label"`
	Amount string `dynamodbav:"amount"`
	At     string `dynamodbav:"at"`
	Ref    string `dynamodbav:"ref,omitempty"`
}

type jobItem struct {
	ID                  string            `dynamodbav:"id"`
	ClientName          string            `dynamodbav:"client_name"`
	ClientEmail         string            `dynamodbav:"client_email,omitempty"`
	PropertyAddress     string            `dynamodbav:"property_address,omitempty"`
	Status              string            `dynamodbav:"status"`
	Stage               string            `dynamodbav:"stage"`
	ServiceFee          string            `dynamodbav:"service_fee"`
	DepositAmount       string            `dynamodbav:"deposit_amount"`
	DepositPaidAt       string            `dynamodbav:"deposit_paid_at,omitempty"`
	DepositRef          string            `dynamodbav:"deposit_ref,omitempty"`
	OnlineSaleActive    *bool             `dynamodbav:"online_sale_active,omitempty"`
	OnlineSaleStartDate string            `dynamodbav:"online_sale_start_date,omitempty"`
	OnlineSaleEndDate   string            `dynamodbav:"online_sale_end_date,omitempty"`
	EstateSaleDate      string            `dynamodbav:"estate_sale_date,omitempty"`
	Gross               string            `dynamodbav:"gross"`
	Fees                string            `dynamodbav:"fees"`
	HaulingCost         string            `dynamodbav:"hauling_cost"`
	Net                 string            `dynamodbav:"net"`
	Daily               []ledgerEntryItem `dynamodbav:"daily"`
	Version             int64             `dynamodbav:"version"`
	CreatedAt           string            `dynamodbav:"created_at"`
	UpdatedAt           string            `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//
// The finance sub-record lives on the job item so an entry and its
// aggregates are always written together.
type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client, tableName string) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	j.Version = 1
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
	}
	if err := putIfAbsent(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(raw) == 0 {
		return entities.Job{}, err
	}
	var it jobItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

// ListByStatus queries the status index; an empty status scans every job.
func (r *JobDynamoRepository) ListByStatus(ctx context.Context, status entities.JobStatus) ([]entities.Job, error) {
	var err error
	var raws []map[string]types.AttributeValue
	if status == "" {
		raws, err = scanAll(ctx, r.ddb, r.tableName)
	} else {
		raws, err = queryIndex(ctx, r.ddb, r.tableName, jobsStatusIndex, "status", string(status))
	}
	if err != nil {
		return nil, err
	}
	var items []jobItem
	if err := attributevalue.UnmarshalListOfMaps(raws, &items); err != nil {
		return nil, err
	}
	jobs := make([]entities.Job, 0, len(items))
	for _, it := range items {
		jobs = append(jobs, fromJobItem(it))
	}
	return jobs, nil
}

func (r *JobDynamoRepository) Update(ctx context.Context, j entities.Job) (entities.Job, error) {
	expected := j.Version
	j.Version = expected + 1
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
	}
	if err := putVersioned(ctx, r.ddb, r.tableName, av, expected); err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func toJobItem(j entities.Job) jobItem {
	daily := make([]ledgerEntryItem, 0, len(j.Finance.Daily))
	for _, e := range j.Finance.Daily {
		daily = append(daily, ledgerEntryItem{
			Label:  e.Label,
			Amount: floatToString(e.Amount),
			At:     timeToString(e.At),
			Ref:    e.Ref,
		})
	}
	return jobItem{
		ID:                  j.ID,
		ClientName:          j.ClientName,
		ClientEmail:         j.ClientEmail,
		PropertyAddress:     j.PropertyAddress,
		Status:              string(j.Status),
		Stage:               string(j.Stage),
		ServiceFee:          floatToString(j.ServiceFee),
		DepositAmount:       floatToString(j.DepositAmount),
		DepositPaidAt:       optionalTime(j.DepositPaidAt),
		DepositRef:          j.DepositRef,
		OnlineSaleActive:    j.OnlineSaleActive,
		OnlineSaleStartDate: optionalTime(j.OnlineSaleStartDate),
		OnlineSaleEndDate:   optionalTime(j.OnlineSaleEndDate),
		EstateSaleDate:      optionalTime(j.EstateSaleDate),
		Gross:               floatToString(j.Finance.Gross),
		Fees:                floatToString(j.Finance.Fees),
		HaulingCost:         floatToString(j.Finance.HaulingCost),
		Net:                 floatToString(j.Finance.Net),
		Daily:               daily,
		Version:             j.Version,
		CreatedAt:           timeToString(j.CreatedAt),
		UpdatedAt:           timeToString(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	daily := make([]entities.LedgerEntry, 0, len(it.Daily))
	for _, e := range it.Daily {
		daily = append(daily, entities.LedgerEntry{
			Label:  e.Label,
			Amount: parseFloat(e.Amount),
			At:     parseTime(e.At),
			Ref:    e.Ref,
		})
	}
	return entities.Job{
		ID:              it.ID,
		ClientName:      it.ClientName,
		ClientEmail:     it.ClientEmail,
		PropertyAddress: it.PropertyAddress,
		Status:          entities.JobStatus(it.Status),
		Stage:           entities.JobStage(it.Stage),
		ServiceFee:      parseFloat(it.ServiceFee),
		DepositAmount:   parseFloat(it.DepositAmount),
		DepositPaidAt:   parseOptionalTime(it.DepositPaidAt),
		DepositRef:      it.DepositRef,
		SaleWindow: entities.SaleWindow{
			OnlineSaleActive:    it.OnlineSaleActive,
			OnlineSaleStartDate: parseOptionalTime(it.OnlineSaleStartDate),
			OnlineSaleEndDate:   parseOptionalTime(it.OnlineSaleEndDate),
			EstateSaleDate:      parseOptionalTime(it.EstateSaleDate),
		},
		Finance: entities.JobFinance{
			Gross:       parseFloat(it.Gross),
			Fees:        parseFloat(it.Fees),
			HaulingCost: parseFloat(it.HaulingCost),
			Net:         parseFloat(it.Net),
			Daily:       daily,
		},
		Version:   it.Version,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
