package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gestao_producao/internal/domain/entities"
	"gestao_producao/internal/domain/production"
	"gestao_producao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersShareTokenIndex  = "share_token-index"
)

// weight and duration_days are decoded loosely: documents migrated from the legacy
// store carry them as strings ("1.234,5", "3") or leave them empty.
type orderRecord struct {
	ID             string            `dynamodbav:"id"`
	OrderNumber    string            `dynamodbav:"order_number"`
	CustomerID     string            `dynamodbav:"customer_id"`
	CustomerName   string            `dynamodbav:"customer_name"`
	Status         string            `dynamodbav:"status"`
	Weight         any               `dynamodbav:"weight"`
	OrderDate      string            `dynamodbav:"order_date"`
	DeliveryDate   string            `dynamodbav:"delivery_date"`
	CompletionDate string            `dynamodbav:"completion_date,omitempty"`
	ShareToken     string            `dynamodbav:"share_token,omitempty"`
	Items          []orderItemRecord `dynamodbav:"items"`
	Version        int64             `dynamodbav:"version"`
	CreatedAt      string            `dynamodbav:"created_at"`
	UpdatedAt      string            `dynamodbav:"updated_at"`
}

type orderItemRecord struct {
	Code        string        `dynamodbav:"code"`
	Description string        `dynamodbav:"description"`
	Quantity    int           `dynamodbav:"quantity"`
	Stages      []stageRecord `dynamodbav:"stages"`
}

type stageRecord struct {
	Name         string `dynamodbav:"name"`
	Status       string `dynamodbav:"status"`
	DurationDays any    `dynamodbav:"duration_days"`
	PlannedStart string `dynamodbav:"planned_start,omitempty"`
	PlannedEnd   string `dynamodbav:"planned_end,omitempty"`
	ActualStart  string `dynamodbav:"actual_start,omitempty"`
	ActualEnd    string `dynamodbav:"actual_end,omitempty"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: share_token-index (PK: share_token)
//
// Items and stages are stored inline; an order is always read and written whole.
// Appointment audit records go to the appointments table in the same transaction.

type OrderDynamoRepository struct {
	ddb               DynamoAPI
	tableName         string
	appointmentsTable string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:               ddb,
		tableName:         getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		appointmentsTable: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderRecord(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	return decodeOrder(out.Item)
}

func (r *OrderDynamoRepository) GetByShareToken(ctx context.Context, token string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersShareTokenIndex),
		KeyConditionExpression: aws.String("share_token = :token"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}
	return decodeOrder(out.Items[0])
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	orders := make([]entities.Order, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			o, err := decodeOrder(raw)
			if err != nil {
				return nil, err
			}
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, completionDate *time.Time) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at, #version = if_not_exists(#version, :zero) + :one"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":zero":       &types.AttributeValueMemberN{Value: "0"},
			":one":        &types.AttributeValueMemberN{Value: "1"},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
			"#version":    "version",
		}
		if completionDate != nil {
			expr += ", #completion_date = :completion_date"
			vals[":completion_date"] = &types.AttributeValueMemberS{Value: formatTimestamp(*completionDate)}
			names["#completion_date"] = "completion_date"
		}
		return expr, vals, names
	})
}

// SaveWithAppointment replaces the stored order if its version still equals o.Version and
// records the appointment, both or neither.
func (r *OrderDynamoRepository) SaveWithAppointment(ctx context.Context, o entities.Order, a entities.Appointment) (entities.Order, error) {
	expected := o.Version
	o.Version = expected + 1

	orderAV, err := attributevalue.MarshalMap(toOrderRecord(o))
	if err != nil {
		return entities.Order{}, err
	}
	apptAV, err := attributevalue.MarshalMap(toAppointmentRecord(a))
	if err != nil {
		return entities.Order{}, err
	}

	orderPut := &types.Put{
		TableName: aws.String(r.tableName),
		Item:      orderAV,
	}
	if expected == 0 {
		// orders imported without a version attribute
		orderPut.ConditionExpression = aws.String("attribute_exists(#id) AND (attribute_not_exists(#version) OR #version = :expected)")
		orderPut.ExpressionAttributeNames = map[string]string{"#id": "id", "#version": "version"}
		orderPut.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: "0"},
		}
	} else {
		orderPut.ConditionExpression = aws.String("#version = :expected")
		orderPut.ExpressionAttributeNames = map[string]string{"#version": "version"}
		orderPut.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		}
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: orderPut},
			{Put: &types.Put{
				TableName:           aws.String(r.appointmentsTable),
				Item:                apptAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			}},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && hasConditionFailure(tce) {
			return entities.Order{}, interfaces.ErrVersionConflict
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := formatTimestamp(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	return decodeOrder(out.Attributes)
}

func hasConditionFailure(tce *types.TransactionCanceledException) bool {
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func decodeOrder(item map[string]types.AttributeValue) (entities.Order, error) {
	var rec orderRecord
	if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func toOrderRecord(o entities.Order) orderRecord {
	items := make([]orderItemRecord, len(o.Items))
	for i, it := range o.Items {
		stages := make([]stageRecord, len(it.Stages))
		for j, s := range it.Stages {
			stages[j] = stageRecord{
				Name:         s.Name,
				Status:       string(s.Status),
				DurationDays: s.DurationDays,
				PlannedStart: formatDatePtr(s.PlannedStart),
				PlannedEnd:   formatDatePtr(s.PlannedEnd),
				ActualStart:  formatTimestampPtr(s.ActualStart),
				ActualEnd:    formatTimestampPtr(s.ActualEnd),
			}
		}
		items[i] = orderItemRecord{
			Code:        it.Code,
			Description: it.Description,
			Quantity:    it.Quantity,
			Stages:      stages,
		}
	}

	return orderRecord{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerID:     o.CustomerID,
		CustomerName:   o.CustomerName,
		Status:         string(o.Status),
		Weight:         o.Weight.String(),
		OrderDate:      formatDate(o.OrderDate),
		DeliveryDate:   formatDate(o.DeliveryDate),
		CompletionDate: formatTimestampPtr(o.CompletionDate),
		ShareToken:     o.ShareToken,
		Items:          items,
		Version:        o.Version,
		CreatedAt:      formatTimestamp(o.CreatedAt),
		UpdatedAt:      formatTimestamp(o.UpdatedAt),
	}
}

func fromOrderRecord(rec orderRecord) entities.Order {
	items := make([]entities.OrderItem, len(rec.Items))
	for i, it := range rec.Items {
		stages := make([]entities.Stage, len(it.Stages))
		for j, s := range it.Stages {
			stages[j] = entities.Stage{
				Name:         s.Name,
				Status:       production.ParseStageStatus(s.Status),
				DurationDays: production.ParseDurationDays(s.DurationDays),
				PlannedStart: parseDatePtr(s.PlannedStart),
				PlannedEnd:   parseDatePtr(s.PlannedEnd),
				ActualStart:  parseTimestampPtr(s.ActualStart),
				ActualEnd:    parseTimestampPtr(s.ActualEnd),
			}
		}
		items[i] = entities.OrderItem{
			Code:        it.Code,
			Description: it.Description,
			Quantity:    it.Quantity,
			Stages:      stages,
		}
	}

	return entities.Order{
		ID:             rec.ID,
		OrderNumber:    rec.OrderNumber,
		CustomerID:     rec.CustomerID,
		CustomerName:   rec.CustomerName,
		Status:         production.ParseOrderStatus(rec.Status),
		Weight:         production.ParseWeight(rec.Weight),
		OrderDate:      parseDate(rec.OrderDate),
		DeliveryDate:   parseDate(rec.DeliveryDate),
		CompletionDate: parseTimestampPtr(rec.CompletionDate),
		ShareToken:     rec.ShareToken,
		Items:          items,
		Version:        rec.Version,
		CreatedAt:      parseTimestamp(rec.CreatedAt),
		UpdatedAt:      parseTimestamp(rec.UpdatedAt),
	}
}
