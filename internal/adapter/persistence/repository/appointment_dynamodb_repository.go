package repository

import (
	"context"
	"sort"
	"time"

	"gestao_producao/internal/domain/entities"
	"gestao_producao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAppointmentsTableName = "appointments"
	appointmentsOrderIDIndex     = "order_id-index"
)

type appointmentRecord struct {
	ID         string `dynamodbav:"id"`
	OrderID    string `dynamodbav:"order_id"`
	ItemIndex  int    `dynamodbav:"item_index"`
	StageIndex int    `dynamodbav:"stage_index"`
	StageName  string `dynamodbav:"stage_name"`
	Action     string `dynamodbav:"action"`
	Operator   string `dynamodbav:"operator,omitempty"`
	OccurredAt string `dynamodbav:"occurred_at"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// AppointmentDynamoRepository reads Appointment audit records from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type AppointmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb DynamoAPI) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Appointment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(appointmentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})

	var items []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return decodeAppointments(items)
}

// ListSince returns appointments that occurred at or after since, newest first.
func (r *AppointmentDynamoRepository) ListSince(ctx context.Context, since time.Time) ([]entities.Appointment, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#occurred_at >= :since"),
		ExpressionAttributeNames: map[string]string{
			"#occurred_at": "occurred_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":since": &types.AttributeValueMemberS{Value: formatTimestamp(since)},
		},
	})

	var items []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return decodeAppointments(items)
}

func decodeAppointments(raw []map[string]types.AttributeValue) ([]entities.Appointment, error) {
	out := make([]entities.Appointment, 0, len(raw))
	for _, item := range raw {
		var rec appointmentRecord
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, err
		}
		out = append(out, fromAppointmentRecord(rec))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	return out, nil
}

func toAppointmentRecord(a entities.Appointment) appointmentRecord {
	return appointmentRecord{
		ID:         a.ID,
		OrderID:    a.OrderID,
		ItemIndex:  a.ItemIndex,
		StageIndex: a.StageIndex,
		StageName:  a.StageName,
		Action:     string(a.Action),
		Operator:   a.Operator,
		OccurredAt: formatTimestamp(a.OccurredAt),
		CreatedAt:  formatTimestamp(a.CreatedAt),
	}
}

func fromAppointmentRecord(rec appointmentRecord) entities.Appointment {
	return entities.Appointment{
		ID:         rec.ID,
		OrderID:    rec.OrderID,
		ItemIndex:  rec.ItemIndex,
		StageIndex: rec.StageIndex,
		StageName:  rec.StageName,
		Action:     entities.AppointmentAction(rec.Action),
		Operator:   rec.Operator,
		OccurredAt: parseTimestamp(rec.OccurredAt),
		CreatedAt:  parseTimestamp(rec.CreatedAt),
	}
}
