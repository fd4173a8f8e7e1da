package repository

import (
	"context"
	"encoding/json"
	"time"

	"vetdesk/internal/domain/entities"
	"vetdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

const defaultAttendancesTableName = "attendances"

type attendanceItem struct {
	Key       string `dynamodbav:"id"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// AttendanceDynamoRepository persists the Attendance aggregate in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The aggregate is serialized whole into a single JSON payload attribute so
// the save contract stays key-value: writes replace the item, reads hydrate
// the full aggregate in one GetItem. A draft that fails to decode is logged
// and reported as absence.

type AttendanceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAttendanceRepository = (*AttendanceDynamoRepository)(nil)

func NewAttendanceDynamoRepository(ddb *dynamodb.Client) *AttendanceDynamoRepository {
	return &AttendanceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ATTENDANCES_TABLE", defaultAttendancesTableName),
	}
}

func (r *AttendanceDynamoRepository) Save(ctx context.Context, key string, a entities.Attendance) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return err
	}

	it := attendanceItem{
		Key:       key,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *AttendanceDynamoRepository) Load(ctx context.Context, key string) (*entities.Attendance, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it attendanceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[attendance][repository] draft item unreadable, treating as absent")
		return nil, nil
	}

	var a entities.Attendance
	if err := json.Unmarshal([]byte(it.Payload), &a); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[attendance][repository] draft payload corrupt, treating as absent")
		return nil, nil
	}
	return &a, nil
}

func (r *AttendanceDynamoRepository) Remove(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
