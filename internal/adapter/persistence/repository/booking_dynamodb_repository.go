package repository

import (
	"context"
	"sort"
	"strings"

	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	bookingsUserEmailIndex   = "userEmail-index"
	bookingsDecoratorIndex   = "decoratorEmail-index"
)

type bookingItem struct {
	ID              string      `dynamodbav:"_id"`
	UserEmail       string      `dynamodbav:"userEmail,omitempty"`
	UserName        string      `dynamodbav:"userName,omitempty"`
	ServiceID       string      `dynamodbav:"serviceId"`
	ServiceTitle    string      `dynamodbav:"serviceTitle,omitempty"`
	ServiceName     string      `dynamodbav:"serviceName,omitempty"`
	DecoratorEmail  *string     `dynamodbav:"decoratorEmail,omitempty"`
	Date            string      `dynamodbav:"date"`
	Location        string      `dynamodbav:"location,omitempty"`
	Price           storedPrice `dynamodbav:"price,omitempty"`
	PaymentStatus   string      `dynamodbav:"paymentStatus"`
	Status          string      `dynamodbav:"status"`
	DecoratorStatus *string     `dynamodbav:"decoratorStatus,omitempty"`
	CreatedAt       string      `dynamodbav:"createdAt"`
}

// storedPrice writes a price submitted as a number to an N attribute and
// anything else to an S attribute, so the JSON form survives a round trip.
type storedPrice entities.Price

func (p storedPrice) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	price := entities.Price(p)
	if !price.IsQuoted() && price.IsNumeric() {
		return &types.AttributeValueMemberN{Value: strings.TrimSpace(string(price))}, nil
	}
	return &types.AttributeValueMemberS{Value: price.Text()}, nil
}

func (p *storedPrice) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		*p = storedPrice(v.Value)
	case *types.AttributeValueMemberS:
		*p = storedPrice(entities.PriceFromString(v.Value))
	default:
		*p = ""
	}
	return nil
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: _id (string)
//   - GSI: userEmail-index (PK: userEmail), sparse: a booking stored without a
//     user email is left out of it, since index keys cannot be empty
//   - GSI: decoratorEmail-index (PK: decoratorEmail), sparse
//
// Price keeps the form the client sent: numbers are stored as N, strings
// (numeric or not) as S.
type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "_id",
		},
	})
	if err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            bookingKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}
	return unmarshalBooking(out.Item)
}

// List returns every booking ordered by creation time, oldest first.
func (r *BookingDynamoRepository) List(ctx context.Context) ([]entities.Booking, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalBookings(raw)
}

func (r *BookingDynamoRepository) ListByUserEmail(ctx context.Context, email string) ([]entities.Booking, error) {
	return r.queryIndex(ctx, bookingsUserEmailIndex, "userEmail", email)
}

func (r *BookingDynamoRepository) ListByDecoratorEmail(ctx context.Context, email string) ([]entities.Booking, error) {
	return r.queryIndex(ctx, bookingsDecoratorIndex, "decoratorEmail", email)
}

func (r *BookingDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          bookingKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *BookingDynamoRepository) Assign(ctx context.Context, id string, a entities.Assignment) (entities.Booking, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #decoratorEmail = :decoratorEmail, #status = :status"
		vals := map[string]types.AttributeValue{
			":decoratorEmail": &types.AttributeValueMemberS{Value: a.DecoratorEmail},
			":status":         &types.AttributeValueMemberS{Value: string(a.Status)},
		}
		names := map[string]string{
			"#decoratorEmail": "decoratorEmail",
			"#status":         "status",
		}
		return expr, vals, names
	})
}

func (r *BookingDynamoRepository) UpdateDecoratorStatus(ctx context.Context, id string, status string) (entities.Booking, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #decoratorStatus = :decoratorStatus"
		vals := map[string]types.AttributeValue{
			":decoratorStatus": &types.AttributeValueMemberS{Value: status},
		}
		names := map[string]string{
			"#decoratorStatus": "decoratorStatus",
		}
		return expr, vals, names
	})
}

// MarkPaid is idempotent: a paid booking stays paid.
func (r *BookingDynamoRepository) MarkPaid(ctx context.Context, id string) (entities.Booking, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #paymentStatus = :paymentStatus"
		vals := map[string]types.AttributeValue{
			":paymentStatus": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
		}
		names := map[string]string{
			"#paymentStatus": "paymentStatus",
		}
		return expr, vals, names
	})
}

// queryIndex uses the GSI only to find candidate ids. GSI reads are eventually
// consistent, so the bookings themselves are re-read from the base table with
// consistent reads and dropped when they no longer match.
func (r *BookingDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Booking, error) {
	hits, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ProjectionExpression:   aws.String("#id"),
		ExpressionAttributeNames: map[string]string{
			"#k":  attr,
			"#id": "_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}
	raw, err := batchGetConsistent(ctx, r.ddb, r.tableName, indexKeys(hits))
	if err != nil {
		return nil, err
	}
	return unmarshalBookings(matching(raw, attr, value))
}

func indexKeys(hits []map[string]types.AttributeValue) []map[string]types.AttributeValue {
	keys := make([]map[string]types.AttributeValue, 0, len(hits))
	seen := make(map[string]bool, len(hits))
	for _, h := range hits {
		id, ok := h["_id"].(*types.AttributeValueMemberS)
		if !ok || seen[id.Value] {
			continue
		}
		seen[id.Value] = true
		keys = append(keys, bookingKey(id.Value))
	}
	return keys
}

func matching(raw []map[string]types.AttributeValue, attr, value string) []map[string]types.AttributeValue {
	out := raw[:0]
	for _, av := range raw {
		if v, ok := av[attr].(*types.AttributeValueMemberS); ok && v.Value == value {
			out = append(out, av)
		}
	}
	return out
}

func (r *BookingDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Booking, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       bookingKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}
	return unmarshalBooking(out.Attributes)
}

func bookingKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"_id": &types.AttributeValueMemberS{Value: id},
	}
}

func unmarshalBooking(raw map[string]types.AttributeValue) (entities.Booking, error) {
	var it bookingItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

// unmarshalBookings orders by creation time so callers see insertion order
// regardless of how DynamoDB distributed the scan.
func unmarshalBookings(raw []map[string]types.AttributeValue) ([]entities.Booking, error) {
	items := make([]entities.Booking, 0, len(raw))
	for _, av := range raw {
		b, err := unmarshalBooking(av)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:              b.ID,
		UserEmail:       b.UserEmail,
		UserName:        b.UserName,
		ServiceID:       b.ServiceID,
		ServiceTitle:    b.ServiceTitle,
		ServiceName:     b.ServiceName,
		DecoratorEmail:  b.DecoratorEmail,
		Date:            b.Date,
		Location:        b.Location,
		Price:           storedPrice(b.Price),
		PaymentStatus:   string(b.PaymentStatus),
		Status:          string(b.Status),
		DecoratorStatus: b.DecoratorStatus,
		CreatedAt:       formatTime(b.CreatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	return entities.Booking{
		ID:              it.ID,
		UserEmail:       it.UserEmail,
		UserName:        it.UserName,
		ServiceID:       it.ServiceID,
		ServiceTitle:    it.ServiceTitle,
		ServiceName:     it.ServiceName,
		DecoratorEmail:  it.DecoratorEmail,
		Date:            it.Date,
		Location:        it.Location,
		Price:           entities.Price(it.Price),
		PaymentStatus:   entities.PaymentStatus(it.PaymentStatus),
		Status:          entities.BookingStatus(it.Status),
		DecoratorStatus: it.DecoratorStatus,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
