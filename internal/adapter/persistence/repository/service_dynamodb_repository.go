package repository

import (
	"context"
	"sort"

	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServicesTableName = "services"

type serviceItem struct {
	ID                  string  `dynamodbav:"_id"`
	Title               string  `dynamodbav:"title"`
	Description         string  `dynamodbav:"description,omitempty"`
	Category            string  `dynamodbav:"category,omitempty"`
	Image               string  `dynamodbav:"image,omitempty"`
	Price               float64 `dynamodbav:"price"`
	DecoratorCommission float64 `dynamodbav:"decoratorCommission"`
	Status              string  `dynamodbav:"status"`
	AddedBy             string  `dynamodbav:"addedBy"`
	TotalBookings       int     `dynamodbav:"totalBookings"`
	CreatedAt           string  `dynamodbav:"createdAt"`
}

// ServiceDynamoRepository persists catalog services in DynamoDB.
//
// Table requirements:
//   - PK: _id (string)
type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
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
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            serviceKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}
	return unmarshalService(out.Item)
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalServices(raw)
}

func (r *ServiceDynamoRepository) ListByAddedBy(ctx context.Context, email string) ([]entities.Service, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#addedBy = :addedBy"),
		ExpressionAttributeNames: map[string]string{
			"#addedBy": "addedBy",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":addedBy": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalServices(raw)
}

// Replace overwrites a stored service. A zero Service is returned when no
// service with that id exists.
func (r *ServiceDynamoRepository) Replace(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "_id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          serviceKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func serviceKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"_id": &types.AttributeValueMemberS{Value: id},
	}
}

func unmarshalService(raw map[string]types.AttributeValue) (entities.Service, error) {
	var it serviceItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func unmarshalServices(raw []map[string]types.AttributeValue) ([]entities.Service, error) {
	items := make([]entities.Service, 0, len(raw))
	for _, av := range raw {
		s, err := unmarshalService(av)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:                  s.ID,
		Title:               s.Title,
		Description:         s.Description,
		Category:            s.Category,
		Image:               s.Image,
		Price:               s.Price,
		DecoratorCommission: s.DecoratorCommission,
		Status:              string(s.Status),
		AddedBy:             s.AddedBy,
		TotalBookings:       s.TotalBookings,
		CreatedAt:           formatTime(s.CreatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:                  it.ID,
		Title:               it.Title,
		Description:         it.Description,
		Category:            it.Category,
		Image:               it.Image,
		Price:               it.Price,
		DecoratorCommission: it.DecoratorCommission,
		Status:              entities.ServiceStatus(it.Status),
		AddedBy:             it.AddedBy,
		TotalBookings:       it.TotalBookings,
		CreatedAt:           parseTime(it.CreatedAt),
	}
}
