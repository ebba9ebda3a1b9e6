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

const defaultUsersTableName = "users"

type accountItem struct {
	Email          string  `dynamodbav:"email"`
	ID             string  `dynamodbav:"_id"`
	Name           string  `dynamodbav:"name"`
	PhotoURL       string  `dynamodbav:"photoURL,omitempty"`
	Phone          string  `dynamodbav:"phone,omitempty"`
	Address        string  `dynamodbav:"address,omitempty"`
	Role           string  `dynamodbav:"role"`
	Status         string  `dynamodbav:"status"`
	TotalEarnings  float64 `dynamodbav:"totalEarnings"`
	CurrentBalance float64 `dynamodbav:"currentBalance"`
	CreatedAt      string  `dynamodbav:"createdAt"`
}

// AccountDynamoRepository persists Account entities in DynamoDB.
//
// Table requirements:
//   - PK: email (string)
type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

// Create inserts the account unless one with the same email exists, in which
// case it reports inserted=false and leaves the stored account untouched.
func (r *AccountDynamoRepository) Create(ctx context.Context, a entities.Account) (bool, error) {
	av, err := attributevalue.MarshalMap(toAccountItem(a))
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#email)"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *AccountDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            accountKey(email),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}
	return unmarshalAccount(out.Item)
}

func (r *AccountDynamoRepository) List(ctx context.Context) ([]entities.Account, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalAccounts(raw)
}

func (r *AccountDynamoRepository) ListByRole(ctx context.Context, role entities.Role) ([]entities.Account, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#role = :role"),
		ExpressionAttributeNames: map[string]string{
			"#role": "role",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role": &types.AttributeValueMemberS{Value: string(role)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalAccounts(raw)
}

// UpdateProfile sets only the non-empty fields of update.
func (r *AccountDynamoRepository) UpdateProfile(ctx context.Context, email string, update entities.ProfileUpdate) (entities.Account, error) {
	fields := []struct{ attr, value string }{
		{"name", update.Name},
		{"phone", update.Phone},
		{"address", update.Address},
	}

	var sets []string
	vals := map[string]types.AttributeValue{}
	names := map[string]string{}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		sets = append(sets, "#"+f.attr+" = :"+f.attr)
		vals[":"+f.attr] = &types.AttributeValueMemberS{Value: f.value}
		names["#"+f.attr] = f.attr
	}
	if len(sets) == 0 {
		return r.GetByEmail(ctx, email)
	}

	return r.update(ctx, email, "SET "+strings.Join(sets, ", "), vals, names)
}

func (r *AccountDynamoRepository) UpdateStatus(ctx context.Context, email string, status entities.AccountStatus) (entities.Account, error) {
	return r.update(ctx, email, "SET #status = :status",
		map[string]types.AttributeValue{":status": &types.AttributeValueMemberS{Value: string(status)}},
		map[string]string{"#status": "status"},
	)
}

func (r *AccountDynamoRepository) UpdateRole(ctx context.Context, email string, role entities.Role) (entities.Account, error) {
	return r.update(ctx, email, "SET #role = :role",
		map[string]types.AttributeValue{":role": &types.AttributeValueMemberS{Value: string(role)}},
		map[string]string{"#role": "role"},
	)
}

func (r *AccountDynamoRepository) update(
	ctx context.Context,
	email string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Account, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       accountKey(email),
		ConditionExpression:       aws.String("attribute_exists(#pk)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#pk": "email"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Account{}, nil
		}
		return entities.Account{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Account{}, nil
	}
	return unmarshalAccount(out.Attributes)
}

func accountKey(email string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"email": &types.AttributeValueMemberS{Value: email},
	}
}

func unmarshalAccount(raw map[string]types.AttributeValue) (entities.Account, error) {
	var it accountItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func unmarshalAccounts(raw []map[string]types.AttributeValue) ([]entities.Account, error) {
	items := make([]entities.Account, 0, len(raw))
	for _, av := range raw {
		a, err := unmarshalAccount(av)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		Email:          a.Email,
		ID:             a.ID,
		Name:           a.Name,
		PhotoURL:       a.PhotoURL,
		Phone:          a.Phone,
		Address:        a.Address,
		Role:           string(a.Role),
		Status:         string(a.Status),
		TotalEarnings:  a.TotalEarnings,
		CurrentBalance: a.CurrentBalance,
		CreatedAt:      formatTime(a.CreatedAt),
	}
}

func fromAccountItem(it accountItem) entities.Account {
	return entities.Account{
		ID:             it.ID,
		Name:           it.Name,
		Email:          it.Email,
		PhotoURL:       it.PhotoURL,
		Phone:          it.Phone,
		Address:        it.Address,
		Role:           entities.Role(it.Role),
		Status:         entities.AccountStatus(it.Status),
		TotalEarnings:  it.TotalEarnings,
		CurrentBalance: it.CurrentBalance,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
