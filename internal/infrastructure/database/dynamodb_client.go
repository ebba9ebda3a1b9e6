package database

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - DYNAMODB_CREATE_TABLES (optional; "true" provisions missing tables)
func ConnectDynamoDB() *dynamodb.Client {
	ctx := context.Background()
	cfg, err := NewDynamoDBConfigFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	client := dynamodb.NewFromConfig(cfg)

	if isTrue(os.Getenv("DYNAMODB_CREATE_TABLES")) {
		if err := EnsureTables(ctx, client, TableSpecsFromEnv()); err != nil {
			log.Fatalf("failed to provision dynamodb tables: %v", err)
		}
	}
	return client
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}

	if endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// TableSpec describes one table: its string hash key and any global
// secondary indexes, each keyed by a single string attribute.
type TableSpec struct {
	Name    string
	HashKey string
	Indexes map[string]string
}

// TableSpecsFromEnv returns the users, services and bookings tables, honoring
// the same *_TABLE overrides as the repositories.
func TableSpecsFromEnv() []TableSpec {
	return []TableSpec{
		{Name: getenvDefault("USERS_TABLE", "users"), HashKey: "email"},
		{Name: getenvDefault("SERVICES_TABLE", "services"), HashKey: "_id"},
		{
			Name:    getenvDefault("BOOKINGS_TABLE", "bookings"),
			HashKey: "_id",
			Indexes: map[string]string{
				"userEmail-index":      "userEmail",
				"decoratorEmail-index": "decoratorEmail",
			},
		},
	}
}

// EnsureTables creates every table in specs that does not exist yet.
func EnsureTables(ctx context.Context, client *dynamodb.Client, specs []TableSpec) error {
	for _, spec := range specs {
		_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return err
		}

		log.Printf("[database][dynamodb] creating table name=%s", spec.Name)
		if _, err := client.CreateTable(ctx, createTableInput(spec)); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return err
		}
	}
	return nil
}

func createTableInput(spec TableSpec) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String(spec.HashKey), AttributeType: types.ScalarAttributeTypeS},
	}
	var gsis []types.GlobalSecondaryIndex
	for index, key := range spec.Indexes {
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName: aws.String(index),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(spec.Name),
		BillingMode:            types.BillingModePayPerRequest,
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String(spec.HashKey), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
