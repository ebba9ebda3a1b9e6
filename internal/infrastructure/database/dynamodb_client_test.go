package database

import (
	"sort"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSpecsFromEnv(t *testing.T) {
	t.Setenv("USERS_TABLE", "")
	t.Setenv("SERVICES_TABLE", "")
	t.Setenv("BOOKINGS_TABLE", "prod-bookings")

	specs := TableSpecsFromEnv()
	require.Len(t, specs, 3)
	assert.Equal(t, "users", specs[0].Name)
	assert.Equal(t, "email", specs[0].HashKey)
	assert.Equal(t, "services", specs[1].Name)
	assert.Equal(t, "prod-bookings", specs[2].Name)
	assert.Len(t, specs[2].Indexes, 2)
}

func TestCreateTableInput_BookingsIndexes(t *testing.T) {
	in := createTableInput(TableSpec{
		Name:    "bookings",
		HashKey: "_id",
		Indexes: map[string]string{
			"userEmail-index":      "userEmail",
			"decoratorEmail-index": "decoratorEmail",
		},
	})

	assert.Equal(t, types.BillingModePayPerRequest, in.BillingMode)
	require.Len(t, in.KeySchema, 1)
	assert.Equal(t, "_id", aws.ToString(in.KeySchema[0].AttributeName))

	var names []string
	for _, gsi := range in.GlobalSecondaryIndexes {
		names = append(names, aws.ToString(gsi.IndexName))
	}
	sort.Strings(names)
	assert.Equal(t, []string{"decoratorEmail-index", "userEmail-index"}, names)
	assert.Len(t, in.AttributeDefinitions, 3)
}

func TestCreateTableInput_NoIndexes(t *testing.T) {
	in := createTableInput(TableSpec{Name: "users", HashKey: "email"})
	assert.Empty(t, in.GlobalSecondaryIndexes)
	assert.Len(t, in.AttributeDefinitions, 1)
}

func TestIsTrue(t *testing.T) {
	for _, v := range []string{"1", "true", " YES ", "on"} {
		assert.True(t, isTrue(v), v)
	}
	for _, v := range []string{"", "0", "false", "mock"} {
		assert.False(t, isTrue(v), v)
	}
}
