package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedTable serves its pages one call at a time, keyed by ExclusiveStartKey.
type pagedTable struct {
	pages [][]map[string]types.AttributeValue
	calls int
	err   error
}

func (p *pagedTable) page(start map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue) {
	idx := 0
	if v, ok := start["page"].(*types.AttributeValueMemberN); ok {
		idx = int(v.Value[0] - '0')
	}
	var next map[string]types.AttributeValue
	if idx+1 < len(p.pages) {
		next = map[string]types.AttributeValue{"page": &types.AttributeValueMemberN{Value: string(rune('0' + idx + 1))}}
	}
	return p.pages[idx], next
}

func (p *pagedTable) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	items, next := p.page(in.ExclusiveStartKey)
	return &dynamodb.ScanOutput{Items: items, LastEvaluatedKey: next}, nil
}

func (p *pagedTable) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	items, next := p.page(in.ExclusiveStartKey)
	return &dynamodb.QueryOutput{Items: items, LastEvaluatedKey: next}, nil
}

func item(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"_id": &types.AttributeValueMemberS{Value: id}}
}

func TestScanAll_FollowsEveryPage(t *testing.T) {
	table := &pagedTable{pages: [][]map[string]types.AttributeValue{
		{item("a"), item("b")},
		{item("c")},
		{item("d")},
	}}

	items, err := scanAll(context.Background(), table, &dynamodb.ScanInput{})
	require.NoError(t, err)
	assert.Len(t, items, 4)
	assert.Equal(t, 3, table.calls)
}

func TestQueryAll_FollowsEveryPage(t *testing.T) {
	table := &pagedTable{pages: [][]map[string]types.AttributeValue{
		{item("a")},
		{item("b")},
	}}

	items, err := queryAll(context.Background(), table, &dynamodb.QueryInput{})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 2, table.calls)
}

func TestScanAll_PropagatesError(t *testing.T) {
	table := &pagedTable{err: errors.New("throttled")}

	_, err := scanAll(context.Background(), table, &dynamodb.ScanInput{})
	assert.EqualError(t, err, "throttled")
}

// batchTable answers BatchGetItem from rows, leaving the first deferred keys
// of the first call unprocessed.
type batchTable struct {
	rows       map[string]map[string]types.AttributeValue
	deferred   int
	calls      int
	consistent []bool
	sizes      []int
}

func (b *batchTable) BatchGetItem(_ context.Context, in *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	b.calls++
	req := in.RequestItems["bookings"]
	b.consistent = append(b.consistent, aws.ToBool(req.ConsistentRead))
	b.sizes = append(b.sizes, len(req.Keys))

	keys := req.Keys
	var unprocessed []map[string]types.AttributeValue
	if b.calls == 1 && b.deferred > 0 {
		unprocessed, keys = keys[:b.deferred], keys[b.deferred:]
	}
	out := &dynamodb.BatchGetItemOutput{Responses: map[string][]map[string]types.AttributeValue{}}
	for _, k := range keys {
		id := k["_id"].(*types.AttributeValueMemberS).Value
		if row, ok := b.rows[id]; ok {
			out.Responses["bookings"] = append(out.Responses["bookings"], row)
		}
	}
	if len(unprocessed) > 0 {
		out.UnprocessedKeys = map[string]types.KeysAndAttributes{"bookings": {Keys: unprocessed}}
	}
	return out, nil
}

func TestBatchGetConsistent_ChunksAndRetries(t *testing.T) {
	table := &batchTable{rows: map[string]map[string]types.AttributeValue{}, deferred: 2}
	var keys []map[string]types.AttributeValue
	for i := 0; i < 150; i++ {
		id := fmt.Sprintf("bk-%d", i)
		table.rows[id] = item(id)
		keys = append(keys, bookingKey(id))
	}
	keys = append(keys, bookingKey("deleted"))

	items, err := batchGetConsistent(context.Background(), table, "bookings", keys)
	require.NoError(t, err)
	assert.Len(t, items, 150)
	assert.Equal(t, []int{100, 2, 51}, table.sizes)
	assert.Equal(t, []bool{true, true, true}, table.consistent)
}

func TestBatchGetConsistent_GivesUpOnStuckKeys(t *testing.T) {
	table := &stuckTable{}

	_, err := batchGetConsistent(context.Background(), table, "bookings", []map[string]types.AttributeValue{bookingKey("a")})
	assert.Error(t, err)
	assert.Equal(t, batchGetRetries, table.calls)
}

type stuckTable struct{ calls int }

func (s *stuckTable) BatchGetItem(_ context.Context, in *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	s.calls++
	return &dynamodb.BatchGetItemOutput{UnprocessedKeys: in.RequestItems}, nil
}

func TestIndexHits_DropStaleEntries(t *testing.T) {
	hits := []map[string]types.AttributeValue{item("a"), item("b"), item("a")}
	assert.Equal(t, []map[string]types.AttributeValue{bookingKey("a"), bookingKey("b")}, indexKeys(hits))

	fresh := []map[string]types.AttributeValue{
		{"_id": &types.AttributeValueMemberS{Value: "a"}, "decoratorEmail": &types.AttributeValueMemberS{Value: "d@x.com"}},
		{"_id": &types.AttributeValueMemberS{Value: "b"}, "decoratorEmail": &types.AttributeValueMemberS{Value: "other@x.com"}},
	}
	got := matching(fresh, "decoratorEmail", "d@x.com")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0]["_id"].(*types.AttributeValueMemberS).Value)
}
