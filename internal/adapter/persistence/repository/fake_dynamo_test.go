package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI keyed by the "id" attribute. It
// understands only the condition and update expressions the repositories emit.
type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	calls map[string]int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		items: map[string]map[string]types.AttributeValue{},
		calls: map[string]int{},
	}
}

func stringAttr(av map[string]types.AttributeValue, name string) string {
	if s, ok := av[name].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func (f *fakeDynamo) checkCondition(cond *string, id string) error {
	if cond == nil {
		return nil
	}
	_, exists := f.items[id]
	switch {
	case strings.HasPrefix(*cond, "attribute_not_exists") && exists:
		return conditionFailed()
	case strings.HasPrefix(*cond, "attribute_exists") && !exists:
		return conditionFailed()
	}
	return nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["GetItem"]++
	return &dynamodb.GetItemOutput{Item: f.items[stringAttr(in.Key, "id")]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["PutItem"]++
	id := stringAttr(in.Item, "id")
	if err := f.checkCondition(in.ConditionExpression, id); err != nil {
		return nil, err
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

// UpdateItem supports "SET #a = :a, #b = :b" expressions only.
func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["UpdateItem"]++
	id := stringAttr(in.Key, "id")
	if err := f.checkCondition(in.ConditionExpression, id); err != nil {
		return nil, err
	}
	item := f.items[id]
	assignments := strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET ")
	for _, a := range strings.Split(assignments, ",") {
		parts := strings.SplitN(strings.TrimSpace(a), " = ", 2)
		if len(parts) != 2 {
			continue
		}
		item[in.ExpressionAttributeNames[parts[0]]] = in.ExpressionAttributeValues[parts[1]]
	}
	return &dynamodb.UpdateItemOutput{Attributes: item}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["DeleteItem"]++
	id := stringAttr(in.Key, "id")
	if err := f.checkCondition(in.ConditionExpression, id); err != nil {
		return nil, err
	}
	delete(f.items, id)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["Scan"]++
	out := make([]map[string]types.AttributeValue, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	return &dynamodb.ScanOutput{Items: out}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["Query"]++
	attr := in.ExpressionAttributeNames["#k"]
	want := stringAttr(in.ExpressionAttributeValues, ":v")
	out := make([]map[string]types.AttributeValue, 0)
	for _, it := range f.items {
		if stringAttr(it, attr) == want {
			out = append(out, it)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}
