package repository

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase/interfaces"
)

const billingIntentsStateIndex = "state-index"

type billingIntentItem struct {
	ID         string `dynamodbav:"id"`
	FreightID  string `dynamodbav:"freight_id"`
	Amount     string `dynamodbav:"amount"`
	DueDate    string `dynamodbav:"due_date"`
	State      string `dynamodbav:"state"`
	ExternalID string `dynamodbav:"external_id,omitempty"`
	BoletoURL  string `dynamodbav:"boleto_url,omitempty"`
	Error      string `dynamodbav:"error,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// BillingIntentDynamoRepository persists BillingIntent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: state-index (PK: state)

type BillingIntentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBillingIntentRepository = (*BillingIntentDynamoRepository)(nil)

func NewBillingIntentDynamoRepository(ddb DynamoAPI, tableName string) *BillingIntentDynamoRepository {
	return &BillingIntentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BillingIntentDynamoRepository) Create(ctx context.Context, i entities.BillingIntent) (entities.BillingIntent, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toBillingIntentItem(i)); err != nil {
		return entities.BillingIntent{}, err
	}
	return i, nil
}

// Update moves the intent to a new state. Only the mutable fields are written;
// a zero BillingIntent is returned when the id does not exist.
func (r *BillingIntentDynamoRepository) Update(ctx context.Context, i entities.BillingIntent) (entities.BillingIntent, error) {
	it := toBillingIntentItem(i)
	expr := "SET #state = :state, #external_id = :external_id, #boleto_url = :boleto_url, #error = :error, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":state":       &types.AttributeValueMemberS{Value: it.State},
		":external_id": &types.AttributeValueMemberS{Value: it.ExternalID},
		":boleto_url":  &types.AttributeValueMemberS{Value: it.BoletoURL},
		":error":       &types.AttributeValueMemberS{Value: it.Error},
		":updated_at":  &types.AttributeValueMemberS{Value: it.UpdatedAt},
	}
	names := map[string]string{
		"#state":       "state",
		"#external_id": "external_id",
		"#boleto_url":  "boleto_url",
		"#error":       "error",
		"#updated_at":  "updated_at",
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(i.ID),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return entities.BillingIntent{}, nil
	}
	if err != nil {
		return entities.BillingIntent{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.BillingIntent{}, nil
	}
	var updated billingIntentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return entities.BillingIntent{}, err
	}
	return fromBillingIntentItem(updated), nil
}

// ListByState returns intents in the given state, oldest first.
func (r *BillingIntentDynamoRepository) ListByState(ctx context.Context, state entities.BillingIntentState) ([]entities.BillingIntent, error) {
	items, err := queryIndex[billingIntentItem](ctx, r.ddb, r.tableName, billingIntentsStateIndex, "state", string(state))
	if err != nil {
		return nil, err
	}
	out := make([]entities.BillingIntent, 0, len(items))
	for _, it := range items {
		out = append(out, fromBillingIntentItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func toBillingIntentItem(i entities.BillingIntent) billingIntentItem {
	return billingIntentItem{
		ID:         i.ID,
		FreightID:  i.FreightID,
		Amount:     decimalToString(i.Amount),
		DueDate:    formatTime(i.DueDate),
		State:      string(i.State),
		ExternalID: i.ExternalID,
		BoletoURL:  i.BoletoURL,
		Error:      i.Error,
		CreatedAt:  formatTime(i.CreatedAt),
		UpdatedAt:  formatTime(i.UpdatedAt),
	}
}

func fromBillingIntentItem(it billingIntentItem) entities.BillingIntent {
	return entities.BillingIntent{
		ID:         it.ID,
		FreightID:  it.FreightID,
		Amount:     parseDecimal(it.Amount),
		DueDate:    parseTime(it.DueDate),
		State:      entities.BillingIntentState(it.State),
		ExternalID: it.ExternalID,
		BoletoURL:  it.BoletoURL,
		Error:      it.Error,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
