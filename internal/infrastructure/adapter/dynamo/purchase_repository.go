package dynamo

import (
	"context"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	"github.com/powerstack-ng/powerstack-api/internal/domain/port/persistence"
)

// PurchaseRepository stores purchases in a DynamoDB table keyed by the
// transaction reference. Settlement relies on single-item condition
// expressions; there are no multi-item transactions.
type PurchaseRepository struct {
	client *dynamodb.Client
	table  string
}

// NewPurchaseRepository creates a DynamoDB-backed purchase repository.
func NewPurchaseRepository(client *dynamodb.Client, table string) persistence.PurchaseRepository {
	return &PurchaseRepository{client: client, table: table}
}

// Create inserts the record, conditional on the reference not existing.
func (r *PurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	item, err := attributevalue.MarshalMap(toPurchaseRecord(purchase))
	if err != nil {
		return storeError("marshal purchase", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(purchaseID)"),
	})
	if err != nil {
		if conditionFailed(err) {
			return errs.ErrDuplicatePurchase
		}
		return storeError("put purchase", err)
	}
	return nil
}

// GetByReference retrieves one purchase by its key.
func (r *PurchaseRepository) GetByReference(ctx context.Context, reference string) (*entity.Purchase, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       purchaseKey(reference),
	})
	if err != nil {
		return nil, storeError("get purchase", err)
	}
	if out.Item == nil {
		return nil, errs.ErrInvalidReference
	}

	var rec purchaseRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, storeError("unmarshal purchase", err)
	}
	return rec.toEntity(), nil
}

// Confirm overwrites the record with the finalized purchase, conditional
// on the stored status still being Initialized. Exactly one concurrent
// confirmation of a reference can pass the condition.
func (r *PurchaseRepository) Confirm(ctx context.Context, purchase *entity.Purchase) error {
	item, err := attributevalue.MarshalMap(toPurchaseRecord(purchase))
	if err != nil {
		return storeError("marshal purchase", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_exists(purchaseID) AND #st = :initialized"),
		ExpressionAttributeNames: map[string]string{
			"#st": "status",
		},
		ExpressionAttributeValues: map[string]dynamoAV{
			":initialized": stringAV(string(entity.StatusInitialized)),
		},
	})
	if err != nil {
		if conditionFailed(err) {
			// Either a concurrent confirmation won or the reference was
			// never initialized. Distinguish by reading.
			if _, getErr := r.GetByReference(ctx, purchase.PurchaseID); getErr != nil {
				return getErr
			}
			return errs.ErrAlreadyConfirmed
		}
		return storeError("confirm purchase", err)
	}
	return nil
}

// SetWalletBalance records the post-credit balance on the purchase.
func (r *PurchaseRepository) SetWalletBalance(ctx context.Context, reference, balance string) error {
	update := expression.Set(expression.Name("walletBalance"), expression.Value(balance))
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return storeError("build expression", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       purchaseKey(reference),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ConditionExpression:       aws.String("attribute_exists(purchaseID)"),
	})
	if err != nil {
		if conditionFailed(err) {
			return errs.ErrInvalidReference
		}
		return storeError("set wallet balance", err)
	}
	return nil
}

// ListByEmail scans for all purchases made by one email, newest first.
func (r *PurchaseRepository) ListByEmail(ctx context.Context, email string) ([]*entity.Purchase, error) {
	filter := expression.Name("email").Equal(expression.Value(email))
	return r.scan(ctx, filter)
}

// ListByTypeAndDateRange scans for purchases of one type inside the
// date window. Purchase dates are stored in a lexicographically sortable
// layout, so the range filter compares strings.
func (r *PurchaseRepository) ListByTypeAndDateRange(ctx context.Context, txnType entity.TxnType, from, to time.Time) ([]*entity.Purchase, error) {
	filter := expression.Name("txnType").Equal(expression.Value(string(txnType))).
		And(expression.Name("purchaseDate").Between(
			expression.Value(from.Format(purchaseDateLayout)),
			expression.Value(to.Format(purchaseDateLayout)),
		))
	return r.scan(ctx, filter)
}

func (r *PurchaseRepository) scan(ctx context.Context, filter expression.ConditionBuilder) ([]*entity.Purchase, error) {
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, storeError("build expression", err)
	}

	var purchases []*entity.Purchase
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:                 aws.String(r.table),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, storeError("scan purchases", err)
		}
		var recs []purchaseRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, storeError("unmarshal purchases", err)
		}
		for _, rec := range recs {
			purchases = append(purchases, rec.toEntity())
		}
	}

	sort.Slice(purchases, func(i, j int) bool {
		return purchases[i].CreatedAt.After(purchases[j].CreatedAt)
	})
	return purchases, nil
}
