package dynamo

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	"github.com/powerstack-ng/powerstack-api/internal/domain/port/persistence"
)

// UserRepository stores users in a DynamoDB table keyed by user ID. The
// wallet balance lives in a numeric attribute mutated only through a
// condition expression on its current value, which makes per-user
// balance updates linearizable without locks.
type UserRepository struct {
	client *dynamodb.Client
	table  string
}

// NewUserRepository creates a DynamoDB-backed user repository.
func NewUserRepository(client *dynamodb.Client, table string) persistence.UserRepository {
	return &UserRepository{client: client, table: table}
}

// GetByID retrieves a user by primary key.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       userKey(userID),
	})
	if err != nil {
		return nil, storeError("get user", err)
	}
	if out.Item == nil {
		return nil, errs.ErrUserNotFound
	}

	var rec userRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, storeError("unmarshal user", err)
	}
	return rec.toEntity(), nil
}

// GetByEmail scans for the user with the given email business key.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	filter := expression.Name("email").Equal(expression.Value(email))
	users, err := r.scan(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, errs.ErrUserNotFound
	}
	return users[0], nil
}

// Create inserts a new user record, conditional on the ID being unused.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	item, err := attributevalue.MarshalMap(toUserRecord(user))
	if err != nil {
		return storeError("marshal user", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(userID)"),
	})
	if err != nil {
		if conditionFailed(err) {
			// ID collision from a concurrent first-login race; the
			// record exists, which is what the caller wanted.
			return nil
		}
		return storeError("put user", err)
	}
	return nil
}

// CompareAndSetBalance writes the new balance only if the stored balance
// still equals the expected value.
func (r *UserRepository) CompareAndSetBalance(ctx context.Context, userID string, expectedKobo, newBalanceKobo int64) error {
	update := expression.
		Set(expression.Name("walletBalanceKobo"), expression.Value(newBalanceKobo)).
		Set(expression.Name("updatedAt"), expression.Value(time.Now().UTC().Format(timestampLayout)))
	cond := expression.Name("walletBalanceKobo").Equal(expression.Value(expectedKobo))
	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return storeError("build expression", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       userKey(userID),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		if conditionFailed(err) {
			// Either the balance moved or the user vanished.
			if _, getErr := r.GetByID(ctx, userID); getErr != nil {
				return getErr
			}
			return errs.ErrBalanceConflict
		}
		return storeError("compare-and-set balance", err)
	}
	return nil
}

// TouchLastLogin updates the last-login timestamp.
func (r *UserRepository) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	update := expression.Set(expression.Name("lastLogin"), expression.Value(at.UTC().Format(timestampLayout)))
	return r.update(ctx, userID, update, "touch last login")
}

// SetActive activates or deactivates an account.
func (r *UserRepository) SetActive(ctx context.Context, userID string, active bool) error {
	update := expression.Set(expression.Name("isActive"), expression.Value(active))
	return r.update(ctx, userID, update, "set active")
}

// AddMeter appends a meter descriptor to the user's meter list.
func (r *UserRepository) AddMeter(ctx context.Context, userID string, meter entity.Meter) error {
	update := expression.Set(
		expression.Name("meters"),
		expression.ListAppend(
			expression.IfNotExists(expression.Name("meters"), expression.Value([]entity.Meter{})),
			expression.Value([]entity.Meter{meter}),
		),
	)
	return r.update(ctx, userID, update, "add meter")
}

// RemoveMeter rewrites the meter list without the given meter number.
// Read-modify-write; a concurrent meter edit may be overwritten, which
// is acceptable for this low-contention list.
func (r *UserRepository) RemoveMeter(ctx context.Context, userID string, meterNumber string) error {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	kept := make([]entity.Meter, 0, len(user.Meters))
	for _, m := range user.Meters {
		if m.MeterNumber != meterNumber {
			kept = append(kept, m)
		}
	}

	update := expression.Set(expression.Name("meters"), expression.Value(kept))
	return r.update(ctx, userID, update, "remove meter")
}

// ListByType scans for all users of one type.
func (r *UserRepository) ListByType(ctx context.Context, userType entity.UserType) ([]*entity.User, error) {
	filter := expression.Name("userType").Equal(expression.Value(string(userType)))
	return r.scan(ctx, filter)
}

// ListByTypeAndLastLogin scans for users of one type seen inside the
// login window.
func (r *UserRepository) ListByTypeAndLastLogin(ctx context.Context, userType entity.UserType, from, to time.Time) ([]*entity.User, error) {
	filter := expression.Name("userType").Equal(expression.Value(string(userType))).
		And(expression.Name("lastLogin").Between(
			expression.Value(from.UTC().Format(timestampLayout)),
			expression.Value(to.UTC().Format(timestampLayout)),
		))
	return r.scan(ctx, filter)
}

func (r *UserRepository) update(ctx context.Context, userID string, update expression.UpdateBuilder, op string) error {
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return storeError("build expression", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       userKey(userID),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ConditionExpression:       aws.String("attribute_exists(userID)"),
	})
	if err != nil {
		if conditionFailed(err) {
			return errs.ErrUserNotFound
		}
		return storeError(op, err)
	}
	return nil
}

func (r *UserRepository) scan(ctx context.Context, filter expression.ConditionBuilder) ([]*entity.User, error) {
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, storeError("build expression", err)
	}

	var users []*entity.User
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:                 aws.String(r.table),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, storeError("scan users", err)
		}
		var recs []userRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, storeError("unmarshal users", err)
		}
		for _, rec := range recs {
			users = append(users, rec.toEntity())
		}
	}
	return users, nil
}
