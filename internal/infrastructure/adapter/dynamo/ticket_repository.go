package dynamo

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	"github.com/powerstack-ng/powerstack-api/internal/domain/port/persistence"
)

// TicketRepository stores support tickets in a DynamoDB table keyed by
// ticket ID.
type TicketRepository struct {
	client *dynamodb.Client
	table  string
}

// NewTicketRepository creates a DynamoDB-backed ticket repository.
func NewTicketRepository(client *dynamodb.Client, table string) persistence.TicketRepository {
	return &TicketRepository{client: client, table: table}
}

// Create inserts a new ticket.
func (r *TicketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	item, err := attributevalue.MarshalMap(toTicketRecord(ticket))
	if err != nil {
		return storeError("marshal ticket", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(ticketID)"),
	})
	if err != nil {
		return storeError("put ticket", err)
	}
	return nil
}

// GetByID retrieves a ticket.
func (r *TicketRepository) GetByID(ctx context.Context, ticketID string) (*entity.Ticket, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       ticketKey(ticketID),
	})
	if err != nil {
		return nil, storeError("get ticket", err)
	}
	if out.Item == nil {
		return nil, errs.ErrTicketNotFound
	}

	var rec ticketRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, storeError("unmarshal ticket", err)
	}
	return rec.toEntity(), nil
}

// List returns all tickets, newest first.
func (r *TicketRepository) List(ctx context.Context) ([]*entity.Ticket, error) {
	var tickets []*entity.Ticket
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, storeError("scan tickets", err)
		}
		var recs []ticketRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, storeError("unmarshal tickets", err)
		}
		for _, rec := range recs {
			tickets = append(tickets, rec.toEntity())
		}
	}

	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})
	return tickets, nil
}

// UpdateStatus moves a ticket through its workflow.
func (r *TicketRepository) UpdateStatus(ctx context.Context, ticketID string, status entity.TicketStatus) error {
	update := expression.Set(expression.Name("status"), expression.Value(string(status)))
	return r.update(ctx, ticketID, update, "update status")
}

// AppendComment adds a correspondence entry to the ticket.
func (r *TicketRepository) AppendComment(ctx context.Context, ticketID string, comment entity.TicketComment) error {
	update := expression.Set(
		expression.Name("comments"),
		expression.ListAppend(
			expression.IfNotExists(expression.Name("comments"), expression.Value([]commentRecord{})),
			expression.Value([]commentRecord{toCommentRecord(comment)}),
		),
	)
	return r.update(ctx, ticketID, update, "append comment")
}

// Count returns the number of stored tickets.
func (r *TicketRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
		Select:    types.SelectCount,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, storeError("count tickets", err)
		}
		count += int64(page.Count)
	}
	return count, nil
}

func (r *TicketRepository) update(ctx context.Context, ticketID string, update expression.UpdateBuilder, op string) error {
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return storeError("build expression", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       ticketKey(ticketID),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ConditionExpression:       aws.String("attribute_exists(ticketID)"),
	})
	if err != nil {
		if conditionFailed(err) {
			return errs.ErrTicketNotFound
		}
		return storeError(op, err)
	}
	return nil
}
