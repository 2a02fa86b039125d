package repository

import (
	"context"
	"encoding/json"
	"time"

	"cotizador_taller/internal/domain/catalog"
	"cotizador_taller/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

const DefaultCatalogTableName = "catalog"

type catalogItem struct {
	Path      string `dynamodbav:"path"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// dynamoAPI is the part of *dynamodb.Client the store uses.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// changePublisher announces that a path was written.
type changePublisher interface {
	Publish(ctx context.Context, path catalog.Path) error
}

// CatalogDynamoStore persists each catalog collection as one DynamoDB item.
//
// Table requirements:
//   - PK: path (string)
//
// The document is stored as a JSON string in "value". Saves are unconditional
// puts, so concurrent writers are last-write-wins.
//
// With a change feed, every save is published and every instance reloads the
// path when the feed delivers it (see Refresh). Without one, only local
// subscribers are notified.
type CatalogDynamoStore struct {
	ddb       dynamoAPI
	tableName string
	feed      changePublisher
	subs      *subscriptionRegistry
	now       func() time.Time
}

var _ interfaces.ICatalogStore = (*CatalogDynamoStore)(nil)

func NewCatalogDynamoStore(ddb dynamoAPI, tableName string, feed changePublisher) *CatalogDynamoStore {
	if tableName == "" {
		tableName = DefaultCatalogTableName
	}
	return &CatalogDynamoStore{
		ddb:       ddb,
		tableName: tableName,
		feed:      feed,
		subs:      newSubscriptionRegistry(),
		now:       time.Now,
	}
}

func (r *CatalogDynamoStore) Save(ctx context.Context, path catalog.Path, value json.RawMessage) error {
	if !path.Valid() {
		return ErrInvalidPath
	}
	doc, err := compactDocument(value)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(catalogItem{
		Path:      path.String(),
		Value:     string(doc),
		UpdatedAt: r.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		log.Error().Err(err).Str("path", path.String()).Msg("[catalog][dynamodb] save failed")
		return err
	}

	if r.feed == nil {
		r.subs.notify(path, doc)
		return nil
	}
	if err := r.feed.Publish(ctx, path); err != nil {
		// The write stands; local listeners still hear about it.
		log.Warn().Err(err).Str("path", path.String()).Msg("[catalog][dynamodb] change publish failed")
		r.subs.notify(path, doc)
	}
	return nil
}

// Load returns fallback when the path has never been written, and fallback
// plus the error when DynamoDB cannot be read.
func (r *CatalogDynamoStore) Load(ctx context.Context, path catalog.Path, fallback json.RawMessage) (json.RawMessage, error) {
	if !path.Valid() {
		return cloneRaw(fallback), ErrInvalidPath
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"path": &types.AttributeValueMemberS{Value: path.String()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return cloneRaw(fallback), err
	}
	if len(out.Item) == 0 {
		return cloneRaw(fallback), nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return cloneRaw(fallback), err
	}
	return orFallback(json.RawMessage(it.Value), fallback), nil
}

func (r *CatalogDynamoStore) Subscribe(ctx context.Context, path catalog.Path, onChange func(json.RawMessage)) (interfaces.Subscription, error) {
	if !path.Valid() {
		return interfaces.Subscription{}, ErrInvalidPath
	}
	current, err := r.Load(ctx, path, nullDocument)
	if err != nil {
		return interfaces.Subscription{}, err
	}
	sub := r.subs.add(path, onChange)
	deliver(path, onChange, current)
	return sub, nil
}

func (r *CatalogDynamoStore) Unsubscribe(sub interfaces.Subscription) error {
	return r.subs.remove(sub)
}

// Refresh reloads path and notifies its subscribers. The change feed calls it
// for every published write, including this instance's own.
func (r *CatalogDynamoStore) Refresh(ctx context.Context, path catalog.Path) {
	if !path.Valid() || !r.subs.watched(path) {
		return
	}
	doc, err := r.Load(ctx, path, nullDocument)
	if err != nil {
		log.Warn().Err(err).Str("path", path.String()).Msg("[catalog][dynamodb] refresh failed")
		return
	}
	r.subs.notify(path, doc)
}
