package storage

import (
	"context"
	"encoding/json"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"time"
)

type DynamoDocumentStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoDocumentStorage) Load(ctx context.Context, key string, into interface{}) error {
	pk, err := attributevalue.MarshalMap(map[string]string{"PK": key})
	if err != nil {
		logging.Log.Errorf("STORAGE: failed to marshal key %s: %v", key, err)
		return err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      &s.TableName,
		Key:            pk,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		logging.Log.Errorf("STORAGE: GetItem for %s failed: %v", key, err)
		return err
	}
	if out.Item == nil {
		return ErrDocumentNotFound
	}

	var doc Document
	if err := attributevalue.UnmarshalMap(out.Item, &doc); err != nil {
		logging.Log.Errorf("STORAGE: failed to unmarshal document %s: %v", key, err)
		return err
	}
	if err := json.Unmarshal([]byte(doc.Body), into); err != nil {
		logging.Log.Errorf("STORAGE: document %s has a corrupt body: %v", key, err)
		return err
	}
	return nil
}

func (s *DynamoDocumentStorage) Save(ctx context.Context, key string, doc interface{}) error {
	body, err := json.Marshal(doc)
	if err != nil {
		logging.Log.Errorf("STORAGE: failed to encode document %s: %v", key, err)
		return err
	}

	item, err := attributevalue.MarshalMap(&Document{
		Key:       key,
		Body:      string(body),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		logging.Log.Errorf("STORAGE: failed to marshal document %s: %v", key, err)
		return err
	}

	// A single PutItem replaces the whole item.
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("STORAGE: failed to put document %s: %v", key, err)
		return err
	}
	return nil
}
