package keyvalue

import (
	"context"
	"errors"
	"meditrack-client/internal/app/contracts"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoEntriesField = "entries"

type mongoSessionDocument struct {
	ID      string            `bson:"_id"`
	Entries map[string]string `bson:"entries"`
}

type mongoStorage struct {
	collection *mongo.Collection
	namespace  string
}

// NewMongoStorage keeps all entries of a namespace in one document, so a
// multi-key update is a single atomic document write.
func NewMongoStorage(db *mongo.Database, collectionName, namespace string) contracts.KeyValueStorage {
	return &mongoStorage{
		collection: db.Collection(collectionName),
		namespace:  namespace,
	}
}

func (m *mongoStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var document mongoSessionDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": m.namespace}).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, exceptions.ErrStorageGet(err, key, m.Driver())
	}

	value, found := document.Entries[key]
	return value, found, nil
}

func (m *mongoStorage) SetMany(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	fields := bson.M{}
	for key, value := range entries {
		fields[mongoEntriesField+"."+key] = value
	}

	_, err := m.collection.UpdateOne(ctx,
		bson.M{"_id": m.namespace},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return exceptions.ErrStorageSet(err, m.Driver())
	}
	return nil
}

func (m *mongoStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	fields := bson.M{}
	for _, key := range keys {
		fields[mongoEntriesField+"."+key] = ""
	}

	_, err := m.collection.UpdateOne(ctx,
		bson.M{"_id": m.namespace},
		bson.M{"$unset": fields},
	)
	if err != nil {
		return exceptions.ErrStorageDelete(err, m.Driver())
	}
	return nil
}

func (m *mongoStorage) Driver() string {
	return constvars.CredentialStoreDriverMongo
}
