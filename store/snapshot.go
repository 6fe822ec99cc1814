package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoSnapshot is returned by Load when nothing is stored under the key.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Snapshotter persists each store's full state as one self-contained JSON
// document under a fixed key. Stores write after every mutation and load once
// at startup; a failed or missing load falls back to seed data.
type Snapshotter interface {
	Load(key string, v interface{}) error
	Save(key string, v interface{}) error
	Delete(key string) error
}

// MemorySnapshots keeps snapshots in memory. Used by tests.
type MemorySnapshots struct {
	data map[string][]byte
}

func NewMemorySnapshots() *MemorySnapshots {
	return &MemorySnapshots{data: make(map[string][]byte)}
}

func (m *MemorySnapshots) Load(key string, v interface{}) error {
	raw, ok := m.data[key]
	if !ok {
		return ErrNoSnapshot
	}
	return json.Unmarshal(raw, v)
}

func (m *MemorySnapshots) Save(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *MemorySnapshots) Delete(key string) error {
	delete(m.data, key)
	return nil
}

// FileSnapshots writes one JSON file per key under a data directory.
type FileSnapshots struct {
	dir string
}

func NewFileSnapshots(dir string) *FileSnapshots {
	return &FileSnapshots{dir: dir}
}

func (f *FileSnapshots) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileSnapshots) Load(key string, v interface{}) error {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoSnapshot
		}
		return err
	}
	return json.Unmarshal(raw, v)
}

func (f *FileSnapshots) Save(key string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path(key), raw, 0o644)
}

func (f *FileSnapshots) Delete(key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MongoSnapshots stores each snapshot as a document {_id: key, data: <json>}
// in a single collection.
type MongoSnapshots struct {
	collection *mongo.Collection
}

func NewMongoSnapshots(collection *mongo.Collection) *MongoSnapshots {
	return &MongoSnapshots{collection: collection}
}

type snapshotDoc struct {
	Key  string `bson:"_id"`
	Data string `bson:"data"`
}

func (m *MongoSnapshots) Load(key string, v interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var doc snapshotDoc
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNoSnapshot
		}
		return err
	}
	return json.Unmarshal([]byte(doc.Data), v)
}

func (m *MongoSnapshots) Save(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = m.collection.ReplaceOne(ctx,
		bson.M{"_id": key},
		snapshotDoc{Key: key, Data: string(raw)},
		options.Replace().SetUpsert(true),
	)
	return err
}

func (m *MongoSnapshots) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := m.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
