package cache

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var bucketPreferences = []byte("preferences")

// BoltPreferences is a durable key-value store over bbolt, used for
// the asset cache's key->path mappings.
type BoltPreferences struct {
	db *bbolt.DB
}

// NewBoltPreferences opens (or creates) the preference database at
// path.
func NewBoltPreferences(path string) (*BoltPreferences, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPreferences)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create preferences bucket: %w", err)
	}
	return &BoltPreferences{db: db}, nil
}

func (p *BoltPreferences) Get(key string) (string, bool, error) {
	var value string
	var found bool
	err := p.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketPreferences).Get([]byte(key))
		if data != nil {
			value = string(data)
			found = true
		}
		return nil
	})
	return value, found, err
}

func (p *BoltPreferences) Set(key, value string) error {
	return p.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPreferences).Put([]byte(key), []byte(value))
	})
}

func (p *BoltPreferences) Remove(key string) error {
	return p.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPreferences).Delete([]byte(key))
	})
}

func (p *BoltPreferences) Keys() ([]string, error) {
	var keys []string
	err := p.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPreferences).ForEach(func(k, v []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}

func (p *BoltPreferences) Close() error {
	return p.db.Close()
}
