package history

import (
	"time"

	bolt "github.com/boltdb/bolt"
)

const postedBucket = "posted"

// BoltStore keeps posted identities in an embedded BoltDB file. Selectable
// over the JSON file store when the history lives alongside other local
// state; writes are transactional and flushed on commit.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the database at path and ensures the posted
// bucket exists.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(postedBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// HasPosted reports whether the identity exists in the posted bucket.
func (s *BoltStore) HasPosted(identity string) bool {
	found := false
	_ = s.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket([]byte(postedBucket)).Get([]byte(identity)) != nil
		return nil
	})
	return found
}

// RecordPosted stores the identity with its record time. An identity that is
// already present is left untouched so the original post time survives.
func (s *BoltStore) RecordPosted(identity string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(postedBucket))
		if b.Get([]byte(identity)) != nil {
			return nil
		}
		return b.Put([]byte(identity), []byte(time.Now().UTC().Format(time.RFC3339)))
	})
}

// Close releases the database file lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
