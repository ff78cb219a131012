/*
   Copyright 2026 The smtkv authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package bolt

import (
	b "github.com/coreos/bbolt"

	"github.com/smtkv/smtkv/storage"
)

const defaultBucket = "nodes"

var (
	_ storage.Engine  = (*BoltEngine)(nil)
	_ storage.Batcher = (*BoltEngine)(nil)
)

// BoltEngine exposes a single bucket of a Bolt database through the
// storage.Engine contract.
type BoltEngine struct {
	db     *b.DB
	bucket []byte
}

// Options contains all the configuration used to open the Bolt db.
type Options struct {
	// Path is the file path to the Bolt db to use.
	Path string

	// Bucket is the name of the bucket holding every key. By
	// default, "nodes".
	Bucket string

	// NoSync causes the database to skip fsync calls after each
	// commit. This is unsafe, so it should be used with caution.
	NoSync bool
}

func NewBoltEngine(path string) (*BoltEngine, error) {
	return NewBoltEngineOpts(&Options{Path: path})
}

func NewBoltEngineOpts(opts *Options) (*BoltEngine, error) {

	var bucket string
	if bucket = defaultBucket; opts.Bucket != "" {
		bucket = opts.Bucket
	}

	db, err := b.Open(opts.Path, 0600, nil)
	if err != nil {
		return nil, err
	}
	db.NoSync = opts.NoSync

	err = db.Update(func(tx *b.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltEngine{db: db, bucket: []byte(bucket)}, nil
}

func (e *BoltEngine) Get(key []byte) ([]byte, error) {
	var value []byte
	err := e.db.View(func(tx *b.Tx) error {
		v := tx.Bucket(e.bucket).Get(key)
		if v == nil {
			return storage.ErrKeyNotFound
		}
		value = make([]byte, len(v))
		copy(value, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (e *BoltEngine) Put(key, value []byte) error {
	return e.db.Update(func(tx *b.Tx) error {
		return tx.Bucket(e.bucket).Put(key, value)
	})
}

func (e *BoltEngine) Delete(key []byte) error {
	return e.db.Update(func(tx *b.Tx) error {
		return tx.Bucket(e.bucket).Delete(key)
	})
}

// Apply writes a whole set of mutations inside a single Bolt update
// transaction, making the batch atomic.
func (e *BoltEngine) Apply(mutations []*storage.Mutation) error {
	return e.db.Update(func(tx *b.Tx) error {
		bucket := tx.Bucket(e.bucket)
		for _, m := range mutations {
			var err error
			if m.Deletion {
				err = bucket.Delete(m.Key)
			} else {
				err = bucket.Put(m.Key, m.Value)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (e *BoltEngine) Close() error {
	return e.db.Close()
}
