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

// Package bplus implements an in-memory, non-durable engine. Handy for
// tests and for trees whose lifetime ends with the process.
package bplus

import (
	"bytes"

	"github.com/google/btree"

	"github.com/smtkv/smtkv/storage"
)

var (
	_ storage.Engine  = (*BPlusEngine)(nil)
	_ storage.Batcher = (*BPlusEngine)(nil)
)

type BPlusEngine struct {
	db *btree.BTree
}

type KVItem struct {
	Key, Value []byte
}

func (p KVItem) Less(b btree.Item) bool {
	return bytes.Compare(p.Key, b.(KVItem).Key) < 0
}

func NewBPlusEngine() *BPlusEngine {
	return &BPlusEngine{btree.New(2)}
}

func (e *BPlusEngine) Get(key []byte) ([]byte, error) {
	item := e.db.Get(KVItem{key, nil})
	if item == nil {
		return nil, storage.ErrKeyNotFound
	}
	return item.(KVItem).Value, nil
}

func (e *BPlusEngine) Put(key, value []byte) error {
	e.db.ReplaceOrInsert(KVItem{key, value})
	return nil
}

func (e *BPlusEngine) Delete(key []byte) error {
	e.db.Delete(KVItem{key, nil})
	return nil
}

// Apply writes a whole set of mutations. There is no transaction to
// speak of: the engine lives in memory and never fails, so the loop is
// trivially atomic.
func (e *BPlusEngine) Apply(mutations []*storage.Mutation) error {
	for _, m := range mutations {
		if m.Deletion {
			e.db.Delete(KVItem{m.Key, nil})
			continue
		}
		e.db.ReplaceOrInsert(KVItem{m.Key, m.Value})
	}
	return nil
}

// Len returns the number of keys currently stored.
func (e *BPlusEngine) Len() int {
	return e.db.Len()
}

func (e *BPlusEngine) Close() error {
	e.db.Clear(false)
	return nil
}
