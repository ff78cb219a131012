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

package smt

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/smtkv/smtkv/storage"
)

// storeBackend serializes access to the shared engine handle: one
// operation in flight at a time from this store's perspective,
// whatever concurrency the engine itself may offer. Engine failures
// come back wrapped; storage.ErrKeyNotFound passes through untouched
// so callers can match it.
type storeBackend struct {
	mu     sync.Mutex
	engine storage.Engine
}

func newStoreBackend(engine storage.Engine) *storeBackend {
	return &storeBackend{engine: engine}
}

func (b *storeBackend) get(key []byte) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	value, err := b.engine.Get(key)
	if err == storage.ErrKeyNotFound {
		return nil, err
	}
	if err != nil {
		return nil, errors.Wrapf(err, "backend get %x", key)
	}
	return value, nil
}

func (b *storeBackend) put(key, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.engine.Put(key, value); err != nil {
		return errors.Wrapf(err, "backend put %x", key)
	}
	return nil
}

func (b *storeBackend) delete(key []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.engine.Delete(key); err != nil {
		return errors.Wrapf(err, "backend delete %x", key)
	}
	return nil
}

// apply hands a whole batch to the engine when it supports atomic
// batches. The first result reports whether the engine does; when it
// is false the caller must fall back to per-key operations.
func (b *storeBackend) apply(mutations []*storage.Mutation) (bool, error) {
	batcher, ok := b.engine.(storage.Batcher)
	if !ok {
		return false, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := batcher.Apply(mutations); err != nil {
		return true, errors.Wrap(err, "backend batch apply")
	}
	return true, nil
}
