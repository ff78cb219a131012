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

	"github.com/smtkv/smtkv/cache"
	"github.com/smtkv/smtkv/hashing"
	"github.com/smtkv/smtkv/log"
	"github.com/smtkv/smtkv/storage"
)

// StoreReader is the read capability a sparse Merkle tree algorithm
// requires: branch nodes by position, leaves by digest. A nil result
// without error means the key is absent.
type StoreReader[V any] interface {
	GetBranch(key BranchKey) (*BranchNode, error)
	GetLeaf(key hashing.Digest) (*V, error)
}

// StoreWriter is the write capability: inserts and removals for both
// node kinds. None of these operations touches the backing engine;
// they stage mutations for the next Commit.
type StoreWriter[V any] interface {
	InsertBranch(key BranchKey, node *BranchNode) error
	InsertLeaf(key hashing.Digest, value V) error
	RemoveBranch(key BranchKey) error
	RemoveLeaf(key hashing.Digest) error
}

var (
	_ StoreReader[struct{}] = (*MerkleStore[struct{}])(nil)
	_ StoreWriter[struct{}] = (*MerkleStore[struct{}])(nil)
)

// MerkleStore adapts a storage.Engine to the StoreReader/StoreWriter
// contracts, buffering every mutation in an overlay until Commit.
//
// Reads probe the overlay first: a staged tombstone short-circuits to
// absent without consulting the engine, a staged value is returned as
// is, and only a true overlay miss falls through to the committed-read
// cache (if any) and then the engine. The store-level RWMutex keeps
// that probe-then-fall-through sequence atomic with respect to
// mutations and commits, so a read can never observe an engine value
// that a concurrent write already shadowed.
//
// The handle is safe for concurrent use and meant to be shared: every
// goroutine holding the same *MerkleStore sees the same staged state.
type MerkleStore[V any] struct {
	mu      sync.RWMutex
	backend *storeBackend
	overlay *cache.Overlay
	reads   cache.Cache
	codec   ValueCodec[V]
}

// NewMerkleStore returns a store over the given engine. The engine
// handle may be shared with other users; the store serializes its own
// access to it.
func NewMerkleStore[V any](engine storage.Engine, codec ValueCodec[V]) *MerkleStore[V] {
	return &MerkleStore[V]{
		backend: newStoreBackend(engine),
		overlay: cache.NewOverlay(),
		codec:   codec,
	}
}

// NewMerkleStoreWithCache returns a store that additionally keeps
// committed nodes in reads, consulted after an overlay miss and before
// the engine. The cache only ever holds committed data, so it may
// evict freely and survives ClearCache untouched.
func NewMerkleStoreWithCache[V any](engine storage.Engine, codec ValueCodec[V], reads cache.Cache) *MerkleStore[V] {
	store := NewMerkleStore[V](engine, codec)
	store.reads = reads
	return store
}

// get resolves a raw key through overlay, read cache and engine, in
// that order. The boolean reports presence.
func (s *MerkleStore[V]) get(key []byte) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if value, tombstone, ok := s.overlay.Get(key); ok {
		if tombstone {
			return nil, false, nil
		}
		return value, true, nil
	}

	if s.reads != nil {
		if value, ok := s.reads.Get(key); ok {
			return value, true, nil
		}
	}

	value, err := s.backend.get(key)
	if err == storage.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if s.reads != nil {
		s.reads.Put(key, value)
	}
	return value, true, nil
}

func (s *MerkleStore[V]) put(key, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.overlay.Put(key, value)
}

func (s *MerkleStore[V]) delete(key []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.overlay.Delete(key)
}

// GetBranch returns the branch node stored at the given position, or
// nil when absent.
func (s *MerkleStore[V]) GetBranch(key BranchKey) (*BranchNode, error) {
	raw, ok, err := s.get(key.Bytes())
	if err != nil || !ok {
		return nil, err
	}
	return UnmarshalBranchNode(raw)
}

// GetLeaf returns the leaf value stored under the given digest, or nil
// when absent.
func (s *MerkleStore[V]) GetLeaf(key hashing.Digest) (*V, error) {
	raw, ok, err := s.get(key)
	if err != nil || !ok {
		return nil, err
	}
	value, err := s.codec.Unmarshal(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// InsertBranch stages a branch node at the given position.
func (s *MerkleStore[V]) InsertBranch(key BranchKey, node *BranchNode) error {
	value, err := node.Marshal()
	if err != nil {
		return err
	}
	s.put(key.Bytes(), value)
	return nil
}

// InsertLeaf stages a leaf value under the given digest. The digest is
// used verbatim as the storage key.
func (s *MerkleStore[V]) InsertLeaf(key hashing.Digest, value V) error {
	encoded, err := s.codec.Marshal(value)
	if err != nil {
		return err
	}
	s.put(key, encoded)
	return nil
}

// RemoveBranch stages the removal of a branch node.
func (s *MerkleStore[V]) RemoveBranch(key BranchKey) error {
	s.delete(key.Bytes())
	return nil
}

// RemoveLeaf stages the removal of a leaf.
func (s *MerkleStore[V]) RemoveLeaf(key hashing.Digest) error {
	s.delete(key)
	return nil
}

// Pending returns the number of staged mutations awaiting commit.
func (s *MerkleStore[V]) Pending() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.overlay.Len()
}

// Commit reconciles every staged mutation into the engine: values are
// written through, tombstones become engine deletes for keys that
// exist. When the engine supports atomic batches the whole commit is
// one engine transaction; otherwise operations are issued per key and
// the first error stops the loop, leaving the already-applied prefix
// in the engine and the full overlay staged for a retry. The overlay
// is cleared only after every mutation has been applied.
//
// Commit must not run concurrently with itself on stores sharing an
// overlay; the store-level lock enforces that for a shared handle.
func (s *MerkleStore[V]) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.overlay.Entries()
	if len(entries) == 0 {
		return nil
	}

	mutations := make([]*storage.Mutation, 0, len(entries))
	for _, e := range entries {
		if e.Tombstone {
			mutations = append(mutations, storage.NewDeletionMutation(e.Key))
			continue
		}
		mutations = append(mutations, storage.NewMutation(e.Key, e.Value))
	}

	batched, err := s.backend.apply(mutations)
	if err != nil {
		return err
	}
	if !batched {
		if err := s.commitPerKey(entries); err != nil {
			return err
		}
	}

	if s.reads != nil {
		for _, e := range entries {
			if e.Tombstone {
				s.reads.Del(e.Key)
				continue
			}
			s.reads.Put(e.Key, e.Value)
		}
	}

	s.overlay.Clear()
	log.Debugf("Committed %d staged mutations", len(entries))
	return nil
}

// commitPerKey is the fallback for engines without batch support.
// First error wins; nothing is rolled back.
func (s *MerkleStore[V]) commitPerKey(entries []cache.Entry) error {
	for _, e := range entries {
		if !e.Tombstone {
			if err := s.backend.put(e.Key, e.Value); err != nil {
				return err
			}
			continue
		}
		// A tombstone deletes only when the key exists; deleting an
		// absent key is a no-op, not an error.
		_, err := s.backend.get(e.Key)
		if err == storage.ErrKeyNotFound {
			continue
		}
		if err != nil {
			return err
		}
		if err := s.backend.delete(e.Key); err != nil {
			return err
		}
	}
	return nil
}

// ClearCache discards every staged mutation without touching the
// engine. Committed state, including the committed-read cache, is
// unaffected.
func (s *MerkleStore[V]) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.overlay.Clear()
}
