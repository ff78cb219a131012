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

// Package storage defines the contract every durable key-value engine
// must satisfy to back a Merkle store, and the mutation type used to
// batch committed changes.
package storage

import (
	"errors"
)

var (
	ErrKeyNotFound = errors.New("key not found")
)

// Engine is the minimal capability consumed by the store layer: raw
// byte-key/byte-value get, put and delete, each independently fallible.
// Absence is reported as ErrKeyNotFound, never as a nil value, so an
// empty stored value remains distinguishable from a missing key.
type Engine interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	Delete(key []byte) error
	Close() error
}

// Batcher is an optional engine capability: applying a whole set of
// mutations atomically inside a single engine transaction. Engines that
// implement it give commits all-or-nothing semantics across keys.
type Batcher interface {
	Apply(mutations []*Mutation) error
}

// Mutation represents one committed change: either an upsert of Value
// under Key, or the removal of Key when Deletion is set.
type Mutation struct {
	Key, Value []byte
	Deletion   bool
}

func NewMutation(key, value []byte) *Mutation {
	return &Mutation{Key: key, Value: value}
}

func NewDeletionMutation(key []byte) *Mutation {
	return &Mutation{Key: key, Deletion: true}
}
