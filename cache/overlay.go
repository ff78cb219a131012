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

// Package cache implements the in-memory layers a Merkle store reads
// through: the overlay staging uncommitted mutations and the optional
// caches of committed nodes.
package cache

import (
	"sync"
)

type entry struct {
	value     []byte
	tombstone bool
}

// Entry is one staged mutation yielded by Entries: an upsert of Value
// under Key, or a pending deletion of Key when Tombstone is set.
type Entry struct {
	Key, Value []byte
	Tombstone  bool
}

// Overlay is the staging map holding every mutation applied since the
// last commit. Deletions are recorded as tombstones, never by removing
// the staged key, so a read can tell "deleted here" apart from "never
// seen here". A single mutex guards the whole map.
type Overlay struct {
	mu      sync.Mutex
	entries map[string]entry
}

func NewOverlay() *Overlay {
	return &Overlay{entries: make(map[string]entry)}
}

// Get returns the staged value for a key. The tombstone result reports
// a staged deletion; ok reports whether the key is present in the
// overlay at all. Get never consults anything beyond the map.
func (c *Overlay) Get(key []byte) (value []byte, tombstone bool, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[string(key)]
	if !ok {
		return nil, false, false
	}
	return e.value, e.tombstone, true
}

// Put stages a value for a key, overwriting any staged value or
// tombstone. Last writer wins.
func (c *Overlay) Put(key, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[string(key)] = entry{value: value}
}

// Delete stages a tombstone for a key, overwriting any staged value.
// Last writer wins.
func (c *Overlay) Delete(key []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[string(key)] = entry{tombstone: true}
}

// Clear discards every staged mutation.
func (c *Overlay) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}

// Len returns the number of staged mutations.
func (c *Overlay) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Entries returns a snapshot of every staged mutation for the commit
// routine. It does not clear the overlay: clearing is the committer's
// responsibility once every write has been applied.
func (c *Overlay) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]Entry, 0, len(c.entries))
	for k, e := range c.entries {
		entries = append(entries, Entry{
			Key:       []byte(k),
			Value:     e.value,
			Tombstone: e.tombstone,
		})
	}
	return entries
}
