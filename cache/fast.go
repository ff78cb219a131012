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

package cache

import (
	"github.com/VictoriaMetrics/fastcache"
)

// FastCache is a Cache of fixed memory budget backed by
// VictoriaMetrics' fastcache.
type FastCache struct {
	cached *fastcache.Cache
}

// NewFastCache returns a cache holding at most maxBytes of committed
// nodes.
func NewFastCache(maxBytes int64) *FastCache {
	return &FastCache{cached: fastcache.New(int(maxBytes))}
}

// Get function returns the value of a given key in cache, and a boolean
// showing if the key is or is not present. The presence check is
// explicit so that an empty committed value stays distinguishable from
// a miss.
func (c *FastCache) Get(key []byte) ([]byte, bool) {
	if !c.cached.Has(key) {
		return nil, false
	}
	return c.cached.Get(nil, key), true
}

// Put function adds a key/value element to the cache.
func (c *FastCache) Put(key, value []byte) {
	c.cached.Set(key, value)
}

// Del function removes a key from the cache.
func (c *FastCache) Del(key []byte) {
	c.cached.Del(key)
}

// Size function returns the number of items currently in the cache.
func (c *FastCache) Size() int {
	var s fastcache.Stats
	c.cached.UpdateStats(&s)
	return int(s.EntriesCount)
}
