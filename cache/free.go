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
	"github.com/coocood/freecache"
)

// FreeCache is a Cache of fixed memory budget backed by coocood's
// freecache.
type FreeCache struct {
	cached *freecache.Cache
}

// NewFreeCache returns a cache holding at most size bytes of committed
// nodes.
func NewFreeCache(size int) *FreeCache {
	return &FreeCache{cached: freecache.NewCache(size)}
}

// Get function returns the value of a given key in cache, and a boolean
// showing if the key is or is not present.
func (c *FreeCache) Get(key []byte) ([]byte, bool) {
	value, err := c.cached.Get(key)
	if err != nil {
		return nil, false
	}
	return value, true
}

// Put function adds a key/value element to the cache.
func (c *FreeCache) Put(key, value []byte) {
	_ = c.cached.Set(key, value, 0)
}

// Del function removes a key from the cache.
func (c *FreeCache) Del(key []byte) {
	_ = c.cached.Del(key)
}

// Size function returns the number of items currently in the cache.
func (c *FreeCache) Size() int {
	return int(c.cached.EntryCount())
}
