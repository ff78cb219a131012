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

// Cache is a lossy cache of committed nodes, consulted between an
// overlay miss and the backend. Implementations may evict at will:
// everything held here is reloadable from the backend.
type Cache interface {
	Get(key []byte) ([]byte, bool)
	Put(key, value []byte)
	Del(key []byte)
	Size() int
}
