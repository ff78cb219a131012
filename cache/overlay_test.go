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
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverlayGet(t *testing.T) {

	testCases := []struct {
		key, value []byte
		deleted    bool
		staged     bool
	}{
		{[]byte{0x0}, []byte{0x1}, false, true},
		{[]byte{0x1}, []byte{0x2}, false, true},
		{[]byte{0x2}, nil, true, true},
		{[]byte{0x3}, nil, false, false},
		{[]byte{0x4}, []byte{}, false, true}, // a legitimately empty value is not a tombstone
	}

	overlay := NewOverlay()

	for i, c := range testCases {
		if c.staged {
			if c.deleted {
				overlay.Delete(c.key)
			} else {
				overlay.Put(c.key, c.value)
			}
		}

		value, tombstone, ok := overlay.Get(c.key)

		require.Equalf(t, c.staged, ok, "Unexpected overlay presence in test case %d", i)
		require.Equalf(t, c.deleted, tombstone, "Unexpected tombstone in test case %d", i)
		if c.staged && !c.deleted {
			require.Equalf(t, c.value, value, "The staged value should be returned in test case %d", i)
		}
	}
}

func TestOverlayLastWriterWins(t *testing.T) {

	overlay := NewOverlay()
	key := []byte("node")

	overlay.Put(key, []byte{0x1})
	overlay.Delete(key)

	_, tombstone, ok := overlay.Get(key)
	require.True(t, ok, "The key should stay present after a delete")
	require.True(t, tombstone, "A delete should overwrite a staged value")

	overlay.Put(key, []byte{0x2})

	value, tombstone, ok := overlay.Get(key)
	require.True(t, ok, "The key should stay present after a put")
	require.False(t, tombstone, "A put should overwrite a staged tombstone")
	require.Equal(t, []byte{0x2}, value)
}

func TestOverlayIdempotence(t *testing.T) {

	overlay := NewOverlay()
	key := []byte("node")

	overlay.Put(key, []byte{0x1})
	overlay.Put(key, []byte{0x1})
	require.Equal(t, 1, overlay.Len(), "Repeated puts should leave a single entry")

	overlay.Delete(key)
	overlay.Delete(key)
	require.Equal(t, 1, overlay.Len(), "Repeated deletes should leave a single entry")
}

func TestOverlayClear(t *testing.T) {

	overlay := NewOverlay()
	overlay.Put([]byte{0x0}, []byte{0x1})
	overlay.Delete([]byte{0x1})

	overlay.Clear()

	require.Equal(t, 0, overlay.Len(), "Clear should drop every staged mutation")
	_, _, ok := overlay.Get([]byte{0x0})
	require.False(t, ok)
}

func TestOverlayEntries(t *testing.T) {

	overlay := NewOverlay()
	overlay.Put([]byte{0x0}, []byte{0xa})
	overlay.Delete([]byte{0x1})

	entries := overlay.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, 2, overlay.Len(), "Entries should not clear the overlay")

	byKey := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byKey[string(e.Key)] = e
	}

	require.Equal(t, []byte{0xa}, byKey[string([]byte{0x0})].Value)
	require.False(t, byKey[string([]byte{0x0})].Tombstone)
	require.True(t, byKey[string([]byte{0x1})].Tombstone)
}

func TestOverlayConcurrentAccess(t *testing.T) {

	overlay := NewOverlay()
	var wg sync.WaitGroup

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed byte) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := []byte{seed, byte(i)}
				overlay.Put(key, []byte{seed})
				overlay.Get(key)
				overlay.Delete(key)
			}
		}(byte(w))
	}
	wg.Wait()

	require.Equal(t, 8*100, overlay.Len())
	for _, e := range overlay.Entries() {
		require.True(t, e.Tombstone, "Every key should end up tombstoned")
	}
}
