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

package badger

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smtkv/smtkv/storage"
)

func TestBadgerGet(t *testing.T) {

	engine, closeF := openBadgerEngine()
	defer closeF()

	testCases := []struct {
		key, value    []byte
		expectedError error
	}{
		{[]byte("Key1"), []byte("Value1"), nil},
		{[]byte("Key2"), []byte("Value2"), nil},
		{[]byte("Key3"), nil, storage.ErrKeyNotFound},
	}

	for i, c := range testCases {
		if c.expectedError == nil {
			require.NoError(t, engine.Put(c.key, c.value))
		}

		value, err := engine.Get(c.key)
		require.Equalf(t, c.expectedError, err, "Unexpected error in test case %d", i)
		if c.expectedError == nil {
			require.Equalf(t, c.value, value, "The stored value does not match the original in test case %d", i)
		}
	}
}

func TestBadgerDelete(t *testing.T) {

	engine, closeF := openBadgerEngine()
	defer closeF()

	key := []byte("Key")
	require.NoError(t, engine.Put(key, []byte("Value")))
	require.NoError(t, engine.Delete(key))

	_, err := engine.Get(key)
	require.Equal(t, storage.ErrKeyNotFound, err)

	// deleting an absent key is not an error
	require.NoError(t, engine.Delete([]byte("Missing")))
}

func TestBadgerApply(t *testing.T) {

	engine, closeF := openBadgerEngine()
	defer closeF()

	require.NoError(t, engine.Put([]byte("Key1"), []byte("Old")))
	require.NoError(t, engine.Put([]byte("Key3"), []byte("Doomed")))

	err := engine.Apply([]*storage.Mutation{
		storage.NewMutation([]byte("Key1"), []byte("New")),
		storage.NewMutation([]byte("Key2"), []byte("Value2")),
		storage.NewDeletionMutation([]byte("Key3")),
	})
	require.NoError(t, err)

	value, err := engine.Get([]byte("Key1"))
	require.NoError(t, err)
	require.Equal(t, []byte("New"), value)

	_, err = engine.Get([]byte("Key3"))
	require.Equal(t, storage.ErrKeyNotFound, err)
}

func openBadgerEngine() (*BadgerEngine, func()) {
	path := "/var/tmp/badger_engine_test.db"
	engine, err := NewBadgerEngine(path)
	if err != nil {
		panic(fmt.Sprintf("Unable to open badger engine: %v", err))
	}
	return engine, func() {
		_ = engine.Close()
		deleteFile(path)
	}
}

func deleteFile(path string) {
	err := os.RemoveAll(path)
	if err != nil {
		fmt.Printf("Unable to remove db file %s", err)
	}
}
