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

package hashing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasherLengths(t *testing.T) {

	testCases := []struct {
		hasher Hasher
		size   int
	}{
		{NewSha256Hasher(), DigestSize},
		{NewBlake2bHasher(), DigestSize},
		{NewXorHasher(), 1},
	}

	for i, c := range testCases {
		digest := c.hasher.Do([]byte("a test event"))
		require.Equalf(t, c.size, len(digest), "Digest length mismatch in test case %d", i)
	}
}

func TestHasherDeterminism(t *testing.T) {

	testCases := []Hasher{
		NewSha256Hasher(),
		NewBlake2bHasher(),
		NewXorHasher(),
	}

	for i, hasher := range testCases {
		d1 := hasher.Do([]byte("same"), []byte("input"))
		d2 := hasher.Do([]byte("same"), []byte("input"))
		require.Equalf(t, d1, d2, "Hashing should be deterministic in test case %d", i)
	}
}

func TestSaltedChangesDigest(t *testing.T) {

	hasher := NewSha256Hasher()
	plain := hasher.Do([]byte("event"))
	salted := hasher.Salted([]byte("salt"), []byte("event"))

	require.NotEqual(t, plain, salted, "A salted digest should differ from the plain one")
}
