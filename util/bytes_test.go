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

package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint16RoundTrip(t *testing.T) {

	testCases := []uint16{0, 1, 255, 256, 1024, 65535}

	for i, c := range testCases {
		require.Equalf(t, c, BytesAsUint16(Uint16AsBytes(c)), "Round trip mismatch in test case %d", i)
	}
}

func TestUint64RoundTrip(t *testing.T) {

	testCases := []uint64{0, 1, 255, 1 << 16, 1 << 32, 1<<64 - 1}

	for i, c := range testCases {
		require.Equalf(t, c, BytesAsUint64(Uint64AsBytes(c)), "Round trip mismatch in test case %d", i)
	}
}
