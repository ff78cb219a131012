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

// Package smt implements a caching, persistence-backed store for the
// nodes of a sparse Merkle tree. The tree algorithm reads and writes
// branches and leaves through the StoreReader and StoreWriter
// contracts; every mutation is staged in an in-memory overlay until
// Commit reconciles it into the backing engine.
package smt

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"

	"github.com/smtkv/smtkv/hashing"
	"github.com/smtkv/smtkv/util"
)

// BranchKeySize is the serialized size of a branch key: the node path
// plus 2 bytes for the height. Leaf keys are raw digests and therefore
// shorter, which keeps the two keyspaces disjoint.
const BranchKeySize = hashing.DigestSize + 2

// BranchKey addresses an internal tree node by its position: the
// height above the leaves and the path prefix leading to it.
type BranchKey struct {
	NodePath hashing.Digest
	Height   uint16

	serialized [BranchKeySize]byte
}

func NewBranchKey(path hashing.Digest, height uint16) BranchKey {
	var b [BranchKeySize]byte
	copy(b[:], path[:len(path)])
	copy(b[len(path):], util.Uint16AsBytes(height))
	return BranchKey{
		NodePath:   path,
		Height:     height,
		serialized: b, // memoized
	}
}

// Bytes returns the canonical byte key for this position. The layout
// is the path prefix followed by the height as a little-endian uint16.
func (k BranchKey) Bytes() []byte {
	return k.serialized[:]
}

func (k BranchKey) String() string {
	return fmt.Sprintf("Branch(%#x, %d)", k.NodePath, k.Height)
}

// BranchNode is the payload stored at a branch key: the digests of the
// node's two children. This layer never interprets them.
type BranchNode struct {
	Left  hashing.Digest
	Right hashing.Digest
}

// Marshal encodes the branch node with msgpack. Field order is fixed
// by the struct, so the encoding is deterministic.
func (n *BranchNode) Marshal() ([]byte, error) {
	value, err := msgpack.Marshal(n)
	if err != nil {
		return nil, errors.Wrapf(ErrCodec, "encoding branch node: %v", err)
	}
	return value, nil
}

// UnmarshalBranchNode decodes a stored branch payload. A failure means
// corrupted bytes or a codec mismatch, never a retryable condition.
func UnmarshalBranchNode(data []byte) (*BranchNode, error) {
	var node BranchNode
	if err := msgpack.Unmarshal(data, &node); err != nil {
		return nil, errors.Wrapf(ErrCodec, "decoding branch node: %v", err)
	}
	return &node, nil
}
