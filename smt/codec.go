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

package smt

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
)

// ErrCodec reports a serialization or deserialization failure. It
// signals corruption or a codec/version mismatch for one key and does
// not affect others; check it with errors.Cause.
var ErrCodec = errors.New("codec failure")

// ValueCodec (de)serializes the application's leaf payload type. The
// store is polymorphic over that type and constrains it only through
// this contract. Encodings must be deterministic.
type ValueCodec[V any] interface {
	Marshal(value V) ([]byte, error)
	Unmarshal(data []byte) (V, error)
}

// MsgpackCodec is the stock ValueCodec, encoding leaf payloads with
// msgpack.
type MsgpackCodec[V any] struct{}

func NewMsgpackCodec[V any]() MsgpackCodec[V] {
	return MsgpackCodec[V]{}
}

func (c MsgpackCodec[V]) Marshal(value V) ([]byte, error) {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return nil, errors.Wrapf(ErrCodec, "encoding leaf value: %v", err)
	}
	return data, nil
}

func (c MsgpackCodec[V]) Unmarshal(data []byte) (V, error) {
	var value V
	if err := msgpack.Unmarshal(data, &value); err != nil {
		return value, errors.Wrapf(ErrCodec, "decoding leaf value: %v", err)
	}
	return value, nil
}
