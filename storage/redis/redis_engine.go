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

// Package redis implements an engine backed by a Redis server. Its
// durability is whatever the server's persistence configuration gives;
// it does not implement storage.Batcher, so commits against it fall
// back to per-key operations.
package redis

import (
	r "github.com/go-redis/redis"

	"github.com/smtkv/smtkv/storage"
)

var _ storage.Engine = (*RedisEngine)(nil)

type RedisEngine struct {
	client *r.Client
}

// Options contains all the configuration used to reach the Redis server.
type Options struct {
	// Addr is the host:port address of the server.
	Addr string

	// Password, empty when the server requires none.
	Password string

	// DB is the database number to select after connecting.
	DB int
}

func NewRedisEngine(addr string) (*RedisEngine, error) {
	return NewRedisEngineOpts(&Options{Addr: addr})
}

func NewRedisEngineOpts(opts *Options) (*RedisEngine, error) {

	client := r.NewClient(&r.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping().Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisEngine{client: client}, nil
}

func (e *RedisEngine) Get(key []byte) ([]byte, error) {
	value, err := e.client.Get(string(key)).Bytes()
	switch err {
	case nil:
		return value, nil
	case r.Nil:
		return nil, storage.ErrKeyNotFound
	default:
		return nil, err
	}
}

func (e *RedisEngine) Put(key, value []byte) error {
	return e.client.Set(string(key), value, 0).Err()
}

func (e *RedisEngine) Delete(key []byte) error {
	return e.client.Del(string(key)).Err()
}

func (e *RedisEngine) Close() error {
	return e.client.Close()
}
