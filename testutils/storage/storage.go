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

// Package storage provides engine constructors for tests, each paired
// with a close function that releases every resource the engine took.
package storage

import (
	"fmt"
	"os"

	"github.com/smtkv/smtkv/storage/badger"
	"github.com/smtkv/smtkv/storage/bolt"
	"github.com/smtkv/smtkv/storage/bplus"
)

func OpenBPlusEngine() (*bplus.BPlusEngine, func()) {
	engine := bplus.NewBPlusEngine()
	return engine, func() {
		_ = engine.Close()
	}
}

func OpenBadgerEngine(path string) (*badger.BadgerEngine, func()) {
	engine, err := badger.NewBadgerEngine(path)
	if err != nil {
		panic(fmt.Sprintf("Unable to open badger engine: %v", err))
	}
	return engine, func() {
		_ = engine.Close()
		deleteFile(path)
	}
}

func OpenBoltEngine(path string) (*bolt.BoltEngine, func()) {
	engine, err := bolt.NewBoltEngine(path)
	if err != nil {
		panic(fmt.Sprintf("Unable to open bolt engine: %v", err))
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
