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
	"time"

	b "github.com/dgraph-io/badger"
	bo "github.com/dgraph-io/badger/options"

	"github.com/smtkv/smtkv/log"
	"github.com/smtkv/smtkv/storage"
)

var (
	_ storage.Engine  = (*BadgerEngine)(nil)
	_ storage.Batcher = (*BadgerEngine)(nil)
)

// BadgerEngine exposes a Badger database through the storage.Engine
// contract.
type BadgerEngine struct {
	db                  *b.DB
	vlogTicker          *time.Ticker // runs every 1m, check size of vlog and run GC conditionally.
	mandatoryVlogTicker *time.Ticker // runs every 10m, we always run vlog GC.
}

// Options contains all the configuration used to open the Badger db
type Options struct {
	// Path is the directory path to the Badger db to use.
	Path string

	// BadgerOptions contains any specific Badger options you might
	// want to specify.
	BadgerOptions *b.Options

	// NoSync causes the database to skip fsync calls after each
	// write to the log. This is unsafe, so it should be used
	// with caution.
	NoSync bool

	// ValueLogGC enables a periodic goroutine that does a garbage
	// collection of the value log while the underlying Badger is online.
	ValueLogGC bool

	// GCInterval is the interval between conditionally running the garbage
	// collection process, based on the size of the vlog. By default, runs every 1m.
	GCInterval time.Duration

	// MandatoryGCInterval is the interval between mandatory running the
	// garbage collection process. By default, runs every 10m.
	MandatoryGCInterval time.Duration

	// GCThreshold sets threshold in bytes for the vlog size to be included in the
	// garbage collection cycle. By default, 1GB.
	GCThreshold int64
}

func NewBadgerEngine(path string) (*BadgerEngine, error) {
	return NewBadgerEngineOpts(&Options{Path: path})
}

func NewBadgerEngineOpts(opts *Options) (*BadgerEngine, error) {

	var bOpts b.Options
	if bOpts = b.DefaultOptions; opts.BadgerOptions != nil {
		bOpts = *opts.BadgerOptions
	}

	bOpts.TableLoadingMode = bo.MemoryMap
	bOpts.ValueLogLoadingMode = bo.FileIO
	bOpts.Dir = opts.Path
	bOpts.ValueDir = opts.Path
	bOpts.SyncWrites = !opts.NoSync
	bOpts.ValueThreshold = 1 << 11 // LSM mode

	db, err := b.Open(bOpts)
	if err != nil {
		return nil, err
	}

	engine := &BadgerEngine{db: db}
	// Start GC routine
	if opts.ValueLogGC {

		var gcInterval time.Duration
		var mandatoryGCInterval time.Duration
		var threshold int64

		if gcInterval = 1 * time.Minute; opts.GCInterval != 0 {
			gcInterval = opts.GCInterval
		}
		if mandatoryGCInterval = 10 * time.Minute; opts.MandatoryGCInterval != 0 {
			mandatoryGCInterval = opts.MandatoryGCInterval
		}
		if threshold = int64(1 << 30); opts.GCThreshold != 0 {
			threshold = opts.GCThreshold
		}

		engine.vlogTicker = time.NewTicker(gcInterval)
		engine.mandatoryVlogTicker = time.NewTicker(mandatoryGCInterval)
		go engine.runVlogGC(db, threshold)
	}

	return engine, nil
}

func (e *BadgerEngine) Get(key []byte) ([]byte, error) {
	var value []byte
	err := e.db.View(func(txn *b.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	switch err {
	case nil:
		return value, nil
	case b.ErrKeyNotFound:
		return nil, storage.ErrKeyNotFound
	default:
		return nil, err
	}
}

func (e *BadgerEngine) Put(key, value []byte) error {
	return e.db.Update(func(txn *b.Txn) error {
		return txn.Set(key, value)
	})
}

func (e *BadgerEngine) Delete(key []byte) error {
	return e.db.Update(func(txn *b.Txn) error {
		return txn.Delete(key)
	})
}

// Apply writes a whole set of mutations inside a single Badger
// transaction, making the batch atomic.
func (e *BadgerEngine) Apply(mutations []*storage.Mutation) error {
	return e.db.Update(func(txn *b.Txn) error {
		for _, m := range mutations {
			var err error
			if m.Deletion {
				err = txn.Delete(m.Key)
			} else {
				err = txn.Set(m.Key, m.Value)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (e *BadgerEngine) Close() error {
	if e.vlogTicker != nil {
		e.vlogTicker.Stop()
	}
	if e.mandatoryVlogTicker != nil {
		e.mandatoryVlogTicker.Stop()
	}
	return e.db.Close()
}

func (e *BadgerEngine) runVlogGC(db *b.DB, threshold int64) {
	// Get initial size on start.
	_, lastVlogSize := db.Size()

	runGC := func() {
		var err error
		for err == nil {
			// If a GC is successful, immediately run it again.
			log.Debug("VlogGC task: running...")
			err = db.RunValueLogGC(0.7)
		}
		log.Debug("VlogGC task: done.")
		_, lastVlogSize = db.Size()
	}

	for {
		select {
		case <-e.vlogTicker.C:
			_, currentVlogSize := db.Size()
			if currentVlogSize < lastVlogSize+threshold {
				continue
			}
			runGC()
		case <-e.mandatoryVlogTicker.C:
			runGC()
		}
	}
}
