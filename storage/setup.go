// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/fault"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	ChainState         *PoolHandle `prefix:"S"`
	Balances           *PoolHandle `prefix:"B"`
	Nonces             *PoolHandle `prefix:"N"`
	Events             *PoolHandle `prefix:"E"`
	ContractConfig     *PoolHandle `prefix:"C"`
	UniquesCollections *PoolHandle `prefix:"c"`
	UniquesItems       *PoolHandle `prefix:"i"`
	UniquesApprovals   *PoolHandle `prefix:"a"`
	UniquesRecords     *PoolHandle `prefix:"r"`
	UniquesOwnerIndex  *PoolHandle `prefix:"o"`
	TokenOwners        *PoolHandle `prefix:"T"`
	OwnerCounts        *PoolHandle `prefix:"K"`
	OwnerList          *PoolHandle `prefix:"L"`
	OwnerIndex         *PoolHandle `prefix:"D"`
	TokenList          *PoolHandle `prefix:"G"`
	TokenIndex         *PoolHandle `prefix:"P"`
	Approvals          *PoolHandle `prefix:"A"`
	RegionRecords      *PoolHandle `prefix:"R"`
	MetadataVersions   *PoolHandle `prefix:"V"`
	Listings           *PoolHandle `prefix:"M"`
	TestData           *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - one open database and its pools
type Store struct {
	sync.RWMutex
	db   *leveldb.DB
	trx  *transaction
	Pool Pools
}

// Open - open up a database file
func Open(database string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}
	return newStore(db, readOnly)
}

// OpenMemory - an empty in-memory database, for tests and dry runs
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return newStore(db, ReadWrite)
}

func newStore(db *leveldb.DB, readOnly bool) (*Store, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version {
		if readOnly {
			return nil, fmt.Errorf("database is uninitialised and opened read only")
		}
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	store := &Store{
		db: db,
	}
	store.trx = newTransaction(store)

	err = store.setupPools()
	if nil != err {
		return nil, err
	}

	ok = true // prevent db close
	return store, nil
}

// scan the pool struct and create a handle for each field
func (store *Store) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(store.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&store.Pool).Elem()

	seen := make(map[byte]string)

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}

		prefix := prefixTag[0]
		if name, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %s duplicates prefix: %q of pool: %s", fieldInfo.Name, prefixTag, name)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			name:   fieldInfo.Name,
			prefix: prefix,
			limit:  limit,
			store:  store,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (store *Store) Close() {
	store.Lock()
	defer store.Unlock()

	if nil != store.db {
		store.db.Close()
		store.db = nil
	}
}

// Begin - start the single read-write transaction of this store
func (store *Store) Begin() (Transaction, error) {
	err := store.trx.Begin()
	if nil != err {
		return nil, err
	}
	return store.trx, nil
}

// return the version number, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// get the database handle or fail if closed
func (store *Store) database() (*leveldb.DB, error) {
	if nil == store.db {
		return nil, fault.NotInitialised
	}
	return store.db, nil
}
