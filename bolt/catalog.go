// Copyright 2021-2022 VidSQL, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bolt provides a sql.Catalog persisted in a Bolt database file, so
// dataset metadata survives server restarts.
package bolt

import (
	"github.com/boltdb/bolt"
	yaml "gopkg.in/yaml.v2"

	"github.com/vidsql/go-vidsql-server/sql"
)

var datasetsBucket = []byte("datasets")

// Catalog is a sql.Catalog backed by a Bolt bucket keyed by dataset name,
// with metadata stored as YAML documents. Reads run in Bolt read
// transactions and are safe for concurrent use.
type Catalog struct {
	db *bolt.DB
}

var _ sql.Catalog = (*Catalog)(nil)

// NewCatalog opens (or creates) the catalog database at path.
func NewCatalog(path string) (*Catalog, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(datasetsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Catalog{db: db}, nil
}

// PutDataset stores or replaces the metadata of a dataset.
func (c *Catalog) PutDataset(metadata *sql.DatasetMetadata) error {
	data, err := yaml.Marshal(metadata)
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(datasetsBucket).Put([]byte(metadata.Name), data)
	})
}

// GetDatasetMetadata implements the sql.Catalog interface.
func (c *Catalog) GetDatasetMetadata(name string) (*sql.DatasetMetadata, error) {
	var data []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(datasetsBucket).Get([]byte(name)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, sql.ErrCatalogLookup.New(name)
	}

	var metadata sql.DatasetMetadata
	if err := yaml.Unmarshal(data, &metadata); err != nil {
		return nil, sql.ErrCatalogLookup.Wrap(err, name)
	}
	return &metadata, nil
}

// Close releases the underlying database file.
func (c *Catalog) Close() error {
	return c.db.Close()
}
