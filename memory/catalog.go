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

// Package memory provides in-memory implementations of the engine's
// collaborator interfaces, mainly for use in tests.
package memory

import (
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/vidsql/go-vidsql-server/sql"
)

// Catalog is an in-memory sql.Catalog. It is safe for concurrent reads and
// writes.
type Catalog struct {
	mu       sync.RWMutex
	datasets map[string]*sql.DatasetMetadata
}

var _ sql.Catalog = (*Catalog)(nil)

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{datasets: make(map[string]*sql.DatasetMetadata)}
}

// AddDataset registers a dataset and returns its metadata, with a freshly
// minted id.
func (c *Catalog) AddDataset(
	name string,
	isVideo bool,
	fileURL string,
	columns []*sql.ColumnDefinition,
) *sql.DatasetMetadata {
	c.mu.Lock()
	defer c.mu.Unlock()

	metadata := &sql.DatasetMetadata{
		ID:      uuid.NewV4().String(),
		Name:    name,
		IsVideo: isVideo,
		FileURL: fileURL,
		Columns: columns,
	}
	c.datasets[name] = metadata
	return metadata
}

// GetDatasetMetadata implements the sql.Catalog interface.
func (c *Catalog) GetDatasetMetadata(name string) (*sql.DatasetMetadata, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	metadata, ok := c.datasets[name]
	if !ok {
		return nil, sql.ErrCatalogLookup.New(name)
	}
	return metadata, nil
}
