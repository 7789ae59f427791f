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

package bolt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vidsql/go-vidsql-server/sql"
)

func TestCatalogRoundTrip(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "catalog.db")
	c, err := NewCatalog(path)
	require.NoError(err)
	defer func() { require.NoError(c.Close()) }()

	metadata := &sql.DatasetMetadata{
		ID:      "v1-id",
		Name:    "v1",
		IsVideo: true,
		FileURL: "videos/v1.mp4",
		Columns: []*sql.ColumnDefinition{
			{Name: "id", Type: sql.Integer},
			{Name: "data", Type: sql.NdArray},
		},
	}
	require.NoError(c.PutDataset(metadata))

	got, err := c.GetDatasetMetadata("v1")
	require.NoError(err)
	require.Equal(metadata, got)

	_, err = c.GetDatasetMetadata("missing")
	require.Error(err)
	require.True(sql.ErrCatalogLookup.Is(err))
}

func TestCatalogSurvivesReopen(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "catalog.db")

	c, err := NewCatalog(path)
	require.NoError(err)
	require.NoError(c.PutDataset(&sql.DatasetMetadata{ID: "t-id", Name: "t"}))
	require.NoError(c.Close())

	c, err = NewCatalog(path)
	require.NoError(err)
	defer func() { require.NoError(c.Close()) }()

	got, err := c.GetDatasetMetadata("t")
	require.NoError(err)
	require.Equal("t-id", got.ID)
}
