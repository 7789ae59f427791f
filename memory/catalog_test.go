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

package memory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vidsql/go-vidsql-server/sql"
)

func TestCatalog(t *testing.T) {
	require := require.New(t)
	c := NewCatalog()

	added := c.AddDataset("v1", true, "videos/v1.mp4", []*sql.ColumnDefinition{
		{Name: "id", Type: sql.Integer},
		{Name: "data", Type: sql.NdArray},
	})
	require.NotEmpty(added.ID)

	got, err := c.GetDatasetMetadata("v1")
	require.NoError(err)
	require.Equal(added, got)
	require.True(got.IsVideo)

	_, err = c.GetDatasetMetadata("missing")
	require.Error(err)
	require.True(sql.ErrCatalogLookup.Is(err))
}

func TestCatalogMintsDistinctIDs(t *testing.T) {
	require := require.New(t)
	c := NewCatalog()

	a := c.AddDataset("a", false, "", nil)
	b := c.AddDataset("b", false, "", nil)
	require.NotEqual(a.ID, b.ID)
}
