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

package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vidsql/go-vidsql-server/sql"
	"github.com/vidsql/go-vidsql-server/sql/expression"
)

func videoMetadata(name string) *sql.DatasetMetadata {
	return &sql.DatasetMetadata{
		ID:      name + "-id",
		Name:    name,
		IsVideo: true,
		Columns: []*sql.ColumnDefinition{
			{Name: "id", Type: sql.Integer},
			{Name: "data", Type: sql.NdArray},
		},
	}
}

func TestOperatorTypeSets(t *testing.T) {
	require := require.New(t)

	require.True(sql.LogicalGetOp.IsLogical())
	require.True(sql.DummyOp.IsLogical())
	require.False(sql.LogicalGetOp.IsPhysical())
	require.True(sql.SeqScanOp.IsPhysical())
	require.True(sql.StorageOp.IsPhysical())
	require.False(sql.SeqScanOp.IsLogical())
}

func TestFingerprintIgnoresChildren(t *testing.T) {
	require := require.New(t)

	pred := expression.NewLessThan(
		expression.NewTupleValue("v", "id"),
		expression.NewConstant(int64(10), sql.Integer),
	)
	meta := videoMetadata("v1")
	get := NewLogicalGet(sql.TableRef{Name: "v1"}, meta, "v1", nil, nil)

	withChild := NewLogicalFilter(pred, get)
	withoutChild := NewLogicalFilter(pred)

	h1, err := sql.Fingerprint(withChild)
	require.NoError(err)
	h2, err := sql.Fingerprint(withoutChild)
	require.NoError(err)
	require.Equal(h1, h2)

	t1, err := sql.TreeFingerprint(withChild)
	require.NoError(err)
	t2, err := sql.TreeFingerprint(withoutChild)
	require.NoError(err)
	require.NotEqual(t1, t2)
}

func TestFingerprintDistinguishesAttributes(t *testing.T) {
	require := require.New(t)

	meta := videoMetadata("v1")
	ref := sql.TableRef{Name: "v1"}
	pred := expression.NewLessThan(
		expression.NewTupleValue("v1", "id"),
		expression.NewConstant(int64(10), sql.Integer),
	)

	plain := NewLogicalGet(ref, meta, "v1", nil, nil)
	withPred := NewLogicalGet(ref, meta, "v1", pred, nil)

	h1, err := sql.Fingerprint(plain)
	require.NoError(err)
	h2, err := sql.Fingerprint(withPred)
	require.NoError(err)
	require.NotEqual(h1, h2)

	// Same attributes hash alike across separately built nodes.
	again := NewLogicalGet(ref, meta, "v1", nil, nil)
	h3, err := sql.Fingerprint(again)
	require.NoError(err)
	require.Equal(h1, h3)
}

func TestWithChildrenArity(t *testing.T) {
	require := require.New(t)

	pred := expression.NewLessThan(
		expression.NewTupleValue("v", "id"),
		expression.NewConstant(int64(10), sql.Integer),
	)
	get := NewLogicalGet(sql.TableRef{Name: "v1"}, videoMetadata("v1"), "v1", nil, nil)
	filter := NewLogicalFilter(pred, get)

	// Detached copy.
	detached, err := filter.WithChildren()
	require.NoError(err)
	require.Len(detached.Children(), 0)
	require.Len(filter.Children(), 1)

	// Rebinding one child.
	rebound, err := detached.WithChildren(get)
	require.NoError(err)
	require.Len(rebound.Children(), 1)

	// Too many children.
	_, err = filter.WithChildren(get, get)
	require.Error(err)
	require.True(sql.ErrInvalidChildrenNumber.Is(err))

	// Joins take exactly two.
	join := NewLogicalJoin(sql.InnerJoin, nil, nil)
	_, err = join.WithChildren(get)
	require.Error(err)
	require.True(sql.ErrInvalidChildrenNumber.Is(err))
	_, err = join.WithChildren(get, get)
	require.NoError(err)
}

func TestWithChildrenDoesNotMutate(t *testing.T) {
	require := require.New(t)

	pred := expression.NewLessThan(
		expression.NewTupleValue("v", "id"),
		expression.NewConstant(int64(10), sql.Integer),
	)
	filter := NewLogicalFilter(pred)
	get := NewLogicalGet(sql.TableRef{Name: "v1"}, videoMetadata("v1"), "v1", nil, nil)

	bound, err := filter.WithChildren(get)
	require.NoError(err)
	require.Len(filter.Children(), 0)
	require.Len(bound.Children(), 1)
	require.Equal(pred, bound.(*LogicalFilter).Predicate())
}

func TestNewLogicalGetFromRef(t *testing.T) {
	require := require.New(t)

	catalog := fixedCatalog{"v1": videoMetadata("v1")}

	get, err := NewLogicalGetFromRef(catalog, sql.TableRef{Name: "v1", Alias: "v"})
	require.NoError(err)
	require.Equal("v", get.Alias())
	require.True(get.Metadata().IsVideo)

	_, err = NewLogicalGetFromRef(catalog, sql.TableRef{Name: "missing"})
	require.Error(err)
	require.True(sql.ErrCatalogLookup.Is(err))
}

// fixedCatalog is a map-backed sql.Catalog for tests.
type fixedCatalog map[string]*sql.DatasetMetadata

func (c fixedCatalog) GetDatasetMetadata(name string) (*sql.DatasetMetadata, error) {
	if m, ok := c[name]; ok {
		return m, nil
	}
	return nil, sql.ErrCatalogLookup.New(name)
}
