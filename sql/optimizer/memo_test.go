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

package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vidsql/go-vidsql-server/sql"
	"github.com/vidsql/go-vidsql-server/sql/plan"
)

func TestAddGroupExpressionArgumentsAreMutuallyExclusive(t *testing.T) {
	require := require.New(t)
	memo := NewMemo()

	expr, err := NewGroupExpression(plan.NewLogicalShow(sql.ShowTables), nil)
	require.NoError(err)
	inserted, err := memo.AddGroupExpression(expr, sql.UndefinedGroupID, true)
	require.NoError(err)
	require.Equal(sql.GroupID(0), inserted.GroupID())

	dup, err := NewGroupExpression(plan.NewLogicalShow(sql.ShowTables), nil)
	require.NoError(err)
	_, err = memo.AddGroupExpression(dup, inserted.GroupID(), true)
	require.Error(err)
	require.True(sql.ErrInvalidArgument.Is(err))
}

func TestMemoDeduplicatesIdenticalTrees(t *testing.T) {
	require := require.New(t)
	octx := NewContext(nil, nil, nil)

	build := func() sql.Operator {
		return plan.NewLogicalFilter(
			idLessThan("v", 10),
			newGet("v1", "v", videoMetadata("v1")),
		)
	}

	first, err := octx.AddOperator(build())
	require.NoError(err)
	groups, exprs := octx.Memo.NumGroups(), octx.Memo.NumExprs()

	second, err := octx.AddOperator(build())
	require.NoError(err)

	require.Equal(first.GroupID(), second.GroupID())
	require.Equal(groups, octx.Memo.NumGroups())
	require.Equal(exprs, octx.Memo.NumExprs())
}

func TestMemoAssignsDenseGroupIDs(t *testing.T) {
	require := require.New(t)
	octx := NewContext(nil, nil, nil)

	root := plan.NewLogicalFilter(
		idLessThan("v", 10),
		newGet("v1", "v", videoMetadata("v1")),
	)
	rootExpr, err := octx.AddOperator(root)
	require.NoError(err)

	// Leaves first: the get gets group 0, the filter group 1.
	require.Equal(sql.GroupID(1), rootExpr.GroupID())
	require.Equal(2, octx.Memo.NumGroups())
	require.Equal([]sql.GroupID{0}, rootExpr.Children())
}

func TestGroupAliases(t *testing.T) {
	require := require.New(t)
	octx := NewContext(nil, nil, nil)

	join := plan.NewLogicalJoin(
		sql.InnerJoin,
		nil,
		nil,
		newGet("v1", "a", videoMetadata("v1")),
		plan.NewLogicalQueryDerivedGet("s", nil, nil,
			newGet("v2", "b", videoMetadata("v2"))),
	)
	rootExpr, err := octx.AddOperator(join)
	require.NoError(err)

	group := octx.Memo.GetGroup(rootExpr.GroupID())
	require.Equal([]string{"a", "b", "s"}, group.Aliases())
}

func TestEraseGroup(t *testing.T) {
	require := require.New(t)
	octx := NewContext(nil, nil, nil)

	rootExpr, err := octx.AddOperator(plan.NewLogicalFilter(
		idLessThan("v", 10),
		newGet("v1", "v", videoMetadata("v1")),
	))
	require.NoError(err)
	require.Equal(2, octx.Memo.NumExprs())

	octx.Memo.EraseGroup(rootExpr.GroupID())

	group := octx.Memo.GetGroup(rootExpr.GroupID())
	require.NotNil(group)
	require.Empty(group.LogicalExprs())
	require.Empty(group.PhysicalExprs())
	require.Equal(1, octx.Memo.NumExprs())
	// The id stays allocated.
	require.Equal(2, octx.Memo.NumGroups())
}

func TestEnumerateLogicalPlans(t *testing.T) {
	require := require.New(t)
	octx := NewContext(nil, nil, nil)

	a := newGet("v1", "a", videoMetadata("v1"))
	b := newGet("v2", "b", videoMetadata("v2"))
	join := plan.NewLogicalJoin(sql.InnerJoin, nil, nil, a, b)

	rootExpr, err := octx.AddOperator(join)
	require.NoError(err)

	// Register the commuted ordering in the same group.
	swapped := plan.NewLogicalJoin(sql.InnerJoin, nil, nil, b, a)
	added, err := octx.xformIntoGroup(swapped, rootExpr.GroupID())
	require.NoError(err)
	require.True(added)

	plans, err := octx.Memo.EnumerateLogicalPlans(rootExpr.GroupID())
	require.NoError(err)
	require.Len(plans, 2)

	first := plans[0].(*plan.LogicalJoin)
	second := plans[1].(*plan.LogicalJoin)
	require.Equal("a", first.Lhs().(*plan.LogicalGet).Alias())
	require.Equal("b", second.Lhs().(*plan.LogicalGet).Alias())
}

func TestXformDeduplicatesByFingerprint(t *testing.T) {
	require := require.New(t)
	octx := NewContext(nil, nil, nil)

	a := newGet("v1", "a", videoMetadata("v1"))
	b := newGet("v2", "b", videoMetadata("v2"))
	rootExpr, err := octx.AddOperator(plan.NewLogicalJoin(sql.InnerJoin, nil, nil, a, b))
	require.NoError(err)

	swapped := plan.NewLogicalJoin(sql.InnerJoin, nil, nil, b, a)
	added, err := octx.xformIntoGroup(swapped, rootExpr.GroupID())
	require.NoError(err)
	require.True(added)

	// Swapping twice reproduces the original expression; the fingerprint
	// index drops it.
	again, err := octx.xformIntoGroup(plan.NewLogicalJoin(sql.InnerJoin, nil, nil, a, b), rootExpr.GroupID())
	require.NoError(err)
	require.False(again)

	group := octx.Memo.GetGroup(rootExpr.GroupID())
	require.Len(group.LogicalExprs(), 2)
}

func TestFingerprintIndexIsUnique(t *testing.T) {
	require := require.New(t)
	octx := NewContext(nil, nil, nil)

	_, err := octx.AddOperator(plan.NewLogicalFilter(
		idLessThan("v", 10),
		newGet("v1", "v", videoMetadata("v1")),
	))
	require.NoError(err)

	seen := map[uint64]sql.GroupID{}
	for gid := 0; gid < octx.Memo.NumGroups(); gid++ {
		group := octx.Memo.GetGroup(sql.GroupID(gid))
		for _, expr := range group.LogicalExprs() {
			owner, dup := seen[expr.Fingerprint()]
			require.False(dup, "fingerprint already owned by group %d", owner)
			seen[expr.Fingerprint()] = group.ID()
		}
	}
}
