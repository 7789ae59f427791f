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

	"github.com/vidsql/go-vidsql-server/memory"
	"github.com/vidsql/go-vidsql-server/sql"
	"github.com/vidsql/go-vidsql-server/sql/config"
	"github.com/vidsql/go-vidsql-server/sql/expression"
	"github.com/vidsql/go-vidsql-server/sql/plan"
)

func newTestOptimizer() *Optimizer {
	catalog := memory.NewCatalog()
	return NewOptimizer(NewRulesManager(), catalog, config.NewManager())
}

// Scenario: Filter(id < 10, Sample(5, Get(V))). The filter crosses the
// sampler and is absorbed by the video scan; the physical plan reads
// UniformSample -> SeqScan -> Storage with the predicate on the storage
// read.
func TestOptimizePushdownThroughSample(t *testing.T) {
	require := require.New(t)
	o := newTestOptimizer()

	pred := idLessThan("v", 10)
	root := plan.NewLogicalFilter(pred,
		plan.NewLogicalSample(sampleFreq(5),
			newGet("v1", "v", videoMetadata("v1"))))

	result, err := o.Optimize(sql.NewEmptyContext(), root)
	require.NoError(err)

	sample, ok := result.(*plan.UniformSamplePlan)
	require.True(ok)
	require.Equal(sampleFreq(5), sample.SampleFreq())

	scan, ok := sample.Children()[0].(*plan.SeqScanPlan)
	require.True(ok)
	require.Nil(scan.Predicate())
	require.Equal("v", scan.Alias())

	storage, ok := scan.Children()[0].(*plan.StoragePlan)
	require.True(ok)
	require.Equal(DefaultBatchMemSize, storage.BatchMemSize())
	require.True(sql.ExpressionsEqual(pred, storage.Predicate()))
}

// Scenario: Project([id, data], Get(V)) collapses into the scan.
func TestOptimizeProjectIntoGet(t *testing.T) {
	require := require.New(t)
	o := newTestOptimizer()

	target := []sql.Expression{
		expression.NewTupleValue("v", "id"),
		expression.NewTupleValue("v", "data"),
	}
	root := plan.NewLogicalProject(target, newGet("v1", "v", videoMetadata("v1")))

	result, err := o.Optimize(sql.NewEmptyContext(), root)
	require.NoError(err)

	scan, ok := result.(*plan.SeqScanPlan)
	require.True(ok)
	require.Equal(target, scan.TargetList())
	require.Nil(scan.Predicate())

	storage, ok := scan.Children()[0].(*plan.StoragePlan)
	require.True(ok)
	require.Nil(storage.Predicate())
	require.Equal(DefaultBatchMemSize, storage.BatchMemSize())
}

// Scenario: an inner join with one equi conjunct becomes a hash join with
// the keys split between build and probe side.
func TestOptimizeInnerJoinToHashJoin(t *testing.T) {
	require := require.New(t)
	o := newTestOptimizer()

	pred := expression.NewAnd(
		expression.NewEquals(
			expression.NewTupleValue("a", "x"),
			expression.NewTupleValue("b", "y"),
		),
		expression.NewGreaterThan(
			expression.NewTupleValue("a", "z"),
			expression.NewConstant(int64(5), sql.Integer),
		),
	)
	root := plan.NewLogicalJoin(sql.InnerJoin, pred, nil,
		newGet("v1", "a", videoMetadata("v1")),
		newGet("v2", "b", videoMetadata("v2")))

	result, err := o.Optimize(sql.NewEmptyContext(), root)
	require.NoError(err)

	probe, ok := result.(*plan.HashJoinProbePlan)
	require.True(ok)
	require.Len(probe.ProbeKeys(), 1)
	require.True(sql.ExpressionsEqual(pred, probe.Predicate()))

	build, ok := probe.Children()[0].(*plan.HashJoinBuildPlan)
	require.True(ok)
	require.Len(build.BuildKeys(), 1)

	buildScan, ok := build.Children()[0].(*plan.SeqScanPlan)
	require.True(ok)
	probeScan, ok := probe.Children()[1].(*plan.SeqScanPlan)
	require.True(ok)

	// Keys and children stay oriented: the build side hashes the left
	// relation's key.
	require.Equal("a.x", build.BuildKeys()[0].QualifiedName())
	require.Equal("b.y", probe.ProbeKeys()[0].QualifiedName())
	aliases := []string{buildScan.Alias(), probeScan.Alias()}
	require.Contains([][]string{{"a", "b"}, {"b", "a"}}, aliases)
}

// Commutativity registers both join orderings in the root group.
func TestExploreRegistersCommutedJoin(t *testing.T) {
	require := require.New(t)
	o := newTestOptimizer()
	octx := NewContext(o.catalog, o.config, o.rules)

	root := plan.NewLogicalJoin(sql.InnerJoin,
		expression.NewEquals(
			expression.NewTupleValue("a", "x"),
			expression.NewTupleValue("b", "y"),
		),
		nil,
		newGet("v1", "a", videoMetadata("v1")),
		newGet("v2", "b", videoMetadata("v2")))

	rootExpr, err := octx.AddOperator(root)
	require.NoError(err)

	exploreRules := sortRulesByPromise(append(
		append([]Rule(nil), o.rules.RewriteRules()...),
		o.rules.TransformationRules()...,
	))
	require.NoError(o.applyRules(octx, exploreRules))

	group := octx.Memo.GetGroup(rootExpr.GroupID())
	require.Len(group.LogicalExprs(), 2)

	// A second exploration pass is a no-op: the memo is at a fixpoint.
	exprs := octx.Memo.NumExprs()
	require.NoError(o.applyRules(octx, exploreRules))
	require.Equal(exprs, octx.Memo.NumExprs())
}

// Scenario: Join(Lateral, A, FunctionScan(f)) implements as a lateral join
// plan over the function scan.
func TestOptimizeLateralJoin(t *testing.T) {
	require := require.New(t)
	o := newTestOptimizer()

	fn := expression.NewFunction("ObjDetector", sql.NdArray,
		expression.NewTupleValue("a", "data")).WithAlias("od")
	root := plan.NewLogicalJoin(sql.LateralJoin, nil, nil,
		newGet("v1", "a", videoMetadata("v1")),
		plan.NewLogicalFunctionScan(fn))

	result, err := o.Optimize(sql.NewEmptyContext(), root)
	require.NoError(err)

	lateral, ok := result.(*plan.LateralJoinPlan)
	require.True(ok)

	_, ok = lateral.Children()[0].(*plan.SeqScanPlan)
	require.True(ok)
	scan, ok := lateral.Children()[1].(*plan.FunctionScanPlan)
	require.True(ok)
	require.Equal(fn, scan.FuncExpr())
}

// Scenario: a filter over a non-video dataset is not pushed down; it stays
// as a predicate plan over the scan.
func TestOptimizeNonVideoFilterIsNotPushed(t *testing.T) {
	require := require.New(t)
	o := newTestOptimizer()

	pred := idLessThan("t", 10)
	root := plan.NewLogicalFilter(pred, newGet("t1", "t", tableMetadata("t1")))

	result, err := o.Optimize(sql.NewEmptyContext(), root)
	require.NoError(err)

	predicate, ok := result.(*plan.PredicatePlan)
	require.True(ok)
	require.True(sql.ExpressionsEqual(pred, predicate.Predicate()))

	scan, ok := predicate.Children()[0].(*plan.SeqScanPlan)
	require.True(ok)
	require.Equal("t", scan.Alias())

	storage, ok := scan.Children()[0].(*plan.StoragePlan)
	require.True(ok)
	require.Nil(storage.Predicate())
}

// Scenario: Project([x], Filter(x > 0, DerivedGet(S, subplan))) is absorbed
// into the derived get over two rewrites, then implements as a scan with
// predicate and target list over the physical subplan.
func TestOptimizeDerivedGetAbsorption(t *testing.T) {
	require := require.New(t)
	o := newTestOptimizer()

	pred := expression.NewGreaterThan(
		expression.NewTupleValue("s", "x"),
		expression.NewConstant(int64(0), sql.Integer),
	)
	target := []sql.Expression{expression.NewTupleValue("s", "x")}
	subPlan := newGet("v1", "v", videoMetadata("v1"))

	root := plan.NewLogicalProject(target,
		plan.NewLogicalFilter(pred,
			plan.NewLogicalQueryDerivedGet("s", nil, nil, subPlan)))

	result, err := o.Optimize(sql.NewEmptyContext(), root)
	require.NoError(err)

	scan, ok := result.(*plan.SeqScanPlan)
	require.True(ok)
	require.Equal("s", scan.Alias())
	require.True(sql.ExpressionsEqual(pred, scan.Predicate()))
	require.Equal(target, scan.TargetList())

	subScan, ok := scan.Children()[0].(*plan.SeqScanPlan)
	require.True(ok)
	require.Equal("v", subScan.Alias())
	_, ok = subScan.Children()[0].(*plan.StoragePlan)
	require.True(ok)
}

func TestOptimizeStatementPlans(t *testing.T) {
	require := require.New(t)
	o := newTestOptimizer()

	show, err := o.Optimize(sql.NewEmptyContext(), plan.NewLogicalShow(sql.ShowTables))
	require.NoError(err)
	require.Equal(sql.ShowInfoOp, show.Type())

	upload, err := o.Optimize(sql.NewEmptyContext(), plan.NewLogicalUpload("a.mp4", "AAAA"))
	require.NoError(err)
	require.Equal(sql.UploadOp, upload.Type())
}

func TestOptimizeMaterializedView(t *testing.T) {
	require := require.New(t)
	o := newTestOptimizer()

	root := plan.NewLogicalCreateMaterializedView(
		sql.TableRef{Name: "mv"},
		[]*sql.ColumnDefinition{{Name: "id", Type: sql.Integer}},
		false,
		newGet("v1", "v", videoMetadata("v1")))

	result, err := o.Optimize(sql.NewEmptyContext(), root)
	require.NoError(err)

	view, ok := result.(*plan.CreateMaterializedViewPlan)
	require.True(ok)
	require.Equal("mv", view.View().Name)
	_, ok = view.Children()[0].(*plan.SeqScanPlan)
	require.True(ok)
}

func TestOptimizeUnionOrderByLimit(t *testing.T) {
	require := require.New(t)
	o := newTestOptimizer()

	union := plan.NewLogicalUnion(true,
		newGet("v1", "a", videoMetadata("v1")),
		newGet("v2", "b", videoMetadata("v2")))
	orderBy := plan.NewLogicalOrderBy(
		[]plan.SortField{{Column: expression.NewTupleValue("a", "id"), Order: sql.Descending}},
		union)
	root := plan.NewLogicalLimit(expression.NewConstant(int64(3), sql.Integer), orderBy)

	result, err := o.Optimize(sql.NewEmptyContext(), root)
	require.NoError(err)

	limit, ok := result.(*plan.LimitPlan)
	require.True(ok)
	sorted, ok := limit.Children()[0].(*plan.OrderByPlan)
	require.True(ok)
	unionPlan, ok := sorted.Children()[0].(*plan.UnionPlan)
	require.True(ok)
	require.True(unionPlan.All())
	require.Len(unionPlan.Children(), 2)
}

func TestOptimizeBatchMemSizeFromConfig(t *testing.T) {
	require := require.New(t)

	cfg := config.NewManager()
	require.NoError(cfg.LoadBytes([]byte("executor:\n  batch_mem_size: 1024\n")))
	o := NewOptimizer(NewRulesManager(), memory.NewCatalog(), cfg)

	result, err := o.Optimize(sql.NewEmptyContext(),
		newGet("v1", "v", videoMetadata("v1")))
	require.NoError(err)

	scan := result.(*plan.SeqScanPlan)
	storage := scan.Children()[0].(*plan.StoragePlan)
	require.Equal(int64(1024), storage.BatchMemSize())
}

func TestOptimizeNoPlanFound(t *testing.T) {
	require := require.New(t)

	// An empty rule library cannot implement anything.
	o := NewOptimizer(&RulesManager{}, memory.NewCatalog(), config.NewManager())
	_, err := o.Optimize(sql.NewEmptyContext(), plan.NewLogicalShow(sql.ShowTables))
	require.Error(err)
	require.True(sql.ErrNoPlanFound.Is(err))
}

func TestOptimizeIsDeterministic(t *testing.T) {
	require := require.New(t)

	build := func() sql.Operator {
		return plan.NewLogicalFilter(idLessThan("v", 10),
			plan.NewLogicalSample(sampleFreq(5),
				newGet("v1", "v", videoMetadata("v1"))))
	}

	o := newTestOptimizer()
	first, err := o.Optimize(sql.NewEmptyContext(), build())
	require.NoError(err)
	second, err := o.Optimize(sql.NewEmptyContext(), build())
	require.NoError(err)
	require.True(sql.OperatorsEqual(first, second))
}
