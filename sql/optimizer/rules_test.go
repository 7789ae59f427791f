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
	"github.com/vidsql/go-vidsql-server/sql/expression"
	"github.com/vidsql/go-vidsql-server/sql/plan"
)

func TestPromiseOrdering(t *testing.T) {
	require := require.New(t)

	rewritePromises := []Promise{
		PromiseEmbedFilterIntoGet,
		PromiseEmbedProjectIntoGet,
		PromiseEmbedFilterIntoDerivedGet,
		PromiseEmbedProjectIntoDerivedGet,
		PromisePushdownFilterThroughSample,
		PromisePushdownProjectThroughSample,
	}
	implementationPromises := []Promise{
		PromiseLogicalUnionToPhysical,
		PromiseLogicalMaterializedViewToPhysical,
		PromiseLogicalOrderByToPhysical,
		PromiseLogicalLimitToPhysical,
		PromiseLogicalInsertToPhysical,
		PromiseLogicalRenameToPhysical,
		PromiseLogicalDropToPhysical,
		PromiseLogicalLoadToPhysical,
		PromiseLogicalUploadToPhysical,
		PromiseLogicalCreateToPhysical,
		PromiseLogicalCreateUDFToPhysical,
		PromiseLogicalSampleToUniformSample,
		PromiseLogicalGetToSeqScan,
		PromiseLogicalDerivedGetToPhysical,
		PromiseLogicalLateralJoinToPhysical,
		PromiseLogicalJoinToPhysicalHashJoin,
		PromiseLogicalFunctionScanToPhysical,
		PromiseLogicalFilterToPhysical,
		PromiseLogicalProjectToPhysical,
		PromiseLogicalShowToPhysical,
		PromiseLogicalDropUDFToPhysical,
	}

	// Every rewrite promise is above the implementation delimiter, every
	// implementation promise below it.
	for _, p := range rewritePromises {
		require.True(p > PromiseImplementationDelimiter)
	}
	for _, p := range implementationPromises {
		require.True(p < PromiseImplementationDelimiter)
	}

	// Transformations sit between implementations and rewrites.
	require.True(PromiseLogicalInnerJoinCommutativity > PromiseImplementationDelimiter)
	for _, p := range rewritePromises {
		require.True(p > PromiseLogicalInnerJoinCommutativity)
	}
}

func TestSupportedRules(t *testing.T) {
	require := require.New(t)
	manager := NewRulesManager()

	rewriteTypes := map[RuleType]bool{}
	for _, r := range manager.RewriteRules() {
		require.True(r.RuleType().IsRewrite())
		rewriteTypes[r.RuleType()] = true
	}
	require.Len(rewriteTypes, 6)
	require.True(rewriteTypes[RuleEmbedFilterIntoGet])
	require.True(rewriteTypes[RuleEmbedFilterIntoDerivedGet])
	require.True(rewriteTypes[RuleEmbedProjectIntoGet])
	require.True(rewriteTypes[RuleEmbedProjectIntoDerivedGet])
	require.True(rewriteTypes[RulePushdownFilterThroughSample])
	require.True(rewriteTypes[RulePushdownProjectThroughSample])

	require.Len(manager.TransformationRules(), 1)
	require.Equal(RuleLogicalInnerJoinCommutativity,
		manager.TransformationRules()[0].RuleType())

	require.Len(manager.ImplementationRules(), 21)
	for _, r := range manager.ImplementationRules() {
		require.True(r.RuleType().IsImplementation())
	}

	require.Len(manager.AllRules(), 28)
}

func TestEmbedProjectIntoGet(t *testing.T) {
	require := require.New(t)
	rule := NewEmbedProjectIntoGet()

	target := []sql.Expression{
		expression.NewTupleValue("v", "id"),
		expression.NewTupleValue("v", "data"),
	}
	lget := newGet("v1", "v", videoMetadata("v1"))
	project := plan.NewLogicalProject(target, lget)

	require.True(rule.Check(project, nil))
	after, err := rule.Apply(project, nil)
	require.NoError(err)

	newGet, ok := after.(*plan.LogicalGet)
	require.True(ok)
	require.Equal(target, newGet.TargetList())
	require.Equal("v", newGet.Alias())
}

func TestEmbedFilterIntoGetVideo(t *testing.T) {
	require := require.New(t)
	rule := NewEmbedFilterIntoGet()

	pred := idLessThan("v", 10)
	lget := newGet("v1", "v", videoMetadata("v1"))
	filter := plan.NewLogicalFilter(pred, lget)

	require.True(rule.Check(filter, nil))
	after, err := rule.Apply(filter, nil)
	require.NoError(err)

	newGet, ok := after.(*plan.LogicalGet)
	require.True(ok)
	require.True(sql.ExpressionsEqual(pred, newGet.Predicate()))
}

func TestEmbedFilterIntoGetNonVideo(t *testing.T) {
	require := require.New(t)
	rule := NewEmbedFilterIntoGet()

	filter := plan.NewLogicalFilter(
		idLessThan("t", 10),
		newGet("t1", "t", tableMetadata("t1")),
	)
	require.False(rule.Check(filter, nil))
}

func TestEmbedFilterIntoGetKeepsResidual(t *testing.T) {
	require := require.New(t)
	rule := NewEmbedFilterIntoGet()

	pushable := idLessThan("v", 10)
	residual := expression.NewEquals(
		expression.NewTupleValue("v", "label"),
		expression.NewConstant("car", sql.Text),
	)
	filter := plan.NewLogicalFilter(
		expression.NewAnd(pushable, residual),
		newGet("v1", "v", videoMetadata("v1")),
	)

	require.True(rule.Check(filter, nil))
	after, err := rule.Apply(filter, nil)
	require.NoError(err)

	outer, ok := after.(*plan.LogicalFilter)
	require.True(ok)
	require.True(sql.ExpressionsEqual(residual, outer.Predicate()))

	inner, ok := outer.Children()[0].(*plan.LogicalGet)
	require.True(ok)
	require.True(sql.ExpressionsEqual(pushable, inner.Predicate()))
}

func TestEmbedFilterIntoGetNoFragmentIsNoOp(t *testing.T) {
	require := require.New(t)
	rule := NewEmbedFilterIntoGet()

	// References two columns, nothing extracts.
	pred := expression.NewEquals(
		expression.NewTupleValue("v", "id"),
		expression.NewTupleValue("v", "label"),
	)
	filter := plan.NewLogicalFilter(pred, newGet("v1", "v", videoMetadata("v1")))

	require.False(rule.Check(filter, nil))
	after, err := rule.Apply(filter, nil)
	require.NoError(err)
	require.True(sql.OperatorsEqual(filter, after))
}

func TestEmbedFilterIntoDerivedGet(t *testing.T) {
	require := require.New(t)
	rule := NewEmbedFilterIntoDerivedGet()

	pred := idLessThan("s", 10)
	derived := plan.NewLogicalQueryDerivedGet("s", nil, nil,
		newGet("v1", "v", videoMetadata("v1")))
	filter := plan.NewLogicalFilter(pred, derived)

	require.True(rule.Check(filter, nil))
	after, err := rule.Apply(filter, nil)
	require.NoError(err)

	newDerived, ok := after.(*plan.LogicalQueryDerivedGet)
	require.True(ok)
	require.True(sql.ExpressionsEqual(pred, newDerived.Predicate()))
	require.Equal("s", newDerived.Alias())
}

func TestEmbedProjectIntoDerivedGet(t *testing.T) {
	require := require.New(t)
	rule := NewEmbedProjectIntoDerivedGet()

	target := []sql.Expression{expression.NewTupleValue("s", "x")}
	derived := plan.NewLogicalQueryDerivedGet("s", nil, nil,
		newGet("v1", "v", videoMetadata("v1")))
	project := plan.NewLogicalProject(target, derived)

	after, err := rule.Apply(project, nil)
	require.NoError(err)

	newDerived, ok := after.(*plan.LogicalQueryDerivedGet)
	require.True(ok)
	require.Equal(target, newDerived.TargetList())
}

func TestPushdownFilterThroughSample(t *testing.T) {
	require := require.New(t)
	rule := NewPushdownFilterThroughSample()

	pred := idLessThan("v", 10)
	lget := newGet("v1", "v", videoMetadata("v1"))
	sample := plan.NewLogicalSample(sampleFreq(5), lget)
	filter := plan.NewLogicalFilter(pred, sample)

	after, err := rule.Apply(filter, nil)
	require.NoError(err)

	newSample, ok := after.(*plan.LogicalSample)
	require.True(ok)
	newFilter, ok := newSample.Children()[0].(*plan.LogicalFilter)
	require.True(ok)
	require.True(sql.ExpressionsEqual(pred, newFilter.Predicate()))
	_, ok = newFilter.Children()[0].(*plan.LogicalGet)
	require.True(ok)
}

func TestPushdownProjectThroughSample(t *testing.T) {
	require := require.New(t)
	rule := NewPushdownProjectThroughSample()

	target := []sql.Expression{expression.NewTupleValue("v", "data")}
	lget := newGet("v1", "v", videoMetadata("v1"))
	sample := plan.NewLogicalSample(sampleFreq(5), lget)
	project := plan.NewLogicalProject(target, sample)

	after, err := rule.Apply(project, nil)
	require.NoError(err)

	newSample, ok := after.(*plan.LogicalSample)
	require.True(ok)
	newProject, ok := newSample.Children()[0].(*plan.LogicalProject)
	require.True(ok)
	require.Equal(target, newProject.TargetList())
	_, ok = newProject.Children()[0].(*plan.LogicalGet)
	require.True(ok)
}

func TestInnerJoinCommutativity(t *testing.T) {
	require := require.New(t)
	rule := NewLogicalInnerJoinCommutativity()

	a := newGet("v1", "a", videoMetadata("v1"))
	b := newGet("v2", "b", videoMetadata("v2"))
	inner := plan.NewLogicalJoin(sql.InnerJoin, nil, nil, a, b)
	lateral := plan.NewLogicalJoin(sql.LateralJoin, nil, nil, a, b)

	require.True(rule.Check(inner, nil))
	require.False(rule.Check(lateral, nil))

	after, err := rule.Apply(inner, nil)
	require.NoError(err)
	swapped, ok := after.(*plan.LogicalJoin)
	require.True(ok)
	require.Equal("b", swapped.Lhs().(*plan.LogicalGet).Alias())
	require.Equal("a", swapped.Rhs().(*plan.LogicalGet).Alias())

	// Applying twice reproduces the original tree.
	again, err := rule.Apply(swapped, nil)
	require.NoError(err)
	require.True(sql.OperatorsEqual(inner, again))
}

func TestLogicalGetToSeqScan(t *testing.T) {
	require := require.New(t)
	rule := NewLogicalGetToSeqScan()

	pred := idLessThan("v", 10)
	meta := videoMetadata("v1")
	lget := plan.NewLogicalGet(sql.TableRef{Name: "v1"}, meta, "v", pred, nil)
	octx := NewContext(nil, nil, nil)

	after, err := rule.Apply(lget, octx)
	require.NoError(err)

	scan, ok := after.(*plan.SeqScanPlan)
	require.True(ok)
	require.Nil(scan.Predicate())
	require.Equal("v", scan.Alias())

	storage, ok := scan.Children()[0].(*plan.StoragePlan)
	require.True(ok)
	require.Equal(meta, storage.Metadata())
	require.Equal(DefaultBatchMemSize, storage.BatchMemSize())
	require.True(sql.ExpressionsEqual(pred, storage.Predicate()))
}

func TestLogicalJoinToPhysicalHashJoin(t *testing.T) {
	require := require.New(t)
	rule := NewLogicalJoinToPhysicalHashJoin()

	// A.x = B.y AND A.z > 5
	equi := expression.NewEquals(
		expression.NewTupleValue("a", "x"),
		expression.NewTupleValue("b", "y"),
	)
	residual := expression.NewGreaterThan(
		expression.NewTupleValue("a", "z"),
		expression.NewConstant(int64(5), sql.Integer),
	)
	pred := expression.NewAnd(equi, residual)

	a := newGet("v1", "a", videoMetadata("v1"))
	b := newGet("v2", "b", videoMetadata("v2"))
	join := plan.NewLogicalJoin(sql.InnerJoin, pred, nil, a, b)

	require.True(rule.Check(join, nil))
	after, err := rule.Apply(join, nil)
	require.NoError(err)

	probe, ok := after.(*plan.HashJoinProbePlan)
	require.True(ok)
	require.Len(probe.ProbeKeys(), 1)
	require.Equal("b.y", probe.ProbeKeys()[0].QualifiedName())
	require.True(sql.ExpressionsEqual(pred, probe.Predicate()))

	build, ok := probe.Children()[0].(*plan.HashJoinBuildPlan)
	require.True(ok)
	require.Len(build.BuildKeys(), 1)
	require.Equal("a.x", build.BuildKeys()[0].QualifiedName())
	require.Equal(a.Alias(), build.Children()[0].(*plan.LogicalGet).Alias())
	require.Equal(b.Alias(), probe.Children()[1].(*plan.LogicalGet).Alias())
}

func TestLogicalLateralJoinToPhysical(t *testing.T) {
	require := require.New(t)
	rule := NewLogicalLateralJoinToPhysical()

	fn := expression.NewFunction("ObjDetector", sql.NdArray,
		expression.NewTupleValue("a", "data")).WithAlias("od")
	scan := plan.NewLogicalFunctionScan(fn)
	a := newGet("v1", "a", videoMetadata("v1"))
	join := plan.NewLogicalJoin(sql.LateralJoin, nil, nil, a, scan)

	require.True(rule.Check(join, nil))
	after, err := rule.Apply(join, nil)
	require.NoError(err)

	lateral, ok := after.(*plan.LateralJoinPlan)
	require.True(ok)
	require.Len(lateral.Children(), 2)
	_, ok = lateral.Children()[1].(*plan.LogicalFunctionScan)
	require.True(ok)
}

func TestStatementRulesForwardAttributes(t *testing.T) {
	require := require.New(t)
	octx := NewContext(nil, nil, nil)

	cols := []*sql.ColumnDefinition{{Name: "id", Type: sql.Integer}}

	tests := []struct {
		name   string
		rule   Rule
		before sql.Operator
		verify func(after sql.Operator)
	}{
		{
			name:   "create",
			rule:   NewLogicalCreateToPhysical(),
			before: plan.NewLogicalCreate(sql.TableRef{Name: "t"}, cols, true),
			verify: func(after sql.Operator) {
				p := after.(*plan.CreatePlan)
				require.Equal("t", p.Ref().Name)
				require.True(p.IfNotExists())
			},
		},
		{
			name:   "rename",
			rule:   NewLogicalRenameToPhysical(),
			before: plan.NewLogicalRename(sql.TableRef{Name: "t"}, "u"),
			verify: func(after sql.Operator) {
				p := after.(*plan.RenamePlan)
				require.Equal("u", p.NewName())
			},
		},
		{
			name:   "drop",
			rule:   NewLogicalDropToPhysical(),
			before: plan.NewLogicalDrop([]sql.TableRef{{Name: "t"}}, true),
			verify: func(after sql.Operator) {
				p := after.(*plan.DropPlan)
				require.Len(p.Refs(), 1)
				require.True(p.IfExists())
			},
		},
		{
			name: "create udf",
			rule: NewLogicalCreateUDFToPhysical(),
			before: plan.NewLogicalCreateUDF(
				"ObjDetector", false, cols, cols, "models/det.pt", "classification"),
			verify: func(after sql.Operator) {
				p := after.(*plan.CreateUDFPlan)
				require.Equal("ObjDetector", p.Name())
				require.Equal("models/det.pt", p.ImplPath())
				require.Equal("classification", p.UDFType())
			},
		},
		{
			name:   "drop udf",
			rule:   NewLogicalDropUDFToPhysical(),
			before: plan.NewLogicalDropUDF("ObjDetector", true),
			verify: func(after sql.Operator) {
				p := after.(*plan.DropUDFPlan)
				require.Equal("ObjDetector", p.Name())
				require.True(p.IfExists())
			},
		},
		{
			name: "insert",
			rule: NewLogicalInsertToPhysical(),
			before: plan.NewLogicalInsert(tableMetadata("t"),
				[]sql.Expression{expression.NewTupleValue("t", "id")},
				[]sql.Expression{expression.NewConstant(int64(1), sql.Integer)}),
			verify: func(after sql.Operator) {
				p := after.(*plan.InsertPlan)
				require.Equal("t", p.Table().Name)
				require.Len(p.Values(), 1)
			},
		},
		{
			name: "load data",
			rule: NewLogicalLoadToPhysical(),
			before: plan.NewLogicalLoadData(tableMetadata("t"), "videos/a.mp4",
				nil, map[string]string{"format": "video"}),
			verify: func(after sql.Operator) {
				p := after.(*plan.LoadDataPlan)
				require.Equal("videos/a.mp4", p.Path())
				require.Equal(DefaultBatchMemSize, p.BatchMemSize())
			},
		},
		{
			name:   "upload",
			rule:   NewLogicalUploadToPhysical(),
			before: plan.NewLogicalUpload("videos/a.mp4", "AAAA"),
			verify: func(after sql.Operator) {
				p := after.(*plan.UploadPlan)
				require.Equal("videos/a.mp4", p.Path())
				require.Equal("AAAA", p.VideoBlob())
			},
		},
		{
			name:   "show",
			rule:   NewLogicalShowToPhysical(),
			before: plan.NewLogicalShow(sql.ShowUDFs),
			verify: func(after sql.Operator) {
				p := after.(*plan.ShowInfoPlan)
				require.Equal(sql.ShowUDFs, p.ShowType())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(tt.rule.Check(tt.before, octx))
			after, err := tt.rule.Apply(tt.before, octx)
			require.NoError(err)
			tt.verify(after)
		})
	}
}

func TestRuleApplyRejectsForeignBinding(t *testing.T) {
	require := require.New(t)

	rule := NewLogicalGetToSeqScan()
	_, err := rule.Apply(plan.NewLogicalShow(sql.ShowTables), NewContext(nil, nil, nil))
	require.Error(err)
	require.True(sql.ErrInvalidArgument.Is(err))
}
