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
	"github.com/vidsql/go-vidsql-server/sql"
	"github.com/vidsql/go-vidsql-server/sql/plan"
)

// LogicalCreateToPhysical maps LogicalCreate to CreatePlan.
type LogicalCreateToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalCreateToPhysical)(nil)

// NewLogicalCreateToPhysical creates the rule.
func NewLogicalCreateToPhysical() *LogicalCreateToPhysical {
	return &LogicalCreateToPhysical{baseRule{
		ruleType: RuleLogicalCreateToPhysical,
		pattern:  NewPattern(sql.LogicalCreateOp),
		promise:  PromiseLogicalCreateToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalCreateToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalCreateToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	create, ok := before.(*plan.LogicalCreate)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalCreateToPhysical")
	}
	return plan.NewCreatePlan(create.Ref(), create.Columns(), create.IfNotExists()), nil
}

// LogicalRenameToPhysical maps LogicalRename to RenamePlan.
type LogicalRenameToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalRenameToPhysical)(nil)

// NewLogicalRenameToPhysical creates the rule.
func NewLogicalRenameToPhysical() *LogicalRenameToPhysical {
	return &LogicalRenameToPhysical{baseRule{
		ruleType: RuleLogicalRenameToPhysical,
		pattern:  NewPattern(sql.LogicalRenameOp),
		promise:  PromiseLogicalRenameToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalRenameToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalRenameToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	rename, ok := before.(*plan.LogicalRename)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalRenameToPhysical")
	}
	return plan.NewRenamePlan(rename.OldRef(), rename.NewName()), nil
}

// LogicalDropToPhysical maps LogicalDrop to DropPlan.
type LogicalDropToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalDropToPhysical)(nil)

// NewLogicalDropToPhysical creates the rule.
func NewLogicalDropToPhysical() *LogicalDropToPhysical {
	return &LogicalDropToPhysical{baseRule{
		ruleType: RuleLogicalDropToPhysical,
		pattern:  NewPattern(sql.LogicalDropOp),
		promise:  PromiseLogicalDropToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalDropToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalDropToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	drop, ok := before.(*plan.LogicalDrop)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalDropToPhysical")
	}
	return plan.NewDropPlan(drop.Refs(), drop.IfExists()), nil
}

// LogicalCreateUDFToPhysical maps LogicalCreateUDF to CreateUDFPlan.
type LogicalCreateUDFToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalCreateUDFToPhysical)(nil)

// NewLogicalCreateUDFToPhysical creates the rule.
func NewLogicalCreateUDFToPhysical() *LogicalCreateUDFToPhysical {
	return &LogicalCreateUDFToPhysical{baseRule{
		ruleType: RuleLogicalCreateUDFToPhysical,
		pattern:  NewPattern(sql.LogicalCreateUDFOp),
		promise:  PromiseLogicalCreateUDFToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalCreateUDFToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalCreateUDFToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	create, ok := before.(*plan.LogicalCreateUDF)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalCreateUDFToPhysical")
	}
	return plan.NewCreateUDFPlan(
		create.Name(),
		create.IfNotExists(),
		create.Inputs(),
		create.Outputs(),
		create.ImplPath(),
		create.UDFType(),
	), nil
}

// LogicalDropUDFToPhysical maps LogicalDropUDF to DropUDFPlan.
type LogicalDropUDFToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalDropUDFToPhysical)(nil)

// NewLogicalDropUDFToPhysical creates the rule.
func NewLogicalDropUDFToPhysical() *LogicalDropUDFToPhysical {
	return &LogicalDropUDFToPhysical{baseRule{
		ruleType: RuleLogicalDropUDFToPhysical,
		pattern:  NewPattern(sql.LogicalDropUDFOp),
		promise:  PromiseLogicalDropUDFToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalDropUDFToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalDropUDFToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	drop, ok := before.(*plan.LogicalDropUDF)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalDropUDFToPhysical")
	}
	return plan.NewDropUDFPlan(drop.Name(), drop.IfExists()), nil
}

// LogicalInsertToPhysical maps LogicalInsert to InsertPlan.
type LogicalInsertToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalInsertToPhysical)(nil)

// NewLogicalInsertToPhysical creates the rule.
func NewLogicalInsertToPhysical() *LogicalInsertToPhysical {
	return &LogicalInsertToPhysical{baseRule{
		ruleType: RuleLogicalInsertToPhysical,
		pattern:  NewPattern(sql.LogicalInsertOp),
		promise:  PromiseLogicalInsertToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalInsertToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalInsertToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	insert, ok := before.(*plan.LogicalInsert)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalInsertToPhysical")
	}
	return plan.NewInsertPlan(insert.Table(), insert.Columns(), insert.Values()), nil
}

// LogicalLoadToPhysical maps LogicalLoadData to LoadDataPlan, with the batch
// memory budget taken from the configuration.
type LogicalLoadToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalLoadToPhysical)(nil)

// NewLogicalLoadToPhysical creates the rule.
func NewLogicalLoadToPhysical() *LogicalLoadToPhysical {
	return &LogicalLoadToPhysical{baseRule{
		ruleType: RuleLogicalLoadToPhysical,
		pattern:  NewPattern(sql.LogicalLoadDataOp),
		promise:  PromiseLogicalLoadToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalLoadToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalLoadToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	load, ok := before.(*plan.LogicalLoadData)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalLoadToPhysical")
	}
	return plan.NewLoadDataPlan(
		load.Table(),
		load.Path(),
		ctx.BatchMemSize(),
		load.Columns(),
		load.FileOptions(),
	), nil
}

// LogicalUploadToPhysical maps LogicalUpload to UploadPlan.
type LogicalUploadToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalUploadToPhysical)(nil)

// NewLogicalUploadToPhysical creates the rule.
func NewLogicalUploadToPhysical() *LogicalUploadToPhysical {
	return &LogicalUploadToPhysical{baseRule{
		ruleType: RuleLogicalUploadToPhysical,
		pattern:  NewPattern(sql.LogicalUploadOp),
		promise:  PromiseLogicalUploadToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalUploadToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalUploadToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	upload, ok := before.(*plan.LogicalUpload)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalUploadToPhysical")
	}
	return plan.NewUploadPlan(upload.Path(), upload.VideoBlob()), nil
}

// LogicalGetToSeqScan maps LogicalGet to a SeqScanPlan over a StoragePlan.
// The pushed down predicate travels to the storage read; the batch memory
// budget comes from the configuration.
type LogicalGetToSeqScan struct {
	baseRule
}

var _ Rule = (*LogicalGetToSeqScan)(nil)

// NewLogicalGetToSeqScan creates the rule.
func NewLogicalGetToSeqScan() *LogicalGetToSeqScan {
	return &LogicalGetToSeqScan{baseRule{
		ruleType: RuleLogicalGetToSeqScan,
		pattern:  NewPattern(sql.LogicalGetOp),
		promise:  PromiseLogicalGetToSeqScan,
	}}
}

// Check implements the Rule interface.
func (r *LogicalGetToSeqScan) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalGetToSeqScan) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	lget, ok := before.(*plan.LogicalGet)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalGetToSeqScan")
	}
	storage := plan.NewStoragePlan(lget.Metadata(), ctx.BatchMemSize(), lget.Predicate())
	return plan.NewSeqScanPlan(nil, lget.TargetList(), lget.Alias(), storage), nil
}

// LogicalSampleToUniformSample maps LogicalSample to UniformSamplePlan.
type LogicalSampleToUniformSample struct {
	baseRule
}

var _ Rule = (*LogicalSampleToUniformSample)(nil)

// NewLogicalSampleToUniformSample creates the rule.
func NewLogicalSampleToUniformSample() *LogicalSampleToUniformSample {
	return &LogicalSampleToUniformSample{baseRule{
		ruleType: RuleLogicalSampleToUniformSample,
		pattern:  NewPattern(sql.LogicalSampleOp, AnyPattern()),
		promise:  PromiseLogicalSampleToUniformSample,
	}}
}

// Check implements the Rule interface.
func (r *LogicalSampleToUniformSample) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalSampleToUniformSample) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	sample, ok := before.(*plan.LogicalSample)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalSampleToUniformSample")
	}
	return plan.NewUniformSamplePlan(sample.SampleFreq(), sample.Children()...), nil
}

// LogicalDerivedGetToPhysical maps LogicalQueryDerivedGet to a SeqScanPlan
// over the derived child plan.
type LogicalDerivedGetToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalDerivedGetToPhysical)(nil)

// NewLogicalDerivedGetToPhysical creates the rule.
func NewLogicalDerivedGetToPhysical() *LogicalDerivedGetToPhysical {
	return &LogicalDerivedGetToPhysical{baseRule{
		ruleType: RuleLogicalDerivedGetToPhysical,
		pattern:  NewPattern(sql.LogicalQueryDerivedGetOp, AnyPattern()),
		promise:  PromiseLogicalDerivedGetToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalDerivedGetToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalDerivedGetToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	derived, ok := before.(*plan.LogicalQueryDerivedGet)
	if !ok || len(derived.Children()) != 1 {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalDerivedGetToPhysical")
	}
	return plan.NewSeqScanPlan(
		derived.Predicate(),
		derived.TargetList(),
		derived.Alias(),
		derived.Children()[0],
	), nil
}

// LogicalUnionToPhysical maps LogicalUnion to UnionPlan.
type LogicalUnionToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalUnionToPhysical)(nil)

// NewLogicalUnionToPhysical creates the rule.
func NewLogicalUnionToPhysical() *LogicalUnionToPhysical {
	return &LogicalUnionToPhysical{baseRule{
		ruleType: RuleLogicalUnionToPhysical,
		pattern:  NewPattern(sql.LogicalUnionOp, AnyPattern(), AnyPattern()),
		promise:  PromiseLogicalUnionToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalUnionToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalUnionToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	union, ok := before.(*plan.LogicalUnion)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalUnionToPhysical")
	}
	return plan.NewUnionPlan(union.All(), union.Children()...), nil
}

// LogicalOrderByToPhysical maps LogicalOrderBy to OrderByPlan.
type LogicalOrderByToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalOrderByToPhysical)(nil)

// NewLogicalOrderByToPhysical creates the rule.
func NewLogicalOrderByToPhysical() *LogicalOrderByToPhysical {
	return &LogicalOrderByToPhysical{baseRule{
		ruleType: RuleLogicalOrderByToPhysical,
		pattern:  NewPattern(sql.LogicalOrderByOp, AnyPattern()),
		promise:  PromiseLogicalOrderByToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalOrderByToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalOrderByToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	orderBy, ok := before.(*plan.LogicalOrderBy)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalOrderByToPhysical")
	}
	return plan.NewOrderByPlan(orderBy.OrderByList(), orderBy.Children()...), nil
}

// LogicalLimitToPhysical maps LogicalLimit to LimitPlan.
type LogicalLimitToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalLimitToPhysical)(nil)

// NewLogicalLimitToPhysical creates the rule.
func NewLogicalLimitToPhysical() *LogicalLimitToPhysical {
	return &LogicalLimitToPhysical{baseRule{
		ruleType: RuleLogicalLimitToPhysical,
		pattern:  NewPattern(sql.LogicalLimitOp, AnyPattern()),
		promise:  PromiseLogicalLimitToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalLimitToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalLimitToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	limit, ok := before.(*plan.LogicalLimit)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalLimitToPhysical")
	}
	return plan.NewLimitPlan(limit.LimitCount(), limit.Children()...), nil
}

// LogicalFunctionScanToPhysical maps LogicalFunctionScan to
// FunctionScanPlan.
type LogicalFunctionScanToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalFunctionScanToPhysical)(nil)

// NewLogicalFunctionScanToPhysical creates the rule.
func NewLogicalFunctionScanToPhysical() *LogicalFunctionScanToPhysical {
	return &LogicalFunctionScanToPhysical{baseRule{
		ruleType: RuleLogicalFunctionScanToPhysical,
		pattern:  NewPattern(sql.LogicalFunctionScanOp),
		promise:  PromiseLogicalFunctionScanToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalFunctionScanToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalFunctionScanToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	scan, ok := before.(*plan.LogicalFunctionScan)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalFunctionScanToPhysical")
	}
	return plan.NewFunctionScanPlan(scan.FuncExpr()), nil
}

// LogicalLateralJoinToPhysical maps a lateral join over a function scan to
// LateralJoinPlan.
type LogicalLateralJoinToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalLateralJoinToPhysical)(nil)

// NewLogicalLateralJoinToPhysical creates the rule.
func NewLogicalLateralJoinToPhysical() *LogicalLateralJoinToPhysical {
	return &LogicalLateralJoinToPhysical{baseRule{
		ruleType: RuleLogicalLateralJoinToPhysical,
		pattern: NewPattern(sql.LogicalJoinOp,
			AnyPattern(), NewPattern(sql.LogicalFunctionScanOp)),
		promise: PromiseLogicalLateralJoinToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalLateralJoinToPhysical) Check(before sql.Operator, ctx *Context) bool {
	join, ok := before.(*plan.LogicalJoin)
	return ok && join.JoinType() == sql.LateralJoin
}

// Apply implements the Rule interface.
func (r *LogicalLateralJoinToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	join, ok := before.(*plan.LogicalJoin)
	if !ok || len(join.Children()) != 2 {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalLateralJoinToPhysical")
	}
	return plan.NewLateralJoinPlan(
		join.Predicate(),
		join.Project(),
		join.Lhs(),
		join.Rhs(),
	), nil
}

// LogicalJoinToPhysicalHashJoin maps an inner join to a hash join:
//
//	LogicalJoin(Inner)                HashJoinProbePlan
//	/           \          ->         /               \
//	A            B        HashJoinBuildPlan            B
//	                        /
//	                       A
//
// The build and probe keys come from the equi-join conjuncts of the join
// predicate; the full predicate stays on the probe side as residual.
type LogicalJoinToPhysicalHashJoin struct {
	baseRule
}

var _ Rule = (*LogicalJoinToPhysicalHashJoin)(nil)

// NewLogicalJoinToPhysicalHashJoin creates the rule.
func NewLogicalJoinToPhysicalHashJoin() *LogicalJoinToPhysicalHashJoin {
	return &LogicalJoinToPhysicalHashJoin{baseRule{
		ruleType: RuleLogicalJoinToPhysicalHashJoin,
		pattern:  NewPattern(sql.LogicalJoinOp, AnyPattern(), AnyPattern()),
		promise:  PromiseLogicalJoinToPhysicalHashJoin,
	}}
}

// Check implements the Rule interface.
func (r *LogicalJoinToPhysicalHashJoin) Check(before sql.Operator, ctx *Context) bool {
	join, ok := before.(*plan.LogicalJoin)
	return ok && join.JoinType() == sql.InnerJoin
}

// Apply implements the Rule interface.
func (r *LogicalJoinToPhysicalHashJoin) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	join, ok := before.(*plan.LogicalJoin)
	if !ok || len(join.Children()) != 2 {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalJoinToPhysicalHashJoin")
	}

	lhs, rhs := join.Lhs(), join.Rhs()
	leftKeys, rightKeys := ExtractEquiJoinKeys(
		join.Predicate(),
		sideAliases(ctx, lhs),
		sideAliases(ctx, rhs),
	)

	build := plan.NewHashJoinBuildPlan(join.JoinType(), leftKeys, lhs)
	return plan.NewHashJoinProbePlan(
		join.JoinType(),
		rightKeys,
		join.Predicate(),
		join.Project(),
		build,
		rhs,
	), nil
}

// sideAliases resolves the table aliases visible on one side of a join. A
// Dummy leaf stands for a memo group and contributes the group's aliases; a
// materialized sub-tree is walked for its get operators.
func sideAliases(ctx *Context, side sql.Operator) []string {
	if dummy, ok := side.(*plan.Dummy); ok && ctx != nil && ctx.Memo != nil {
		if group := ctx.Memo.GetGroup(dummy.GroupID()); group != nil {
			return group.Aliases()
		}
		return nil
	}

	var aliases []string
	var walk func(op sql.Operator)
	walk = func(op sql.Operator) {
		switch opr := op.(type) {
		case *plan.LogicalGet:
			aliases = append(aliases, opr.Alias())
		case *plan.LogicalQueryDerivedGet:
			aliases = append(aliases, opr.Alias())
		case *plan.LogicalFunctionScan:
			aliases = append(aliases, opr.FuncExpr().Alias())
		}
		for _, child := range op.Children() {
			walk(child)
		}
	}
	walk(side)
	return aliases
}

// LogicalFilterToPhysical maps LogicalFilter to PredicatePlan.
type LogicalFilterToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalFilterToPhysical)(nil)

// NewLogicalFilterToPhysical creates the rule.
func NewLogicalFilterToPhysical() *LogicalFilterToPhysical {
	return &LogicalFilterToPhysical{baseRule{
		ruleType: RuleLogicalFilterToPhysical,
		pattern:  NewPattern(sql.LogicalFilterOp, AnyPattern()),
		promise:  PromiseLogicalFilterToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalFilterToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalFilterToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	filter, ok := before.(*plan.LogicalFilter)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalFilterToPhysical")
	}
	return plan.NewPredicatePlan(filter.Predicate(), filter.Children()...), nil
}

// LogicalProjectToPhysical maps LogicalProject to ProjectPlan.
type LogicalProjectToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalProjectToPhysical)(nil)

// NewLogicalProjectToPhysical creates the rule.
func NewLogicalProjectToPhysical() *LogicalProjectToPhysical {
	return &LogicalProjectToPhysical{baseRule{
		ruleType: RuleLogicalProjectToPhysical,
		pattern:  NewPattern(sql.LogicalProjectOp, AnyPattern()),
		promise:  PromiseLogicalProjectToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalProjectToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalProjectToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	project, ok := before.(*plan.LogicalProject)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalProjectToPhysical")
	}
	return plan.NewProjectPlan(project.TargetList(), project.Children()...), nil
}

// LogicalShowToPhysical maps LogicalShow to ShowInfoPlan.
type LogicalShowToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalShowToPhysical)(nil)

// NewLogicalShowToPhysical creates the rule.
func NewLogicalShowToPhysical() *LogicalShowToPhysical {
	return &LogicalShowToPhysical{baseRule{
		ruleType: RuleLogicalShowToPhysical,
		pattern:  NewPattern(sql.LogicalShowOp),
		promise:  PromiseLogicalShowToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalShowToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalShowToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	show, ok := before.(*plan.LogicalShow)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalShowToPhysical")
	}
	return plan.NewShowInfoPlan(show.ShowType()), nil
}

// LogicalCreateMaterializedViewToPhysical maps
// LogicalCreateMaterializedView to CreateMaterializedViewPlan.
type LogicalCreateMaterializedViewToPhysical struct {
	baseRule
}

var _ Rule = (*LogicalCreateMaterializedViewToPhysical)(nil)

// NewLogicalCreateMaterializedViewToPhysical creates the rule.
func NewLogicalCreateMaterializedViewToPhysical() *LogicalCreateMaterializedViewToPhysical {
	return &LogicalCreateMaterializedViewToPhysical{baseRule{
		ruleType: RuleLogicalMaterializedViewToPhysical,
		pattern:  NewPattern(sql.LogicalCreateMaterializedViewOp, AnyPattern()),
		promise:  PromiseLogicalMaterializedViewToPhysical,
	}}
}

// Check implements the Rule interface.
func (r *LogicalCreateMaterializedViewToPhysical) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *LogicalCreateMaterializedViewToPhysical) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	view, ok := before.(*plan.LogicalCreateMaterializedView)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalCreateMaterializedViewToPhysical")
	}
	return plan.NewCreateMaterializedViewPlan(
		view.View(),
		view.Columns(),
		view.IfNotExists(),
		view.Children()...,
	), nil
}
