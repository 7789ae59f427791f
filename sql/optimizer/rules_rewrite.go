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

// EmbedFilterIntoGet pushes the fragment of a filter predicate that
// restricts the frame id of a video scan into the scan itself, so the
// storage engine can seek instead of decoding every frame.
type EmbedFilterIntoGet struct {
	baseRule
}

var _ Rule = (*EmbedFilterIntoGet)(nil)

// NewEmbedFilterIntoGet creates the rule.
func NewEmbedFilterIntoGet() *EmbedFilterIntoGet {
	return &EmbedFilterIntoGet{baseRule{
		ruleType: RuleEmbedFilterIntoGet,
		pattern:  NewPattern(sql.LogicalFilterOp, NewPattern(sql.LogicalGetOp)),
		promise:  PromiseEmbedFilterIntoGet,
	}}
}

// Check implements the Rule interface. Pushdown is only supported while
// reading video data, and only for simple range predicates on the frame id.
func (r *EmbedFilterIntoGet) Check(before sql.Operator, ctx *Context) bool {
	filter, ok := before.(*plan.LogicalFilter)
	if !ok || filter.Predicate() == nil {
		return false
	}
	lget, ok := filter.Children()[0].(*plan.LogicalGet)
	if !ok || lget.Metadata() == nil || !lget.Metadata().IsVideo {
		return false
	}
	pushdown, _ := ExtractPushdownPredicate(filter.Predicate(), lget.Alias()+".id")
	return pushdown != nil
}

// Apply implements the Rule interface.
func (r *EmbedFilterIntoGet) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	filter, ok := before.(*plan.LogicalFilter)
	if !ok || len(filter.Children()) != 1 {
		return nil, sql.ErrInvalidArgument.New("binding does not match EmbedFilterIntoGet")
	}
	lget, ok := filter.Children()[0].(*plan.LogicalGet)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match EmbedFilterIntoGet")
	}

	pushdown, remaining := ExtractPushdownPredicate(filter.Predicate(), lget.Alias()+".id")
	if pushdown == nil {
		return before, nil
	}

	newGet := plan.NewLogicalGet(
		lget.Ref(),
		lget.Metadata(),
		lget.Alias(),
		pushdown,
		lget.TargetList(),
		lget.Children()...,
	)
	if remaining != nil {
		return plan.NewLogicalFilter(remaining, newGet), nil
	}
	return newGet, nil
}

// EmbedProjectIntoGet pushes a projection into the scan below it.
type EmbedProjectIntoGet struct {
	baseRule
}

var _ Rule = (*EmbedProjectIntoGet)(nil)

// NewEmbedProjectIntoGet creates the rule.
func NewEmbedProjectIntoGet() *EmbedProjectIntoGet {
	return &EmbedProjectIntoGet{baseRule{
		ruleType: RuleEmbedProjectIntoGet,
		pattern:  NewPattern(sql.LogicalProjectOp, NewPattern(sql.LogicalGetOp)),
		promise:  PromiseEmbedProjectIntoGet,
	}}
}

// Check implements the Rule interface.
func (r *EmbedProjectIntoGet) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *EmbedProjectIntoGet) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	project, ok := before.(*plan.LogicalProject)
	if !ok || len(project.Children()) != 1 {
		return nil, sql.ErrInvalidArgument.New("binding does not match EmbedProjectIntoGet")
	}
	lget, ok := project.Children()[0].(*plan.LogicalGet)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match EmbedProjectIntoGet")
	}

	return plan.NewLogicalGet(
		lget.Ref(),
		lget.Metadata(),
		lget.Alias(),
		lget.Predicate(),
		project.TargetList(),
		lget.Children()...,
	), nil
}

// EmbedFilterIntoDerivedGet absorbs a filter into the derived get of a
// nested query.
type EmbedFilterIntoDerivedGet struct {
	baseRule
}

var _ Rule = (*EmbedFilterIntoDerivedGet)(nil)

// NewEmbedFilterIntoDerivedGet creates the rule.
func NewEmbedFilterIntoDerivedGet() *EmbedFilterIntoDerivedGet {
	return &EmbedFilterIntoDerivedGet{baseRule{
		ruleType: RuleEmbedFilterIntoDerivedGet,
		pattern: NewPattern(sql.LogicalFilterOp,
			NewPattern(sql.LogicalQueryDerivedGetOp, AnyPattern())),
		promise: PromiseEmbedFilterIntoDerivedGet,
	}}
}

// Check implements the Rule interface.
func (r *EmbedFilterIntoDerivedGet) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *EmbedFilterIntoDerivedGet) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	filter, ok := before.(*plan.LogicalFilter)
	if !ok || len(filter.Children()) != 1 {
		return nil, sql.ErrInvalidArgument.New("binding does not match EmbedFilterIntoDerivedGet")
	}
	derived, ok := filter.Children()[0].(*plan.LogicalQueryDerivedGet)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match EmbedFilterIntoDerivedGet")
	}

	return plan.NewLogicalQueryDerivedGet(
		derived.Alias(),
		filter.Predicate(),
		derived.TargetList(),
		derived.Children()...,
	), nil
}

// EmbedProjectIntoDerivedGet absorbs a projection into the derived get of a
// nested query.
type EmbedProjectIntoDerivedGet struct {
	baseRule
}

var _ Rule = (*EmbedProjectIntoDerivedGet)(nil)

// NewEmbedProjectIntoDerivedGet creates the rule.
func NewEmbedProjectIntoDerivedGet() *EmbedProjectIntoDerivedGet {
	return &EmbedProjectIntoDerivedGet{baseRule{
		ruleType: RuleEmbedProjectIntoDerivedGet,
		pattern: NewPattern(sql.LogicalProjectOp,
			NewPattern(sql.LogicalQueryDerivedGetOp, AnyPattern())),
		promise: PromiseEmbedProjectIntoDerivedGet,
	}}
}

// Check implements the Rule interface.
func (r *EmbedProjectIntoDerivedGet) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *EmbedProjectIntoDerivedGet) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	project, ok := before.(*plan.LogicalProject)
	if !ok || len(project.Children()) != 1 {
		return nil, sql.ErrInvalidArgument.New("binding does not match EmbedProjectIntoDerivedGet")
	}
	derived, ok := project.Children()[0].(*plan.LogicalQueryDerivedGet)
	if !ok {
		return nil, sql.ErrInvalidArgument.New("binding does not match EmbedProjectIntoDerivedGet")
	}

	return plan.NewLogicalQueryDerivedGet(
		derived.Alias(),
		derived.Predicate(),
		project.TargetList(),
		derived.Children()...,
	), nil
}

// PushdownFilterThroughSample moves a filter below the sampler, so the
// predicate prunes frames before they are sampled further down into the
// scan.
type PushdownFilterThroughSample struct {
	baseRule
}

var _ Rule = (*PushdownFilterThroughSample)(nil)

// NewPushdownFilterThroughSample creates the rule.
func NewPushdownFilterThroughSample() *PushdownFilterThroughSample {
	return &PushdownFilterThroughSample{baseRule{
		ruleType: RulePushdownFilterThroughSample,
		pattern: NewPattern(sql.LogicalFilterOp,
			NewPattern(sql.LogicalSampleOp, NewPattern(sql.LogicalGetOp))),
		promise: PromisePushdownFilterThroughSample,
	}}
}

// Check implements the Rule interface.
func (r *PushdownFilterThroughSample) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *PushdownFilterThroughSample) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	filter, ok := before.(*plan.LogicalFilter)
	if !ok || len(filter.Children()) != 1 {
		return nil, sql.ErrInvalidArgument.New("binding does not match PushdownFilterThroughSample")
	}
	sample, ok := filter.Children()[0].(*plan.LogicalSample)
	if !ok || len(sample.Children()) != 1 {
		return nil, sql.ErrInvalidArgument.New("binding does not match PushdownFilterThroughSample")
	}

	newFilter := plan.NewLogicalFilter(filter.Predicate(), sample.Children()[0])
	return plan.NewLogicalSample(sample.SampleFreq(), newFilter), nil
}

// PushdownProjectThroughSample moves a projection below the sampler.
type PushdownProjectThroughSample struct {
	baseRule
}

var _ Rule = (*PushdownProjectThroughSample)(nil)

// NewPushdownProjectThroughSample creates the rule.
func NewPushdownProjectThroughSample() *PushdownProjectThroughSample {
	return &PushdownProjectThroughSample{baseRule{
		ruleType: RulePushdownProjectThroughSample,
		pattern: NewPattern(sql.LogicalProjectOp,
			NewPattern(sql.LogicalSampleOp, NewPattern(sql.LogicalGetOp))),
		promise: PromisePushdownProjectThroughSample,
	}}
}

// Check implements the Rule interface.
func (r *PushdownProjectThroughSample) Check(before sql.Operator, ctx *Context) bool {
	return true
}

// Apply implements the Rule interface.
func (r *PushdownProjectThroughSample) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	project, ok := before.(*plan.LogicalProject)
	if !ok || len(project.Children()) != 1 {
		return nil, sql.ErrInvalidArgument.New("binding does not match PushdownProjectThroughSample")
	}
	sample, ok := project.Children()[0].(*plan.LogicalSample)
	if !ok || len(sample.Children()) != 1 {
		return nil, sql.ErrInvalidArgument.New("binding does not match PushdownProjectThroughSample")
	}

	newProject := plan.NewLogicalProject(project.TargetList(), sample.Children()[0])
	return plan.NewLogicalSample(sample.SampleFreq(), newProject), nil
}
