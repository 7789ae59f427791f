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

import "github.com/vidsql/go-vidsql-server/sql"

// RuleType identifies every rule of the library. The delimiters split the
// enum into the rewrite, transformation and implementation phases; the rule
// exploration logic depends on this ordering.
type RuleType int

const (
	InvalidRule RuleType = iota

	// Rewrite rules (logical -> logical).
	RuleEmbedFilterIntoGet
	RuleEmbedFilterIntoDerivedGet
	RulePushdownFilterThroughSample
	RulePushdownProjectThroughSample
	RuleEmbedProjectIntoDerivedGet
	RuleEmbedProjectIntoGet
	RewriteDelimiter

	// Transformation rules (logical -> logical).
	RuleLogicalInnerJoinCommutativity
	// RulePullUDFFromFilterToCrossApply, RuleMergeUDFAcrossCrossApply and
	// RuleReorderUDFAcrossCrossApply are reserved for the UDF decomposition
	// family; no rule implements them yet.
	RulePullUDFFromFilterToCrossApply
	RuleMergeUDFAcrossCrossApply
	RuleReorderUDFAcrossCrossApply
	TransformationDelimiter

	// Implementation rules (logical -> physical).
	RuleLogicalUnionToPhysical
	RuleLogicalOrderByToPhysical
	RuleLogicalLimitToPhysical
	RuleLogicalInsertToPhysical
	RuleLogicalLoadToPhysical
	RuleLogicalUploadToPhysical
	RuleLogicalCreateToPhysical
	RuleLogicalRenameToPhysical
	RuleLogicalDropToPhysical
	RuleLogicalCreateUDFToPhysical
	RuleLogicalMaterializedViewToPhysical
	RuleLogicalGetToSeqScan
	RuleLogicalSampleToUniformSample
	RuleLogicalDerivedGetToPhysical
	RuleLogicalLateralJoinToPhysical
	RuleLogicalJoinToPhysicalHashJoin
	RuleLogicalFunctionScanToPhysical
	RuleLogicalFilterToPhysical
	RuleLogicalProjectToPhysical
	RuleLogicalShowToPhysical
	RuleLogicalDropUDFToPhysical
	ImplementationDelimiter
)

// IsRewrite reports whether the rule belongs to the rewrite phase.
func (t RuleType) IsRewrite() bool {
	return t > InvalidRule && t < RewriteDelimiter
}

// IsTransformation reports whether the rule belongs to the transformation
// phase.
func (t RuleType) IsTransformation() bool {
	return t > RewriteDelimiter && t < TransformationDelimiter
}

// IsImplementation reports whether the rule belongs to the implementation
// phase.
func (t RuleType) IsImplementation() bool {
	return t > TransformationDelimiter && t < ImplementationDelimiter
}

// Promise orders rule application: higher wins. Every rewrite promise is
// greater than every transformation promise, which in turn is greater than
// PromiseImplementationDelimiter and every implementation promise.
type Promise int

const (
	PromiseInvalid Promise = iota

	// Implementation rules.
	PromiseLogicalUnionToPhysical
	PromiseLogicalMaterializedViewToPhysical
	PromiseLogicalOrderByToPhysical
	PromiseLogicalLimitToPhysical
	PromiseLogicalInsertToPhysical
	PromiseLogicalRenameToPhysical
	PromiseLogicalDropToPhysical
	PromiseLogicalLoadToPhysical
	PromiseLogicalUploadToPhysical
	PromiseLogicalCreateToPhysical
	PromiseLogicalCreateUDFToPhysical
	PromiseLogicalSampleToUniformSample
	PromiseLogicalGetToSeqScan
	PromiseLogicalDerivedGetToPhysical
	PromiseLogicalLateralJoinToPhysical
	PromiseLogicalJoinToPhysicalHashJoin
	PromiseLogicalFunctionScanToPhysical
	PromiseLogicalFilterToPhysical
	PromiseLogicalProjectToPhysical
	PromiseLogicalShowToPhysical
	PromiseLogicalDropUDFToPhysical
	PromiseImplementationDelimiter

	// Transformation rules.
	PromiseLogicalInnerJoinCommutativity

	// Rewrite rules.
	PromiseEmbedFilterIntoGet
	PromiseEmbedProjectIntoGet
	PromiseEmbedFilterIntoDerivedGet
	PromiseEmbedProjectIntoDerivedGet
	PromisePushdownFilterThroughSample
	PromisePushdownProjectThroughSample
)

// Rule is one rewrite of the rule library. Rules are stateless and
// immutable; the library holds a single instance of each.
type Rule interface {
	// RuleType returns the identity of the rule.
	RuleType() RuleType
	// Pattern returns the structural template the rule matches.
	Pattern() *Pattern
	// Promise returns the application priority of the rule.
	Promise() Promise
	// Check decides whether the rule applies to the bound operator tree. A
	// negative check is not an error; the rule is silently skipped.
	Check(before sql.Operator, ctx *Context) bool
	// Apply transforms the bound operator tree into its replacement. It must
	// only be called with a binding that matched the pattern and passed
	// Check; a foreign tree yields ErrInvalidArgument. Returning the input
	// unchanged leaves the memo untouched.
	Apply(before sql.Operator, ctx *Context) (sql.Operator, error)
}

type baseRule struct {
	ruleType RuleType
	pattern  *Pattern
	promise  Promise
}

func (r *baseRule) RuleType() RuleType { return r.ruleType }
func (r *baseRule) Pattern() *Pattern  { return r.pattern }
func (r *baseRule) Promise() Promise   { return r.promise }

// topMatches reports whether the operator kind matches the root of the
// rule's pattern.
func topMatches(r Rule, opr sql.Operator) bool {
	return r.Pattern().OperatorType() == opr.Type()
}
