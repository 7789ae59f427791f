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

// LogicalInnerJoinCommutativity registers the swapped ordering of an inner
// join in the memo:
//
//	LogicalJoin(Inner)        LogicalJoin(Inner)
//	/           \        ->   /               \
//	A            B           B                 A
//
// Applied twice it reproduces the original, which the memo deduplicates.
type LogicalInnerJoinCommutativity struct {
	baseRule
}

var _ Rule = (*LogicalInnerJoinCommutativity)(nil)

// NewLogicalInnerJoinCommutativity creates the rule.
func NewLogicalInnerJoinCommutativity() *LogicalInnerJoinCommutativity {
	return &LogicalInnerJoinCommutativity{baseRule{
		ruleType: RuleLogicalInnerJoinCommutativity,
		pattern:  NewPattern(sql.LogicalJoinOp, AnyPattern(), AnyPattern()),
		promise:  PromiseLogicalInnerJoinCommutativity,
	}}
}

// Check implements the Rule interface.
func (r *LogicalInnerJoinCommutativity) Check(before sql.Operator, ctx *Context) bool {
	join, ok := before.(*plan.LogicalJoin)
	return ok && join.JoinType() == sql.InnerJoin
}

// Apply implements the Rule interface.
func (r *LogicalInnerJoinCommutativity) Apply(before sql.Operator, ctx *Context) (sql.Operator, error) {
	join, ok := before.(*plan.LogicalJoin)
	if !ok || len(join.Children()) != 2 {
		return nil, sql.ErrInvalidArgument.New("binding does not match LogicalInnerJoinCommutativity")
	}

	return plan.NewLogicalJoin(
		join.JoinType(),
		join.Predicate(),
		join.Project(),
		join.Rhs(),
		join.Lhs(),
	), nil
}
