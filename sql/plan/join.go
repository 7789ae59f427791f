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
	"fmt"

	"github.com/vidsql/go-vidsql-server/sql"
)

// LogicalJoin combines two children under a join predicate. The join project
// list carries the columns requested from the joined relation, when the
// binder could narrow them.
type LogicalJoin struct {
	baseOperator
	joinType  sql.JoinType
	predicate sql.Expression
	project   []sql.Expression
}

var _ sql.Operator = (*LogicalJoin)(nil)

// NewLogicalJoin creates a join of the two children.
func NewLogicalJoin(
	joinType sql.JoinType,
	predicate sql.Expression,
	project []sql.Expression,
	children ...sql.Operator,
) *LogicalJoin {
	return &LogicalJoin{
		baseOperator: baseOperator{children: children},
		joinType:     joinType,
		predicate:    predicate,
		project:      project,
	}
}

// Type implements the sql.Operator interface.
func (*LogicalJoin) Type() sql.OperatorType { return sql.LogicalJoinOp }

// JoinType returns the join flavor.
func (j *LogicalJoin) JoinType() sql.JoinType { return j.joinType }

// Predicate returns the join predicate, if any.
func (j *LogicalJoin) Predicate() sql.Expression { return j.predicate }

// Project returns the join projection list, if any.
func (j *LogicalJoin) Project() []sql.Expression { return j.project }

// Lhs returns the left child.
func (j *LogicalJoin) Lhs() sql.Operator {
	if len(j.children) < 1 {
		return nil
	}
	return j.children[0]
}

// Rhs returns the right child.
func (j *LogicalJoin) Rhs() sql.Operator {
	if len(j.children) < 2 {
		return nil
	}
	return j.children[1]
}

// WithChildren implements the sql.Operator interface.
func (j *LogicalJoin) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(j, children, 2); err != nil {
		return nil, err
	}
	nj := *j
	nj.baseOperator = baseOperator{children: children}
	return &nj, nil
}

// Attributes implements the sql.Operator interface.
func (j *LogicalJoin) Attributes() interface{} {
	return struct {
		JoinType  sql.JoinType
		Predicate sql.ExprHashNode
		Project   []sql.ExprHashNode
	}{j.joinType, sql.ExprHashView(j.predicate), exprViews(j.project)}
}

func (j *LogicalJoin) String() string {
	return fmt.Sprintf("LogicalJoin(%s, %s)", j.joinType, j.predicate)
}
