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
	"github.com/vidsql/go-vidsql-server/sql/expression"
)

func tupleValueViews(keys []*expression.TupleValue) []sql.ExprHashNode {
	if len(keys) == 0 {
		return nil
	}
	views := make([]sql.ExprHashNode, len(keys))
	for i, k := range keys {
		views[i] = sql.ExprHashView(k)
	}
	return views
}

func tupleValuesString(keys []*expression.TupleValue) string {
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += k.String()
	}
	return out
}

// HashJoinBuildPlan materializes the hash table over the build side keys.
type HashJoinBuildPlan struct {
	baseOperator
	joinType  sql.JoinType
	buildKeys []*expression.TupleValue
}

var _ sql.Operator = (*HashJoinBuildPlan)(nil)

// NewHashJoinBuildPlan creates the build side of a hash join.
func NewHashJoinBuildPlan(
	joinType sql.JoinType,
	buildKeys []*expression.TupleValue,
	children ...sql.Operator,
) *HashJoinBuildPlan {
	return &HashJoinBuildPlan{
		baseOperator: baseOperator{children: children},
		joinType:     joinType,
		buildKeys:    buildKeys,
	}
}

// Type implements the sql.Operator interface.
func (*HashJoinBuildPlan) Type() sql.OperatorType { return sql.HashJoinBuildOp }

// JoinType returns the join flavor.
func (b *HashJoinBuildPlan) JoinType() sql.JoinType { return b.joinType }

// BuildKeys returns the equi-join keys hashed on the build side.
func (b *HashJoinBuildPlan) BuildKeys() []*expression.TupleValue { return b.buildKeys }

// WithChildren implements the sql.Operator interface.
func (b *HashJoinBuildPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(b, children, 1); err != nil {
		return nil, err
	}
	nb := *b
	nb.baseOperator = baseOperator{children: children}
	return &nb, nil
}

// Attributes implements the sql.Operator interface.
func (b *HashJoinBuildPlan) Attributes() interface{} {
	return struct {
		JoinType sql.JoinType
		Keys     []sql.ExprHashNode
	}{b.joinType, tupleValueViews(b.buildKeys)}
}

func (b *HashJoinBuildPlan) String() string {
	return fmt.Sprintf("HashJoinBuildPlan(keys=[%s])", tupleValuesString(b.buildKeys))
}

// HashJoinProbePlan probes the hash table built by its first child with the
// rows of its second child, evaluating the residual predicate on matches.
type HashJoinProbePlan struct {
	baseOperator
	joinType  sql.JoinType
	probeKeys []*expression.TupleValue
	predicate sql.Expression
	project   []sql.Expression
}

var _ sql.Operator = (*HashJoinProbePlan)(nil)

// NewHashJoinProbePlan creates the probe side of a hash join.
func NewHashJoinProbePlan(
	joinType sql.JoinType,
	probeKeys []*expression.TupleValue,
	predicate sql.Expression,
	project []sql.Expression,
	children ...sql.Operator,
) *HashJoinProbePlan {
	return &HashJoinProbePlan{
		baseOperator: baseOperator{children: children},
		joinType:     joinType,
		probeKeys:    probeKeys,
		predicate:    predicate,
		project:      project,
	}
}

// Type implements the sql.Operator interface.
func (*HashJoinProbePlan) Type() sql.OperatorType { return sql.HashJoinProbeOp }

// JoinType returns the join flavor.
func (p *HashJoinProbePlan) JoinType() sql.JoinType { return p.joinType }

// ProbeKeys returns the equi-join keys looked up on the probe side.
func (p *HashJoinProbePlan) ProbeKeys() []*expression.TupleValue { return p.probeKeys }

// Predicate returns the full join predicate evaluated on matches.
func (p *HashJoinProbePlan) Predicate() sql.Expression { return p.predicate }

// Project returns the join projection list, if any.
func (p *HashJoinProbePlan) Project() []sql.Expression { return p.project }

// WithChildren implements the sql.Operator interface.
func (p *HashJoinProbePlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(p, children, 2); err != nil {
		return nil, err
	}
	np := *p
	np.baseOperator = baseOperator{children: children}
	return &np, nil
}

// Attributes implements the sql.Operator interface.
func (p *HashJoinProbePlan) Attributes() interface{} {
	return struct {
		JoinType  sql.JoinType
		Keys      []sql.ExprHashNode
		Predicate sql.ExprHashNode
		Project   []sql.ExprHashNode
	}{p.joinType, tupleValueViews(p.probeKeys), sql.ExprHashView(p.predicate), exprViews(p.project)}
}

func (p *HashJoinProbePlan) String() string {
	return fmt.Sprintf("HashJoinProbePlan(keys=[%s])", tupleValuesString(p.probeKeys))
}

// LateralJoinPlan evaluates its right child once per row of its left child.
type LateralJoinPlan struct {
	baseOperator
	predicate sql.Expression
	project   []sql.Expression
}

var _ sql.Operator = (*LateralJoinPlan)(nil)

// NewLateralJoinPlan creates a lateral join.
func NewLateralJoinPlan(
	predicate sql.Expression,
	project []sql.Expression,
	children ...sql.Operator,
) *LateralJoinPlan {
	return &LateralJoinPlan{
		baseOperator: baseOperator{children: children},
		predicate:    predicate,
		project:      project,
	}
}

// Type implements the sql.Operator interface.
func (*LateralJoinPlan) Type() sql.OperatorType { return sql.LateralJoinOp }

// Predicate returns the join predicate, if any.
func (l *LateralJoinPlan) Predicate() sql.Expression { return l.predicate }

// Project returns the join projection list, if any.
func (l *LateralJoinPlan) Project() []sql.Expression { return l.project }

// WithChildren implements the sql.Operator interface.
func (l *LateralJoinPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(l, children, 2); err != nil {
		return nil, err
	}
	nl := *l
	nl.baseOperator = baseOperator{children: children}
	return &nl, nil
}

// Attributes implements the sql.Operator interface.
func (l *LateralJoinPlan) Attributes() interface{} {
	return struct {
		Predicate sql.ExprHashNode
		Project   []sql.ExprHashNode
	}{sql.ExprHashView(l.predicate), exprViews(l.project)}
}

func (l *LateralJoinPlan) String() string {
	return fmt.Sprintf("LateralJoinPlan(%v)", l.predicate)
}
