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

// PredicatePlan evaluates a predicate against each row of its child.
type PredicatePlan struct {
	baseOperator
	predicate sql.Expression
}

var _ sql.Operator = (*PredicatePlan)(nil)

// NewPredicatePlan creates a predicate evaluation.
func NewPredicatePlan(predicate sql.Expression, children ...sql.Operator) *PredicatePlan {
	return &PredicatePlan{
		baseOperator: baseOperator{children: children},
		predicate:    predicate,
	}
}

// Type implements the sql.Operator interface.
func (*PredicatePlan) Type() sql.OperatorType { return sql.PredicateOp }

// Predicate returns the evaluated predicate.
func (p *PredicatePlan) Predicate() sql.Expression { return p.predicate }

// WithChildren implements the sql.Operator interface.
func (p *PredicatePlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(p, children, 1); err != nil {
		return nil, err
	}
	np := *p
	np.baseOperator = baseOperator{children: children}
	return &np, nil
}

// Attributes implements the sql.Operator interface.
func (p *PredicatePlan) Attributes() interface{} {
	return struct {
		Predicate sql.ExprHashNode
	}{sql.ExprHashView(p.predicate)}
}

func (p *PredicatePlan) String() string {
	return fmt.Sprintf("PredicatePlan(%s)", p.predicate)
}

// ProjectPlan evaluates the target list against each row of its child.
type ProjectPlan struct {
	baseOperator
	targetList []sql.Expression
}

var _ sql.Operator = (*ProjectPlan)(nil)

// NewProjectPlan creates a projection.
func NewProjectPlan(targetList []sql.Expression, children ...sql.Operator) *ProjectPlan {
	return &ProjectPlan{
		baseOperator: baseOperator{children: children},
		targetList:   targetList,
	}
}

// Type implements the sql.Operator interface.
func (*ProjectPlan) Type() sql.OperatorType { return sql.ProjectOp }

// TargetList returns the projected expressions.
func (p *ProjectPlan) TargetList() []sql.Expression { return p.targetList }

// WithChildren implements the sql.Operator interface.
func (p *ProjectPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(p, children, 1); err != nil {
		return nil, err
	}
	np := *p
	np.baseOperator = baseOperator{children: children}
	return &np, nil
}

// Attributes implements the sql.Operator interface.
func (p *ProjectPlan) Attributes() interface{} {
	return struct {
		TargetList []sql.ExprHashNode
	}{exprViews(p.targetList)}
}

func (p *ProjectPlan) String() string {
	return fmt.Sprintf("ProjectPlan(%s)", exprListString(p.targetList))
}

// UniformSamplePlan keeps every n-th frame of its child.
type UniformSamplePlan struct {
	baseOperator
	sampleFreq *expression.Constant
}

var _ sql.Operator = (*UniformSamplePlan)(nil)

// NewUniformSamplePlan creates a uniform sampler.
func NewUniformSamplePlan(sampleFreq *expression.Constant, children ...sql.Operator) *UniformSamplePlan {
	return &UniformSamplePlan{
		baseOperator: baseOperator{children: children},
		sampleFreq:   sampleFreq,
	}
}

// Type implements the sql.Operator interface.
func (*UniformSamplePlan) Type() sql.OperatorType { return sql.UniformSampleOp }

// SampleFreq returns the sampling frequency.
func (s *UniformSamplePlan) SampleFreq() *expression.Constant { return s.sampleFreq }

// WithChildren implements the sql.Operator interface.
func (s *UniformSamplePlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(s, children, 1); err != nil {
		return nil, err
	}
	ns := *s
	ns.baseOperator = baseOperator{children: children}
	return &ns, nil
}

// Attributes implements the sql.Operator interface.
func (s *UniformSamplePlan) Attributes() interface{} {
	return struct {
		SampleFreq sql.ExprHashNode
	}{sql.ExprHashView(s.sampleFreq)}
}

func (s *UniformSamplePlan) String() string {
	return fmt.Sprintf("UniformSamplePlan(%s)", s.sampleFreq)
}

// UnionPlan concatenates its two children.
type UnionPlan struct {
	baseOperator
	all bool
}

var _ sql.Operator = (*UnionPlan)(nil)

// NewUnionPlan creates a union.
func NewUnionPlan(all bool, children ...sql.Operator) *UnionPlan {
	return &UnionPlan{
		baseOperator: baseOperator{children: children},
		all:          all,
	}
}

// Type implements the sql.Operator interface.
func (*UnionPlan) Type() sql.OperatorType { return sql.UnionOp }

// All reports whether duplicate rows are kept.
func (u *UnionPlan) All() bool { return u.all }

// WithChildren implements the sql.Operator interface.
func (u *UnionPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(u, children, 2); err != nil {
		return nil, err
	}
	nu := *u
	nu.baseOperator = baseOperator{children: children}
	return &nu, nil
}

// Attributes implements the sql.Operator interface.
func (u *UnionPlan) Attributes() interface{} {
	return struct {
		All bool
	}{u.all}
}

func (u *UnionPlan) String() string {
	return fmt.Sprintf("UnionPlan(all=%t)", u.all)
}

// OrderByPlan sorts the rows of its child.
type OrderByPlan struct {
	baseOperator
	orderByList []SortField
}

var _ sql.Operator = (*OrderByPlan)(nil)

// NewOrderByPlan creates a sort.
func NewOrderByPlan(orderByList []SortField, children ...sql.Operator) *OrderByPlan {
	return &OrderByPlan{
		baseOperator: baseOperator{children: children},
		orderByList:  orderByList,
	}
}

// Type implements the sql.Operator interface.
func (*OrderByPlan) Type() sql.OperatorType { return sql.OrderByOp }

// OrderByList returns the sort fields.
func (o *OrderByPlan) OrderByList() []SortField { return o.orderByList }

// WithChildren implements the sql.Operator interface.
func (o *OrderByPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(o, children, 1); err != nil {
		return nil, err
	}
	no := *o
	no.baseOperator = baseOperator{children: children}
	return &no, nil
}

// Attributes implements the sql.Operator interface.
func (o *OrderByPlan) Attributes() interface{} {
	return struct {
		OrderBy []interface{}
	}{sortFieldViews(o.orderByList)}
}

func (o *OrderByPlan) String() string {
	return fmt.Sprintf("OrderByPlan(%s)", sortFieldsString(o.orderByList))
}

// LimitPlan truncates its child to the first limitCount rows.
type LimitPlan struct {
	baseOperator
	limitCount *expression.Constant
}

var _ sql.Operator = (*LimitPlan)(nil)

// NewLimitPlan creates a limit.
func NewLimitPlan(limitCount *expression.Constant, children ...sql.Operator) *LimitPlan {
	return &LimitPlan{
		baseOperator: baseOperator{children: children},
		limitCount:   limitCount,
	}
}

// Type implements the sql.Operator interface.
func (*LimitPlan) Type() sql.OperatorType { return sql.LimitOp }

// LimitCount returns the row count to keep.
func (l *LimitPlan) LimitCount() *expression.Constant { return l.limitCount }

// WithChildren implements the sql.Operator interface.
func (l *LimitPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(l, children, 1); err != nil {
		return nil, err
	}
	nl := *l
	nl.baseOperator = baseOperator{children: children}
	return &nl, nil
}

// Attributes implements the sql.Operator interface.
func (l *LimitPlan) Attributes() interface{} {
	return struct {
		LimitCount sql.ExprHashNode
	}{sql.ExprHashView(l.limitCount)}
}

func (l *LimitPlan) String() string {
	return fmt.Sprintf("LimitPlan(%s)", l.limitCount)
}

// FunctionScanPlan evaluates a function expression as a row source.
type FunctionScanPlan struct {
	baseOperator
	funcExpr *expression.Function
}

var _ sql.Operator = (*FunctionScanPlan)(nil)

// NewFunctionScanPlan creates a function scan.
func NewFunctionScanPlan(funcExpr *expression.Function) *FunctionScanPlan {
	return &FunctionScanPlan{funcExpr: funcExpr}
}

// Type implements the sql.Operator interface.
func (*FunctionScanPlan) Type() sql.OperatorType { return sql.FunctionScanOp }

// FuncExpr returns the scanned function expression.
func (f *FunctionScanPlan) FuncExpr() *expression.Function { return f.funcExpr }

// WithChildren implements the sql.Operator interface.
func (f *FunctionScanPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(f, children, 0); err != nil {
		return nil, err
	}
	nf := *f
	nf.baseOperator = baseOperator{children: children}
	return &nf, nil
}

// Attributes implements the sql.Operator interface.
func (f *FunctionScanPlan) Attributes() interface{} {
	return struct {
		FuncExpr sql.ExprHashNode
	}{sql.ExprHashView(f.funcExpr)}
}

func (f *FunctionScanPlan) String() string {
	return fmt.Sprintf("FunctionScanPlan(%s)", f.funcExpr)
}
