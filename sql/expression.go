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

package sql

import (
	"fmt"

	"github.com/mitchellh/hashstructure"
)

// ExpressionType tags every scalar expression variant. The set is closed;
// consumers dispatch on the tag rather than on the concrete type.
type ExpressionType byte

const (
	// InvalidExpr is the zero tag and matches no expression.
	InvalidExpr ExpressionType = iota

	// TupleValueExpr is a column reference qualified by a table alias.
	TupleValueExpr
	// ConstantExpr is a literal value.
	ConstantExpr

	// Comparison operators.
	CompareEqual
	CompareNotEqual
	CompareGreater
	CompareLesser
	CompareGEQ
	CompareLEQ

	// Logical connectives.
	LogicalAnd
	LogicalOr
	LogicalNot

	// Arithmetic operators.
	ArithmeticAdd
	ArithmeticSubtract
	ArithmeticMultiply
	ArithmeticDivide
	ArithmeticModulo

	// FunctionExpr is a call to a user defined function.
	FunctionExpr

	// Aggregations.
	AggregationCount
	AggregationSum
	AggregationAvg
	AggregationMin
	AggregationMax

	// WindowFunctionExpr is an aggregation over an ordered frame of rows.
	WindowFunctionExpr
)

// IsComparison reports whether the tag is one of the comparison operators.
func (t ExpressionType) IsComparison() bool {
	return t >= CompareEqual && t <= CompareLEQ
}

// IsArithmetic reports whether the tag is one of the arithmetic operators.
func (t ExpressionType) IsArithmetic() bool {
	return t >= ArithmeticAdd && t <= ArithmeticModulo
}

// IsAggregation reports whether the tag is one of the aggregations.
func (t ExpressionType) IsAggregation() bool {
	return t >= AggregationCount && t <= AggregationMax
}

func (t ExpressionType) String() string {
	switch t {
	case TupleValueExpr:
		return "TupleValue"
	case ConstantExpr:
		return "Constant"
	case CompareEqual:
		return "="
	case CompareNotEqual:
		return "!="
	case CompareGreater:
		return ">"
	case CompareLesser:
		return "<"
	case CompareGEQ:
		return ">="
	case CompareLEQ:
		return "<="
	case LogicalAnd:
		return "AND"
	case LogicalOr:
		return "OR"
	case LogicalNot:
		return "NOT"
	case ArithmeticAdd:
		return "+"
	case ArithmeticSubtract:
		return "-"
	case ArithmeticMultiply:
		return "*"
	case ArithmeticDivide:
		return "/"
	case ArithmeticModulo:
		return "%"
	case FunctionExpr:
		return "Function"
	case AggregationCount:
		return "COUNT"
	case AggregationSum:
		return "SUM"
	case AggregationAvg:
		return "AVG"
	case AggregationMin:
		return "MIN"
	case AggregationMax:
		return "MAX"
	case WindowFunctionExpr:
		return "WindowFunction"
	default:
		return fmt.Sprintf("ExpressionType(%d)", t)
	}
}

// Expression is a node of a scalar expression tree. Expressions are value
// types: equality is structural and every expression has a stable content
// hash.
type Expression interface {
	fmt.Stringer
	// Type returns the variant tag of the expression.
	Type() ExpressionType
	// ReturnType returns the type tag of the value the expression yields.
	ReturnType() Type
	// Children returns the ordered child expressions.
	Children() []Expression
	// Attributes returns the non-child attributes participating in the
	// content hash of the expression. The returned value must only contain
	// exported fields of basic types.
	Attributes() interface{}
}

// Visitor visits expression nodes of an expression tree.
type Visitor interface {
	// Visit method is invoked for each expression encountered by Walk. If
	// the result is nil, children are not visited.
	Visit(expr Expression) Visitor
}

// Walk traverses the expression tree in depth-first order. It starts by
// calling v.Visit(expr); expr must not be nil. If the visitor returned by
// v.Visit(expr) is not nil, Walk is invoked recursively with the returned
// visitor for each child of the expression, followed by a call of
// v.Visit(nil) to the returned visitor.
func Walk(v Visitor, expr Expression) {
	if v = v.Visit(expr); v == nil {
		return
	}

	for _, child := range expr.Children() {
		Walk(v, child)
	}

	v.Visit(nil)
}

type inspector func(Expression) bool

func (f inspector) Visit(expr Expression) Visitor {
	if f(expr) {
		return f
	}
	return nil
}

// Inspect traverses the expression tree in depth-first order: it starts by
// calling f(expr); expr must not be nil. If f returns true, Inspect invokes
// f recursively for each of the children of expr, followed by a call of
// f(nil).
func Inspect(expr Expression, f func(Expression) bool) {
	Walk(inspector(f), expr)
}

// ExprHashNode is the canonical content view of one expression node. It only
// contains exported fields of basic types, so it can be fed to the structure
// hasher directly or embedded in an operator's attribute view.
type ExprHashNode struct {
	Type     ExpressionType
	Ret      Type
	Attrs    interface{}
	Children []ExprHashNode
}

// ExprHashView builds the canonical content view of the expression tree
// rooted at e. A nil expression yields the zero node.
func ExprHashView(e Expression) ExprHashNode {
	if e == nil {
		return ExprHashNode{}
	}
	children := e.Children()
	node := ExprHashNode{
		Type:  e.Type(),
		Ret:   e.ReturnType(),
		Attrs: e.Attributes(),
	}
	if len(children) > 0 {
		node.Children = make([]ExprHashNode, len(children))
		for i, child := range children {
			node.Children[i] = ExprHashView(child)
		}
	}
	return node
}

// HashExpression returns the stable content hash of the expression tree.
// Structurally equal expressions hash to the same value.
func HashExpression(e Expression) (uint64, error) {
	h, err := hashstructure.Hash(ExprHashView(e), nil)
	if err != nil {
		return 0, ErrHashFailure.New(e)
	}
	return h, nil
}

// ExpressionsEqual reports whether two expressions are structurally equal,
// comparing kind, attributes and children recursively.
func ExpressionsEqual(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ah, err := HashExpression(a)
	if err != nil {
		return false
	}
	bh, err := HashExpression(b)
	if err != nil {
		return false
	}
	return ah == bh
}
