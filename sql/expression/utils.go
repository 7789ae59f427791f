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

package expression

import (
	"github.com/vidsql/go-vidsql-server/sql"
)

// SplitConjunction flattens a tree of AND expressions into its conjuncts. A
// nil expression yields nil, any non-AND expression yields itself.
func SplitConjunction(expr sql.Expression) []sql.Expression {
	if expr == nil {
		return nil
	}
	if expr.Type() != sql.LogicalAnd {
		return []sql.Expression{expr}
	}

	var conjuncts []sql.Expression
	for _, child := range expr.Children() {
		conjuncts = append(conjuncts, SplitConjunction(child)...)
	}
	return conjuncts
}

// JoinAnd rebuilds a left-deep conjunction out of the given expressions,
// skipping nils. It returns nil when nothing remains and the expression
// itself when only one remains.
func JoinAnd(exprs ...sql.Expression) sql.Expression {
	var filtered []sql.Expression
	for _, e := range exprs {
		if e != nil {
			filtered = append(filtered, e)
		}
	}
	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	}

	result := NewAnd(filtered[0], filtered[1])
	for _, e := range filtered[2:] {
		result = NewAnd(result, e)
	}
	return result
}

// ContainsSingleColumn reports whether every column reference in the
// expression resolves to the given qualified column name, and at least one
// such reference exists.
func ContainsSingleColumn(expr sql.Expression, column string) bool {
	if expr == nil {
		return false
	}
	found, foreign := false, false
	sql.Inspect(expr, func(e sql.Expression) bool {
		if tv, ok := e.(*TupleValue); ok {
			if tv.QualifiedName() == column {
				found = true
			} else {
				foreign = true
			}
		}
		return true
	})
	return found && !foreign
}

// IsSimplePredicate reports whether the expression is a simple range
// predicate: a comparison between a column reference and a constant, a
// conjunction of such, or a disjunction of such.
func IsSimplePredicate(expr sql.Expression) bool {
	if expr == nil {
		return false
	}
	switch t := expr.Type(); {
	case t.IsComparison():
		children := expr.Children()
		if len(children) != 2 {
			return false
		}
		return isColumnConstantPair(children[0], children[1])
	case t == sql.LogicalAnd || t == sql.LogicalOr:
		for _, child := range expr.Children() {
			if !IsSimplePredicate(child) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isColumnConstantPair(a, b sql.Expression) bool {
	if a.Type() == sql.TupleValueExpr && b.Type() == sql.ConstantExpr {
		return true
	}
	return a.Type() == sql.ConstantExpr && b.Type() == sql.TupleValueExpr
}

// FunctionToTupleValue converts a function call used as a row source into
// the column reference its output is visible under.
func FunctionToTupleValue(f *Function) *TupleValue {
	return NewTupleValueWithType(f.Alias(), f.Name(), f.ReturnType())
}
