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
	"github.com/sirupsen/logrus"

	"github.com/vidsql/go-vidsql-server/sql"
	"github.com/vidsql/go-vidsql-server/sql/expression"
	"github.com/vidsql/go-vidsql-server/sql/plan"
)

// ExtractPushdownPredicate decomposes the predicate into the fragment that
// restricts only the given column with simple range conjuncts, and the
// remainder. Either result may be nil.
func ExtractPushdownPredicate(
	predicate sql.Expression,
	columnAlias string,
) (pushdown, remaining sql.Expression) {
	if predicate == nil {
		return nil, nil
	}

	if expression.ContainsSingleColumn(predicate, columnAlias) &&
		expression.IsSimplePredicate(predicate) {
		return predicate, nil
	}

	var pushdownPreds, remainingPreds []sql.Expression
	for _, pred := range expression.SplitConjunction(predicate) {
		if expression.ContainsSingleColumn(pred, columnAlias) &&
			expression.IsSimplePredicate(pred) {
			pushdownPreds = append(pushdownPreds, pred)
		} else {
			remainingPreds = append(remainingPreds, pred)
		}
	}

	return expression.JoinAnd(pushdownPreds...), expression.JoinAnd(remainingPreds...)
}

// ExtractEquiJoinKeys picks the equality conjuncts of the join predicate
// whose two column operands reference opposite sides of the join, orienting
// each pair against the (left, right) convention. Non-equi conjuncts are
// ignored; they stay in the residual join predicate.
func ExtractEquiJoinKeys(
	joinPredicate sql.Expression,
	leftAliases, rightAliases []string,
) (leftKeys, rightKeys []*expression.TupleValue) {
	for _, pred := range expression.SplitConjunction(joinPredicate) {
		if pred.Type() != sql.CompareEqual {
			continue
		}
		children := pred.Children()
		if len(children) != 2 {
			continue
		}
		left, lok := children[0].(*expression.TupleValue)
		right, rok := children[1].(*expression.TupleValue)
		if !lok || !rok {
			continue
		}

		switch {
		case containsAlias(leftAliases, left.TableAlias()) &&
			containsAlias(rightAliases, right.TableAlias()):
			leftKeys = append(leftKeys, left)
			rightKeys = append(rightKeys, right)
		case containsAlias(rightAliases, left.TableAlias()) &&
			containsAlias(leftAliases, right.TableAlias()):
			leftKeys = append(leftKeys, right)
			rightKeys = append(rightKeys, left)
		}
	}
	return leftKeys, rightKeys
}

func containsAlias(aliases []string, alias string) bool {
	for _, a := range aliases {
		if a == alias {
			return true
		}
	}
	return false
}

// ExtractFunctionExpressions splits the predicate's conjunction list into
// the conjuncts with a function expression operand and the remaining
// predicate.
func ExtractFunctionExpressions(
	predicate sql.Expression,
) (functionPreds []sql.Expression, remaining sql.Expression) {
	var remainingPreds []sql.Expression
	for _, pred := range expression.SplitConjunction(predicate) {
		if hasFunctionOperand(pred) {
			functionPreds = append(functionPreds, pred)
		} else {
			remainingPreds = append(remainingPreds, pred)
		}
	}
	return functionPreds, expression.JoinAnd(remainingPreds...)
}

func hasFunctionOperand(pred sql.Expression) bool {
	for _, child := range pred.Children() {
		if child.Type() == sql.FunctionExpr {
			return true
		}
	}
	return false
}

// PredicateToFunctionScan turns a predicate conjunct with a function
// expression operand into a function scan plus the predicate rewritten
// against the scan's output column. It returns nils when the predicate has
// no function operand.
func PredicateToFunctionScan(
	predicate sql.Expression,
) (*plan.LogicalFunctionScan, sql.Expression) {
	children := predicate.Children()
	funcIdx := -1
	var funcExpr *expression.Function
	for i, child := range children {
		if f, ok := child.(*expression.Function); ok {
			funcIdx = i
			funcExpr = f
			break
		}
	}
	if funcIdx < 0 {
		logrus.Warn("predicate does not contain a function expression")
		return nil, nil
	}

	rewritten := make([]sql.Expression, len(children))
	copy(rewritten, children)
	rewritten[funcIdx] = expression.FunctionToTupleValue(funcExpr)

	if len(rewritten) != 2 || !predicate.Type().IsComparison() {
		return nil, nil
	}
	return plan.NewLogicalFunctionScan(funcExpr),
		expression.NewComparison(predicate.Type(), rewritten[0], rewritten[1])
}

// SplitProjectionFunctions splits a projection list into its function
// expressions and the other projections.
func SplitProjectionFunctions(
	projectList []sql.Expression,
) (functions []*expression.Function, others []sql.Expression) {
	for _, proj := range projectList {
		if f, ok := proj.(*expression.Function); ok {
			functions = append(functions, f)
		} else {
			others = append(others, proj)
		}
	}
	return functions, others
}

// FunctionExprToFunctionScan lifts a projected function expression into a
// function scan, returning the scan and the column reference that replaces
// the expression in the projection.
func FunctionExprToFunctionScan(
	funcExpr *expression.Function,
) (*plan.LogicalFunctionScan, *expression.TupleValue) {
	return plan.NewLogicalFunctionScan(funcExpr), expression.FunctionToTupleValue(funcExpr)
}
