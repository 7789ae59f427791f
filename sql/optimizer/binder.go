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

// Bind matches the pattern against the group expression and yields every
// concrete binding, depth first. A binding is a freshly materialized
// operator tree: attributes come from the matched expressions, wildcard
// children appear as Dummy leaves carrying their group id. Rules receive
// bindings and never touch memo nodes.
func Bind(m *Memo, p *Pattern, expr *GroupExpression) ([]sql.Operator, error) {
	opr := expr.Operator()
	if p.OperatorType() == sql.DummyOp {
		return []sql.Operator{plan.NewDummy(expr.GroupID())}, nil
	}
	if p.OperatorType() != opr.Type() {
		return nil, nil
	}

	childIDs := expr.Children()
	if len(p.Children()) != len(childIDs) {
		return nil, sql.ErrPatternArityMismatch.New(len(p.Children()), opr.Type(), len(childIDs))
	}

	childBindings := make([][]sql.Operator, len(childIDs))
	for i, childPattern := range p.Children() {
		if childPattern.OperatorType() == sql.DummyOp {
			childBindings[i] = []sql.Operator{plan.NewDummy(childIDs[i])}
			continue
		}

		childGroup := m.GetGroup(childIDs[i])
		if childGroup == nil {
			return nil, sql.ErrInvalidArgument.New("binding reached an unknown group")
		}
		var alternatives []sql.Operator
		for _, childExpr := range childGroup.LogicalExprs() {
			bound, err := Bind(m, childPattern, childExpr)
			if err != nil {
				return nil, err
			}
			alternatives = append(alternatives, bound...)
		}
		if len(alternatives) == 0 {
			return nil, nil
		}
		childBindings[i] = alternatives
	}

	var bindings []sql.Operator
	for _, combination := range operatorCombinations(childBindings) {
		root, err := opr.WithChildren(combination...)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, root)
	}
	return bindings, nil
}
