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
	"github.com/vidsql/go-vidsql-server/sql/plan"
)

// Memo stores the forest of equivalent sub-expressions discovered during one
// optimization. Expressions are deduplicated through a fingerprint index, so
// identical sub-trees share one canonical representative. A memo belongs to
// a single optimization and is not safe for concurrent use.
type Memo struct {
	groups     []*Group
	groupExprs map[uint64]*GroupExpression
}

// NewMemo creates an empty memo.
func NewMemo() *Memo {
	return &Memo{groupExprs: make(map[uint64]*GroupExpression)}
}

// NumGroups returns the number of allocated groups.
func (m *Memo) NumGroups() int { return len(m.groups) }

// NumExprs returns the number of indexed group expressions.
func (m *Memo) NumExprs() int { return len(m.groupExprs) }

// FindDuplicate looks up a previously inserted expression with the same
// fingerprint, or nil.
func (m *Memo) FindDuplicate(expr *GroupExpression) *GroupExpression {
	if dup, ok := m.groupExprs[expr.Fingerprint()]; ok {
		return dup
	}
	return nil
}

// GetGroup returns the group with the given id, or nil for an id the memo
// never allocated.
func (m *Memo) GetGroup(id sql.GroupID) *Group {
	if id < 0 || int(id) >= len(m.groups) {
		logrus.WithField("group", id).Error("missing group id")
		return nil
	}
	return m.groups[id]
}

// tableAliases collects the aliases visible in the expression: the union of
// the children's aliases plus, for the get operators, their own alias.
func (m *Memo) tableAliases(expr *GroupExpression) []string {
	var aliases []string
	for _, childID := range expr.Children() {
		if child := m.GetGroup(childID); child != nil {
			aliases = append(aliases, child.Aliases()...)
		}
	}
	switch opr := expr.Operator().(type) {
	case *plan.LogicalGet:
		aliases = append(aliases, opr.Alias())
	case *plan.LogicalQueryDerivedGet:
		aliases = append(aliases, opr.Alias())
	}
	return aliases
}

// insertExpr files the expression into the group and the fingerprint index.
func (m *Memo) insertExpr(expr *GroupExpression, groupID sql.GroupID) {
	expr.groupID = groupID
	m.groups[groupID].addExpr(expr)
	m.groupExprs[expr.Fingerprint()] = expr
}

// AddGroupExpression adds the expression to the memo.
//
// When groupID is UndefinedGroupID a new group is allocated for the
// expression, with aliases computed from its children and operator;
// otherwise the expression joins the named group. With checkDuplicate set,
// an already indexed expression with the same fingerprint is returned as is,
// without any insertion. Passing a concrete groupID together with
// checkDuplicate is an invalid combination.
func (m *Memo) AddGroupExpression(
	expr *GroupExpression,
	groupID sql.GroupID,
	checkDuplicate bool,
) (*GroupExpression, error) {
	if groupID != sql.UndefinedGroupID && checkDuplicate {
		return nil, sql.ErrInvalidArgument.New("both group_id and check_duplicate are set")
	}

	if checkDuplicate {
		if dup := m.FindDuplicate(expr); dup != nil {
			return dup, nil
		}
	}

	if groupID == sql.UndefinedGroupID {
		groupID = sql.GroupID(len(m.groups))
		m.groups = append(m.groups, NewGroup(groupID, m.tableAliases(expr)))
	} else if int(groupID) >= len(m.groups) {
		return nil, sql.ErrInvalidArgument.New("group id out of bounds")
	}

	m.insertExpr(expr, groupID)
	return expr, nil
}

// EraseGroup removes every logical and physical expression of the group
// from the fingerprint index and clears the group. The group id stays
// allocated but empty; rewrites use this to supersede a whole group.
func (m *Memo) EraseGroup(groupID sql.GroupID) {
	group := m.GetGroup(groupID)
	if group == nil {
		return
	}
	for _, expr := range group.LogicalExprs() {
		delete(m.groupExprs, expr.Fingerprint())
	}
	for _, expr := range group.PhysicalExprs() {
		delete(m.groupExprs, expr.Fingerprint())
	}
	group.clear()
}

// EnumerateLogicalPlans materializes every logical operator tree reachable
// from the group: for each logical expression, the cartesian product of the
// recursively enumerated child plans. Intended for debugging and EXPLAIN
// output.
func (m *Memo) EnumerateLogicalPlans(groupID sql.GroupID) ([]sql.Operator, error) {
	group := m.GetGroup(groupID)
	if group == nil {
		return nil, sql.ErrInvalidArgument.New("group id out of bounds")
	}

	var plans []sql.Operator
	for _, expr := range group.LogicalExprs() {
		childPlans := make([][]sql.Operator, len(expr.Children()))
		for i, childID := range expr.Children() {
			var err error
			childPlans[i], err = m.EnumerateLogicalPlans(childID)
			if err != nil {
				return nil, err
			}
		}

		for _, combination := range operatorCombinations(childPlans) {
			root, err := expr.Operator().WithChildren(combination...)
			if err != nil {
				return nil, err
			}
			plans = append(plans, root)
		}
	}
	return plans, nil
}

// operatorCombinations returns the cartesian product of the alternative
// lists, one pick per list. No lists yields one empty combination.
func operatorCombinations(lists [][]sql.Operator) [][]sql.Operator {
	combinations := [][]sql.Operator{nil}
	for _, alternatives := range lists {
		if len(alternatives) == 0 {
			return nil
		}
		var next [][]sql.Operator
		for _, prefix := range combinations {
			for _, alt := range alternatives {
				combination := make([]sql.Operator, len(prefix), len(prefix)+1)
				copy(combination, prefix)
				next = append(next, append(combination, alt))
			}
		}
		combinations = next
	}
	return combinations
}
