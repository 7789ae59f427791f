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

// Package plan holds the logical and physical operator trees the optimizer
// transforms. Operators are plain data containers; the executor interprets
// the physical ones.
package plan

import (
	"strings"

	"github.com/vidsql/go-vidsql-server/sql"
)

type baseOperator struct {
	children []sql.Operator
}

func (b *baseOperator) Children() []sql.Operator {
	return b.children
}

// validateChildren admits a detached copy (no children) or one of the listed
// child counts.
func validateChildren(op sql.Operator, children []sql.Operator, arities ...int) error {
	if len(children) == 0 {
		return nil
	}
	for _, n := range arities {
		if len(children) == n {
			return nil
		}
	}
	return sql.ErrInvalidChildrenNumber.New(op.Type(), len(children), arities[0])
}

// exprViews maps a list of expressions to their canonical hash views for use
// inside operator attribute views.
func exprViews(exprs []sql.Expression) []sql.ExprHashNode {
	if len(exprs) == 0 {
		return nil
	}
	views := make([]sql.ExprHashNode, len(exprs))
	for i, e := range exprs {
		views[i] = sql.ExprHashView(e)
	}
	return views
}

func exprListString(exprs []sql.Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// SortField is one ORDER BY entry.
type SortField struct {
	Column sql.Expression
	Order  sql.SortOrder
}

func (f SortField) String() string {
	return f.Column.String() + " " + f.Order.String()
}

func sortFieldViews(fields []SortField) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	views := make([]interface{}, len(fields))
	for i, f := range fields {
		views[i] = struct {
			Column sql.ExprHashNode
			Order  sql.SortOrder
		}{sql.ExprHashView(f.Column), f.Order}
	}
	return views
}

func sortFieldsString(fields []SortField) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}
