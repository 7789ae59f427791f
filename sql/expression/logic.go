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
	"fmt"
	"strings"

	"github.com/vidsql/go-vidsql-server/sql"
)

// Logic connects boolean expressions with AND, OR or NOT.
type Logic struct {
	op       sql.ExpressionType
	children []sql.Expression
}

var _ sql.Expression = (*Logic)(nil)

// NewAnd creates a conjunction of two expressions.
func NewAnd(left, right sql.Expression) *Logic {
	return &Logic{op: sql.LogicalAnd, children: []sql.Expression{left, right}}
}

// NewOr creates a disjunction of two expressions.
func NewOr(left, right sql.Expression) *Logic {
	return &Logic{op: sql.LogicalOr, children: []sql.Expression{left, right}}
}

// NewNot creates a negation.
func NewNot(child sql.Expression) *Logic {
	return &Logic{op: sql.LogicalNot, children: []sql.Expression{child}}
}

// Type implements the sql.Expression interface.
func (l *Logic) Type() sql.ExpressionType { return l.op }

// ReturnType implements the sql.Expression interface.
func (*Logic) ReturnType() sql.Type { return sql.Boolean }

// Children implements the sql.Expression interface.
func (l *Logic) Children() []sql.Expression { return l.children }

// Attributes implements the sql.Expression interface.
func (*Logic) Attributes() interface{} { return nil }

func (l *Logic) String() string {
	if l.op == sql.LogicalNot {
		return fmt.Sprintf("NOT %s", l.children[0])
	}
	parts := make([]string, len(l.children))
	for i, child := range l.children {
		parts[i] = child.String()
	}
	return "(" + strings.Join(parts, " "+l.op.String()+" ") + ")"
}
