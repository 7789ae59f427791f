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

	"github.com/vidsql/go-vidsql-server/sql"
)

// Comparison compares two expressions with one of the six comparison
// operators.
type Comparison struct {
	op          sql.ExpressionType
	left, right sql.Expression
}

var _ sql.Expression = (*Comparison)(nil)

// NewComparison creates a comparison with the given operator tag. The tag
// must satisfy ExpressionType.IsComparison.
func NewComparison(op sql.ExpressionType, left, right sql.Expression) *Comparison {
	return &Comparison{op: op, left: left, right: right}
}

// NewEquals creates an equality comparison.
func NewEquals(left, right sql.Expression) *Comparison {
	return NewComparison(sql.CompareEqual, left, right)
}

// NewNotEquals creates an inequality comparison.
func NewNotEquals(left, right sql.Expression) *Comparison {
	return NewComparison(sql.CompareNotEqual, left, right)
}

// NewGreaterThan creates a greater-than comparison.
func NewGreaterThan(left, right sql.Expression) *Comparison {
	return NewComparison(sql.CompareGreater, left, right)
}

// NewLessThan creates a less-than comparison.
func NewLessThan(left, right sql.Expression) *Comparison {
	return NewComparison(sql.CompareLesser, left, right)
}

// NewGreaterThanOrEqual creates a greater-or-equal comparison.
func NewGreaterThanOrEqual(left, right sql.Expression) *Comparison {
	return NewComparison(sql.CompareGEQ, left, right)
}

// NewLessThanOrEqual creates a less-or-equal comparison.
func NewLessThanOrEqual(left, right sql.Expression) *Comparison {
	return NewComparison(sql.CompareLEQ, left, right)
}

// Type implements the sql.Expression interface.
func (c *Comparison) Type() sql.ExpressionType { return c.op }

// ReturnType implements the sql.Expression interface.
func (*Comparison) ReturnType() sql.Type { return sql.Boolean }

// Children implements the sql.Expression interface.
func (c *Comparison) Children() []sql.Expression {
	return []sql.Expression{c.left, c.right}
}

// Left returns the left operand.
func (c *Comparison) Left() sql.Expression { return c.left }

// Right returns the right operand.
func (c *Comparison) Right() sql.Expression { return c.right }

// Attributes implements the sql.Expression interface.
func (*Comparison) Attributes() interface{} { return nil }

func (c *Comparison) String() string {
	return fmt.Sprintf("(%s %s %s)", c.left, c.op, c.right)
}
