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

// Arithmetic combines two expressions with an arithmetic operator.
type Arithmetic struct {
	op          sql.ExpressionType
	left, right sql.Expression
}

var _ sql.Expression = (*Arithmetic)(nil)

// NewArithmetic creates an arithmetic expression with the given operator
// tag. The tag must satisfy ExpressionType.IsArithmetic.
func NewArithmetic(op sql.ExpressionType, left, right sql.Expression) *Arithmetic {
	return &Arithmetic{op: op, left: left, right: right}
}

// NewPlus creates an addition.
func NewPlus(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(sql.ArithmeticAdd, left, right)
}

// NewMinus creates a subtraction.
func NewMinus(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(sql.ArithmeticSubtract, left, right)
}

// NewMult creates a multiplication.
func NewMult(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(sql.ArithmeticMultiply, left, right)
}

// NewDiv creates a division.
func NewDiv(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(sql.ArithmeticDivide, left, right)
}

// NewMod creates a modulo operation.
func NewMod(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(sql.ArithmeticModulo, left, right)
}

// Type implements the sql.Expression interface.
func (a *Arithmetic) Type() sql.ExpressionType { return a.op }

// ReturnType implements the sql.Expression interface. The result type
// follows the left operand; type refinement is the binder's concern, not the
// optimizer's.
func (a *Arithmetic) ReturnType() sql.Type { return a.left.ReturnType() }

// Children implements the sql.Expression interface.
func (a *Arithmetic) Children() []sql.Expression {
	return []sql.Expression{a.left, a.right}
}

// Attributes implements the sql.Expression interface.
func (*Arithmetic) Attributes() interface{} { return nil }

func (a *Arithmetic) String() string {
	return fmt.Sprintf("(%s %s %s)", a.left, a.op, a.right)
}
