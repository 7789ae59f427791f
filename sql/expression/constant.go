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

// Constant is a literal value.
type Constant struct {
	value   interface{}
	valType sql.Type
}

var _ sql.Expression = (*Constant)(nil)

// NewConstant creates a literal of the given type.
func NewConstant(value interface{}, valType sql.Type) *Constant {
	return &Constant{value: value, valType: valType}
}

// Type implements the sql.Expression interface.
func (*Constant) Type() sql.ExpressionType { return sql.ConstantExpr }

// ReturnType implements the sql.Expression interface.
func (c *Constant) ReturnType() sql.Type { return c.valType }

// Children implements the sql.Expression interface.
func (*Constant) Children() []sql.Expression { return nil }

// Value returns the literal value.
func (c *Constant) Value() interface{} { return c.value }

// Attributes implements the sql.Expression interface.
func (c *Constant) Attributes() interface{} {
	return struct {
		Value interface{}
	}{c.value}
}

func (c *Constant) String() string {
	return fmt.Sprintf("%v", c.value)
}
