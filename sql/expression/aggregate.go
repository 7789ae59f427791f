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

// Aggregate applies one of the aggregation functions to its child.
type Aggregate struct {
	op    sql.ExpressionType
	child sql.Expression
}

var _ sql.Expression = (*Aggregate)(nil)

// NewAggregate creates an aggregation with the given tag. The tag must
// satisfy ExpressionType.IsAggregation.
func NewAggregate(op sql.ExpressionType, child sql.Expression) *Aggregate {
	return &Aggregate{op: op, child: child}
}

// NewCount creates a COUNT aggregation.
func NewCount(child sql.Expression) *Aggregate {
	return NewAggregate(sql.AggregationCount, child)
}

// NewSum creates a SUM aggregation.
func NewSum(child sql.Expression) *Aggregate {
	return NewAggregate(sql.AggregationSum, child)
}

// NewAvg creates an AVG aggregation.
func NewAvg(child sql.Expression) *Aggregate {
	return NewAggregate(sql.AggregationAvg, child)
}

// NewMin creates a MIN aggregation.
func NewMin(child sql.Expression) *Aggregate {
	return NewAggregate(sql.AggregationMin, child)
}

// NewMax creates a MAX aggregation.
func NewMax(child sql.Expression) *Aggregate {
	return NewAggregate(sql.AggregationMax, child)
}

// Type implements the sql.Expression interface.
func (a *Aggregate) Type() sql.ExpressionType { return a.op }

// ReturnType implements the sql.Expression interface.
func (a *Aggregate) ReturnType() sql.Type {
	if a.op == sql.AggregationCount {
		return sql.Integer
	}
	return a.child.ReturnType()
}

// Children implements the sql.Expression interface.
func (a *Aggregate) Children() []sql.Expression {
	return []sql.Expression{a.child}
}

// Attributes implements the sql.Expression interface.
func (*Aggregate) Attributes() interface{} { return nil }

func (a *Aggregate) String() string {
	return fmt.Sprintf("%s(%s)", a.op, a.child)
}
