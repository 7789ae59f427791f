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

package plan

import (
	"fmt"

	"github.com/vidsql/go-vidsql-server/sql"
	"github.com/vidsql/go-vidsql-server/sql/expression"
)

// LogicalLimit truncates its child to the first limitCount rows.
type LogicalLimit struct {
	baseOperator
	limitCount *expression.Constant
}

var _ sql.Operator = (*LogicalLimit)(nil)

// NewLogicalLimit creates a limit over the given child.
func NewLogicalLimit(limitCount *expression.Constant, children ...sql.Operator) *LogicalLimit {
	return &LogicalLimit{
		baseOperator: baseOperator{children: children},
		limitCount:   limitCount,
	}
}

// Type implements the sql.Operator interface.
func (*LogicalLimit) Type() sql.OperatorType { return sql.LogicalLimitOp }

// LimitCount returns the row count to keep.
func (l *LogicalLimit) LimitCount() *expression.Constant { return l.limitCount }

// WithChildren implements the sql.Operator interface.
func (l *LogicalLimit) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(l, children, 1); err != nil {
		return nil, err
	}
	nl := *l
	nl.baseOperator = baseOperator{children: children}
	return &nl, nil
}

// Attributes implements the sql.Operator interface.
func (l *LogicalLimit) Attributes() interface{} {
	return struct {
		LimitCount sql.ExprHashNode
	}{sql.ExprHashView(l.limitCount)}
}

func (l *LogicalLimit) String() string {
	return fmt.Sprintf("LogicalLimit(%s)", l.limitCount)
}
