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
)

// LogicalFilter keeps the rows of its child satisfying the predicate.
type LogicalFilter struct {
	baseOperator
	predicate sql.Expression
}

var _ sql.Operator = (*LogicalFilter)(nil)

// NewLogicalFilter creates a filter over the given child.
func NewLogicalFilter(predicate sql.Expression, children ...sql.Operator) *LogicalFilter {
	return &LogicalFilter{
		baseOperator: baseOperator{children: children},
		predicate:    predicate,
	}
}

// Type implements the sql.Operator interface.
func (*LogicalFilter) Type() sql.OperatorType { return sql.LogicalFilterOp }

// Predicate returns the filter predicate.
func (f *LogicalFilter) Predicate() sql.Expression { return f.predicate }

// WithChildren implements the sql.Operator interface.
func (f *LogicalFilter) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(f, children, 1); err != nil {
		return nil, err
	}
	nf := *f
	nf.baseOperator = baseOperator{children: children}
	return &nf, nil
}

// Attributes implements the sql.Operator interface.
func (f *LogicalFilter) Attributes() interface{} {
	return struct {
		Predicate sql.ExprHashNode
	}{sql.ExprHashView(f.predicate)}
}

func (f *LogicalFilter) String() string {
	return fmt.Sprintf("LogicalFilter(%s)", f.predicate)
}
