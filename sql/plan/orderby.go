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

// LogicalOrderBy sorts the rows of its child.
type LogicalOrderBy struct {
	baseOperator
	orderByList []SortField
}

var _ sql.Operator = (*LogicalOrderBy)(nil)

// NewLogicalOrderBy creates a sort over the given child.
func NewLogicalOrderBy(orderByList []SortField, children ...sql.Operator) *LogicalOrderBy {
	return &LogicalOrderBy{
		baseOperator: baseOperator{children: children},
		orderByList:  orderByList,
	}
}

// Type implements the sql.Operator interface.
func (*LogicalOrderBy) Type() sql.OperatorType { return sql.LogicalOrderByOp }

// OrderByList returns the sort fields.
func (o *LogicalOrderBy) OrderByList() []SortField { return o.orderByList }

// WithChildren implements the sql.Operator interface.
func (o *LogicalOrderBy) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(o, children, 1); err != nil {
		return nil, err
	}
	no := *o
	no.baseOperator = baseOperator{children: children}
	return &no, nil
}

// Attributes implements the sql.Operator interface.
func (o *LogicalOrderBy) Attributes() interface{} {
	return struct {
		OrderBy []interface{}
	}{sortFieldViews(o.orderByList)}
}

func (o *LogicalOrderBy) String() string {
	return fmt.Sprintf("LogicalOrderBy(%s)", sortFieldsString(o.orderByList))
}
