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

// LogicalUnion concatenates its two children. All decides whether duplicate
// rows survive.
type LogicalUnion struct {
	baseOperator
	all bool
}

var _ sql.Operator = (*LogicalUnion)(nil)

// NewLogicalUnion creates a union of the two children.
func NewLogicalUnion(all bool, children ...sql.Operator) *LogicalUnion {
	return &LogicalUnion{
		baseOperator: baseOperator{children: children},
		all:          all,
	}
}

// Type implements the sql.Operator interface.
func (*LogicalUnion) Type() sql.OperatorType { return sql.LogicalUnionOp }

// All reports whether duplicate rows are kept.
func (u *LogicalUnion) All() bool { return u.all }

// WithChildren implements the sql.Operator interface.
func (u *LogicalUnion) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(u, children, 2); err != nil {
		return nil, err
	}
	nu := *u
	nu.baseOperator = baseOperator{children: children}
	return &nu, nil
}

// Attributes implements the sql.Operator interface.
func (u *LogicalUnion) Attributes() interface{} {
	return struct {
		All bool
	}{u.all}
}

func (u *LogicalUnion) String() string {
	return fmt.Sprintf("LogicalUnion(all=%t)", u.all)
}
