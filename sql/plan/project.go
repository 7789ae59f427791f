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

// LogicalProject evaluates the target list against each row of its child.
type LogicalProject struct {
	baseOperator
	targetList []sql.Expression
}

var _ sql.Operator = (*LogicalProject)(nil)

// NewLogicalProject creates a projection over the given child.
func NewLogicalProject(targetList []sql.Expression, children ...sql.Operator) *LogicalProject {
	return &LogicalProject{
		baseOperator: baseOperator{children: children},
		targetList:   targetList,
	}
}

// Type implements the sql.Operator interface.
func (*LogicalProject) Type() sql.OperatorType { return sql.LogicalProjectOp }

// TargetList returns the projected expressions.
func (p *LogicalProject) TargetList() []sql.Expression { return p.targetList }

// WithChildren implements the sql.Operator interface.
func (p *LogicalProject) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(p, children, 1); err != nil {
		return nil, err
	}
	np := *p
	np.baseOperator = baseOperator{children: children}
	return &np, nil
}

// Attributes implements the sql.Operator interface.
func (p *LogicalProject) Attributes() interface{} {
	return struct {
		TargetList []sql.ExprHashNode
	}{exprViews(p.targetList)}
}

func (p *LogicalProject) String() string {
	return fmt.Sprintf("LogicalProject(%s)", exprListString(p.targetList))
}
