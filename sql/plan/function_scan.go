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

// LogicalFunctionScan evaluates a function expression as a row source, once
// per row of the driving side of a lateral join.
type LogicalFunctionScan struct {
	baseOperator
	funcExpr *expression.Function
}

var _ sql.Operator = (*LogicalFunctionScan)(nil)

// NewLogicalFunctionScan creates a function scan.
func NewLogicalFunctionScan(funcExpr *expression.Function) *LogicalFunctionScan {
	return &LogicalFunctionScan{funcExpr: funcExpr}
}

// Type implements the sql.Operator interface.
func (*LogicalFunctionScan) Type() sql.OperatorType { return sql.LogicalFunctionScanOp }

// FuncExpr returns the scanned function expression.
func (f *LogicalFunctionScan) FuncExpr() *expression.Function { return f.funcExpr }

// WithChildren implements the sql.Operator interface.
func (f *LogicalFunctionScan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(f, children, 0); err != nil {
		return nil, err
	}
	nf := *f
	nf.baseOperator = baseOperator{children: children}
	return &nf, nil
}

// Attributes implements the sql.Operator interface.
func (f *LogicalFunctionScan) Attributes() interface{} {
	return struct {
		FuncExpr sql.ExprHashNode
	}{sql.ExprHashView(f.funcExpr)}
}

func (f *LogicalFunctionScan) String() string {
	return fmt.Sprintf("LogicalFunctionScan(%s)", f.funcExpr)
}
