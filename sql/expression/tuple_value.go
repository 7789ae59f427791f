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
	"github.com/vidsql/go-vidsql-server/sql"
)

// TupleValue is a reference to a column of an input relation, qualified by
// the alias of the table it comes from.
type TupleValue struct {
	tableAlias string
	colName    string
	colType    sql.Type
}

var _ sql.Expression = (*TupleValue)(nil)

// NewTupleValue creates a column reference with an undefined type.
func NewTupleValue(tableAlias, colName string) *TupleValue {
	return &TupleValue{tableAlias: tableAlias, colName: colName, colType: sql.Undefined}
}

// NewTupleValueWithType creates a column reference with a known type.
func NewTupleValueWithType(tableAlias, colName string, colType sql.Type) *TupleValue {
	return &TupleValue{tableAlias: tableAlias, colName: colName, colType: colType}
}

// Type implements the sql.Expression interface.
func (*TupleValue) Type() sql.ExpressionType { return sql.TupleValueExpr }

// ReturnType implements the sql.Expression interface.
func (t *TupleValue) ReturnType() sql.Type { return t.colType }

// Children implements the sql.Expression interface.
func (*TupleValue) Children() []sql.Expression { return nil }

// TableAlias returns the alias of the table the column belongs to.
func (t *TupleValue) TableAlias() string { return t.tableAlias }

// ColName returns the unqualified column name.
func (t *TupleValue) ColName() string { return t.colName }

// QualifiedName returns the column name qualified by the table alias, or the
// bare column name when no alias is set.
func (t *TupleValue) QualifiedName() string {
	if t.tableAlias == "" {
		return t.colName
	}
	return t.tableAlias + "." + t.colName
}

// Attributes implements the sql.Expression interface.
func (t *TupleValue) Attributes() interface{} {
	return struct {
		Table  string
		Column string
	}{t.tableAlias, t.colName}
}

func (t *TupleValue) String() string {
	return t.QualifiedName()
}
