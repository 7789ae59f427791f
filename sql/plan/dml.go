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

// LogicalInsert appends a row of values to a dataset.
type LogicalInsert struct {
	baseOperator
	table   *sql.DatasetMetadata
	columns []sql.Expression
	values  []sql.Expression
}

var _ sql.Operator = (*LogicalInsert)(nil)

// NewLogicalInsert creates an INSERT node.
func NewLogicalInsert(table *sql.DatasetMetadata, columns, values []sql.Expression) *LogicalInsert {
	return &LogicalInsert{table: table, columns: columns, values: values}
}

// Type implements the sql.Operator interface.
func (*LogicalInsert) Type() sql.OperatorType { return sql.LogicalInsertOp }

// Table returns the target dataset.
func (i *LogicalInsert) Table() *sql.DatasetMetadata { return i.table }

// Columns returns the referenced columns.
func (i *LogicalInsert) Columns() []sql.Expression { return i.columns }

// Values returns the inserted values.
func (i *LogicalInsert) Values() []sql.Expression { return i.values }

// WithChildren implements the sql.Operator interface.
func (i *LogicalInsert) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(i, children, 0); err != nil {
		return nil, err
	}
	ni := *i
	ni.baseOperator = baseOperator{children: children}
	return &ni, nil
}

// Attributes implements the sql.Operator interface.
func (i *LogicalInsert) Attributes() interface{} {
	var tableID string
	if i.table != nil {
		tableID = i.table.ID
	}
	return struct {
		TableID string
		Columns []sql.ExprHashNode
		Values  []sql.ExprHashNode
	}{tableID, exprViews(i.columns), exprViews(i.values)}
}

func (i *LogicalInsert) String() string {
	return fmt.Sprintf("LogicalInsert(%s)", i.table.Name)
}

// LogicalLoadData bulk loads a file into a dataset.
type LogicalLoadData struct {
	baseOperator
	table       *sql.DatasetMetadata
	path        string
	columns     []sql.Expression
	fileOptions map[string]string
}

var _ sql.Operator = (*LogicalLoadData)(nil)

// NewLogicalLoadData creates a LOAD DATA node.
func NewLogicalLoadData(
	table *sql.DatasetMetadata,
	path string,
	columns []sql.Expression,
	fileOptions map[string]string,
) *LogicalLoadData {
	return &LogicalLoadData{table: table, path: path, columns: columns, fileOptions: fileOptions}
}

// Type implements the sql.Operator interface.
func (*LogicalLoadData) Type() sql.OperatorType { return sql.LogicalLoadDataOp }

// Table returns the target dataset.
func (l *LogicalLoadData) Table() *sql.DatasetMetadata { return l.table }

// Path returns the source file path.
func (l *LogicalLoadData) Path() string { return l.path }

// Columns returns the loaded columns.
func (l *LogicalLoadData) Columns() []sql.Expression { return l.columns }

// FileOptions returns the file format options.
func (l *LogicalLoadData) FileOptions() map[string]string { return l.fileOptions }

// WithChildren implements the sql.Operator interface.
func (l *LogicalLoadData) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(l, children, 0); err != nil {
		return nil, err
	}
	nl := *l
	nl.baseOperator = baseOperator{children: children}
	return &nl, nil
}

// Attributes implements the sql.Operator interface.
func (l *LogicalLoadData) Attributes() interface{} {
	var tableID string
	if l.table != nil {
		tableID = l.table.ID
	}
	return struct {
		TableID     string
		Path        string
		Columns     []sql.ExprHashNode
		FileOptions map[string]string
	}{tableID, l.path, exprViews(l.columns), l.fileOptions}
}

func (l *LogicalLoadData) String() string {
	return fmt.Sprintf("LogicalLoadData(%s <- %s)", l.table.Name, l.path)
}

// LogicalUpload stores a client supplied blob at the given server path.
type LogicalUpload struct {
	baseOperator
	path      string
	videoBlob string
}

var _ sql.Operator = (*LogicalUpload)(nil)

// NewLogicalUpload creates an UPLOAD node.
func NewLogicalUpload(path, videoBlob string) *LogicalUpload {
	return &LogicalUpload{path: path, videoBlob: videoBlob}
}

// Type implements the sql.Operator interface.
func (*LogicalUpload) Type() sql.OperatorType { return sql.LogicalUploadOp }

// Path returns the destination path.
func (u *LogicalUpload) Path() string { return u.path }

// VideoBlob returns the base64 encoded payload.
func (u *LogicalUpload) VideoBlob() string { return u.videoBlob }

// WithChildren implements the sql.Operator interface.
func (u *LogicalUpload) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(u, children, 0); err != nil {
		return nil, err
	}
	nu := *u
	nu.baseOperator = baseOperator{children: children}
	return &nu, nil
}

// Attributes implements the sql.Operator interface.
func (u *LogicalUpload) Attributes() interface{} {
	return struct {
		Path string
		Blob string
	}{u.path, u.videoBlob}
}

func (u *LogicalUpload) String() string {
	return fmt.Sprintf("LogicalUpload(%s)", u.path)
}
