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

// InsertPlan appends a row of values to a dataset.
type InsertPlan struct {
	baseOperator
	table   *sql.DatasetMetadata
	columns []sql.Expression
	values  []sql.Expression
}

var _ sql.Operator = (*InsertPlan)(nil)

// NewInsertPlan creates an INSERT plan.
func NewInsertPlan(table *sql.DatasetMetadata, columns, values []sql.Expression) *InsertPlan {
	return &InsertPlan{table: table, columns: columns, values: values}
}

// Type implements the sql.Operator interface.
func (*InsertPlan) Type() sql.OperatorType { return sql.InsertOp }

// Table returns the target dataset.
func (i *InsertPlan) Table() *sql.DatasetMetadata { return i.table }

// Columns returns the referenced columns.
func (i *InsertPlan) Columns() []sql.Expression { return i.columns }

// Values returns the inserted values.
func (i *InsertPlan) Values() []sql.Expression { return i.values }

// WithChildren implements the sql.Operator interface.
func (i *InsertPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(i, children, 0); err != nil {
		return nil, err
	}
	ni := *i
	ni.baseOperator = baseOperator{children: children}
	return &ni, nil
}

// Attributes implements the sql.Operator interface.
func (i *InsertPlan) Attributes() interface{} {
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

func (i *InsertPlan) String() string {
	return fmt.Sprintf("InsertPlan(%s)", i.table.Name)
}

// LoadDataPlan bulk loads a file into a dataset in batches bounded by
// batchMemSize bytes.
type LoadDataPlan struct {
	baseOperator
	table        *sql.DatasetMetadata
	path         string
	batchMemSize int64
	columns      []sql.Expression
	fileOptions  map[string]string
}

var _ sql.Operator = (*LoadDataPlan)(nil)

// NewLoadDataPlan creates a LOAD DATA plan.
func NewLoadDataPlan(
	table *sql.DatasetMetadata,
	path string,
	batchMemSize int64,
	columns []sql.Expression,
	fileOptions map[string]string,
) *LoadDataPlan {
	return &LoadDataPlan{
		table:        table,
		path:         path,
		batchMemSize: batchMemSize,
		columns:      columns,
		fileOptions:  fileOptions,
	}
}

// Type implements the sql.Operator interface.
func (*LoadDataPlan) Type() sql.OperatorType { return sql.LoadDataOp }

// Table returns the target dataset.
func (l *LoadDataPlan) Table() *sql.DatasetMetadata { return l.table }

// Path returns the source file path.
func (l *LoadDataPlan) Path() string { return l.path }

// BatchMemSize returns the memory budget of one load batch, in bytes.
func (l *LoadDataPlan) BatchMemSize() int64 { return l.batchMemSize }

// Columns returns the loaded columns.
func (l *LoadDataPlan) Columns() []sql.Expression { return l.columns }

// FileOptions returns the file format options.
func (l *LoadDataPlan) FileOptions() map[string]string { return l.fileOptions }

// WithChildren implements the sql.Operator interface.
func (l *LoadDataPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(l, children, 0); err != nil {
		return nil, err
	}
	nl := *l
	nl.baseOperator = baseOperator{children: children}
	return &nl, nil
}

// Attributes implements the sql.Operator interface.
func (l *LoadDataPlan) Attributes() interface{} {
	var tableID string
	if l.table != nil {
		tableID = l.table.ID
	}
	return struct {
		TableID      string
		Path         string
		BatchMemSize int64
		Columns      []sql.ExprHashNode
		FileOptions  map[string]string
	}{tableID, l.path, l.batchMemSize, exprViews(l.columns), l.fileOptions}
}

func (l *LoadDataPlan) String() string {
	return fmt.Sprintf("LoadDataPlan(%s <- %s)", l.table.Name, l.path)
}

// UploadPlan stores a client supplied blob at the given server path.
type UploadPlan struct {
	baseOperator
	path      string
	videoBlob string
}

var _ sql.Operator = (*UploadPlan)(nil)

// NewUploadPlan creates an UPLOAD plan.
func NewUploadPlan(path, videoBlob string) *UploadPlan {
	return &UploadPlan{path: path, videoBlob: videoBlob}
}

// Type implements the sql.Operator interface.
func (*UploadPlan) Type() sql.OperatorType { return sql.UploadOp }

// Path returns the destination path.
func (u *UploadPlan) Path() string { return u.path }

// VideoBlob returns the base64 encoded payload.
func (u *UploadPlan) VideoBlob() string { return u.videoBlob }

// WithChildren implements the sql.Operator interface.
func (u *UploadPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(u, children, 0); err != nil {
		return nil, err
	}
	nu := *u
	nu.baseOperator = baseOperator{children: children}
	return &nu, nil
}

// Attributes implements the sql.Operator interface.
func (u *UploadPlan) Attributes() interface{} {
	return struct {
		Path string
		Blob string
	}{u.path, u.videoBlob}
}

func (u *UploadPlan) String() string {
	return fmt.Sprintf("UploadPlan(%s)", u.path)
}
