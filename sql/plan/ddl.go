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

func columnDefViews(cols []*sql.ColumnDefinition) []sql.ColumnDefinition {
	if len(cols) == 0 {
		return nil
	}
	views := make([]sql.ColumnDefinition, len(cols))
	for i, c := range cols {
		if c != nil {
			views[i] = *c
		}
	}
	return views
}

// LogicalCreate creates a new dataset.
type LogicalCreate struct {
	baseOperator
	ref         sql.TableRef
	columns     []*sql.ColumnDefinition
	ifNotExists bool
}

var _ sql.Operator = (*LogicalCreate)(nil)

// NewLogicalCreate creates a CREATE TABLE node.
func NewLogicalCreate(ref sql.TableRef, columns []*sql.ColumnDefinition, ifNotExists bool) *LogicalCreate {
	return &LogicalCreate{ref: ref, columns: columns, ifNotExists: ifNotExists}
}

// Type implements the sql.Operator interface.
func (*LogicalCreate) Type() sql.OperatorType { return sql.LogicalCreateOp }

// Ref returns the dataset to create.
func (c *LogicalCreate) Ref() sql.TableRef { return c.ref }

// Columns returns the column definitions.
func (c *LogicalCreate) Columns() []*sql.ColumnDefinition { return c.columns }

// IfNotExists reports whether an existing dataset is tolerated.
func (c *LogicalCreate) IfNotExists() bool { return c.ifNotExists }

// WithChildren implements the sql.Operator interface.
func (c *LogicalCreate) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(c, children, 0); err != nil {
		return nil, err
	}
	nc := *c
	nc.baseOperator = baseOperator{children: children}
	return &nc, nil
}

// Attributes implements the sql.Operator interface.
func (c *LogicalCreate) Attributes() interface{} {
	return struct {
		Name        string
		Columns     []sql.ColumnDefinition
		IfNotExists bool
	}{c.ref.Name, columnDefViews(c.columns), c.ifNotExists}
}

func (c *LogicalCreate) String() string {
	return fmt.Sprintf("LogicalCreate(%s)", c.ref)
}

// LogicalRename renames a dataset.
type LogicalRename struct {
	baseOperator
	oldRef  sql.TableRef
	newName string
}

var _ sql.Operator = (*LogicalRename)(nil)

// NewLogicalRename creates a RENAME TABLE node.
func NewLogicalRename(oldRef sql.TableRef, newName string) *LogicalRename {
	return &LogicalRename{oldRef: oldRef, newName: newName}
}

// Type implements the sql.Operator interface.
func (*LogicalRename) Type() sql.OperatorType { return sql.LogicalRenameOp }

// OldRef returns the dataset being renamed.
func (r *LogicalRename) OldRef() sql.TableRef { return r.oldRef }

// NewName returns the new dataset name.
func (r *LogicalRename) NewName() string { return r.newName }

// WithChildren implements the sql.Operator interface.
func (r *LogicalRename) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(r, children, 0); err != nil {
		return nil, err
	}
	nr := *r
	nr.baseOperator = baseOperator{children: children}
	return &nr, nil
}

// Attributes implements the sql.Operator interface.
func (r *LogicalRename) Attributes() interface{} {
	return struct {
		Old string
		New string
	}{r.oldRef.Name, r.newName}
}

func (r *LogicalRename) String() string {
	return fmt.Sprintf("LogicalRename(%s -> %s)", r.oldRef, r.newName)
}

// LogicalDrop removes datasets.
type LogicalDrop struct {
	baseOperator
	refs     []sql.TableRef
	ifExists bool
}

var _ sql.Operator = (*LogicalDrop)(nil)

// NewLogicalDrop creates a DROP TABLE node.
func NewLogicalDrop(refs []sql.TableRef, ifExists bool) *LogicalDrop {
	return &LogicalDrop{refs: refs, ifExists: ifExists}
}

// Type implements the sql.Operator interface.
func (*LogicalDrop) Type() sql.OperatorType { return sql.LogicalDropOp }

// Refs returns the datasets to drop.
func (d *LogicalDrop) Refs() []sql.TableRef { return d.refs }

// IfExists reports whether missing datasets are tolerated.
func (d *LogicalDrop) IfExists() bool { return d.ifExists }

// WithChildren implements the sql.Operator interface.
func (d *LogicalDrop) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(d, children, 0); err != nil {
		return nil, err
	}
	nd := *d
	nd.baseOperator = baseOperator{children: children}
	return &nd, nil
}

// Attributes implements the sql.Operator interface.
func (d *LogicalDrop) Attributes() interface{} {
	return struct {
		Refs     []sql.TableRef
		IfExists bool
	}{d.refs, d.ifExists}
}

func (d *LogicalDrop) String() string {
	return fmt.Sprintf("LogicalDrop(%v)", d.refs)
}

// LogicalCreateUDF registers a user defined function.
type LogicalCreateUDF struct {
	baseOperator
	name        string
	ifNotExists bool
	inputs      []*sql.ColumnDefinition
	outputs     []*sql.ColumnDefinition
	implPath    string
	udfType     string
}

var _ sql.Operator = (*LogicalCreateUDF)(nil)

// NewLogicalCreateUDF creates a CREATE UDF node.
func NewLogicalCreateUDF(
	name string,
	ifNotExists bool,
	inputs, outputs []*sql.ColumnDefinition,
	implPath, udfType string,
) *LogicalCreateUDF {
	return &LogicalCreateUDF{
		name:        name,
		ifNotExists: ifNotExists,
		inputs:      inputs,
		outputs:     outputs,
		implPath:    implPath,
		udfType:     udfType,
	}
}

// Type implements the sql.Operator interface.
func (*LogicalCreateUDF) Type() sql.OperatorType { return sql.LogicalCreateUDFOp }

// Name returns the UDF name.
func (c *LogicalCreateUDF) Name() string { return c.name }

// IfNotExists reports whether an existing UDF is tolerated.
func (c *LogicalCreateUDF) IfNotExists() bool { return c.ifNotExists }

// Inputs returns the declared input columns.
func (c *LogicalCreateUDF) Inputs() []*sql.ColumnDefinition { return c.inputs }

// Outputs returns the declared output columns.
func (c *LogicalCreateUDF) Outputs() []*sql.ColumnDefinition { return c.outputs }

// ImplPath returns the path of the UDF implementation.
func (c *LogicalCreateUDF) ImplPath() string { return c.implPath }

// UDFType returns the declared UDF category.
func (c *LogicalCreateUDF) UDFType() string { return c.udfType }

// WithChildren implements the sql.Operator interface.
func (c *LogicalCreateUDF) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(c, children, 0); err != nil {
		return nil, err
	}
	nc := *c
	nc.baseOperator = baseOperator{children: children}
	return &nc, nil
}

// Attributes implements the sql.Operator interface.
func (c *LogicalCreateUDF) Attributes() interface{} {
	return struct {
		Name        string
		IfNotExists bool
		Inputs      []sql.ColumnDefinition
		Outputs     []sql.ColumnDefinition
		ImplPath    string
		UDFType     string
	}{c.name, c.ifNotExists, columnDefViews(c.inputs), columnDefViews(c.outputs), c.implPath, c.udfType}
}

func (c *LogicalCreateUDF) String() string {
	return fmt.Sprintf("LogicalCreateUDF(%s)", c.name)
}

// LogicalDropUDF unregisters a user defined function.
type LogicalDropUDF struct {
	baseOperator
	name     string
	ifExists bool
}

var _ sql.Operator = (*LogicalDropUDF)(nil)

// NewLogicalDropUDF creates a DROP UDF node.
func NewLogicalDropUDF(name string, ifExists bool) *LogicalDropUDF {
	return &LogicalDropUDF{name: name, ifExists: ifExists}
}

// Type implements the sql.Operator interface.
func (*LogicalDropUDF) Type() sql.OperatorType { return sql.LogicalDropUDFOp }

// Name returns the UDF name.
func (d *LogicalDropUDF) Name() string { return d.name }

// IfExists reports whether a missing UDF is tolerated.
func (d *LogicalDropUDF) IfExists() bool { return d.ifExists }

// WithChildren implements the sql.Operator interface.
func (d *LogicalDropUDF) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(d, children, 0); err != nil {
		return nil, err
	}
	nd := *d
	nd.baseOperator = baseOperator{children: children}
	return &nd, nil
}

// Attributes implements the sql.Operator interface.
func (d *LogicalDropUDF) Attributes() interface{} {
	return struct {
		Name     string
		IfExists bool
	}{d.name, d.ifExists}
}

func (d *LogicalDropUDF) String() string {
	return fmt.Sprintf("LogicalDropUDF(%s)", d.name)
}

// LogicalShow lists catalog entities.
type LogicalShow struct {
	baseOperator
	showType sql.ShowType
}

var _ sql.Operator = (*LogicalShow)(nil)

// NewLogicalShow creates a SHOW node.
func NewLogicalShow(showType sql.ShowType) *LogicalShow {
	return &LogicalShow{showType: showType}
}

// Type implements the sql.Operator interface.
func (*LogicalShow) Type() sql.OperatorType { return sql.LogicalShowOp }

// ShowType returns the listed entity kind.
func (s *LogicalShow) ShowType() sql.ShowType { return s.showType }

// WithChildren implements the sql.Operator interface.
func (s *LogicalShow) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(s, children, 0); err != nil {
		return nil, err
	}
	ns := *s
	ns.baseOperator = baseOperator{children: children}
	return &ns, nil
}

// Attributes implements the sql.Operator interface.
func (s *LogicalShow) Attributes() interface{} {
	return struct {
		ShowType sql.ShowType
	}{s.showType}
}

func (s *LogicalShow) String() string {
	return fmt.Sprintf("LogicalShow(%s)", s.showType)
}

// LogicalCreateMaterializedView materializes the result of its child query
// under a new dataset name.
type LogicalCreateMaterializedView struct {
	baseOperator
	view        sql.TableRef
	columns     []*sql.ColumnDefinition
	ifNotExists bool
}

var _ sql.Operator = (*LogicalCreateMaterializedView)(nil)

// NewLogicalCreateMaterializedView creates a CREATE MATERIALIZED VIEW node
// over the given child query.
func NewLogicalCreateMaterializedView(
	view sql.TableRef,
	columns []*sql.ColumnDefinition,
	ifNotExists bool,
	children ...sql.Operator,
) *LogicalCreateMaterializedView {
	return &LogicalCreateMaterializedView{
		baseOperator: baseOperator{children: children},
		view:         view,
		columns:      columns,
		ifNotExists:  ifNotExists,
	}
}

// Type implements the sql.Operator interface.
func (*LogicalCreateMaterializedView) Type() sql.OperatorType {
	return sql.LogicalCreateMaterializedViewOp
}

// View returns the materialized view reference.
func (c *LogicalCreateMaterializedView) View() sql.TableRef { return c.view }

// Columns returns the declared view columns.
func (c *LogicalCreateMaterializedView) Columns() []*sql.ColumnDefinition { return c.columns }

// IfNotExists reports whether an existing view is tolerated.
func (c *LogicalCreateMaterializedView) IfNotExists() bool { return c.ifNotExists }

// WithChildren implements the sql.Operator interface.
func (c *LogicalCreateMaterializedView) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(c, children, 1); err != nil {
		return nil, err
	}
	nc := *c
	nc.baseOperator = baseOperator{children: children}
	return &nc, nil
}

// Attributes implements the sql.Operator interface.
func (c *LogicalCreateMaterializedView) Attributes() interface{} {
	return struct {
		Name        string
		Columns     []sql.ColumnDefinition
		IfNotExists bool
	}{c.view.Name, columnDefViews(c.columns), c.ifNotExists}
}

func (c *LogicalCreateMaterializedView) String() string {
	return fmt.Sprintf("LogicalCreateMaterializedView(%s)", c.view)
}
