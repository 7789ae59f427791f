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

// CreatePlan creates a new dataset.
type CreatePlan struct {
	baseOperator
	ref         sql.TableRef
	columns     []*sql.ColumnDefinition
	ifNotExists bool
}

var _ sql.Operator = (*CreatePlan)(nil)

// NewCreatePlan creates a CREATE TABLE plan.
func NewCreatePlan(ref sql.TableRef, columns []*sql.ColumnDefinition, ifNotExists bool) *CreatePlan {
	return &CreatePlan{ref: ref, columns: columns, ifNotExists: ifNotExists}
}

// Type implements the sql.Operator interface.
func (*CreatePlan) Type() sql.OperatorType { return sql.CreateOp }

// Ref returns the dataset to create.
func (c *CreatePlan) Ref() sql.TableRef { return c.ref }

// Columns returns the column definitions.
func (c *CreatePlan) Columns() []*sql.ColumnDefinition { return c.columns }

// IfNotExists reports whether an existing dataset is tolerated.
func (c *CreatePlan) IfNotExists() bool { return c.ifNotExists }

// WithChildren implements the sql.Operator interface.
func (c *CreatePlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(c, children, 0); err != nil {
		return nil, err
	}
	nc := *c
	nc.baseOperator = baseOperator{children: children}
	return &nc, nil
}

// Attributes implements the sql.Operator interface.
func (c *CreatePlan) Attributes() interface{} {
	return struct {
		Name        string
		Columns     []sql.ColumnDefinition
		IfNotExists bool
	}{c.ref.Name, columnDefViews(c.columns), c.ifNotExists}
}

func (c *CreatePlan) String() string {
	return fmt.Sprintf("CreatePlan(%s)", c.ref)
}

// RenamePlan renames a dataset.
type RenamePlan struct {
	baseOperator
	oldRef  sql.TableRef
	newName string
}

var _ sql.Operator = (*RenamePlan)(nil)

// NewRenamePlan creates a RENAME TABLE plan.
func NewRenamePlan(oldRef sql.TableRef, newName string) *RenamePlan {
	return &RenamePlan{oldRef: oldRef, newName: newName}
}

// Type implements the sql.Operator interface.
func (*RenamePlan) Type() sql.OperatorType { return sql.RenameOp }

// OldRef returns the dataset being renamed.
func (r *RenamePlan) OldRef() sql.TableRef { return r.oldRef }

// NewName returns the new dataset name.
func (r *RenamePlan) NewName() string { return r.newName }

// WithChildren implements the sql.Operator interface.
func (r *RenamePlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(r, children, 0); err != nil {
		return nil, err
	}
	nr := *r
	nr.baseOperator = baseOperator{children: children}
	return &nr, nil
}

// Attributes implements the sql.Operator interface.
func (r *RenamePlan) Attributes() interface{} {
	return struct {
		Old string
		New string
	}{r.oldRef.Name, r.newName}
}

func (r *RenamePlan) String() string {
	return fmt.Sprintf("RenamePlan(%s -> %s)", r.oldRef, r.newName)
}

// DropPlan removes datasets.
type DropPlan struct {
	baseOperator
	refs     []sql.TableRef
	ifExists bool
}

var _ sql.Operator = (*DropPlan)(nil)

// NewDropPlan creates a DROP TABLE plan.
func NewDropPlan(refs []sql.TableRef, ifExists bool) *DropPlan {
	return &DropPlan{refs: refs, ifExists: ifExists}
}

// Type implements the sql.Operator interface.
func (*DropPlan) Type() sql.OperatorType { return sql.DropOp }

// Refs returns the datasets to drop.
func (d *DropPlan) Refs() []sql.TableRef { return d.refs }

// IfExists reports whether missing datasets are tolerated.
func (d *DropPlan) IfExists() bool { return d.ifExists }

// WithChildren implements the sql.Operator interface.
func (d *DropPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(d, children, 0); err != nil {
		return nil, err
	}
	nd := *d
	nd.baseOperator = baseOperator{children: children}
	return &nd, nil
}

// Attributes implements the sql.Operator interface.
func (d *DropPlan) Attributes() interface{} {
	return struct {
		Refs     []sql.TableRef
		IfExists bool
	}{d.refs, d.ifExists}
}

func (d *DropPlan) String() string {
	return fmt.Sprintf("DropPlan(%v)", d.refs)
}

// CreateUDFPlan registers a user defined function.
type CreateUDFPlan struct {
	baseOperator
	name        string
	ifNotExists bool
	inputs      []*sql.ColumnDefinition
	outputs     []*sql.ColumnDefinition
	implPath    string
	udfType     string
}

var _ sql.Operator = (*CreateUDFPlan)(nil)

// NewCreateUDFPlan creates a CREATE UDF plan.
func NewCreateUDFPlan(
	name string,
	ifNotExists bool,
	inputs, outputs []*sql.ColumnDefinition,
	implPath, udfType string,
) *CreateUDFPlan {
	return &CreateUDFPlan{
		name:        name,
		ifNotExists: ifNotExists,
		inputs:      inputs,
		outputs:     outputs,
		implPath:    implPath,
		udfType:     udfType,
	}
}

// Type implements the sql.Operator interface.
func (*CreateUDFPlan) Type() sql.OperatorType { return sql.CreateUDFOp }

// Name returns the UDF name.
func (c *CreateUDFPlan) Name() string { return c.name }

// IfNotExists reports whether an existing UDF is tolerated.
func (c *CreateUDFPlan) IfNotExists() bool { return c.ifNotExists }

// Inputs returns the declared input columns.
func (c *CreateUDFPlan) Inputs() []*sql.ColumnDefinition { return c.inputs }

// Outputs returns the declared output columns.
func (c *CreateUDFPlan) Outputs() []*sql.ColumnDefinition { return c.outputs }

// ImplPath returns the path of the UDF implementation.
func (c *CreateUDFPlan) ImplPath() string { return c.implPath }

// UDFType returns the declared UDF category.
func (c *CreateUDFPlan) UDFType() string { return c.udfType }

// WithChildren implements the sql.Operator interface.
func (c *CreateUDFPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(c, children, 0); err != nil {
		return nil, err
	}
	nc := *c
	nc.baseOperator = baseOperator{children: children}
	return &nc, nil
}

// Attributes implements the sql.Operator interface.
func (c *CreateUDFPlan) Attributes() interface{} {
	return struct {
		Name        string
		IfNotExists bool
		Inputs      []sql.ColumnDefinition
		Outputs     []sql.ColumnDefinition
		ImplPath    string
		UDFType     string
	}{c.name, c.ifNotExists, columnDefViews(c.inputs), columnDefViews(c.outputs), c.implPath, c.udfType}
}

func (c *CreateUDFPlan) String() string {
	return fmt.Sprintf("CreateUDFPlan(%s)", c.name)
}

// DropUDFPlan unregisters a user defined function.
type DropUDFPlan struct {
	baseOperator
	name     string
	ifExists bool
}

var _ sql.Operator = (*DropUDFPlan)(nil)

// NewDropUDFPlan creates a DROP UDF plan.
func NewDropUDFPlan(name string, ifExists bool) *DropUDFPlan {
	return &DropUDFPlan{name: name, ifExists: ifExists}
}

// Type implements the sql.Operator interface.
func (*DropUDFPlan) Type() sql.OperatorType { return sql.DropUDFOp }

// Name returns the UDF name.
func (d *DropUDFPlan) Name() string { return d.name }

// IfExists reports whether a missing UDF is tolerated.
func (d *DropUDFPlan) IfExists() bool { return d.ifExists }

// WithChildren implements the sql.Operator interface.
func (d *DropUDFPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(d, children, 0); err != nil {
		return nil, err
	}
	nd := *d
	nd.baseOperator = baseOperator{children: children}
	return &nd, nil
}

// Attributes implements the sql.Operator interface.
func (d *DropUDFPlan) Attributes() interface{} {
	return struct {
		Name     string
		IfExists bool
	}{d.name, d.ifExists}
}

func (d *DropUDFPlan) String() string {
	return fmt.Sprintf("DropUDFPlan(%s)", d.name)
}

// ShowInfoPlan lists catalog entities.
type ShowInfoPlan struct {
	baseOperator
	showType sql.ShowType
}

var _ sql.Operator = (*ShowInfoPlan)(nil)

// NewShowInfoPlan creates a SHOW plan.
func NewShowInfoPlan(showType sql.ShowType) *ShowInfoPlan {
	return &ShowInfoPlan{showType: showType}
}

// Type implements the sql.Operator interface.
func (*ShowInfoPlan) Type() sql.OperatorType { return sql.ShowInfoOp }

// ShowType returns the listed entity kind.
func (s *ShowInfoPlan) ShowType() sql.ShowType { return s.showType }

// WithChildren implements the sql.Operator interface.
func (s *ShowInfoPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(s, children, 0); err != nil {
		return nil, err
	}
	ns := *s
	ns.baseOperator = baseOperator{children: children}
	return &ns, nil
}

// Attributes implements the sql.Operator interface.
func (s *ShowInfoPlan) Attributes() interface{} {
	return struct {
		ShowType sql.ShowType
	}{s.showType}
}

func (s *ShowInfoPlan) String() string {
	return fmt.Sprintf("ShowInfoPlan(%s)", s.showType)
}

// CreateMaterializedViewPlan materializes the result of its child plan.
type CreateMaterializedViewPlan struct {
	baseOperator
	view        sql.TableRef
	columns     []*sql.ColumnDefinition
	ifNotExists bool
}

var _ sql.Operator = (*CreateMaterializedViewPlan)(nil)

// NewCreateMaterializedViewPlan creates a CREATE MATERIALIZED VIEW plan.
func NewCreateMaterializedViewPlan(
	view sql.TableRef,
	columns []*sql.ColumnDefinition,
	ifNotExists bool,
	children ...sql.Operator,
) *CreateMaterializedViewPlan {
	return &CreateMaterializedViewPlan{
		baseOperator: baseOperator{children: children},
		view:         view,
		columns:      columns,
		ifNotExists:  ifNotExists,
	}
}

// Type implements the sql.Operator interface.
func (*CreateMaterializedViewPlan) Type() sql.OperatorType {
	return sql.CreateMaterializedViewOp
}

// View returns the materialized view reference.
func (c *CreateMaterializedViewPlan) View() sql.TableRef { return c.view }

// Columns returns the declared view columns.
func (c *CreateMaterializedViewPlan) Columns() []*sql.ColumnDefinition { return c.columns }

// IfNotExists reports whether an existing view is tolerated.
func (c *CreateMaterializedViewPlan) IfNotExists() bool { return c.ifNotExists }

// WithChildren implements the sql.Operator interface.
func (c *CreateMaterializedViewPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(c, children, 1); err != nil {
		return nil, err
	}
	nc := *c
	nc.baseOperator = baseOperator{children: children}
	return &nc, nil
}

// Attributes implements the sql.Operator interface.
func (c *CreateMaterializedViewPlan) Attributes() interface{} {
	return struct {
		Name        string
		Columns     []sql.ColumnDefinition
		IfNotExists bool
	}{c.view.Name, columnDefViews(c.columns), c.ifNotExists}
}

func (c *CreateMaterializedViewPlan) String() string {
	return fmt.Sprintf("CreateMaterializedViewPlan(%s)", c.view)
}
