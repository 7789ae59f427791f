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

// LogicalGet reads a dataset. Predicate and target list start out empty and
// are filled in by the pushdown rewrites.
type LogicalGet struct {
	baseOperator
	ref        sql.TableRef
	metadata   *sql.DatasetMetadata
	alias      string
	predicate  sql.Expression
	targetList []sql.Expression
}

var _ sql.Operator = (*LogicalGet)(nil)

// NewLogicalGet creates a dataset scan.
func NewLogicalGet(
	ref sql.TableRef,
	metadata *sql.DatasetMetadata,
	alias string,
	predicate sql.Expression,
	targetList []sql.Expression,
	children ...sql.Operator,
) *LogicalGet {
	return &LogicalGet{
		baseOperator: baseOperator{children: children},
		ref:          ref,
		metadata:     metadata,
		alias:        alias,
		predicate:    predicate,
		targetList:   targetList,
	}
}

// NewLogicalGetFromRef resolves the referenced dataset through the catalog
// and creates a scan over it. Lookup failures surface as ErrCatalogLookup.
func NewLogicalGetFromRef(c sql.Catalog, ref sql.TableRef) (*LogicalGet, error) {
	metadata, err := c.GetDatasetMetadata(ref.Name)
	if err != nil {
		if sql.ErrCatalogLookup.Is(err) {
			return nil, err
		}
		return nil, sql.ErrCatalogLookup.Wrap(err, ref.Name)
	}
	return NewLogicalGet(ref, metadata, ref.AliasOrName(), nil, nil), nil
}

// Type implements the sql.Operator interface.
func (*LogicalGet) Type() sql.OperatorType { return sql.LogicalGetOp }

// Ref returns the dataset reference as written in the statement.
func (g *LogicalGet) Ref() sql.TableRef { return g.ref }

// Metadata returns the catalog entry of the scanned dataset.
func (g *LogicalGet) Metadata() *sql.DatasetMetadata { return g.metadata }

// Alias returns the alias the scanned columns are visible under.
func (g *LogicalGet) Alias() string { return g.alias }

// Predicate returns the pushed down scan predicate, if any.
func (g *LogicalGet) Predicate() sql.Expression { return g.predicate }

// TargetList returns the pushed down projection list, if any.
func (g *LogicalGet) TargetList() []sql.Expression { return g.targetList }

// WithChildren implements the sql.Operator interface.
func (g *LogicalGet) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(g, children, 1); err != nil {
		return nil, err
	}
	ng := *g
	ng.baseOperator = baseOperator{children: children}
	return &ng, nil
}

// Attributes implements the sql.Operator interface.
func (g *LogicalGet) Attributes() interface{} {
	var datasetID string
	if g.metadata != nil {
		datasetID = g.metadata.ID
	}
	return struct {
		Dataset    string
		DatasetID  string
		Alias      string
		Predicate  sql.ExprHashNode
		TargetList []sql.ExprHashNode
	}{g.ref.Name, datasetID, g.alias, sql.ExprHashView(g.predicate), exprViews(g.targetList)}
}

func (g *LogicalGet) String() string {
	return fmt.Sprintf("LogicalGet(%s AS %s)", g.ref.Name, g.alias)
}

// LogicalQueryDerivedGet reads the result of a nested query under an alias.
// Filters and projections over it are absorbed by the derived-get rewrites.
type LogicalQueryDerivedGet struct {
	baseOperator
	alias      string
	predicate  sql.Expression
	targetList []sql.Expression
}

var _ sql.Operator = (*LogicalQueryDerivedGet)(nil)

// NewLogicalQueryDerivedGet creates a scan over a derived query.
func NewLogicalQueryDerivedGet(
	alias string,
	predicate sql.Expression,
	targetList []sql.Expression,
	children ...sql.Operator,
) *LogicalQueryDerivedGet {
	return &LogicalQueryDerivedGet{
		baseOperator: baseOperator{children: children},
		alias:        alias,
		predicate:    predicate,
		targetList:   targetList,
	}
}

// Type implements the sql.Operator interface.
func (*LogicalQueryDerivedGet) Type() sql.OperatorType {
	return sql.LogicalQueryDerivedGetOp
}

// Alias returns the alias of the derived relation.
func (g *LogicalQueryDerivedGet) Alias() string { return g.alias }

// Predicate returns the absorbed filter predicate, if any.
func (g *LogicalQueryDerivedGet) Predicate() sql.Expression { return g.predicate }

// TargetList returns the absorbed projection list, if any.
func (g *LogicalQueryDerivedGet) TargetList() []sql.Expression { return g.targetList }

// WithChildren implements the sql.Operator interface.
func (g *LogicalQueryDerivedGet) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(g, children, 1); err != nil {
		return nil, err
	}
	ng := *g
	ng.baseOperator = baseOperator{children: children}
	return &ng, nil
}

// Attributes implements the sql.Operator interface.
func (g *LogicalQueryDerivedGet) Attributes() interface{} {
	return struct {
		Alias      string
		Predicate  sql.ExprHashNode
		TargetList []sql.ExprHashNode
	}{g.alias, sql.ExprHashView(g.predicate), exprViews(g.targetList)}
}

func (g *LogicalQueryDerivedGet) String() string {
	return fmt.Sprintf("LogicalQueryDerivedGet(%s)", g.alias)
}
