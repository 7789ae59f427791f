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

// SeqScanPlan scans the rows produced by its child, applying the residual
// predicate and projecting the target list.
type SeqScanPlan struct {
	baseOperator
	predicate  sql.Expression
	targetList []sql.Expression
	alias      string
}

var _ sql.Operator = (*SeqScanPlan)(nil)

// NewSeqScanPlan creates a sequential scan.
func NewSeqScanPlan(
	predicate sql.Expression,
	targetList []sql.Expression,
	alias string,
	children ...sql.Operator,
) *SeqScanPlan {
	return &SeqScanPlan{
		baseOperator: baseOperator{children: children},
		predicate:    predicate,
		targetList:   targetList,
		alias:        alias,
	}
}

// Type implements the sql.Operator interface.
func (*SeqScanPlan) Type() sql.OperatorType { return sql.SeqScanOp }

// Predicate returns the residual scan predicate, if any.
func (s *SeqScanPlan) Predicate() sql.Expression { return s.predicate }

// TargetList returns the projected columns, if any.
func (s *SeqScanPlan) TargetList() []sql.Expression { return s.targetList }

// Alias returns the alias the scanned columns are visible under.
func (s *SeqScanPlan) Alias() string { return s.alias }

// WithChildren implements the sql.Operator interface.
func (s *SeqScanPlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(s, children, 1); err != nil {
		return nil, err
	}
	ns := *s
	ns.baseOperator = baseOperator{children: children}
	return &ns, nil
}

// Attributes implements the sql.Operator interface.
func (s *SeqScanPlan) Attributes() interface{} {
	return struct {
		Predicate  sql.ExprHashNode
		TargetList []sql.ExprHashNode
		Alias      string
	}{sql.ExprHashView(s.predicate), exprViews(s.targetList), s.alias}
}

func (s *SeqScanPlan) String() string {
	return fmt.Sprintf("SeqScanPlan(%s)", s.alias)
}

// StoragePlan reads batches of rows from the storage engine, seeking on the
// pushed down predicate for video datasets.
type StoragePlan struct {
	baseOperator
	metadata     *sql.DatasetMetadata
	batchMemSize int64
	predicate    sql.Expression
}

var _ sql.Operator = (*StoragePlan)(nil)

// NewStoragePlan creates a storage read.
func NewStoragePlan(
	metadata *sql.DatasetMetadata,
	batchMemSize int64,
	predicate sql.Expression,
) *StoragePlan {
	return &StoragePlan{
		metadata:     metadata,
		batchMemSize: batchMemSize,
		predicate:    predicate,
	}
}

// Type implements the sql.Operator interface.
func (*StoragePlan) Type() sql.OperatorType { return sql.StorageOp }

// Metadata returns the catalog entry of the read dataset.
func (s *StoragePlan) Metadata() *sql.DatasetMetadata { return s.metadata }

// BatchMemSize returns the memory budget of one read batch, in bytes.
func (s *StoragePlan) BatchMemSize() int64 { return s.batchMemSize }

// Predicate returns the pushed down predicate, if any.
func (s *StoragePlan) Predicate() sql.Expression { return s.predicate }

// WithChildren implements the sql.Operator interface.
func (s *StoragePlan) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(s, children, 0); err != nil {
		return nil, err
	}
	ns := *s
	ns.baseOperator = baseOperator{children: children}
	return &ns, nil
}

// Attributes implements the sql.Operator interface.
func (s *StoragePlan) Attributes() interface{} {
	var datasetID string
	if s.metadata != nil {
		datasetID = s.metadata.ID
	}
	return struct {
		DatasetID    string
		BatchMemSize int64
		Predicate    sql.ExprHashNode
	}{datasetID, s.batchMemSize, sql.ExprHashView(s.predicate)}
}

func (s *StoragePlan) String() string {
	return fmt.Sprintf("StoragePlan(%s, batch=%d)", s.metadata.Name, s.batchMemSize)
}
