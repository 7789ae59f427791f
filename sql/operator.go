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

package sql

import (
	"fmt"

	"github.com/mitchellh/hashstructure"
)

// OperatorType tags every operator variant of the plan model. Logical
// operators come before the delimiter, physical plans after it.
type OperatorType byte

const (
	// InvalidOperator is the zero tag and matches no operator.
	InvalidOperator OperatorType = iota

	// DummyOp is a leaf standing in for an arbitrary memo group in rule
	// bindings.
	DummyOp

	LogicalGetOp
	LogicalFilterOp
	LogicalProjectOp
	LogicalJoinOp
	LogicalSampleOp
	LogicalUnionOp
	LogicalOrderByOp
	LogicalLimitOp
	LogicalInsertOp
	LogicalCreateOp
	LogicalLoadDataOp
	LogicalUploadOp
	LogicalCreateUDFOp
	LogicalDropUDFOp
	LogicalDropOp
	LogicalRenameOp
	LogicalShowOp
	LogicalCreateMaterializedViewOp
	LogicalQueryDerivedGetOp
	LogicalFunctionScanOp

	logicalOperatorDelimiter

	SeqScanOp
	PredicateOp
	ProjectOp
	HashJoinBuildOp
	HashJoinProbeOp
	LateralJoinOp
	FunctionScanOp
	UniformSampleOp
	UnionOp
	OrderByOp
	LimitOp
	InsertOp
	CreateOp
	LoadDataOp
	UploadOp
	CreateUDFOp
	DropOp
	DropUDFOp
	RenameOp
	ShowInfoOp
	CreateMaterializedViewOp
	StorageOp
)

// IsLogical reports whether the tag belongs to the logical operator set. The
// dummy leaf counts as logical so that rule bindings can traverse it.
func (t OperatorType) IsLogical() bool {
	return t > InvalidOperator && t < logicalOperatorDelimiter
}

// IsPhysical reports whether the tag belongs to the physical plan set.
func (t OperatorType) IsPhysical() bool {
	return t > logicalOperatorDelimiter
}

func (t OperatorType) String() string {
	if name, ok := operatorTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("OperatorType(%d)", t)
}

var operatorTypeNames = map[OperatorType]string{
	DummyOp:                         "Dummy",
	LogicalGetOp:                    "LogicalGet",
	LogicalFilterOp:                 "LogicalFilter",
	LogicalProjectOp:                "LogicalProject",
	LogicalJoinOp:                   "LogicalJoin",
	LogicalSampleOp:                 "LogicalSample",
	LogicalUnionOp:                  "LogicalUnion",
	LogicalOrderByOp:                "LogicalOrderBy",
	LogicalLimitOp:                  "LogicalLimit",
	LogicalInsertOp:                 "LogicalInsert",
	LogicalCreateOp:                 "LogicalCreate",
	LogicalLoadDataOp:               "LogicalLoadData",
	LogicalUploadOp:                 "LogicalUpload",
	LogicalCreateUDFOp:              "LogicalCreateUDF",
	LogicalDropUDFOp:                "LogicalDropUDF",
	LogicalDropOp:                   "LogicalDrop",
	LogicalRenameOp:                 "LogicalRename",
	LogicalShowOp:                   "LogicalShow",
	LogicalCreateMaterializedViewOp: "LogicalCreateMaterializedView",
	LogicalQueryDerivedGetOp:        "LogicalQueryDerivedGet",
	LogicalFunctionScanOp:           "LogicalFunctionScan",
	SeqScanOp:                       "SeqScan",
	PredicateOp:                     "Predicate",
	ProjectOp:                       "Project",
	HashJoinBuildOp:                 "HashJoinBuild",
	HashJoinProbeOp:                 "HashJoinProbe",
	LateralJoinOp:                   "LateralJoin",
	FunctionScanOp:                  "FunctionScan",
	UniformSampleOp:                 "UniformSample",
	UnionOp:                         "Union",
	OrderByOp:                       "OrderBy",
	LimitOp:                         "Limit",
	InsertOp:                        "Insert",
	CreateOp:                        "Create",
	LoadDataOp:                      "LoadData",
	UploadOp:                        "Upload",
	CreateUDFOp:                     "CreateUDF",
	DropOp:                          "Drop",
	DropUDFOp:                       "DropUDF",
	RenameOp:                        "Rename",
	ShowInfoOp:                      "ShowInfo",
	CreateMaterializedViewOp:        "CreateMaterializedView",
	StorageOp:                       "Storage",
}

// Operator is a node of a logical or physical plan tree. Child arity is
// fixed per variant and equality is structural.
type Operator interface {
	fmt.Stringer
	// Type returns the variant tag of the operator.
	Type() OperatorType
	// Children returns the ordered child operators.
	Children() []Operator
	// WithChildren returns a copy of the operator with the given children.
	// Calling it with no arguments returns a detached copy. A child count
	// the variant cannot hold yields ErrInvalidChildrenNumber.
	WithChildren(children ...Operator) (Operator, error)
	// Attributes returns the non-child attributes participating in the
	// operator's content fingerprint. The returned value must only contain
	// exported fields of basic types; embedded expressions appear as their
	// ExprHashView.
	Attributes() interface{}
}

type opHashNode struct {
	Type  OperatorType
	Attrs interface{}
}

type opTreeHashNode struct {
	Type     OperatorType
	Attrs    interface{}
	Children []opTreeHashNode
}

func opTreeView(op Operator) opTreeHashNode {
	children := op.Children()
	node := opTreeHashNode{Type: op.Type(), Attrs: op.Attributes()}
	if len(children) > 0 {
		node.Children = make([]opTreeHashNode, len(children))
		for i, child := range children {
			node.Children[i] = opTreeView(child)
		}
	}
	return node
}

// Fingerprint returns the stable content hash of the operator's kind and
// attributes. Children do not participate; the memo combines this value with
// child group ids instead.
func Fingerprint(op Operator) (uint64, error) {
	h, err := hashstructure.Hash(opHashNode{Type: op.Type(), Attrs: op.Attributes()}, nil)
	if err != nil {
		return 0, ErrHashFailure.New(op)
	}
	return h, nil
}

// TreeFingerprint returns the stable content hash of the whole operator
// tree, children included.
func TreeFingerprint(op Operator) (uint64, error) {
	h, err := hashstructure.Hash(opTreeView(op), nil)
	if err != nil {
		return 0, ErrHashFailure.New(op)
	}
	return h, nil
}

// OperatorsEqual reports whether two operator trees are structurally equal.
func OperatorsEqual(a, b Operator) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ah, err := TreeFingerprint(a)
	if err != nil {
		return false
	}
	bh, err := TreeFingerprint(b)
	if err != nil {
		return false
	}
	return ah == bh
}
