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

package optimizer

import (
	"fmt"

	"github.com/mitchellh/hashstructure"

	"github.com/vidsql/go-vidsql-server/sql"
)

// GroupExpression is one operator node after insertion into the memo: the
// operator kind and attributes, with children replaced by memo group ids.
type GroupExpression struct {
	opr         sql.Operator
	groupID     sql.GroupID
	children    []sql.GroupID
	fingerprint uint64
}

// NewGroupExpression creates a group expression for the operator bound to
// the given child groups. The operator is stored detached from its concrete
// children; the fingerprint combines its kind, attributes and the child
// group id sequence.
func NewGroupExpression(opr sql.Operator, children []sql.GroupID) (*GroupExpression, error) {
	detached, err := opr.WithChildren()
	if err != nil {
		return nil, err
	}

	oprHash, err := sql.Fingerprint(detached)
	if err != nil {
		return nil, err
	}
	fingerprint, err := hashstructure.Hash(struct {
		Opr      uint64
		Children []sql.GroupID
	}{oprHash, children}, nil)
	if err != nil {
		return nil, sql.ErrHashFailure.New(opr)
	}

	return &GroupExpression{
		opr:         detached,
		groupID:     sql.UndefinedGroupID,
		children:    children,
		fingerprint: fingerprint,
	}, nil
}

// Operator returns the detached operator of the expression.
func (e *GroupExpression) Operator() sql.Operator { return e.opr }

// GroupID returns the id of the group owning the expression, or
// UndefinedGroupID before insertion.
func (e *GroupExpression) GroupID() sql.GroupID { return e.groupID }

// Children returns the ordered child group ids.
func (e *GroupExpression) Children() []sql.GroupID { return e.children }

// Fingerprint returns the content hash used by the memo's duplicate index.
func (e *GroupExpression) Fingerprint() uint64 { return e.fingerprint }

// IsLogical reports whether the underlying operator is logical.
func (e *GroupExpression) IsLogical() bool { return e.opr.Type().IsLogical() }

func (e *GroupExpression) String() string {
	return fmt.Sprintf("G%d:%s%v", e.groupID, e.opr, e.children)
}
