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

// Dummy is a leaf standing in for a whole memo group. The binder produces
// one wherever a rule pattern matched a child with a wildcard, so rules can
// reach back into the memo through the group id.
type Dummy struct {
	baseOperator
	groupID sql.GroupID
}

var _ sql.Operator = (*Dummy)(nil)

// NewDummy creates a stand-in leaf for the given group.
func NewDummy(groupID sql.GroupID) *Dummy {
	return &Dummy{groupID: groupID}
}

// Type implements the sql.Operator interface.
func (*Dummy) Type() sql.OperatorType { return sql.DummyOp }

// GroupID returns the memo group the leaf stands in for.
func (d *Dummy) GroupID() sql.GroupID { return d.groupID }

// WithChildren implements the sql.Operator interface.
func (d *Dummy) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(d, children, 0); err != nil {
		return nil, err
	}
	nd := *d
	nd.baseOperator = baseOperator{children: children}
	return &nd, nil
}

// Attributes implements the sql.Operator interface.
func (d *Dummy) Attributes() interface{} {
	return struct {
		GroupID sql.GroupID
	}{d.groupID}
}

func (d *Dummy) String() string {
	return fmt.Sprintf("Dummy(G%d)", d.groupID)
}
