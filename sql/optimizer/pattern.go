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

import "github.com/vidsql/go-vidsql-server/sql"

// Pattern is a structural template matched against memo expressions. It
// carries operator kinds only, never attributes; a DummyOp node matches any
// sub-tree.
type Pattern struct {
	oprType  sql.OperatorType
	children []*Pattern
}

// NewPattern creates a pattern node for the given operator kind.
func NewPattern(oprType sql.OperatorType, children ...*Pattern) *Pattern {
	return &Pattern{oprType: oprType, children: children}
}

// AnyPattern returns a wildcard pattern leaf matching any sub-tree.
func AnyPattern() *Pattern {
	return &Pattern{oprType: sql.DummyOp}
}

// OperatorType returns the operator kind matched by the pattern root.
func (p *Pattern) OperatorType() sql.OperatorType { return p.oprType }

// Children returns the child patterns.
func (p *Pattern) Children() []*Pattern { return p.children }
