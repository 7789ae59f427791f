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

	"github.com/vidsql/go-vidsql-server/sql"
)

// Group is one equivalence class of the memo. Every expression of a group
// produces the same set of rows when executed.
type Group struct {
	id            sql.GroupID
	aliases       []string
	logicalExprs  []*GroupExpression
	physicalExprs []*GroupExpression
}

// NewGroup creates an empty group with the given id and visible table
// aliases.
func NewGroup(id sql.GroupID, aliases []string) *Group {
	return &Group{id: id, aliases: aliases}
}

// ID returns the immutable group id.
func (g *Group) ID() sql.GroupID { return g.id }

// Aliases returns the table aliases visible in expressions of the group.
func (g *Group) Aliases() []string { return g.aliases }

// LogicalExprs returns the logical expressions of the group.
func (g *Group) LogicalExprs() []*GroupExpression { return g.logicalExprs }

// PhysicalExprs returns the physical expressions of the group.
func (g *Group) PhysicalExprs() []*GroupExpression { return g.physicalExprs }

// addExpr files the expression under the logical or physical set according
// to its operator kind.
func (g *Group) addExpr(expr *GroupExpression) {
	if expr.IsLogical() {
		g.logicalExprs = append(g.logicalExprs, expr)
	} else {
		g.physicalExprs = append(g.physicalExprs, expr)
	}
}

// clear drops every expression of the group. The id and aliases survive.
func (g *Group) clear() {
	g.logicalExprs = nil
	g.physicalExprs = nil
}

func (g *Group) String() string {
	return fmt.Sprintf("Group(%d, logical=%d, physical=%d)",
		g.id, len(g.logicalExprs), len(g.physicalExprs))
}
