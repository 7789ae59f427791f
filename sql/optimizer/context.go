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
	"github.com/vidsql/go-vidsql-server/sql"
	"github.com/vidsql/go-vidsql-server/sql/config"
	"github.com/vidsql/go-vidsql-server/sql/plan"
)

// DefaultBatchMemSize is the storage batch memory budget used when the
// configuration does not override executor.batch_mem_size.
const DefaultBatchMemSize int64 = 30000000

// Context carries the collaborators of one optimization: the memo owned by
// this invocation plus the shared read-only catalog, configuration and rule
// library. Nothing here is a process-wide singleton; tests substitute any of
// the collaborators.
type Context struct {
	Memo    *Memo
	Catalog sql.Catalog
	Config  *config.Manager
	Rules   *RulesManager
}

// NewContext creates the context of a fresh optimization.
func NewContext(catalog sql.Catalog, cfg *config.Manager, rules *RulesManager) *Context {
	return &Context{
		Memo:    NewMemo(),
		Catalog: catalog,
		Config:  cfg,
		Rules:   rules,
	}
}

// BatchMemSize returns the configured executor.batch_mem_size, or the 30 MB
// default.
func (c *Context) BatchMemSize() int64 {
	if c == nil || c.Config == nil {
		return DefaultBatchMemSize
	}
	return c.Config.Int64("executor", "batch_mem_size", DefaultBatchMemSize)
}

// AddOperator inserts the operator tree into the memo leaves first, with
// duplicate checking, and returns the group expression of the root. Dummy
// leaves resolve to the group they stand in for instead of being inserted.
func (c *Context) AddOperator(opr sql.Operator) (*GroupExpression, error) {
	childIDs, err := c.addChildren(opr)
	if err != nil {
		return nil, err
	}
	expr, err := NewGroupExpression(opr, childIDs)
	if err != nil {
		return nil, err
	}
	return c.Memo.AddGroupExpression(expr, sql.UndefinedGroupID, true)
}

func (c *Context) addChildren(opr sql.Operator) ([]sql.GroupID, error) {
	children := opr.Children()
	if len(children) == 0 {
		return nil, nil
	}
	childIDs := make([]sql.GroupID, len(children))
	for i, child := range children {
		if dummy, ok := child.(*plan.Dummy); ok {
			childIDs[i] = dummy.GroupID()
			continue
		}
		childExpr, err := c.AddOperator(child)
		if err != nil {
			return nil, err
		}
		childIDs[i] = childExpr.GroupID()
	}
	return childIDs, nil
}

// rewriteIntoGroup supersedes the group with the rewritten tree: children
// are inserted leaves first, the group is erased, and the new root takes its
// place under the same group id.
func (c *Context) rewriteIntoGroup(after sql.Operator, groupID sql.GroupID) error {
	childIDs, err := c.addChildren(after)
	if err != nil {
		return err
	}
	expr, err := NewGroupExpression(after, childIDs)
	if err != nil {
		return err
	}
	c.Memo.EraseGroup(groupID)
	_, err = c.Memo.AddGroupExpression(expr, groupID, false)
	return err
}

// xformIntoGroup adds the transformed tree to the group, children leaves
// first. A fingerprint duplicate of an already indexed expression is a
// no-op; the returned flag reports whether the memo gained an expression.
func (c *Context) xformIntoGroup(after sql.Operator, groupID sql.GroupID) (bool, error) {
	childIDs, err := c.addChildren(after)
	if err != nil {
		return false, err
	}
	expr, err := NewGroupExpression(after, childIDs)
	if err != nil {
		return false, err
	}
	if dup := c.Memo.FindDuplicate(expr); dup != nil {
		return false, nil
	}
	_, err = c.Memo.AddGroupExpression(expr, groupID, false)
	if err != nil {
		return false, err
	}
	return true, nil
}
