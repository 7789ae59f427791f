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

// Package optimizer transforms logical plans into physical ones. It keeps
// the equivalent sub-expressions it discovers in a memo, rewrites them with
// a fixed promise-ordered rule library until a fixpoint, then maps every
// logical operator to its physical implementation and extracts the final
// plan.
package optimizer

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/vidsql/go-vidsql-server/sql"
	"github.com/vidsql/go-vidsql-server/sql/config"
)

// Optimizer drives one logical plan at a time to its physical plan. The
// collaborators are shared and read-only; the per-query state lives in the
// Context created by Optimize. An optimizer is synchronous and CPU only; it
// never blocks on I/O.
type Optimizer struct {
	rules   *RulesManager
	catalog sql.Catalog
	config  *config.Manager
}

// NewOptimizer creates an optimizer over the given collaborators.
func NewOptimizer(rules *RulesManager, catalog sql.Catalog, cfg *config.Manager) *Optimizer {
	return &Optimizer{rules: rules, catalog: catalog, config: cfg}
}

// appliedKey identifies one (rule, group, binding) application, so the
// exploration loop attempts each combination exactly once.
type appliedKey struct {
	rule    RuleType
	group   sql.GroupID
	binding uint64
}

// Optimize inserts the logical plan into a fresh memo, explores it with the
// rewrite and transformation rules until no rule produces a new expression,
// implements every logical expression, and extracts the physical plan of
// the root group. Given the same input plan and configuration the same
// physical plan is produced.
func (o *Optimizer) Optimize(ctx *sql.Context, root sql.Operator) (sql.Operator, error) {
	span, ctx := ctx.Span("optimizer.optimize")
	defer span.Finish()

	octx := NewContext(o.catalog, o.config, o.rules)
	rootExpr, err := octx.AddOperator(root)
	if err != nil {
		return nil, err
	}
	rootID := rootExpr.GroupID()

	exploreSpan, _ := ctx.Span("optimizer.explore")
	exploreRules := sortRulesByPromise(append(
		append([]Rule(nil), o.rules.RewriteRules()...),
		o.rules.TransformationRules()...,
	))
	err = o.applyRules(octx, exploreRules)
	exploreSpan.Finish()
	if err != nil {
		return nil, err
	}

	implementSpan, _ := ctx.Span("optimizer.implement")
	err = o.applyRules(octx, sortRulesByPromise(o.rules.ImplementationRules()))
	implementSpan.Finish()
	if err != nil {
		return nil, err
	}

	return o.extractPlan(octx, rootID)
}

// sortRulesByPromise orders rules by descending promise, keeping the
// registration order of equal promises as a deterministic tie-break.
func sortRulesByPromise(rules []Rule) []Rule {
	sorted := append([]Rule(nil), rules...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Promise() > sorted[j].Promise()
	})
	return sorted
}

// applyRules drives the memo to a fixpoint under the given rules. Groups
// are visited in id order; each (rule, group, binding) combination is
// attempted once.
func (o *Optimizer) applyRules(octx *Context, rules []Rule) error {
	applied := make(map[appliedKey]struct{})
	for changed := true; changed; {
		changed = false
		for gid := 0; gid < octx.Memo.NumGroups(); gid++ {
			groupChanged, err := o.exploreGroup(octx, sql.GroupID(gid), rules, applied)
			if err != nil {
				return err
			}
			changed = changed || groupChanged
		}
	}
	return nil
}

// exploreGroup attempts every rule against every logical expression of the
// group. A successful rewrite supersedes the group and returns immediately;
// the next pass revisits it. Transformation and implementation results join
// the group, deduplicated by fingerprint.
func (o *Optimizer) exploreGroup(
	octx *Context,
	gid sql.GroupID,
	rules []Rule,
	applied map[appliedKey]struct{},
) (bool, error) {
	group := octx.Memo.GetGroup(gid)
	if group == nil {
		return false, nil
	}

	changed := false
	for _, rule := range rules {
		exprs := append([]*GroupExpression(nil), group.LogicalExprs()...)
		for _, expr := range exprs {
			if !topMatches(rule, expr.Operator()) {
				continue
			}
			bindings, err := Bind(octx.Memo, rule.Pattern(), expr)
			if err != nil {
				return changed, err
			}

			for _, binding := range bindings {
				bindingFp, err := sql.TreeFingerprint(binding)
				if err != nil {
					return changed, err
				}
				key := appliedKey{rule.RuleType(), gid, bindingFp}
				if _, seen := applied[key]; seen {
					continue
				}
				applied[key] = struct{}{}

				if !rule.Check(binding, octx) {
					continue
				}
				after, err := rule.Apply(binding, octx)
				if err != nil {
					return changed, err
				}
				if after == nil || sql.OperatorsEqual(after, binding) {
					continue
				}

				logrus.WithFields(logrus.Fields{
					"rule":  rule.RuleType(),
					"group": gid,
				}).Debug("applied optimizer rule")

				if rule.RuleType().IsRewrite() {
					if err := octx.rewriteIntoGroup(after, gid); err != nil {
						return changed, err
					}
					return true, nil
				}

				added, err := octx.xformIntoGroup(after, gid)
				if err != nil {
					return changed, err
				}
				changed = changed || added
			}
		}
	}
	return changed, nil
}

// extractPlan materializes the physical plan of the group: its first
// physical expression with the recursively extracted child plans.
func (o *Optimizer) extractPlan(octx *Context, gid sql.GroupID) (sql.Operator, error) {
	group := octx.Memo.GetGroup(gid)
	if group == nil || len(group.PhysicalExprs()) == 0 {
		return nil, sql.ErrNoPlanFound.New(gid)
	}

	best := group.PhysicalExprs()[0]
	childIDs := best.Children()
	children := make([]sql.Operator, len(childIDs))
	for i, childID := range childIDs {
		child, err := o.extractPlan(octx, childID)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return best.Operator().WithChildren(children...)
}
