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

// RulesManager holds the fixed rule library, split by phase. The library is
// immutable after construction and may be shared by concurrent optimizers;
// it is passed to the optimizer explicitly rather than living in a process
// wide singleton.
type RulesManager struct {
	rewriteRules        []Rule
	transformationRules []Rule
	implementationRules []Rule
}

// NewRulesManager creates the default rule library.
func NewRulesManager() *RulesManager {
	return &RulesManager{
		rewriteRules: []Rule{
			NewEmbedFilterIntoGet(),
			NewEmbedFilterIntoDerivedGet(),
			NewPushdownFilterThroughSample(),
			NewEmbedProjectIntoGet(),
			NewEmbedProjectIntoDerivedGet(),
			NewPushdownProjectThroughSample(),
		},
		transformationRules: []Rule{
			NewLogicalInnerJoinCommutativity(),
		},
		implementationRules: []Rule{
			NewLogicalCreateToPhysical(),
			NewLogicalRenameToPhysical(),
			NewLogicalDropToPhysical(),
			NewLogicalCreateUDFToPhysical(),
			NewLogicalDropUDFToPhysical(),
			NewLogicalInsertToPhysical(),
			NewLogicalLoadToPhysical(),
			NewLogicalUploadToPhysical(),
			NewLogicalSampleToUniformSample(),
			NewLogicalGetToSeqScan(),
			NewLogicalDerivedGetToPhysical(),
			NewLogicalUnionToPhysical(),
			NewLogicalOrderByToPhysical(),
			NewLogicalLimitToPhysical(),
			NewLogicalLateralJoinToPhysical(),
			NewLogicalJoinToPhysicalHashJoin(),
			NewLogicalFunctionScanToPhysical(),
			NewLogicalCreateMaterializedViewToPhysical(),
			NewLogicalFilterToPhysical(),
			NewLogicalProjectToPhysical(),
			NewLogicalShowToPhysical(),
		},
	}
}

// RewriteRules returns the rewrite phase rules.
func (m *RulesManager) RewriteRules() []Rule { return m.rewriteRules }

// TransformationRules returns the transformation phase rules.
func (m *RulesManager) TransformationRules() []Rule { return m.transformationRules }

// ImplementationRules returns the implementation phase rules.
func (m *RulesManager) ImplementationRules() []Rule { return m.implementationRules }

// AllRules returns every rule of the library.
func (m *RulesManager) AllRules() []Rule {
	all := make([]Rule, 0,
		len(m.rewriteRules)+len(m.transformationRules)+len(m.implementationRules))
	all = append(all, m.rewriteRules...)
	all = append(all, m.transformationRules...)
	all = append(all, m.implementationRules...)
	return all
}
