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
	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrInvalidArgument is returned when a caller combines arguments in a
	// way the callee forbids, such as adding a group expression with both a
	// target group and duplicate checking enabled.
	ErrInvalidArgument = errors.NewKind("invalid argument: %s")

	// ErrNoPlanFound is returned when plan extraction reaches a memo group
	// that holds no physical expression. It is fatal for the current query.
	ErrNoPlanFound = errors.NewKind("no physical plan found for group %d")

	// ErrPatternArityMismatch is returned when a rule pattern's child count
	// does not line up with the children of the operator being matched. It
	// indicates a defect in the rule library.
	ErrPatternArityMismatch = errors.NewKind(
		"pattern expects %d children, operator %s has %d")

	// ErrCatalogLookup is returned when the catalog cannot resolve a dataset.
	ErrCatalogLookup = errors.NewKind("catalog lookup failed for dataset %q")

	// ErrInvalidChildrenNumber is returned when an operator is rebuilt with a
	// number of children it cannot hold.
	ErrInvalidChildrenNumber = errors.NewKind(
		"invalid children number, node %s got %d, expected %d")

	// ErrHashFailure is returned when a fingerprint cannot be computed for an
	// expression or operator.
	ErrHashFailure = errors.NewKind("unable to hash %s")
)
