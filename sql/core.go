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

import "fmt"

// Type is the tag of the value domain an expression evaluates to.
type Type byte

const (
	// Undefined is the type of expressions whose type is not yet known.
	Undefined Type = iota
	// Boolean is a true/false value.
	Boolean
	// Integer is a signed 64 bit integer.
	Integer
	// Float is a 64 bit floating point number.
	Float
	// Text is a variable length string.
	Text
	// NdArray is an n-dimensional array, the payload type of video frames
	// and UDF outputs.
	NdArray
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Integer:
		return "INTEGER"
	case Float:
		return "FLOAT"
	case Text:
		return "TEXT"
	case NdArray:
		return "NDARRAY"
	default:
		return "UNDEFINED"
	}
}

// JoinType enumerates the supported join flavors.
type JoinType byte

const (
	// InnerJoin keeps the rows matching the join predicate.
	InnerJoin JoinType = iota
	// LeftJoin keeps all rows of the left side.
	LeftJoin
	// RightJoin keeps all rows of the right side.
	RightJoin
	// FullOuterJoin keeps all rows of both sides.
	FullOuterJoin
	// LateralJoin evaluates the right side once per row of the left side.
	LateralJoin
)

func (t JoinType) String() string {
	switch t {
	case InnerJoin:
		return "INNER"
	case LeftJoin:
		return "LEFT"
	case RightJoin:
		return "RIGHT"
	case FullOuterJoin:
		return "FULL OUTER"
	case LateralJoin:
		return "LATERAL"
	default:
		return fmt.Sprintf("JoinType(%d)", t)
	}
}

// SortOrder is the direction of an ORDER BY field.
type SortOrder byte

const (
	// Ascending order.
	Ascending SortOrder = iota
	// Descending order.
	Descending
)

func (o SortOrder) String() string {
	if o == Descending {
		return "DESC"
	}
	return "ASC"
}

// ShowType selects the catalog entity listed by a SHOW statement.
type ShowType byte

const (
	// ShowUDFs lists the registered user defined functions.
	ShowUDFs ShowType = iota
	// ShowTables lists the datasets of the catalog.
	ShowTables
)

func (t ShowType) String() string {
	if t == ShowTables {
		return "TABLES"
	}
	return "UDFS"
}

// GroupID identifies an equivalence class inside the optimizer memo. Ids are
// dense, monotonically assigned and immutable once allocated.
type GroupID int

// UndefinedGroupID is the sentinel for "no group assigned yet".
const UndefinedGroupID GroupID = -1

// TableRef is a reference to a dataset as written in the statement, carrying
// the optional alias given to it.
type TableRef struct {
	Name  string
	Alias string
}

// AliasOrName returns the alias under which the columns of the referenced
// dataset are visible.
func (r TableRef) AliasOrName() string {
	if r.Alias != "" {
		return r.Alias
	}
	return r.Name
}

func (r TableRef) String() string {
	if r.Alias != "" {
		return fmt.Sprintf("%s AS %s", r.Name, r.Alias)
	}
	return r.Name
}
