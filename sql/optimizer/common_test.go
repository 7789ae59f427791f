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
	"github.com/vidsql/go-vidsql-server/sql/expression"
	"github.com/vidsql/go-vidsql-server/sql/plan"
)

func videoMetadata(name string) *sql.DatasetMetadata {
	return &sql.DatasetMetadata{
		ID:      name + "-id",
		Name:    name,
		IsVideo: true,
		Columns: []*sql.ColumnDefinition{
			{Name: "id", Type: sql.Integer},
			{Name: "data", Type: sql.NdArray},
		},
	}
}

func tableMetadata(name string) *sql.DatasetMetadata {
	return &sql.DatasetMetadata{
		ID:   name + "-id",
		Name: name,
		Columns: []*sql.ColumnDefinition{
			{Name: "id", Type: sql.Integer},
		},
	}
}

func newGet(name, alias string, meta *sql.DatasetMetadata) *plan.LogicalGet {
	return plan.NewLogicalGet(sql.TableRef{Name: name, Alias: alias}, meta, alias, nil, nil)
}

func idLessThan(alias string, bound int64) sql.Expression {
	return expression.NewLessThan(
		expression.NewTupleValue(alias, "id"),
		expression.NewConstant(bound, sql.Integer),
	)
}

func sampleFreq(n int64) *expression.Constant {
	return expression.NewConstant(n, sql.Integer)
}
