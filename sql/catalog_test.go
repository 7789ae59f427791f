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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumnDefinitionsToUDFIO(t *testing.T) {
	require := require.New(t)

	cols := []*ColumnDefinition{
		{Name: "frame", Type: NdArray, ArrayType: Float, Dimensions: []int{3, 224, 224}},
		nil,
		{Name: "label", Type: Text},
	}

	inputs := ColumnDefinitionsToUDFIO(cols, true)
	require.Len(inputs, 2)
	require.Equal("frame", inputs[0].Name)
	require.Equal([]int{3, 224, 224}, inputs[0].Dimensions)
	require.True(inputs[0].IsInput)

	outputs := ColumnDefinitionsToUDFIO(cols[2:], false)
	require.Len(outputs, 1)
	require.False(outputs[0].IsInput)
}

func TestTableRefAliasOrName(t *testing.T) {
	require := require.New(t)

	require.Equal("v", TableRef{Name: "v1", Alias: "v"}.AliasOrName())
	require.Equal("v1", TableRef{Name: "v1"}.AliasOrName())
}
