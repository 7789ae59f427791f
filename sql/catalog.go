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

// ColumnDefinition describes one column of a dataset or one input/output of
// a user defined function, as parsed from the statement.
type ColumnDefinition struct {
	Name       string `yaml:"name"`
	Type       Type   `yaml:"type"`
	ArrayType  Type   `yaml:"array_type,omitempty"`
	Dimensions []int  `yaml:"dimensions,omitempty"`
}

// UDFIO is the catalog record for one input or output column of a user
// defined function.
type UDFIO struct {
	Name       string
	Type       Type
	ArrayType  Type
	Dimensions []int
	IsInput    bool
}

// ColumnDefinitionsToUDFIO converts parsed input/output column definitions
// into their catalog records.
func ColumnDefinitionsToUDFIO(cols []*ColumnDefinition, isInput bool) []*UDFIO {
	result := make([]*UDFIO, 0, len(cols))
	for _, col := range cols {
		if col == nil {
			continue
		}
		result = append(result, &UDFIO{
			Name:       col.Name,
			Type:       col.Type,
			ArrayType:  col.ArrayType,
			Dimensions: col.Dimensions,
			IsInput:    isInput,
		})
	}
	return result
}

// DatasetMetadata is the catalog entry for a dataset. IsVideo distinguishes
// video datasets, whose frames carry a dense id column the storage engine can
// seek on, from plain tabular datasets.
type DatasetMetadata struct {
	ID      string              `yaml:"id"`
	Name    string              `yaml:"name"`
	IsVideo bool                `yaml:"is_video"`
	FileURL string              `yaml:"file_url,omitempty"`
	Columns []*ColumnDefinition `yaml:"columns,omitempty"`
}

// Catalog is the read-only schema lookup service the optimizer consults. It
// must be safe for concurrent reads.
type Catalog interface {
	// GetDatasetMetadata resolves a dataset by name. Implementations return
	// an error of kind ErrCatalogLookup when the dataset does not exist.
	GetDatasetMetadata(name string) (*DatasetMetadata, error)
}
