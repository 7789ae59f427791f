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

package plan

import (
	"fmt"

	"github.com/vidsql/go-vidsql-server/sql"
	"github.com/vidsql/go-vidsql-server/sql/expression"
)

// LogicalSample keeps every n-th frame of its child, n being the sampling
// frequency.
type LogicalSample struct {
	baseOperator
	sampleFreq *expression.Constant
}

var _ sql.Operator = (*LogicalSample)(nil)

// NewLogicalSample creates a sampling operator over the given child.
func NewLogicalSample(sampleFreq *expression.Constant, children ...sql.Operator) *LogicalSample {
	return &LogicalSample{
		baseOperator: baseOperator{children: children},
		sampleFreq:   sampleFreq,
	}
}

// Type implements the sql.Operator interface.
func (*LogicalSample) Type() sql.OperatorType { return sql.LogicalSampleOp }

// SampleFreq returns the sampling frequency.
func (s *LogicalSample) SampleFreq() *expression.Constant { return s.sampleFreq }

// WithChildren implements the sql.Operator interface.
func (s *LogicalSample) WithChildren(children ...sql.Operator) (sql.Operator, error) {
	if err := validateChildren(s, children, 1); err != nil {
		return nil, err
	}
	ns := *s
	ns.baseOperator = baseOperator{children: children}
	return &ns, nil
}

// Attributes implements the sql.Operator interface.
func (s *LogicalSample) Attributes() interface{} {
	return struct {
		SampleFreq sql.ExprHashNode
	}{sql.ExprHashView(s.sampleFreq)}
}

func (s *LogicalSample) String() string {
	return fmt.Sprintf("LogicalSample(%s)", s.sampleFreq)
}
