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

package expression

import (
	"fmt"

	"github.com/vidsql/go-vidsql-server/sql"
)

// WindowFunction applies an aggregation over an ordered frame of rows. It
// only exists between the parser and the planner; the executor receives the
// physical window plan instead.
type WindowFunction struct {
	aggregate  sql.Expression
	orderBy    []sql.Expression
	frameStart int
	frameEnd   int
}

var _ sql.Expression = (*WindowFunction)(nil)

// NewWindowFunction creates a window function over the given aggregate with
// the frame [frameStart, frameEnd] relative to the current row.
func NewWindowFunction(
	aggregate sql.Expression,
	orderBy []sql.Expression,
	frameStart, frameEnd int,
) *WindowFunction {
	return &WindowFunction{
		aggregate:  aggregate,
		orderBy:    orderBy,
		frameStart: frameStart,
		frameEnd:   frameEnd,
	}
}

// Type implements the sql.Expression interface.
func (*WindowFunction) Type() sql.ExpressionType { return sql.WindowFunctionExpr }

// ReturnType implements the sql.Expression interface.
func (w *WindowFunction) ReturnType() sql.Type { return w.aggregate.ReturnType() }

// Children implements the sql.Expression interface. The aggregate comes
// first, followed by the order-by expressions.
func (w *WindowFunction) Children() []sql.Expression {
	children := make([]sql.Expression, 0, len(w.orderBy)+1)
	children = append(children, w.aggregate)
	children = append(children, w.orderBy...)
	return children
}

// Aggregate returns the windowed aggregate expression.
func (w *WindowFunction) Aggregate() sql.Expression { return w.aggregate }

// OrderBy returns the ordering expressions of the window.
func (w *WindowFunction) OrderBy() []sql.Expression { return w.orderBy }

// Frame returns the frame bounds relative to the current row.
func (w *WindowFunction) Frame() (start, end int) {
	return w.frameStart, w.frameEnd
}

// Attributes implements the sql.Expression interface.
func (w *WindowFunction) Attributes() interface{} {
	return struct {
		FrameStart int
		FrameEnd   int
	}{w.frameStart, w.frameEnd}
}

func (w *WindowFunction) String() string {
	return fmt.Sprintf("%s OVER (ROWS BETWEEN %d AND %d)",
		w.aggregate, w.frameStart, w.frameEnd)
}
