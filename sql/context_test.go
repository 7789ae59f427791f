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
	"context"
	"testing"

	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/require"
)

func TestContextSpan(t *testing.T) {
	require := require.New(t)

	tracer := mocktracer.New()
	ctx := NewContext(context.Background(), WithTracer(tracer))

	span, childCtx := ctx.Span("optimizer.optimize")
	childSpan, _ := childCtx.Span("optimizer.explore")
	childSpan.Finish()
	span.Finish()

	spans := tracer.FinishedSpans()
	require.Len(spans, 2)
	require.Equal("optimizer.explore", spans[0].OperationName)
	require.Equal("optimizer.optimize", spans[1].OperationName)
	require.Equal(spans[1].SpanContext.SpanID, spans[0].ParentID)
}

func TestEmptyContextSpanIsNoop(t *testing.T) {
	require := require.New(t)

	ctx := NewEmptyContext()
	span, child := ctx.Span("anything")
	require.NotNil(span)
	require.NotNil(child)
	span.Finish()
}

func TestErrorKinds(t *testing.T) {
	require := require.New(t)

	err := ErrNoPlanFound.New(3)
	require.True(ErrNoPlanFound.Is(err))
	require.False(ErrInvalidArgument.Is(err))

	err = ErrCatalogLookup.New("v1")
	require.Contains(err.Error(), "v1")
}
