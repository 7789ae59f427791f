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
	"strings"

	"github.com/vidsql/go-vidsql-server/sql"
)

// Function is a call to a user defined function over the given arguments.
// The alias names the output relation produced by the call when it is used
// as a row source.
type Function struct {
	name    string
	alias   string
	retType sql.Type
	args    []sql.Expression
}

var _ sql.Expression = (*Function)(nil)

// NewFunction creates a function call expression.
func NewFunction(name string, retType sql.Type, args ...sql.Expression) *Function {
	return &Function{name: name, retType: retType, args: args}
}

// WithAlias returns a copy of the function call with the output alias set.
func (f *Function) WithAlias(alias string) *Function {
	nf := *f
	nf.alias = alias
	return &nf
}

// Type implements the sql.Expression interface.
func (*Function) Type() sql.ExpressionType { return sql.FunctionExpr }

// ReturnType implements the sql.Expression interface.
func (f *Function) ReturnType() sql.Type { return f.retType }

// Children implements the sql.Expression interface.
func (f *Function) Children() []sql.Expression { return f.args }

// Name returns the function name.
func (f *Function) Name() string { return f.name }

// Alias returns the output alias, or the function name when no alias was
// given.
func (f *Function) Alias() string {
	if f.alias == "" {
		return f.name
	}
	return f.alias
}

// Attributes implements the sql.Expression interface.
func (f *Function) Attributes() interface{} {
	return struct {
		Name  string
		Alias string
	}{f.name, f.alias}
}

func (f *Function) String() string {
	args := make([]string, len(f.args))
	for i, arg := range f.args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", f.name, strings.Join(args, ", "))
}
