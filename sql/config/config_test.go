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

package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManagerDefaults(t *testing.T) {
	require := require.New(t)
	m := NewManager()

	_, ok := m.Value("executor", "batch_mem_size")
	require.False(ok)
	require.Equal(int64(30000000), m.Int64("executor", "batch_mem_size", 30000000))
	require.Equal("fallback", m.String("server", "host", "fallback"))
}

func TestManagerLoadBytes(t *testing.T) {
	require := require.New(t)
	m := NewManager()

	require.NoError(m.LoadBytes([]byte(`
executor:
  batch_mem_size: 1024
server:
  host: localhost
`)))

	require.Equal(int64(1024), m.Int64("executor", "batch_mem_size", 0))
	require.Equal("localhost", m.String("server", "host", ""))

	// Later documents override earlier keys.
	require.NoError(m.LoadBytes([]byte("executor:\n  batch_mem_size: 2048\n")))
	require.Equal(int64(2048), m.Int64("executor", "batch_mem_size", 0))
	require.Equal("localhost", m.String("server", "host", ""))
}

func TestManagerLoadFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "vidsql.yml")
	require.NoError(ioutil.WriteFile(path, []byte("executor:\n  batch_mem_size: 512\n"), 0644))

	m := NewManager()
	require.NoError(m.LoadFile(path))
	require.Equal(int64(512), m.Int64("executor", "batch_mem_size", 0))

	require.Error(m.LoadFile(filepath.Join(t.TempDir(), "missing.yml")))
}

func TestManagerNonCoercibleValue(t *testing.T) {
	require := require.New(t)
	m := NewManager()
	m.Set("executor", "batch_mem_size", "not a number")
	require.Equal(int64(7), m.Int64("executor", "batch_mem_size", 7))
}
