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

// Package config exposes the engine configuration as nested category/key
// maps loaded from a YAML file. A zero manager answers every lookup with the
// caller's default, so components never need a file to be present.
package config

import (
	"io/ioutil"

	"github.com/spf13/cast"
	yaml "gopkg.in/yaml.v2"
)

// Manager holds the loaded configuration values.
type Manager struct {
	values map[string]map[string]interface{}
}

// NewManager returns an empty configuration manager.
func NewManager() *Manager {
	return &Manager{values: map[string]map[string]interface{}{}}
}

// LoadBytes merges the given YAML document into the manager. Keys present in
// the document override previously loaded ones.
func (m *Manager) LoadBytes(data []byte) error {
	var doc map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if m.values == nil {
		m.values = map[string]map[string]interface{}{}
	}
	for category, keys := range doc {
		if m.values[category] == nil {
			m.values[category] = map[string]interface{}{}
		}
		for key, value := range keys {
			m.values[category][key] = value
		}
	}
	return nil
}

// LoadFile reads and merges the YAML configuration file at path.
func (m *Manager) LoadFile(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return m.LoadBytes(data)
}

// Set overrides a single value.
func (m *Manager) Set(category, key string, value interface{}) {
	if m.values == nil {
		m.values = map[string]map[string]interface{}{}
	}
	if m.values[category] == nil {
		m.values[category] = map[string]interface{}{}
	}
	m.values[category][key] = value
}

// Value returns the raw value stored under category/key.
func (m *Manager) Value(category, key string) (interface{}, bool) {
	keys, ok := m.values[category]
	if !ok {
		return nil, false
	}
	v, ok := keys[key]
	return v, ok
}

// Int64 returns the value under category/key as an int64, or def when the
// key is absent or not coercible.
func (m *Manager) Int64(category, key string, def int64) int64 {
	raw, ok := m.Value(category, key)
	if !ok {
		return def
	}
	v, err := cast.ToInt64E(raw)
	if err != nil {
		return def
	}
	return v
}

// String returns the value under category/key as a string, or def when the
// key is absent or not coercible.
func (m *Manager) String(category, key string, def string) string {
	raw, ok := m.Value(category, key)
	if !ok {
		return def
	}
	v, err := cast.ToStringE(raw)
	if err != nil {
		return def
	}
	return v
}
