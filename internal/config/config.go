/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads normal mixture descriptions from YAML files.
package config

import (
	"bytes"
	"encoding/hex"
	"os"

	"github.com/fentec-project/gomix/sample"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Mixture describes a normal mixture and how many samples
// to draw from it. At most one of Seed and Key may be set, Key being
// 64 hex digits. If neither is set, the source is unseeded.
type Mixture struct {
	Weights []float64 `yaml:"weights"`
	Means   []float64 `yaml:"means"`
	Stds    []float64 `yaml:"stds"`
	N       int       `yaml:"n"`
	Seed    *uint64   `yaml:"seed,omitempty"`
	Key     string    `yaml:"key,omitempty"`
}

// Load reads a Mixture from the YAML file at path.
// Unknown fields are rejected.
func Load(path string) (*Mixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read mixture file")
	}
	return Parse(raw)
}

// Parse decodes a Mixture from YAML.
func Parse(raw []byte) (*Mixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	m := &Mixture{}
	if err := dec.Decode(m); err != nil {
		return nil, errors.Wrap(err, "cannot decode mixture")
	}
	return m, nil
}

// Build validates the parameters and returns the described mixture.
func (m *Mixture) Build() (*sample.NormalMixture, error) {
	return sample.NewNormalMixture(m.Weights, m.Means, m.Stds)
}

// Source returns the source described by Seed or Key.
func (m *Mixture) Source() (*sample.Source, error) {
	switch {
	case m.Seed != nil && m.Key != "":
		return nil, errors.New("seed and key are mutually exclusive")
	case m.Seed != nil:
		return sample.FromSeed(*m.Seed), nil
	case m.Key != "":
		key, err := ParseKey(m.Key)
		if err != nil {
			return nil, err
		}
		return sample.FromKey(key), nil
	default:
		return sample.Fresh(), nil
	}
}

// ParseKey decodes a 32-byte key given as 64 hex digits.
func ParseKey(s string) (*[32]byte, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "malformed key")
	}
	if len(raw) != 32 {
		return nil, errors.Errorf("key should be 32 bytes, got %d", len(raw))
	}
	key := new([32]byte)
	copy(key[:], raw)
	return key, nil
}
