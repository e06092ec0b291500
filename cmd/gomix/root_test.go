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

package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/fentec-project/gomix/sample"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	cmd := newRootCmd(zerolog.New(&logs))
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), logs.String(), err
}

func TestRoot_CSV(t *testing.T) {
	out, _, err := execute(t,
		"--weights", "0.5,0.5", "--means", "0,2", "--stds", "1,0.5",
		"-n", "100", "--seed", "42")
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 101)
	assert.Equal(t, []string{"sample", "component"}, records[0])

	want, err := sample.SampleNormalMixture(100, []float64{0.5, 0.5}, []float64{0, 2}, []float64{1, 0.5}, sample.FromSeed(42))
	require.NoError(t, err)
	for i, rec := range records[1:] {
		x, err := strconv.ParseFloat(rec[0], 64)
		require.NoError(t, err)
		c, err := strconv.Atoi(rec[1])
		require.NoError(t, err)
		assert.Equal(t, want.Samples[i], x)
		assert.Equal(t, want.Components[i], c)
	}
}

func TestRoot_ConfigAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixture.yaml")
	raw := "weights: [0.7, 0.3]\nmeans: [0, 5]\nstds: [1, 1]\nn: 10\nseed: 123\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	out, _, err := execute(t, "--config", path, "--format", "json", "-n", "25")
	require.NoError(t, err)

	var got struct {
		Samples    []float64 `json:"samples"`
		Components []int     `json:"components"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Samples, 25)
	assert.Len(t, got.Components, 25)

	want, err := sample.SampleNormalMixture(25, []float64{0.7, 0.3}, []float64{0, 5}, []float64{1, 1}, sample.FromSeed(123))
	require.NoError(t, err)
	assert.Equal(t, want.Samples, got.Samples)
	assert.Equal(t, want.Components, got.Components)
}

func TestRoot_Key(t *testing.T) {
	key := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	out, _, err := execute(t,
		"--weights", "0.5,0.5", "--means", "0,2", "--stds", "1,0.5",
		"-n", "20", "--key", key, "--format", "json")
	require.NoError(t, err)

	var got struct {
		Samples    []float64 `json:"samples"`
		Components []int     `json:"components"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	var raw [32]byte
	for i := range raw {
		raw[i] = byte(i)
	}
	want, err := sample.SampleNormalMixture(20, []float64{0.5, 0.5}, []float64{0, 2}, []float64{1, 0.5}, sample.FromKey(&raw))
	require.NoError(t, err)
	assert.Equal(t, want.Samples, got.Samples)
	assert.Equal(t, want.Components, got.Components)
}

func TestRoot_Summary(t *testing.T) {
	_, logs, err := execute(t,
		"--weights", "1", "--means", "3", "--stds", "1",
		"-n", "50", "--seed", "1", "--summary")
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(logs), &entry))
	assert.Equal(t, "summary", entry["message"])
	assert.Equal(t, float64(50), entry["count"])
	assert.Equal(t, []interface{}{float64(1)}, entry["frequencies"])
}

func TestRoot_Errors(t *testing.T) {
	var tests = []struct {
		name string
		args []string
	}{
		{
			name: "no mixture",
			args: []string{"-n", "3"},
		},
		{
			name: "weights do not sum to one",
			args: []string{"--weights", "0.5,0.4", "--means", "0,1", "--stds", "1,1"},
		},
		{
			name: "negative count",
			args: []string{"--weights", "1", "--means", "0", "--stds", "1", "-n", "-2"},
		},
		{
			name: "unknown format",
			args: []string{"--weights", "1", "--means", "0", "--stds", "1", "--format", "xml"},
		},
		{
			name: "seed and key",
			args: []string{"--weights", "1", "--means", "0", "--stds", "1", "--seed", "1", "--key", "00"},
		},
		{
			name: "malformed key",
			args: []string{"--weights", "1", "--means", "0", "--stds", "1", "--key", "xyz"},
		},
		{
			name: "missing config",
			args: []string{"--config", "does-not-exist.yaml"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := execute(t, test.args...)
			assert.Error(t, err)
		})
	}
}
