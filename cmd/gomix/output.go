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
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/fentec-project/gomix/sample"
)

type batchWriter func(io.Writer, *sample.MixtureBatch) error

func writerFor(format string) (batchWriter, error) {
	switch format {
	case "csv":
		return writeCSV, nil
	case "json":
		return writeJSON, nil
	default:
		return nil, unknownFormat(format)
	}
}

func writeCSV(w io.Writer, b *sample.MixtureBatch) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"sample", "component"}); err != nil {
		return err
	}
	for i, x := range b.Samples {
		rec := []string{
			strconv.FormatFloat(x, 'g', -1, 64),
			strconv.Itoa(b.Components[i]),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, b *sample.MixtureBatch) error {
	return json.NewEncoder(w).Encode(struct {
		Samples    []float64 `json:"samples"`
		Components []int     `json:"components"`
	}{b.Samples, b.Components})
}
