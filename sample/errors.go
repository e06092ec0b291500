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

package sample

import (
	"github.com/pkg/errors"
)

// InvalidMixtureSpec is returned when mixture parameters are
// inconsistent: mismatched lengths, no components, negative or
// non-normalized weights, or non-positive standard deviations.
var InvalidMixtureSpec = errors.New("invalid mixture specification")

// InvalidSampleCount is returned when a negative number of
// samples is requested.
var InvalidSampleCount = errors.New("invalid sample count")
