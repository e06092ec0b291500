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

// Package sample includes samplers for drawing random values
// from one-dimensional probability distributions, most notably
// finite mixtures of normal (Gaussian) components.
//
// Package sample provides the Sampler interface along with
// implementations for the normal distribution, the categorical
// distribution and normal mixtures. All samplers draw from a Source,
// which is either fresh (unseeded), derived from an integer seed,
// derived from a 32-byte key, or wraps a generator owned by the caller.
//
// Samplers and sources provide no internal synchronization. A Source
// shared between goroutines must be wrapped with Locked.
//
// Implementations of the Sampler interface can be used,
// for instance, to fill vectors with the desired random data.
package sample
