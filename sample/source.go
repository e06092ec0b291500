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
	"math/rand/v2"
	"sync"
)

// Source is a stateful generator of pseudo-random 64-bit values.
// It implements rand.Source, so it can be handed directly to gonum
// distributions or to rand.New.
//
// A Source is resolved once, by one of its constructors, and is
// borrowed by samplers for the duration of a call. Drawing advances
// its state. A Source is not safe for concurrent use unless it was
// created with Locked.
type Source struct {
	src rand.Source
}

// Fresh returns a Source seeded from the runtime's random state.
// Its output is not reproducible.
func Fresh() *Source {
	return &Source{src: rand.NewPCG(rand.Uint64(), rand.Uint64())}
}

// FromSeed returns a deterministic Source. Two sources created
// from the same seed produce identical streams.
func FromSeed(seed uint64) *Source {
	return &Source{src: rand.NewPCG(seed, seed)}
}

// FromKey returns a deterministic Source whose stream is the
// salsa20 keystream for the given key.
func FromKey(key *[32]byte) *Source {
	return &Source{src: newKeyedSource(key)}
}

// Wrap returns a Source that draws from an existing generator.
// Every draw advances src. Wrapping a *Source returns it unchanged,
// and wrapping nil returns a Fresh source.
func Wrap(src rand.Source) *Source {
	if s, ok := src.(*Source); ok {
		return orFresh(s)
	}
	if src == nil {
		return Fresh()
	}
	return &Source{src: src}
}

// Locked returns a Source that serializes access to src,
// so that it can be shared between goroutines. The order in which
// concurrent callers observe values is not deterministic.
func Locked(src rand.Source) *Source {
	return &Source{src: &lockedSource{src: src}}
}

// Uint64 returns the next pseudo-random value.
func (s *Source) Uint64() uint64 {
	return s.src.Uint64()
}

// orFresh resolves an absent source.
func orFresh(s *Source) *Source {
	if s == nil {
		return Fresh()
	}
	return s
}

type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (l *lockedSource) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Uint64()
}
