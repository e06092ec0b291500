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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

const keyedBlockSize = 64

// keyedSource produces a deterministic stream of values from the
// salsa20 keystream of a key. Blocks are generated one at a time,
// with the block counter used as the nonce.
type keyedSource struct {
	key   *[32]byte
	block uint64
	buf   [keyedBlockSize]byte
	pos   int
}

func newKeyedSource(key *[32]byte) *keyedSource {
	k := new([32]byte)
	*k = *key
	return &keyedSource{
		key: k,
		pos: keyedBlockSize,
	}
}

// Uint64 returns the next 8 bytes of the keystream.
func (u *keyedSource) Uint64() uint64 {
	if u.pos == keyedBlockSize {
		u.refill()
	}
	v := binary.LittleEndian.Uint64(u.buf[u.pos:])
	u.pos += 8
	return v
}

func (u *keyedSource) refill() {
	var in [keyedBlockSize]byte // input is initialized to zeros
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, u.block)

	salsa20.XORKeyStream(u.buf[:], in[:], nonce, u.key)

	u.block++
	u.pos = 0
}
