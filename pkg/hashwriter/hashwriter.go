// Copyright © 2022 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

// Package hashwriter is the incremental Keccak-256 sink the encoder streams
// into. Every intermediate hash in the EIP-712 pipeline - the typeHash, each
// nested hashStruct, the digest of each array - is produced with a fresh
// Writer and a call to Digest(), never by materialising a concatenation of
// byte slices. This is what keeps the encoder's working set at O(depth)
// instead of O(message size).
package hashwriter

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Writer is Keccak-256, the pre-standard SHA-3 variant Ethereum uses -
// distinct from NIST SHA3-256. golang.org/x/crypto/sha3's "legacy" Keccak
// constructor is exactly that variant.
type Writer struct {
	h hash.Hash
}

func New() *Writer {
	return &Writer{h: sha3.NewLegacyKeccak256()}
}

// Extend feeds more bytes into the running hash. It never returns an error -
// hash.Hash.Write is documented to never fail.
func (w *Writer) Extend(b []byte) {
	_, _ = w.h.Write(b)
}

// Digest returns the current Keccak-256 sum. It does not reset or consume
// the writer - hash.Hash.Sum is non-destructive, so callers may Extend
// further and take another Digest if they need to (the encoder never does,
// but the contract is preserved for testability).
func (w *Writer) Digest() [32]byte {
	var out [32]byte
	copy(out[:], w.h.Sum(nil))
	return out
}

// Keccak256 hashes a single bounded byte string in one shot - used for the
// typeHash and for dynamic bytes/string leaves, where the whole input is
// already in hand and materialising it is unavoidable (it came from one
// ValueRequest, already bounded to 1024 bytes by validate).
func Keccak256(b []byte) [32]byte {
	w := New()
	w.Extend(b)
	return w.Digest()
}
