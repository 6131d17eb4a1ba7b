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

package secp256k1

import (
	"context"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/coldwallet-labs/eip712-signer/internal/signermsgs"
)

// SignatureData holds a signature over an already-final digest. V is the
// canonical 0/1 recovery parity (§6) - this package never adds the legacy
// 27/28 offset itself, because the digest it signs is the EIP-712 final
// hash, not a raw Ethereum message that a downstream RLP encoder expects
// in the old convention.
type SignatureData struct {
	V *big.Int
	R *big.Int
	S *big.Int
}

// ToLegacyV returns the historical 27/28 encoding some verifiers still
// expect, without mutating the canonical SignatureData. Kept as a single
// documented adapter rather than threading a chain ID convention through
// the signer itself - this package has no notion of a chain ID.
func (s *SignatureData) ToLegacyV() byte {
	return byte(s.V.Int64() + 27)
}

// Signer signs a pre-computed 32-byte digest directly. It deliberately
// takes no raw message - the caller (the signing orchestrator) is the only
// place that knows how to arrive at a digest, and re-hashing here would
// silently sign something other than what was displayed to the operator.
type Signer interface {
	SignDigest(ctx context.Context, digest [32]byte) (*SignatureData, error)
}

// SignDigest signs digest with k's private key and returns R, S and the
// canonical 0/1 V. It performs no hashing of its own: digest must already
// be the final value the operator confirmed.
func (k *KeyPair) SignDigest(ctx context.Context, digest [32]byte) (*SignatureData, error) {
	if k == nil {
		return nil, i18n.NewError(ctx, signermsgs.MsgNoKeychainConfigured)
	}
	sig, err := btcec.SignCompact(btcec.S256(), k.PrivateKey, digest[:], false)
	if err != nil {
		return nil, err
	}
	// btcec's compact format returns a recovery byte already offset by 27;
	// undo that so callers see the canonical 0/1 parity everywhere else in
	// this package uses.
	return &SignatureData{
		V: big.NewInt(int64(sig[0]) - 27),
		R: new(big.Int).SetBytes(sig[1:33]),
		S: new(big.Int).SetBytes(sig[33:65]),
	}, nil
}
