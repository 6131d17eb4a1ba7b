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

// Package encoding is the EIP-712 encodeType/hashStruct/encodeData pipeline
// (C3, C7, C8): 32-byte padding, the per-type field encoder, dependency
// discovery and canonical type sorting, and the recursive struct hasher.
package encoding

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/coldwallet-labs/eip712-signer/internal/signermsgs"
)

const wordSize = 32

// LeftPad32 prepends zero bytes so the result is exactly 32 bytes long,
// used for every fixed-width scalar (uint/int/bool/address).
func LeftPad32(ctx context.Context, name string, b []byte) ([]byte, error) {
	if len(b) > wordSize {
		return nil, i18n.NewError(ctx, signermsgs.MsgOverflow, name, len(b))
	}
	out := make([]byte, wordSize)
	copy(out[wordSize-len(b):], b)
	return out, nil
}

// RightPad32 appends zero bytes so the result is exactly 32 bytes long,
// used for fixed-size bytesN values.
func RightPad32(ctx context.Context, name string, b []byte) ([]byte, error) {
	if len(b) > wordSize {
		return nil, i18n.NewError(ctx, signermsgs.MsgOverflow, name, len(b))
	}
	out := make([]byte, wordSize)
	copy(out, b)
	return out, nil
}
