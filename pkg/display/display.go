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

// Package display is the pure bytes-to-string formatter (C10) that renders
// a field's raw leaf value for the UI confirmation collaborator. Its only
// caller is the signing orchestrator's field flattening (pkg/signing) -
// the encoder never decodes a value, it only pads/hashes the raw bytes
// the host sent.
package display

import (
	"context"
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/coldwallet-labs/eip712-signer/internal/signermsgs"
	"github.com/coldwallet-labs/eip712-signer/pkg/ethtypes"
)

// Decode renders raw bytes for the given canonical type name (as produced
// by fieldtype.TypeName) into the string an operator should see.
func Decode(ctx context.Context, typeName string, raw []byte) (string, error) {
	switch {
	case typeName == "bool":
		return strconv.FormatBool(len(raw) == 1 && raw[0] == 0x01), nil
	case typeName == "address":
		var a ethtypes.AddressWithChecksum
		if len(raw) != 20 {
			return "", i18n.NewError(ctx, signermsgs.MsgDataErrorBadAddress, "address", len(raw))
		}
		copy(a[:], raw)
		return a.String(), nil
	case typeName == "string":
		return string(raw), nil
	case typeName == "bytes" || strings.HasPrefix(typeName, "bytes"):
		return "0x" + hex.EncodeToString(raw), nil
	case strings.HasPrefix(typeName, "uint"):
		return new(big.Int).SetBytes(raw).String(), nil
	case strings.HasPrefix(typeName, "int"):
		return decodeSignedBigEndian(raw).String(), nil
	default:
		return "", i18n.NewError(ctx, signermsgs.MsgUnsupportedType, typeName)
	}
}

// decodeSignedBigEndian interprets raw as a big-endian two's-complement
// signed integer by hand: invert every byte, add one, and negate, but only
// when the sign bit is set. This is mandated by §9 so the routine ports
// identically to a runtime with no signed-bytes-to-integer primitive -
// it must not lean on a library call that takes a "signed" flag.
func decodeSignedBigEndian(raw []byte) *big.Int {
	if len(raw) == 0 || raw[0]&0x80 == 0 {
		return new(big.Int).SetBytes(raw)
	}
	inverted := make([]byte, len(raw))
	for i, b := range raw {
		inverted[i] = ^b
	}
	magnitude := new(big.Int).SetBytes(inverted)
	magnitude.Add(magnitude, big.NewInt(1))
	return magnitude.Neg(magnitude)
}
