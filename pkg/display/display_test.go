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

package display

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustBytes(hexStr string) []byte {
	b := make([]byte, len(hexStr)/2)
	for i := range b {
		hi := hexNibble(hexStr[i*2])
		lo := hexNibble(hexStr[i*2+1])
		b[i] = hi<<4 | lo
	}
	return b
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

func TestDecodeBool(t *testing.T) {
	ctx := context.Background()
	out, err := Decode(ctx, "bool", []byte{0x01})
	assert.NoError(t, err)
	assert.Equal(t, "true", out)

	out, err = Decode(ctx, "bool", []byte{0x00})
	assert.NoError(t, err)
	assert.Equal(t, "false", out)
}

func TestDecodeAddressAppliesChecksumCasing(t *testing.T) {
	ctx := context.Background()
	out, err := Decode(ctx, "address", mustBytes("5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", out)
}

func TestDecodeAddressWrongLength(t *testing.T) {
	ctx := context.Background()
	_, err := Decode(ctx, "address", make([]byte, 19))
	assert.Error(t, err)
}

func TestDecodeString(t *testing.T) {
	ctx := context.Background()
	out, err := Decode(ctx, "string", []byte("Hello, Bob!"))
	assert.NoError(t, err)
	assert.Equal(t, "Hello, Bob!", out)
}

func TestDecodeBytesDynamicAndFixed(t *testing.T) {
	ctx := context.Background()
	out, err := Decode(ctx, "bytes", []byte{0xde, 0xad, 0xbe, 0xef})
	assert.NoError(t, err)
	assert.Equal(t, "0xdeadbeef", out)

	out, err = Decode(ctx, "bytes4", []byte{0xca, 0xfe, 0xba, 0xbe})
	assert.NoError(t, err)
	assert.Equal(t, "0xcafebabe", out)
}

func TestDecodeUintPositive(t *testing.T) {
	ctx := context.Background()
	raw := make([]byte, 32)
	raw[31] = 0x2a
	out, err := Decode(ctx, "uint256", raw)
	assert.NoError(t, err)
	assert.Equal(t, "42", out)
}

func TestDecodeIntPositive(t *testing.T) {
	ctx := context.Background()
	out, err := Decode(ctx, "int16", []byte{0x00, 0x2a})
	assert.NoError(t, err)
	assert.Equal(t, "42", out)
}

func TestDecodeIntNegativeTwosComplement(t *testing.T) {
	ctx := context.Background()
	// int16(-1) is 0xFFFF
	out, err := Decode(ctx, "int16", []byte{0xff, 0xff})
	assert.NoError(t, err)
	assert.Equal(t, "-1", out)

	// int8(-128) is 0x80, the sign-bit boundary case
	out, err = Decode(ctx, "int8", []byte{0x80})
	assert.NoError(t, err)
	assert.Equal(t, "-128", out)
}

func TestDecodeUnsupportedType(t *testing.T) {
	ctx := context.Background()
	_, err := Decode(ctx, "tuple", []byte{0x00})
	assert.Error(t, err)
}
