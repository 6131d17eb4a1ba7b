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

package encoding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldwallet-labs/eip712-signer/pkg/fieldtype"
	"github.com/coldwallet-labs/eip712-signer/pkg/hashwriter"
	"github.com/coldwallet-labs/eip712-signer/pkg/schema"
	"github.com/coldwallet-labs/eip712-signer/pkg/values"
)

func leafTree(b []byte) *values.Tree { return &values.Tree{Leaf: b} }

func personValue(name string, wallet []byte) *values.Tree {
	return &values.Tree{Members: map[string]*values.Tree{
		"name":   leafTree([]byte(name)),
		"wallet": leafTree(wallet),
	}}
}

func mailValue(from, to *values.Tree, contents string) *values.Tree {
	return &values.Tree{Members: map[string]*values.Tree{
		"from":     from,
		"to":       to,
		"contents": leafTree([]byte(contents)),
	}}
}

func domainValue() *values.Tree {
	chainID := make([]byte, 32)
	chainID[31] = 0x01
	return &values.Tree{Members: map[string]*values.Tree{
		"name":              leafTree([]byte("Ether Mail")),
		"version":           leafTree([]byte("1")),
		"chainId":           leafTree(chainID),
		"verifyingContract": leafTree(mustHex20("CcCCccccCCCCcCCCCCCCcCCCCCcCCCCCcCcCCcCC")),
	}}
}

func mustHex20(s string) []byte {
	b := make([]byte, 20)
	for i := 0; i < 20; i++ {
		hi := hexNibble(s[i*2])
		lo := hexNibble(s[i*2+1])
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

func TestHashStructIsDeterministic(t *testing.T) {
	ctx := context.Background()
	types := basicMailTypes()
	cow := personValue("Cow", mustHex20("CD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826"))
	bob := personValue("Bob", mustHex20("bBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB"))
	mail := mailValue(cow, bob, "Hello, Bob!")

	d1, err := HashStruct(ctx, "Mail", mail, types, true)
	assert.NoError(t, err)
	d2, err := HashStruct(ctx, "Mail", mail, types, true)
	assert.NoError(t, err)
	assert.Equal(t, d1, d2)

	domainHash, err := HashStruct(ctx, "EIP712Domain", domainValue(), types, true)
	assert.NoError(t, err)
	assert.NotEqual(t, d1, domainHash)
}

func TestHashStructMatchesTypeHashPlusEncodeData(t *testing.T) {
	ctx := context.Background()
	types := basicMailTypes()
	cow := personValue("Cow", mustHex20("CD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826"))
	bob := personValue("Bob", mustHex20("bBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB"))
	mail := mailValue(cow, bob, "Hello, Bob!")

	got, err := HashStruct(ctx, "Mail", mail, types, true)
	assert.NoError(t, err)

	typeEncoded, err := EncodeType(ctx, "Mail", types)
	assert.NoError(t, err)
	typeHash := hashwriter.Keccak256([]byte(typeEncoded))

	w := hashwriter.New()
	w.Extend(typeHash[:])
	assert.NoError(t, EncodeData(ctx, w, "Mail", mail, types, true))
	assert.Equal(t, got, w.Digest())
}

func TestArrayOfStructV4CompatChangesDigest(t *testing.T) {
	ctx := context.Background()
	types := schema.TypeTable{
		"Person": schema.StructDef{
			{Name: "name", Type: fieldtype.String()},
		},
		"Group": schema.StructDef{
			{Name: "members", Type: fieldtype.Array(fieldtype.Struct("Person"), nil)},
		},
	}
	value := &values.Tree{Members: map[string]*values.Tree{
		"members": {Elements: []*values.Tree{
			{Members: map[string]*values.Tree{"name": leafTree([]byte("Alice"))}},
			{Members: map[string]*values.Tree{"name": leafTree([]byte("Bob"))}},
		}},
	}}

	v4Digest, err := HashStruct(ctx, "Group", value, types, true)
	assert.NoError(t, err)
	specDigest, err := HashStruct(ctx, "Group", value, types, false)
	assert.NoError(t, err)

	assert.NotEqual(t, v4Digest, specDigest)
}

func TestEncodeFieldRejectsMissingArrayValue(t *testing.T) {
	ctx := context.Background()
	w := hashwriter.New()
	err := EncodeField(ctx, w, fieldtype.Array(fieldtype.Bool(), nil), &values.Tree{}, nil, false, true)
	assert.Error(t, err)
}

func TestEncodeFieldRejectsMissingStructValue(t *testing.T) {
	ctx := context.Background()
	w := hashwriter.New()
	err := EncodeField(ctx, w, fieldtype.Struct("Person"), &values.Tree{}, basicMailTypes(), false, true)
	assert.Error(t, err)
}
