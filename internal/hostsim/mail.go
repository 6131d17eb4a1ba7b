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

package hostsim

import "github.com/coldwallet-labs/eip712-signer/pkg/hostlink"

func sized(t hostlink.WireDataType, size int) hostlink.WireFieldType {
	return hostlink.WireFieldType{DataType: t, Size: &size}
}

func unsized(t hostlink.WireDataType) hostlink.WireFieldType {
	return hostlink.WireFieldType{DataType: t}
}

func structType(name string) hostlink.WireFieldType {
	return hostlink.WireFieldType{DataType: hostlink.WireStruct, StructName: name}
}

func member(name string, t hostlink.WireFieldType) hostlink.WireMember {
	return hostlink.WireMember{Name: name, Type: t}
}

// NewMailHost builds the canonical worked example from the EIP-712
// proposal itself: a Mail from Cow to Bob, domain "Ether Mail" v1 on
// chain 1 (§8, vectors 1 and 2). It is the scenario cmd/eip712signer's
// simulate command drives end to end.
func NewMailHost() *Host {
	types := map[string]hostlink.StructAck{
		"EIP712Domain": {Members: []hostlink.WireMember{
			member("name", unsized(hostlink.WireString)),
			member("version", unsized(hostlink.WireString)),
			member("chainId", sized(hostlink.WireUint, 32)),
			member("verifyingContract", unsized(hostlink.WireAddress)),
		}},
		"Person": {Members: []hostlink.WireMember{
			member("name", unsized(hostlink.WireString)),
			member("wallet", unsized(hostlink.WireAddress)),
		}},
		"Mail": {Members: []hostlink.WireMember{
			member("from", structType("Person")),
			member("to", structType("Person")),
			member("contents", unsized(hostlink.WireString)),
		}},
	}

	chainID := make([]byte, 32)
	chainID[31] = 0x01

	domain := structNode(
		leaf([]byte("Ether Mail")),
		leaf([]byte("1")),
		leaf(chainID),
		leaf(mustHex("1e0Ae8205e9726E6F296ab8869160A6423E2337E")),
	)

	cow := structNode(
		leaf([]byte("Cow")),
		leaf(mustHex("CD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826")),
	)
	bob := structNode(
		leaf([]byte("Bob")),
		leaf(mustHex("bBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB")),
	)
	mail := structNode(cow, bob, leaf([]byte("Hello, Bob!")))

	return &Host{types: types, domain: domain, message: mail}
}

func mustHex(s string) []byte {
	b := make([]byte, len(s)/2)
	for i := range b {
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
