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

package signing_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/coldwallet-labs/eip712-signer/pkg/hostlink"
	"github.com/coldwallet-labs/eip712-signer/pkg/secp256k1"
	"github.com/coldwallet-labs/eip712-signer/pkg/signing"
	"github.com/coldwallet-labs/eip712-signer/pkg/values"

	"github.com/coldwallet-labs/eip712-signer/mocks/secp256k1mocks"
	"github.com/coldwallet-labs/eip712-signer/mocks/signingmocks"
)

// fakeMailHost is a minimal in-memory HostLink serving the canonical
// Mail{from,to,contents} / Person{name,wallet} example, keyed by the
// rendered member path - just enough to drive Sign end to end without a
// real transport.
type fakeMailHost struct {
	structs map[string]hostlink.StructAck
	values  map[string][]byte
}

func pathKey(path []uint64) string { return fmt.Sprint(path) }

func (h *fakeMailHost) RequestStruct(_ context.Context, req hostlink.StructRequest) (hostlink.StructAck, error) {
	ack, ok := h.structs[req.Name]
	if !ok {
		return hostlink.StructAck{}, fmt.Errorf("no such struct %q", req.Name)
	}
	return ack, nil
}

func (h *fakeMailHost) RequestValue(_ context.Context, req hostlink.ValueRequest) (hostlink.ValueAck, error) {
	b, ok := h.values[pathKey(req.MemberPath)]
	if !ok {
		return hostlink.ValueAck{}, fmt.Errorf("no value at %v", req.MemberPath)
	}
	return hostlink.ValueAck{Value: b}, nil
}

func wireMember(name string, t hostlink.WireDataType) hostlink.WireMember {
	return hostlink.WireMember{Name: name, Type: hostlink.WireFieldType{DataType: t}}
}

func newFakeMailHost() *fakeMailHost {
	uint256 := 32
	host := &fakeMailHost{
		structs: map[string]hostlink.StructAck{
			"EIP712Domain": {Members: []hostlink.WireMember{
				wireMember("name", hostlink.WireString),
				wireMember("version", hostlink.WireString),
				{Name: "chainId", Type: hostlink.WireFieldType{DataType: hostlink.WireUint, Size: &uint256}},
				wireMember("verifyingContract", hostlink.WireAddress),
			}},
			"Person": {Members: []hostlink.WireMember{
				wireMember("name", hostlink.WireString),
				wireMember("wallet", hostlink.WireAddress),
			}},
			"Mail": {Members: []hostlink.WireMember{
				{Name: "from", Type: hostlink.WireFieldType{DataType: hostlink.WireStruct, StructName: "Person"}},
				{Name: "to", Type: hostlink.WireFieldType{DataType: hostlink.WireStruct, StructName: "Person"}},
				wireMember("contents", hostlink.WireString),
			}},
		},
		values: map[string][]byte{},
	}

	chainID := make([]byte, 32)
	chainID[31] = 0x01

	// domain (root 0): name, version, chainId, verifyingContract
	host.values[pathKey([]uint64{0, 0})] = []byte("Ether Mail")
	host.values[pathKey([]uint64{0, 1})] = []byte("1")
	host.values[pathKey([]uint64{0, 2})] = chainID
	host.values[pathKey([]uint64{0, 3})] = make([]byte, 20)

	// message (root 1): from (Person), to (Person), contents
	host.values[pathKey([]uint64{1, 0, 0})] = []byte("Cow")
	host.values[pathKey([]uint64{1, 0, 1})] = make([]byte, 20)
	host.values[pathKey([]uint64{1, 1, 0})] = []byte("Bob")
	host.values[pathKey([]uint64{1, 1, 1})] = make([]byte, 20)
	host.values[pathKey([]uint64{1, 2})] = []byte("Hello, Bob!")

	return host
}

func canonicalSigAndAddress(t *testing.T) (*secp256k1mocks.Signer, [20]byte) {
	t.Helper()
	signer := secp256k1mocks.NewSigner(t)
	signer.On("SignDigest", mock.Anything, mock.Anything).Return(&secp256k1.SignatureData{
		V: big.NewInt(1),
		R: big.NewInt(0xbeef),
		S: big.NewInt(0xcafe),
	}, nil)
	return signer, [20]byte{0x01}
}

func TestSignOperatorDeclinesEverythingFallsBackToDigestConfirm(t *testing.T) {
	ctx := context.Background()
	host := newFakeMailHost()

	confirmer := signingmocks.NewConfirmer(t)
	confirmer.On("ConfirmDomainBrief", mock.Anything, mock.Anything).Return(false, nil)
	confirmer.On("ConfirmMessageBrief", mock.Anything, mock.Anything).Return(false, nil)
	confirmer.On("ConfirmDigest", mock.Anything, mock.Anything).Return(nil)

	signer, address := canonicalSigAndAddress(t)
	keychain := signingmocks.NewKeychain(t)
	keychain.On("DeriveSigner", mock.Anything, mock.Anything).Return(signer, address, nil)

	result, err := signing.Sign(ctx, host, keychain, confirmer, values.Limits{}, signing.Request{
		AddressN:         []uint32{0},
		PrimaryType:      "Mail",
		MetamaskV4Compat: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, address, result.Address)
	assert.Equal(t, byte(1), result.V)
	confirmer.AssertNotCalled(t, "ConfirmDomainFull", mock.Anything, mock.Anything)
	confirmer.AssertNotCalled(t, "ConfirmMessageFull", mock.Anything, mock.Anything)
}

func TestSignOperatorViewsFullMessageSkipsDigestConfirm(t *testing.T) {
	ctx := context.Background()
	host := newFakeMailHost()

	confirmer := signingmocks.NewConfirmer(t)
	confirmer.On("ConfirmDomainBrief", mock.Anything, mock.Anything).Return(true, nil)
	confirmer.On("ConfirmDomainFull", mock.Anything, mock.Anything).Return(nil)
	confirmer.On("ConfirmMessageBrief", mock.Anything, mock.Anything).Return(true, nil)
	confirmer.On("ConfirmMessageFull", mock.Anything, mock.Anything).Return(nil)

	signer, address := canonicalSigAndAddress(t)
	keychain := signingmocks.NewKeychain(t)
	keychain.On("DeriveSigner", mock.Anything, mock.Anything).Return(signer, address, nil)

	_, err := signing.Sign(ctx, host, keychain, confirmer, values.Limits{}, signing.Request{
		AddressN:         []uint32{0},
		PrimaryType:      "Mail",
		MetamaskV4Compat: true,
	})

	assert.NoError(t, err)
	confirmer.AssertNotCalled(t, "ConfirmDigest", mock.Anything, mock.Anything)
}

func TestSignDomainDeclineAbortsBeforeSigning(t *testing.T) {
	ctx := context.Background()
	host := newFakeMailHost()

	confirmer := signingmocks.NewConfirmer(t)
	confirmer.On("ConfirmDomainBrief", mock.Anything, mock.Anything).Return(false, fmt.Errorf("operator declined"))

	keychain := signingmocks.NewKeychain(t)

	_, err := signing.Sign(ctx, host, keychain, confirmer, values.Limits{}, signing.Request{
		AddressN:         []uint32{0},
		PrimaryType:      "Mail",
		MetamaskV4Compat: true,
	})

	assert.Error(t, err)
	keychain.AssertNotCalled(t, "DeriveSigner", mock.Anything, mock.Anything)
}

func TestSignPropagatesKeychainFailure(t *testing.T) {
	ctx := context.Background()
	host := newFakeMailHost()

	confirmer := signingmocks.NewConfirmer(t)
	confirmer.On("ConfirmDomainBrief", mock.Anything, mock.Anything).Return(false, nil)
	confirmer.On("ConfirmMessageBrief", mock.Anything, mock.Anything).Return(false, nil)
	confirmer.On("ConfirmDigest", mock.Anything, mock.Anything).Return(nil)

	keychain := signingmocks.NewKeychain(t)
	keychain.On("DeriveSigner", mock.Anything, mock.Anything).
		Return(nil, [20]byte{}, fmt.Errorf("locked"))

	_, err := signing.Sign(ctx, host, keychain, confirmer, values.Limits{}, signing.Request{
		AddressN:         []uint32{0},
		PrimaryType:      "Mail",
		MetamaskV4Compat: true,
	})

	assert.Error(t, err)
}
