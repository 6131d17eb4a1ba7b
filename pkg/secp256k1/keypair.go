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

// Package secp256k1 is the reference implementation of the keychain/signer
// external collaborators described by the interface (it is not itself a
// derivation engine - no BIP-32 path walking lives here, just the raw
// ECDSA primitives a concrete keychain would hold at a leaf path).
package secp256k1

import (
	"github.com/btcsuite/btcd/btcec" // ISC licensed
	"github.com/coldwallet-labs/eip712-signer/pkg/ethtypes"
	"golang.org/x/crypto/sha3"
)

const privateKeySize = 32

type KeyPair struct {
	PrivateKey *btcec.PrivateKey
	PublicKey  *btcec.PublicKey
	Address    ethtypes.Address0xHex
}

func (k *KeyPair) PrivateKeyBytes() []byte {
	return k.PrivateKey.D.FillBytes(make([]byte, privateKeySize))
}

// AddressBytes returns the raw 20-byte Ethereum address, for callers that
// want it without ethtypes' EIP-55 string rendering.
func (k *KeyPair) AddressBytes() [20]byte {
	var out [20]byte
	copy(out[:], k.Address[:])
	return out
}

func GenerateSecp256k1KeyPair() (*KeyPair, error) {
	key, _ := btcec.NewPrivateKey(btcec.S256())
	return wrapSecp256k1Key(key, key.PubKey()), nil
}

func NewSecp256k1KeyPair(b []byte) (*KeyPair, error) {
	key, pubKey := btcec.PrivKeyFromBytes(btcec.S256(), b)
	return wrapSecp256k1Key(key, pubKey), nil
}

func wrapSecp256k1Key(key *btcec.PrivateKey, pubKey *btcec.PublicKey) *KeyPair {
	k := &KeyPair{
		PrivateKey: key,
		PublicKey:  pubKey,
	}

	// Remove the "04" Suffix byte when computing the address. This byte indicates that it is an uncompressed public key.
	publicKeyBytes := k.PublicKey.SerializeUncompressed()[1:]
	// Take the hash of the public key to generate the address
	hash := sha3.NewLegacyKeccak256()
	hash.Write(publicKeyBytes)
	// Ethereum addresses only use the lower 20 bytes, so toss the rest away
	copy(k.Address[:], hash.Sum(nil)[12:32])

	return k
}
