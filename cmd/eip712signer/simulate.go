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

package main

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldwallet-labs/eip712-signer/internal/hostsim"
	"github.com/coldwallet-labs/eip712-signer/pkg/secp256k1"
	"github.com/coldwallet-labs/eip712-signer/pkg/signing"
	"github.com/coldwallet-labs/eip712-signer/pkg/values"
)

// consoleConfirmer is a minimal stand-in for the real UI confirmation
// collaborator (§1): it prints every page it would show an operator and
// auto-confirms, so `simulate` can run end to end without a device
// screen. A production embedder replaces this wholesale.
type consoleConfirmer struct{}

func (consoleConfirmer) ConfirmDomainBrief(_ context.Context, summary []signing.FieldView) (bool, error) {
	fmt.Println("--- domain brief ---")
	for _, f := range summary {
		fmt.Printf("  %v = %s\n", f.Path, f.Value)
	}
	return true, nil
}

func (consoleConfirmer) ConfirmDomainFull(_ context.Context, fields []signing.FieldView) error {
	fmt.Println("--- domain full (confirmed) ---")
	return nil
}

func (consoleConfirmer) ConfirmMessageBrief(_ context.Context, previewFieldNames []string) (bool, error) {
	fmt.Printf("--- message brief: %v ---\n", previewFieldNames)
	return true, nil
}

func (consoleConfirmer) ConfirmMessageFull(_ context.Context, fields []signing.FieldView) error {
	fmt.Println("--- message full ---")
	for _, f := range fields {
		fmt.Printf("  %v = %s\n", f.Path, f.Value)
	}
	fmt.Println("--- confirmed ---")
	return nil
}

func (consoleConfirmer) ConfirmDigest(_ context.Context, msgHashHex string) error {
	fmt.Printf("--- confirming raw message hash %s ---\n", msgHashHex)
	return nil
}

// sessionKeychain hands back one generated key regardless of the
// requested derivation path - a real Keychain walks addressN through
// BIP-32; that is explicitly the external collaborator this simulator
// stands in for (§1).
type sessionKeychain struct {
	key *secp256k1.KeyPair
}

func (k *sessionKeychain) DeriveSigner(_ context.Context, _ []uint32) (signing.Signer, [20]byte, error) {
	return k.key, k.key.AddressBytes(), nil
}

func simulateCommand() *cobra.Command {
	var v4Compat bool
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a sample EIP-712 signing session against an in-memory host",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel, err := bootstrap()
			if err != nil {
				return err
			}
			defer cancel()

			key, err := secp256k1.GenerateSecp256k1KeyPair()
			if err != nil {
				return err
			}

			result, err := signing.Sign(ctx, hostsim.NewMailHost(), &sessionKeychain{key: key}, consoleConfirmer{}, values.Limits{MaxArrayLength: 65536}, signing.Request{
				AddressN:         []uint32{0x8000002C, 0x8000003C, 0x80000000, 0, 0},
				PrimaryType:      "Mail",
				MetamaskV4Compat: v4Compat,
			})
			if err != nil {
				return err
			}

			fmt.Printf("address:   0x%s\n", hex.EncodeToString(result.Address[:]))
			fmt.Printf("signature: r=0x%s s=0x%s v=%d\n", hex.EncodeToString(result.R[:]), hex.EncodeToString(result.S[:]), result.V)
			return nil
		},
	}
	cmd.Flags().BoolVar(&v4Compat, "v4-compat", true, "apply the MetaMask v4 array-of-struct hashing variant")
	return cmd
}
