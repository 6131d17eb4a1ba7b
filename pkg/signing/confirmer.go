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

// Package signing is the top-level orchestrator (C9): it drives the
// schema and value collectors, interleaves the UI confirmation
// collaborator at the points the design fixes, folds the result into the
// final EIP-712 digest, and hands that digest to the signer collaborator.
// Everything it calls - HostLink, Confirmer, Keychain - is somebody else's
// concrete implementation; this package only sequences them.
package signing

import "context"

// FieldView is what the UI is shown for one collected leaf during
// pagination - the member path and its display-ready string, already run
// through the decoder (C10). The orchestrator never hands the UI raw bytes.
type FieldView struct {
	Path  []string
	Value string
}

// Confirmer is the UI confirmation collaborator (§1, out of scope beyond
// this interface): pagination, hold-to-confirm, and operator opt-outs all
// live on the other side of it.
type Confirmer interface {
	// ConfirmDomainBrief shows a one-line domain summary and asks whether
	// the operator wants the full field-by-field domain view.
	ConfirmDomainBrief(ctx context.Context, summary []FieldView) (viewFull bool, err error)
	// ConfirmDomainFull paginates every domain field with hold-to-confirm.
	ConfirmDomainFull(ctx context.Context, fields []FieldView) error
	// ConfirmMessageBrief shows up to three field names from the primary
	// type and asks whether the operator wants the recursive message view.
	ConfirmMessageBrief(ctx context.Context, previewFieldNames []string) (viewFull bool, err error)
	// ConfirmMessageFull recursively paginates the message tree.
	ConfirmMessageFull(ctx context.Context, fields []FieldView) error
	// ConfirmDigest is the fallback hold-to-confirm on the raw message hash
	// hex, required only when the operator declined ConfirmMessageBrief.
	ConfirmDigest(ctx context.Context, msgHashHex string) error
}

// Keychain is the derivation collaborator (§1): it owns BIP-32 path
// walking and never hands the orchestrator a private key, only something
// that can sign a digest, plus the address that key resolves to (needed
// for the signing response, §6).
type Keychain interface {
	DeriveSigner(ctx context.Context, addressN []uint32) (signer Signer, address [20]byte, err error)
}
