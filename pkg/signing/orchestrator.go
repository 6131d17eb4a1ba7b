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

package signing

import (
	"context"
	"encoding/hex"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/coldwallet-labs/eip712-signer/internal/signermsgs"
	"github.com/coldwallet-labs/eip712-signer/pkg/encoding"
	"github.com/coldwallet-labs/eip712-signer/pkg/hashwriter"
	"github.com/coldwallet-labs/eip712-signer/pkg/hostlink"
	"github.com/coldwallet-labs/eip712-signer/pkg/schema"
	"github.com/coldwallet-labs/eip712-signer/pkg/values"
)

// Request is a single signing session's inbound parameters (§6).
type Request struct {
	AddressN         []uint32
	PrimaryType      string
	MetamaskV4Compat bool
}

// Result is the outbound signing response (§6): a 20-byte address and a
// 65-byte r‖s‖v signature, v in the canonical {0,1} range.
type Result struct {
	Address [20]byte
	R, S    [32]byte
	V       byte
}

// Sign runs the full C9 flow: collect both type tables, collect both
// value trees, interleave the confirmer at the points §4.9 fixes, compute
// the final digest, derive the key, and sign. Any cancellation at any UI
// or transport step aborts with no partial result - the TypeTable and
// ValueTree built along the way live only on this call's stack and are
// discarded with it.
func Sign(ctx context.Context, link hostlink.HostLink, keychain Keychain, confirmer Confirmer, limits values.Limits, req Request) (*Result, error) {
	types := schema.TypeTable{}

	if err := schema.CollectTypes(ctx, link, schema.EIP712DomainName, types); err != nil {
		return nil, err
	}
	if err := schema.CollectTypes(ctx, link, req.PrimaryType, types); err != nil {
		return nil, err
	}

	domainValues, err := values.CollectValues(ctx, link, schema.EIP712DomainName, types, []uint64{0}, limits)
	if err != nil {
		return nil, err
	}
	messageValues, err := values.CollectValues(ctx, link, req.PrimaryType, types, []uint64{1}, limits)
	if err != nil {
		return nil, err
	}

	if err := confirmDomain(ctx, confirmer, domainValues, types); err != nil {
		return nil, err
	}
	sawFullMessage, err := confirmMessage(ctx, confirmer, req.PrimaryType, messageValues, types)
	if err != nil {
		return nil, err
	}

	domainSep, err := encoding.HashStruct(ctx, schema.EIP712DomainName, domainValues, types, req.MetamaskV4Compat)
	if err != nil {
		return nil, err
	}
	msgHash, err := encoding.HashStruct(ctx, req.PrimaryType, messageValues, types, req.MetamaskV4Compat)
	if err != nil {
		return nil, err
	}

	if !sawFullMessage {
		if err := confirmer.ConfirmDigest(ctx, "0x"+hex.EncodeToString(msgHash[:])); err != nil {
			return nil, i18n.NewError(ctx, signermsgs.MsgCancelledByOperator, "digest confirmation")
		}
	}

	digest := finalDigest(domainSep, msgHash)
	log.L(ctx).Debugf("signing final digest: %x", digest)

	signer, address, err := keychain.DeriveSigner(ctx, req.AddressN)
	if err != nil {
		return nil, err
	}
	sig, err := signer.SignDigest(ctx, digest)
	if err != nil {
		return nil, err
	}

	out := &Result{Address: address}
	sig.R.FillBytes(out.R[:])
	sig.S.FillBytes(out.S[:])
	out.V = byte(sig.V.Int64())
	return out, nil
}

func confirmDomain(ctx context.Context, confirmer Confirmer, domainValues *values.Tree, types schema.TypeTable) error {
	summary, err := flattenStruct(ctx, nil, schema.EIP712DomainName, domainValues, types)
	if err != nil {
		return err
	}
	viewFull, err := confirmer.ConfirmDomainBrief(ctx, summary)
	if err != nil {
		return i18n.NewError(ctx, signermsgs.MsgCancelledByOperator, "domain brief")
	}
	if viewFull {
		if err := confirmer.ConfirmDomainFull(ctx, summary); err != nil {
			return i18n.NewError(ctx, signermsgs.MsgCancelledByOperator, "domain full view")
		}
	}
	return nil
}

// confirmMessage returns whether the operator ended up viewing the full
// message (so the caller knows whether the digest fallback confirm is
// still required per step 9 of §4.9).
func confirmMessage(ctx context.Context, confirmer Confirmer, primaryType string, messageValues *values.Tree, types schema.TypeTable) (bool, error) {
	def, ok := types[primaryType]
	if !ok {
		return false, i18n.NewError(ctx, signermsgs.MsgSchemaErrorUnknownStruct, primaryType)
	}
	preview := make([]string, 0, 3)
	for i, m := range def {
		if i >= 3 {
			break
		}
		preview = append(preview, m.Name)
	}
	viewFull, err := confirmer.ConfirmMessageBrief(ctx, preview)
	if err != nil {
		return false, i18n.NewError(ctx, signermsgs.MsgCancelledByOperator, "message brief")
	}
	if !viewFull {
		return false, nil
	}
	fields, err := flattenStruct(ctx, nil, primaryType, messageValues, types)
	if err != nil {
		return false, err
	}
	if err := confirmer.ConfirmMessageFull(ctx, fields); err != nil {
		return false, i18n.NewError(ctx, signermsgs.MsgCancelledByOperator, "message full view")
	}
	return true, nil
}

// finalDigest computes keccak256(0x19 ‖ 0x01 ‖ domainSep ‖ msgHash) (§6) -
// the one place outside hashStruct itself that feeds the hash writer.
func finalDigest(domainSep, msgHash [32]byte) [32]byte {
	w := hashwriter.New()
	w.Extend([]byte{0x19, 0x01})
	w.Extend(domainSep[:])
	w.Extend(msgHash[:])
	return w.Digest()
}
