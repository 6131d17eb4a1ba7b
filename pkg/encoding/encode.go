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

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/coldwallet-labs/eip712-signer/internal/signermsgs"
	"github.com/coldwallet-labs/eip712-signer/pkg/fieldtype"
	"github.com/coldwallet-labs/eip712-signer/pkg/hashwriter"
	"github.com/coldwallet-labs/eip712-signer/pkg/schema"
	"github.com/coldwallet-labs/eip712-signer/pkg/values"
)

// EncodeField writes exactly the EIP-712 encoding of one value into w
// (§4.3). It never builds an intermediate buffer for a struct or array -
// each recursion opens its own hashwriter.Writer and folds that writer's
// digest back into the parent, keeping the working set at O(recursion
// depth) rather than O(message size).
//
// inArray and v4Compat together select the one documented deviation from
// spec-correct EIP-712: MetaMask v4 hashes a struct nested in an array
// instead of inlining its encodeData. The flag is threaded through
// unchanged; it must never influence type-name or schema decisions.
func EncodeField(ctx context.Context, w *hashwriter.Writer, field fieldtype.FieldType, value *values.Tree, types schema.TypeTable, inArray bool, v4Compat bool) error {
	switch field.Kind {
	case fieldtype.KindUint, fieldtype.KindInt, fieldtype.KindBool, fieldtype.KindAddress:
		padded, err := LeftPad32(ctx, "", value.Leaf)
		if err != nil {
			return err
		}
		w.Extend(padded)
		return nil

	case fieldtype.KindBytes:
		if field.SizeBytes != nil {
			padded, err := RightPad32(ctx, "", value.Leaf)
			if err != nil {
				return err
			}
			w.Extend(padded)
			return nil
		}
		h := hashwriter.Keccak256(value.Leaf)
		w.Extend(h[:])
		return nil

	case fieldtype.KindString:
		h := hashwriter.Keccak256(value.Leaf)
		w.Extend(h[:])
		return nil

	case fieldtype.KindArray:
		if value.Elements == nil {
			return i18n.NewError(ctx, signermsgs.MsgDataErrorNotArrayValue, "")
		}
		inner := hashwriter.New()
		for _, elem := range value.Elements {
			if err := EncodeField(ctx, inner, *field.Entry, elem, types, true, v4Compat); err != nil {
				return err
			}
		}
		digest := inner.Digest()
		w.Extend(digest[:])
		return nil

	case fieldtype.KindStruct:
		if value.Members == nil {
			return i18n.NewError(ctx, signermsgs.MsgDataErrorNotStructValue, field.StructName)
		}
		if inArray && !v4Compat {
			// spec-correct EIP-712: inline the struct's encodeData with no outer hash
			return EncodeData(ctx, w, field.StructName, value, types, v4Compat)
		}
		digest, err := HashStruct(ctx, field.StructName, value, types, v4Compat)
		if err != nil {
			return err
		}
		w.Extend(digest[:])
		return nil

	default:
		return i18n.NewError(ctx, signermsgs.MsgUnsupportedType, field)
	}
}

// EncodeData streams the member values of typeName, in declaration order,
// into w - this is the second half of hashStruct, after the typeHash.
func EncodeData(ctx context.Context, w *hashwriter.Writer, typeName string, value *values.Tree, types schema.TypeTable, v4Compat bool) error {
	def, ok := types[typeName]
	if !ok {
		return i18n.NewError(ctx, signermsgs.MsgSchemaErrorUnknownStruct, typeName)
	}
	for _, member := range def {
		child, ok := value.Members[member.Name]
		if !ok {
			return i18n.NewError(ctx, signermsgs.MsgDataErrorNotStructValue, member.Name)
		}
		if err := EncodeField(ctx, w, member.Type, child, types, false, v4Compat); err != nil {
			return err
		}
	}
	return nil
}

// HashStruct computes keccak(typeHash ‖ encodeData(value)) for typeName -
// the EIP-712 hashStruct (§4.8). Both the typeHash and the member encoding
// stream into the same writer; nothing downstream of the type's own name
// and members materialises a concatenated buffer.
func HashStruct(ctx context.Context, typeName string, value *values.Tree, types schema.TypeTable, v4Compat bool) ([32]byte, error) {
	typeEncoded, err := EncodeType(ctx, typeName, types)
	if err != nil {
		return [32]byte{}, err
	}
	typeHash := hashwriter.Keccak256([]byte(typeEncoded))

	w := hashwriter.New()
	w.Extend(typeHash[:])
	if err := EncodeData(ctx, w, typeName, value, types, v4Compat); err != nil {
		return [32]byte{}, err
	}
	digest := w.Digest()
	log.L(ctx).Tracef("hashStruct(%s): %x", typeName, digest)
	return digest, nil
}
