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

// Package values is the path-addressed pull protocol (C6) that streams
// field values on demand, plus the per-field validator (C5) that runs
// before any collected byte string is trusted.
package values

import (
	"context"
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/coldwallet-labs/eip712-signer/internal/signermsgs"
	"github.com/coldwallet-labs/eip712-signer/pkg/fieldtype"
	"github.com/coldwallet-labs/eip712-signer/pkg/hostlink"
	"github.com/coldwallet-labs/eip712-signer/pkg/schema"
)

// Limits are device-side resource guards, not protocol semantics - §4.6
// says array length has "no length limit beyond the transport's". A
// MaxArrayLength of 0 means unbounded.
type Limits struct {
	MaxArrayLength uint64
}

// CollectValues drives ValueRequest/ValueAck for typeName's members,
// recursing into nested structs and arrays, starting at path. Root index 0
// addresses the domain, root index 1 the primary-type instance (the
// orchestrator supplies that first path segment).
func CollectValues(ctx context.Context, link hostlink.HostLink, typeName string, types schema.TypeTable, path []uint64, limits Limits) (*Tree, error) {
	def, ok := types[typeName]
	if !ok {
		return nil, i18n.NewError(ctx, signermsgs.MsgSchemaErrorUnknownStruct, typeName)
	}

	out := newStruct()
	for i, member := range def {
		memberPath := appendPath(path, uint64(i))
		child, err := collectMember(ctx, link, member, memberPath, types, limits)
		if err != nil {
			return nil, err
		}
		out.Members[member.Name] = child
	}
	return out, nil
}

func collectMember(ctx context.Context, link hostlink.HostLink, member schema.StructMember, memberPath []uint64, types schema.TypeTable, limits Limits) (*Tree, error) {
	switch member.Type.Kind {
	case fieldtype.KindStruct:
		return CollectValues(ctx, link, member.Type.StructName, types, memberPath, limits)

	case fieldtype.KindArray:
		if member.Type.Entry.Kind == fieldtype.KindArray {
			return nil, i18n.NewError(ctx, signermsgs.MsgDataErrorNestedArray, member.Name)
		}
		length, err := requestArrayLength(ctx, link, memberPath, limits)
		if err != nil {
			return nil, err
		}
		out := newArray()
		for i := uint64(0); i < length; i++ {
			elemPath := appendPath(memberPath, i)
			var elem *Tree
			if member.Type.Entry.Kind == fieldtype.KindStruct {
				elem, err = CollectValues(ctx, link, member.Type.Entry.StructName, types, elemPath, limits)
			} else {
				elem, err = collectLeaf(ctx, link, *member.Type.Entry, member.Name, elemPath)
			}
			if err != nil {
				return nil, err
			}
			out.Elements = append(out.Elements, elem)
		}
		return out, nil

	default:
		return collectLeaf(ctx, link, member.Type, member.Name, memberPath)
	}
}

func collectLeaf(ctx context.Context, link hostlink.HostLink, field fieldtype.FieldType, name string, path []uint64) (*Tree, error) {
	ack, err := link.RequestValue(ctx, hostlink.ValueRequest{MemberPath: path})
	if err != nil {
		return nil, i18n.NewError(ctx, signermsgs.MsgTransportFailed, err)
	}
	if err := Validate(ctx, field, name, ack.Value); err != nil {
		return nil, err
	}
	return newLeaf(ack.Value), nil
}

func requestArrayLength(ctx context.Context, link hostlink.HostLink, path []uint64, limits Limits) (uint64, error) {
	ack, err := link.RequestValue(ctx, hostlink.ValueRequest{MemberPath: path})
	if err != nil {
		return 0, i18n.NewError(ctx, signermsgs.MsgTransportFailed, err)
	}
	length := new(big.Int).SetBytes(ack.Value)
	if limits.MaxArrayLength > 0 && length.Cmp(new(big.Int).SetUint64(limits.MaxArrayLength)) > 0 {
		return 0, i18n.NewError(ctx, signermsgs.MsgDataErrorTooLong, "array length", length, limits.MaxArrayLength)
	}
	if !length.IsUint64() {
		return 0, i18n.NewError(ctx, signermsgs.MsgDataErrorTooLong, "array length", len(ack.Value), limits.MaxArrayLength)
	}
	return length.Uint64(), nil
}

func appendPath(path []uint64, idx uint64) []uint64 {
	next := make([]uint64, len(path)+1)
	copy(next, path)
	next[len(path)] = idx
	return next
}
