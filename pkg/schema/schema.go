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

// Package schema is the recursive pull protocol (C4) that materialises a
// closed set of struct definitions from the host. References between
// structs are by name, not by pointer - the TypeTable is an acyclic map
// keyed by name, and the value tree later borrows those same names. An
// implementer is tempted to link struct definitions directly to each
// other; resist it, the textual name is the stable identifier throughout
// a session.
package schema

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/coldwallet-labs/eip712-signer/internal/signermsgs"
	"github.com/coldwallet-labs/eip712-signer/pkg/fieldtype"
	"github.com/coldwallet-labs/eip712-signer/pkg/hostlink"
)

// StructMember is one (name, type) pair of a StructDef. Order is load-bearing.
type StructMember struct {
	Name string
	Type fieldtype.FieldType
}

// StructDef is the ordered member list the host delivered for one struct name.
type StructDef []StructMember

// TypeTable maps struct name to StructDef. Key uniqueness and insertion
// order of the map itself are not meaningful - encodeType imposes its own
// lexicographic order over dependency names (see pkg/encoding).
type TypeTable map[string]StructDef

// EIP712DomainName is the one well-known struct name every signing session collects.
const EIP712DomainName = "EIP712Domain"

// MaxDepth bounds recursion independent of the cycle check, guarding
// against a host that keeps inventing new struct names along one chain.
const MaxDepth = 64

// CollectTypes drives StructRequest/StructAck for name and everything it
// transitively references, inserting each into table. Calling it twice
// with the same table (once for "EIP712Domain", once for the primary type)
// is how the orchestrator shares one closed type set across both halves
// of the signing payload.
func CollectTypes(ctx context.Context, link hostlink.HostLink, name string, table TypeTable) error {
	return collectTypes(ctx, link, name, table, 0)
}

func collectTypes(ctx context.Context, link hostlink.HostLink, name string, table TypeTable, depth int) error {
	if _, already := table[name]; already {
		// cycle/diamond suppression - the primary termination check; the
		// MaxDepth guard below is the second line of defence
		return nil
	}
	if depth > MaxDepth {
		return i18n.NewError(ctx, signermsgs.MsgSchemaErrorUnknownStruct, name)
	}

	ack, err := link.RequestStruct(ctx, hostlink.StructRequest{Name: name})
	if err != nil {
		return i18n.NewError(ctx, signermsgs.MsgTransportFailed, err)
	}

	def := make(StructDef, len(ack.Members))
	for i, m := range ack.Members {
		ft, err := decodeWireFieldType(ctx, m.Type)
		if err != nil {
			return err
		}
		def[i] = StructMember{Name: m.Name, Type: ft}
	}
	table[name] = def
	log.L(ctx).Debugf("collectTypes: %s (%d members)", name, len(def))

	for _, m := range def {
		sub := structDependency(m.Type)
		if sub == "" {
			continue
		}
		if _, already := table[sub]; already {
			continue
		}
		if err := collectTypes(ctx, link, sub, table, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// structDependency returns the struct name a member's type transitively
// references, descending through any chain of array entry types, or "" if
// the member is not struct-shaped at all.
func structDependency(f fieldtype.FieldType) string {
	for f.Kind == fieldtype.KindArray {
		f = *f.Entry
	}
	if f.Kind == fieldtype.KindStruct {
		return f.StructName
	}
	return ""
}

func decodeWireFieldType(ctx context.Context, w hostlink.WireFieldType) (fieldtype.FieldType, error) {
	switch w.DataType {
	case hostlink.WireUint:
		if err := checkSize(ctx, w.Size); err != nil {
			return fieldtype.FieldType{}, err
		}
		return fieldtype.Uint(*w.Size), nil
	case hostlink.WireInt:
		if err := checkSize(ctx, w.Size); err != nil {
			return fieldtype.FieldType{}, err
		}
		return fieldtype.Int(*w.Size), nil
	case hostlink.WireBool:
		return fieldtype.Bool(), nil
	case hostlink.WireAddress:
		return fieldtype.Address(), nil
	case hostlink.WireBytes:
		if w.Size == nil {
			return fieldtype.DynamicBytes(), nil
		}
		if err := checkSize(ctx, w.Size); err != nil {
			return fieldtype.FieldType{}, err
		}
		return fieldtype.FixedBytes(*w.Size), nil
	case hostlink.WireString:
		return fieldtype.String(), nil
	case hostlink.WireStruct:
		return fieldtype.Struct(w.StructName), nil
	case hostlink.WireArray:
		if w.EntryType == nil {
			return fieldtype.FieldType{}, i18n.NewError(ctx, signermsgs.MsgUnsupportedDataType, w.DataType)
		}
		entry, err := decodeWireFieldType(ctx, *w.EntryType)
		if err != nil {
			return fieldtype.FieldType{}, err
		}
		return fieldtype.Array(entry, w.Size), nil
	default:
		return fieldtype.FieldType{}, i18n.NewError(ctx, signermsgs.MsgUnsupportedDataType, w.DataType)
	}
}

func checkSize(ctx context.Context, size *int) error {
	if size == nil || *size < 1 || *size > 32 {
		got := -1
		if size != nil {
			got = *size
		}
		return i18n.NewError(ctx, signermsgs.MsgInvalidFieldSize, "size", got)
	}
	return nil
}
