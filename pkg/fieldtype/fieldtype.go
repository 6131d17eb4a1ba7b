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

// Package fieldtype is the tagged representation of an EIP-712 field type,
// as delivered over the wire by collectTypes (see schema.StructMember).
// It is pure data - the only behaviour it owns is deriving the canonical
// EIP-712 type name used by encodeType.
package fieldtype

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/coldwallet-labs/eip712-signer/internal/signermsgs"
)

// Kind is the tag of the FieldType variant
type Kind int

const (
	KindUint Kind = iota + 1
	KindInt
	KindBool
	KindAddress
	KindBytes
	KindString
	KindArray
	KindStruct
)

// FieldType is the tagged variant from §3 of the design. Only the fields
// relevant to the Kind are populated; callers must not infer absence of
// validation from a zero value they didn't check Kind for first.
type FieldType struct {
	Kind Kind

	// SizeBytes is populated for Uint/Int (1..32) and for a sized Bytes (1..32).
	// Nil means "dynamic" for Bytes, and is never nil for Uint/Int.
	SizeBytes *int

	// StructName is populated iff Kind == KindStruct.
	StructName string

	// Entry is populated iff Kind == KindArray - the element type.
	Entry *FieldType
	// FixedLen is populated iff Kind == KindArray and the array has a fixed length.
	FixedLen *int
}

func Uint(sizeBytes int) FieldType  { return FieldType{Kind: KindUint, SizeBytes: &sizeBytes} }
func Int(sizeBytes int) FieldType   { return FieldType{Kind: KindInt, SizeBytes: &sizeBytes} }
func Bool() FieldType               { return FieldType{Kind: KindBool} }
func Address() FieldType            { return FieldType{Kind: KindAddress} }
func String() FieldType             { return FieldType{Kind: KindString} }
func Struct(name string) FieldType  { return FieldType{Kind: KindStruct, StructName: name} }

func FixedBytes(sizeBytes int) FieldType {
	return FieldType{Kind: KindBytes, SizeBytes: &sizeBytes}
}

func DynamicBytes() FieldType {
	return FieldType{Kind: KindBytes}
}

func Array(entry FieldType, fixedLen *int) FieldType {
	e := entry
	return FieldType{Kind: KindArray, Entry: &e, FixedLen: fixedLen}
}

// TypeName derives the canonical EIP-712 type name for this field, per §4.1.
func TypeName(ctx context.Context, f FieldType) (string, error) {
	switch f.Kind {
	case KindUint:
		return "uint" + strconv.Itoa(*f.SizeBytes*8), nil
	case KindInt:
		return "int" + strconv.Itoa(*f.SizeBytes*8), nil
	case KindBool:
		return "bool", nil
	case KindAddress:
		return "address", nil
	case KindBytes:
		if f.SizeBytes == nil {
			return "bytes", nil
		}
		return "bytes" + strconv.Itoa(*f.SizeBytes), nil
	case KindString:
		return "string", nil
	case KindArray:
		entryName, err := TypeName(ctx, *f.Entry)
		if err != nil {
			return "", err
		}
		if f.FixedLen != nil {
			return entryName + "[" + strconv.Itoa(*f.FixedLen) + "]", nil
		}
		return entryName + "[]", nil
	case KindStruct:
		return f.StructName, nil
	default:
		return "", i18n.NewError(ctx, signermsgs.MsgUnsupportedType, fmt.Sprintf("%+v", f))
	}
}
