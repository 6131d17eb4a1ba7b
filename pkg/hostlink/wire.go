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

// Package hostlink is the narrow, strictly-alternating request/response
// dialogue the device drives against the mutually distrustful host (§6).
// It is the only thing the schema and value collectors know about the
// host - neither the wire framing nor the physical transport (USB, BLE,
// whatever carries bytes to the host) is this package's concern; that is
// the host transport framing collaborator from §1, out of scope here.
package hostlink

import "context"

// WireDataType is the data_type tag of FieldType on the wire.
type WireDataType int

const (
	WireUint WireDataType = iota + 1
	WireInt
	WireBytes
	WireString
	WireBool
	WireAddress
	WireArray
	WireStruct
)

// WireFieldType mirrors the tagged record on the wire: (data_type, size?,
// struct_name?, entry_type?). Only the fields relevant to DataType are set.
type WireFieldType struct {
	DataType   WireDataType
	Size       *int           // byte size for sized atomics, or element count for fixed arrays
	StructName string         // set iff DataType == WireStruct
	EntryType  *WireFieldType // set iff DataType == WireArray
}

// WireMember is one entry of a StructAck.
type WireMember struct {
	Name string
	Type WireFieldType
}

// StructRequest asks the host to describe a struct by name.
type StructRequest struct {
	Name string
}

// StructAck is the host's description of StructRequest.Name, in declaration order.
type StructAck struct {
	Members []WireMember
}

// ValueRequest asks the host for the value (or, for an array's own path,
// the length) at a member path - a sequence of integer indices. Root index
// 0 selects the domain, root index 1 the primary-type instance.
type ValueRequest struct {
	MemberPath []uint64
}

// ValueAck is the raw bytes the host returned - untrusted until validate() runs.
type ValueAck struct {
	Value []byte
}

// HostLink is the single narrow interface the core uses to talk to the
// host. Calls alternate strictly: one request outstanding at a time, driven
// entirely by the device (§5). Implementations bubble up transport-level
// failures as an error; the core wraps them into a TransportError.
type HostLink interface {
	RequestStruct(ctx context.Context, req StructRequest) (StructAck, error)
	RequestValue(ctx context.Context, req ValueRequest) (ValueAck, error)
}
