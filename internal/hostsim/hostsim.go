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

// Package hostsim is an in-memory stand-in for the host transport framing
// collaborator (§1): it answers StructRequest/ValueRequest the way a real
// host would, over a fixed schema and message baked in at construction. It
// exists so cmd/eip712signer has something to drive end to end, and so the
// signing orchestrator can be exercised without a real USB/BLE host on the
// other end of the wire.
package hostsim

import (
	"context"
	"fmt"

	"github.com/coldwallet-labs/eip712-signer/pkg/hostlink"
)

// node is the host-side mirror of values.Tree, addressed the same way:
// exactly one of leaf/members/elements is populated.
type node struct {
	leaf     []byte
	members  []*node
	elements []*node
}

func leaf(b []byte) *node       { return &node{leaf: b} }
func structNode(m ...*node) *node { return &node{members: m} }
func arrayNode(e ...*node) *node { return &node{elements: e} }

// Host is a fixed (schema, domain value, message value) triple served over
// hostlink.HostLink. It is not thread-safe and not meant to outlive one
// simulated signing session.
type Host struct {
	types   map[string]hostlink.StructAck
	domain  *node
	message *node
}

var _ hostlink.HostLink = (*Host)(nil)

func (h *Host) RequestStruct(_ context.Context, req hostlink.StructRequest) (hostlink.StructAck, error) {
	ack, ok := h.types[req.Name]
	if !ok {
		return hostlink.StructAck{}, fmt.Errorf("hostsim: no struct named %q", req.Name)
	}
	return ack, nil
}

func (h *Host) RequestValue(_ context.Context, req hostlink.ValueRequest) (hostlink.ValueAck, error) {
	if len(req.MemberPath) == 0 {
		return hostlink.ValueAck{}, fmt.Errorf("hostsim: empty member path")
	}
	root := h.domain
	if req.MemberPath[0] == 1 {
		root = h.message
	} else if req.MemberPath[0] != 0 {
		return hostlink.ValueAck{}, fmt.Errorf("hostsim: unknown root selector %d", req.MemberPath[0])
	}

	n := root
	for _, idx := range req.MemberPath[1:] {
		switch {
		case n.members != nil:
			if int(idx) >= len(n.members) {
				return hostlink.ValueAck{}, fmt.Errorf("hostsim: member ordinal %d out of range", idx)
			}
			n = n.members[idx]
		case n.elements != nil:
			if int(idx) >= len(n.elements) {
				return hostlink.ValueAck{}, fmt.Errorf("hostsim: element index %d out of range", idx)
			}
			n = n.elements[idx]
		default:
			return hostlink.ValueAck{}, fmt.Errorf("hostsim: path descends into a leaf")
		}
	}

	if n.elements != nil {
		// the request addressed the array itself - answer with its length
		return hostlink.ValueAck{Value: bigEndianLen(len(n.elements))}, nil
	}
	if n.members != nil {
		return hostlink.ValueAck{}, fmt.Errorf("hostsim: path addresses a struct, not a leaf")
	}
	return hostlink.ValueAck{Value: n.leaf}, nil
}

func bigEndianLen(n int) []byte {
	if n == 0 {
		return []byte{0x00}
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte(n & 0xff)}, b...)
		n >>= 8
	}
	return b
}
