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

package values

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldwallet-labs/eip712-signer/pkg/fieldtype"
)

func TestValidateSizedUintExactLength(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, Validate(ctx, fieldtype.Uint(32), "v", make([]byte, 32)))
	assert.Error(t, Validate(ctx, fieldtype.Uint(32), "v", make([]byte, 31)))
	assert.Error(t, Validate(ctx, fieldtype.Uint(32), "v", make([]byte, 33)))
}

func TestValidateBool(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, Validate(ctx, fieldtype.Bool(), "b", []byte{0x00}))
	assert.NoError(t, Validate(ctx, fieldtype.Bool(), "b", []byte{0x01}))
	assert.Error(t, Validate(ctx, fieldtype.Bool(), "b", []byte{0x02}))
	assert.Error(t, Validate(ctx, fieldtype.Bool(), "b", []byte{0x00, 0x01}))
}

func TestValidateAddress(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, Validate(ctx, fieldtype.Address(), "a", make([]byte, 20)))
	assert.Error(t, Validate(ctx, fieldtype.Address(), "a", make([]byte, 19)))
}

func TestValidateStringBoundaryAndUTF8(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, Validate(ctx, fieldtype.String(), "s", make([]byte, MaxDynamicLeafBytes)))
	assert.Error(t, Validate(ctx, fieldtype.String(), "s", make([]byte, MaxDynamicLeafBytes+1)))
	assert.Error(t, Validate(ctx, fieldtype.String(), "s", []byte{0xff, 0xfe}))
}

func TestValidateSizedBytesExactLength(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, Validate(ctx, fieldtype.FixedBytes(4), "b", make([]byte, 4)))
	assert.Error(t, Validate(ctx, fieldtype.FixedBytes(4), "b", make([]byte, 3)))
}

func TestValidateDynamicBytesMax(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, Validate(ctx, fieldtype.DynamicBytes(), "b", make([]byte, MaxDynamicLeafBytes)))
	assert.Error(t, Validate(ctx, fieldtype.DynamicBytes(), "b", make([]byte, MaxDynamicLeafBytes+1)))
}
