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

package fieldtype

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeNameAtomics(t *testing.T) {
	ctx := context.Background()

	n, err := TypeName(ctx, Uint(32))
	assert.NoError(t, err)
	assert.Equal(t, "uint256", n)

	n, err = TypeName(ctx, Int(2))
	assert.NoError(t, err)
	assert.Equal(t, "int16", n)

	n, err = TypeName(ctx, Bool())
	assert.NoError(t, err)
	assert.Equal(t, "bool", n)

	n, err = TypeName(ctx, Address())
	assert.NoError(t, err)
	assert.Equal(t, "address", n)

	n, err = TypeName(ctx, String())
	assert.NoError(t, err)
	assert.Equal(t, "string", n)

	n, err = TypeName(ctx, DynamicBytes())
	assert.NoError(t, err)
	assert.Equal(t, "bytes", n)

	n, err = TypeName(ctx, FixedBytes(32))
	assert.NoError(t, err)
	assert.Equal(t, "bytes32", n)

	n, err = TypeName(ctx, Struct("Person"))
	assert.NoError(t, err)
	assert.Equal(t, "Person", n)
}

func TestTypeNameArrays(t *testing.T) {
	ctx := context.Background()

	n, err := TypeName(ctx, Array(Struct("Person"), nil))
	assert.NoError(t, err)
	assert.Equal(t, "Person[]", n)

	fixed := 3
	n, err = TypeName(ctx, Array(Uint(32), &fixed))
	assert.NoError(t, err)
	assert.Equal(t, "uint256[3]", n)
}

func TestTypeNameUnsupportedKind(t *testing.T) {
	_, err := TypeName(context.Background(), FieldType{Kind: 99})
	assert.Error(t, err)
}
