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
	"strconv"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/coldwallet-labs/eip712-signer/internal/signermsgs"
	"github.com/coldwallet-labs/eip712-signer/pkg/display"
	"github.com/coldwallet-labs/eip712-signer/pkg/fieldtype"
	"github.com/coldwallet-labs/eip712-signer/pkg/schema"
	"github.com/coldwallet-labs/eip712-signer/pkg/values"
)

// flattenStruct walks a collected struct value alongside its StructDef, in
// declaration order, and decodes every leaf it reaches - the same
// traversal order §5 requires the value collector to have used to request
// it in the first place, so pagination always matches request order.
func flattenStruct(ctx context.Context, prefix []string, typeName string, tree *values.Tree, types schema.TypeTable) ([]FieldView, error) {
	def, ok := types[typeName]
	if !ok {
		return nil, i18n.NewError(ctx, signermsgs.MsgSchemaErrorUnknownStruct, typeName)
	}
	var out []FieldView
	for _, member := range def {
		child, ok := tree.Members[member.Name]
		if !ok {
			return nil, i18n.NewError(ctx, signermsgs.MsgDataErrorNotStructValue, member.Name)
		}
		views, err := flattenField(ctx, appendName(prefix, member.Name), member.Type, child, types)
		if err != nil {
			return nil, err
		}
		out = append(out, views...)
	}
	return out, nil
}

func flattenField(ctx context.Context, path []string, field fieldtype.FieldType, tree *values.Tree, types schema.TypeTable) ([]FieldView, error) {
	switch field.Kind {
	case fieldtype.KindStruct:
		return flattenStruct(ctx, path, field.StructName, tree, types)
	case fieldtype.KindArray:
		var out []FieldView
		for i, elem := range tree.Elements {
			views, err := flattenField(ctx, appendName(path, "["+strconv.Itoa(i)+"]"), *field.Entry, elem, types)
			if err != nil {
				return nil, err
			}
			out = append(out, views...)
		}
		return out, nil
	default:
		typeName, err := fieldtype.TypeName(ctx, field)
		if err != nil {
			return nil, err
		}
		s, err := display.Decode(ctx, typeName, tree.Leaf)
		if err != nil {
			return nil, err
		}
		return []FieldView{{Path: path, Value: s}}, nil
	}
}

func appendName(prefix []string, name string) []string {
	next := make([]string, len(prefix)+1)
	copy(next, prefix)
	next[len(prefix)] = name
	return next
}
