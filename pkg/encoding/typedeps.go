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
	"sort"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/coldwallet-labs/eip712-signer/internal/signermsgs"
	"github.com/coldwallet-labs/eip712-signer/pkg/fieldtype"
	"github.com/coldwallet-labs/eip712-signer/pkg/schema"
)

// baseTypeName strips any array suffix - "Mail[]", "Mail[3][]" all collapse
// to "Mail" for dependency purposes, per §4.7.
func baseTypeName(name string) string {
	if i := strings.Index(name, "["); i >= 0 {
		return name[:i]
	}
	return name
}

// FindTypedDependencies collects the closed set of struct names reachable
// from name (name included), in first-visit order, stopping at anything
// already in acc. It does not fail on an array suffix - those collapse to
// their base type - but a name that is not in types after stripping is
// simply not a struct dependency (it's an elemental type), not an error.
func FindTypedDependencies(name string, types schema.TypeTable, acc []string) []string {
	base := baseTypeName(name)
	for _, seen := range acc {
		if seen == base {
			return acc
		}
	}
	def, ok := types[base]
	if !ok {
		return acc
	}
	acc = append(acc, base)
	for _, member := range def {
		acc = findMemberDependencies(member.Type, types, acc)
	}
	return acc
}

func findMemberDependencies(f fieldtype.FieldType, types schema.TypeTable, acc []string) []string {
	for f.Kind == fieldtype.KindArray {
		f = *f.Entry
	}
	if f.Kind != fieldtype.KindStruct {
		return acc
	}
	return FindTypedDependencies(f.StructName, types, acc)
}

// EncodeType produces the UTF-8 encodeType string for primary: primary's
// own member list first, then every other referenced struct sorted
// lexicographically by name (§4.7). Missing dependencies (referenced by a
// member but absent from types) are a SchemaError, not a silent skip.
func EncodeType(ctx context.Context, primary string, types schema.TypeTable) (string, error) {
	if _, ok := types[primary]; !ok {
		return "", i18n.NewError(ctx, signermsgs.MsgSchemaErrorUnknownStruct, primary)
	}
	deps := FindTypedDependencies(primary, types, nil)
	if err := checkDependenciesResolved(ctx, primary, types); err != nil {
		return "", err
	}

	rest := make([]string, 0, len(deps))
	for _, d := range deps {
		if d != primary {
			rest = append(rest, d)
		}
	}
	sort.Strings(rest)

	buf := new(strings.Builder)
	if err := writeTypeEncoding(ctx, buf, primary, types[primary]); err != nil {
		return "", err
	}
	for _, d := range rest {
		if err := writeTypeEncoding(ctx, buf, d, types[d]); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func writeTypeEncoding(ctx context.Context, buf *strings.Builder, name string, def schema.StructDef) error {
	buf.WriteString(name)
	buf.WriteByte('(')
	for i, m := range def {
		if i > 0 {
			buf.WriteByte(',')
		}
		typeName, err := fieldtype.TypeName(ctx, m.Type)
		if err != nil {
			return err
		}
		buf.WriteString(typeName)
		buf.WriteByte(' ')
		buf.WriteString(m.Name)
	}
	buf.WriteByte(')')
	return nil
}

// checkDependenciesResolved walks every member of every struct reachable
// from primary and confirms any struct-shaped member actually resolved
// into types - catching the case where a schema references a struct the
// host never delivered.
func checkDependenciesResolved(ctx context.Context, primary string, types schema.TypeTable) error {
	visited := map[string]bool{}
	var walk func(name string) error
	walk = func(name string) error {
		name = baseTypeName(name)
		if visited[name] {
			return nil
		}
		visited[name] = true
		def, ok := types[name]
		if !ok {
			return i18n.NewError(ctx, signermsgs.MsgSchemaErrorUnknownStruct, name)
		}
		for _, m := range def {
			f := m.Type
			for f.Kind == fieldtype.KindArray {
				f = *f.Entry
			}
			if f.Kind == fieldtype.KindStruct {
				if err := walk(f.StructName); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk(primary)
}
