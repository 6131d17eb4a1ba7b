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
	"unicode/utf8"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/coldwallet-labs/eip712-signer/internal/signermsgs"
	"github.com/coldwallet-labs/eip712-signer/pkg/fieldtype"
)

// MaxDynamicLeafBytes is the §3 invariant: "any dynamic leaf is at most
// 1024 bytes." It is a constant, not a deviceconfig knob, because it is a
// protocol invariant the encoder and the display collaborator both rely
// on. deviceconfig.CollectorMaxDynamicLeafBytes declares the same value as
// a configuration default, but Validate does not read it.
const MaxDynamicLeafBytes = 1024

// Validate checks a raw value pulled from the host against field's declared
// constraint (§4.5). It never mutates or repairs bytes - a violation is
// fatal to the session (§7 DataError), carrying name for diagnosis.
func Validate(ctx context.Context, field fieldtype.FieldType, name string, b []byte) error {
	switch field.Kind {
	case fieldtype.KindUint, fieldtype.KindInt:
		if len(b) != *field.SizeBytes {
			return i18n.NewError(ctx, signermsgs.MsgDataErrorLength, name, len(b), *field.SizeBytes)
		}
		return nil
	case fieldtype.KindBool:
		if len(b) != 1 || (b[0] != 0x00 && b[0] != 0x01) {
			return i18n.NewError(ctx, signermsgs.MsgDataErrorBadBool, name, b)
		}
		return nil
	case fieldtype.KindAddress:
		if len(b) != 20 {
			return i18n.NewError(ctx, signermsgs.MsgDataErrorBadAddress, name, len(b))
		}
		return nil
	case fieldtype.KindBytes:
		if field.SizeBytes != nil {
			if len(b) != *field.SizeBytes {
				return i18n.NewError(ctx, signermsgs.MsgDataErrorLength, name, len(b), *field.SizeBytes)
			}
			return nil
		}
		if len(b) > MaxDynamicLeafBytes {
			return i18n.NewError(ctx, signermsgs.MsgDataErrorTooLong, name, len(b), MaxDynamicLeafBytes)
		}
		return nil
	case fieldtype.KindString:
		if len(b) > MaxDynamicLeafBytes {
			return i18n.NewError(ctx, signermsgs.MsgDataErrorTooLong, name, len(b), MaxDynamicLeafBytes)
		}
		if !utf8.Valid(b) {
			return i18n.NewError(ctx, signermsgs.MsgDataErrorBadUTF8, name, b)
		}
		return nil
	default:
		return i18n.NewError(ctx, signermsgs.MsgUnsupportedType, field)
	}
}
