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

package signermsgs

import "github.com/hyperledger/firefly-common/pkg/i18n"

var ffe = i18n.FFE

//revive:disable
var (
	// DataError - validation failure against a FieldType's declared constraint
	MsgDataErrorLength         = ffe("FF71200", "Field '%s' has invalid length %d, expected %d")
	MsgDataErrorTooLong        = ffe("FF71201", "Field '%s' has length %d, exceeds the maximum of %d bytes")
	MsgDataErrorBadBool        = ffe("FF71202", "Field '%s' is not a valid bool byte: %x")
	MsgDataErrorBadAddress     = ffe("FF71203", "Field '%s' is not a 20 byte address (len=%d)")
	MsgDataErrorBadUTF8        = ffe("FF71204", "Field '%s' is not valid UTF-8: %s")
	MsgDataErrorNestedArray    = ffe("FF71205", "Field '%s' is an array of arrays, which is not supported")
	MsgDataErrorNotStructValue = ffe("FF71206", "Field '%s' did not resolve to a struct value")
	MsgDataErrorNotArrayValue  = ffe("FF71207", "Field '%s' did not resolve to an array value")

	// SchemaError - a referenced struct could not be resolved
	MsgSchemaErrorUnknownStruct = ffe("FF71210", "Struct type '%s' was never delivered by the host")
	MsgSchemaErrorUnknownMember = ffe("FF71211", "Member '%s' at ordinal %d not found in struct '%s'")
	MsgSchemaErrorNoDomain      = ffe("FF71212", "Host did not deliver an EIP712Domain type")

	// Overflow - a padding input exceeded 32 bytes
	MsgOverflow = ffe("FF71220", "Value for '%s' is %d bytes, exceeds the 32 byte word size")

	// UnsupportedType - a type name or wire tag was not recognised
	MsgUnsupportedType     = ffe("FF71230", "Unsupported EIP-712 field type: %v")
	MsgUnsupportedDataType = ffe("FF71231", "Unsupported wire data_type tag: %d")
	MsgInvalidFieldSize    = ffe("FF71232", "Field '%s' declares an invalid byte size: %d")

	// Cancelled - operator declined, or host aborted
	MsgCancelledByOperator = ffe("FF71240", "Signing session cancelled by operator at %s")
	MsgCancelledByHost     = ffe("FF71241", "Signing session aborted by host")

	// TransportError - bubbled up from the host link
	MsgTransportFailed   = ffe("FF71250", "Host link request failed: %s")
	MsgTransportMismatch = ffe("FF71251", "Host link returned a response for an unexpected request")

	// Config / CLI
	MsgNoKeychainConfigured = ffe("FF71260", "No keychain configured for the signing session")
	MsgConfigFailed         = ffe("FF71261", "Failed to read configuration: %s")
)
