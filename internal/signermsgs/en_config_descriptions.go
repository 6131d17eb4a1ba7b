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

var ffc = i18n.FFC

//revive:disable
var (
	ConfigCollectorMaxDynamicLeafBytes = ffc("config.collector.maxDynamicLeafBytes", "Maximum size in bytes of a dynamic (bytes/string) leaf value pulled from the host", "number")
	ConfigCollectorMaxStructDepth      = ffc("config.collector.maxStructDepth", "Maximum struct nesting depth the schema collector will recurse before giving up", "number")
	ConfigCollectorMaxArrayLength      = ffc("config.collector.maxArrayLength", "Maximum element count the value collector will accept for a single array", "number")

	ConfigSigningDefaultV4Compat = ffc("config.signing.defaultMetamaskV4Compat", "Default value of metamask_v4_compat when a signing request does not specify it", "boolean")

	ConfigDisplayPaginationFields = ffc("config.display.paginationFields", "Number of fields to show per confirmation page when the operator drills into a struct or array", "number")
	ConfigDisplaySummaryFields    = ffc("config.display.summaryFields", "Number of primary-type field names to show in the brief preview before the operator opts into full pagination", "number")
)
