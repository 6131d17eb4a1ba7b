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

// Package deviceconfig declares the configuration keys of the signing
// core, with their defaults: collector limits against an untrusted host,
// the v4-compat default, and the UI pagination sizes. The keys are
// registered and printed by the `config` command; the schema and value
// collectors, the orchestrator and the simulator do not read them, and
// use their own constants (schema.MaxDepth, values.MaxDynamicLeafBytes, a
// three-name message preview) or caller-supplied values.Limits instead.
// It does not configure the host transport or the keychain - those are
// injected by the embedder.
package deviceconfig

import (
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/spf13/viper"
)

var ffc = config.AddRootKey

var (
	// CollectorMaxDynamicLeafBytes is the configured cap on a bytes/string leaf's length (see §4.5 of the design)
	CollectorMaxDynamicLeafBytes = ffc("collector.maxDynamicLeafBytes")
	// CollectorMaxStructDepth is the configured bound on schema collector recursion
	CollectorMaxStructDepth = ffc("collector.maxStructDepth")
	// CollectorMaxArrayLength is the configured bound on a single array's element count
	CollectorMaxArrayLength = ffc("collector.maxArrayLength")
	// SigningDefaultV4Compat is the configured default for metamask_v4_compat
	SigningDefaultV4Compat = ffc("signing.defaultMetamaskV4Compat")
	// DisplayPaginationFields is the configured number of fields per confirmation page
	DisplayPaginationFields = ffc("display.paginationFields")
	// DisplaySummaryFields is the configured number of primary-type field names in the brief preview
	DisplaySummaryFields = ffc("display.summaryFields")
)

func setDefaults() {
	viper.SetDefault(string(CollectorMaxDynamicLeafBytes), 1024)
	viper.SetDefault(string(CollectorMaxStructDepth), 32)
	viper.SetDefault(string(CollectorMaxArrayLength), 65536)
	viper.SetDefault(string(SigningDefaultV4Compat), true)
	viper.SetDefault(string(DisplayPaginationFields), 5)
	viper.SetDefault(string(DisplaySummaryFields), 3)
}

func Reset() {
	config.RootConfigReset(setDefaults)
}
