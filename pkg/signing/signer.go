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

import "github.com/coldwallet-labs/eip712-signer/pkg/secp256k1"

// Signer is the same narrow digest-signing contract pkg/secp256k1.KeyPair
// implements - aliased here so a Keychain can return one without this
// package and its caller needing to agree on a second interface.
type Signer = secp256k1.Signer
