// Copyright 2021 The bigdataonline Authors
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package key

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ContentID returns a deterministic identifier derived from the content
// itself, for the single-shot variant where the same payload should land at
// the same object key. Multiple values are joined on an unprintable rune so
// that distinct value lists cannot collide.
func ContentID(values ...string) string {
	digest := sha256.Sum256([]byte(strings.Join(values, "\x01")))
	return hex.EncodeToString(digest[:])
}
