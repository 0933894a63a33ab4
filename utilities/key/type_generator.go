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
	"fmt"
	"sync/atomic"

	"github.com/jonboulle/clockwork"
)

// timestampLayout keeps generated object names free of GCS-hostile runes
const timestampLayout = "2006-01-02_15-04-05"

// Generator derives object keys combining a timestamp with a monotonically
// increasing counter. The counter increment is atomic: the hosting layer may
// run invocations in parallel within one process.
type Generator struct {
	clock     clockwork.Clock
	increment uint64
}

// NewGenerator returns a Generator using the given clock, or the real clock when nil
func NewGenerator(clock clockwork.Clock) *Generator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Generator{clock: clock}
}

// Next returns a fresh key unique within this process
func (generator *Generator) Next() string {
	n := atomic.AddUint64(&generator.increment, 1)
	return fmt.Sprintf("%s_%d", generator.clock.Now().Format(timestampLayout), n-1)
}
