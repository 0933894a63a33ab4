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
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestUnitGeneratorNext(t *testing.T) {
	at := time.Date(2021, 8, 5, 14, 3, 2, 0, time.UTC)
	generator := NewGenerator(clockwork.NewFakeClockAt(at))

	var tests = []struct {
		name string
		want string
	}{
		{name: "FirstKey", want: "2021-08-05_14-03-02_0"},
		{name: "SecondKey", want: "2021-08-05_14-03-02_1"},
		{name: "ThirdKey", want: "2021-08-05_14-03-02_2"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := generator.Next()
			if got != test.want {
				t.Errorf("got %s want %s", got, test.want)
			}
		})
	}
}

func TestUnitGeneratorNextUniqueAcrossBatch(t *testing.T) {
	generator := NewGenerator(nil)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		k := generator.Next()
		if seen[k] {
			t.Fatalf("duplicate key %s", k)
		}
		seen[k] = true
	}
}
