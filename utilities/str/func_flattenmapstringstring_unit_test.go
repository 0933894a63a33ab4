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

package str

import (
	"testing"
)

func TestUnitFlattenMapStringString(t *testing.T) {
	var tests = []struct {
		name string
		m    map[string]string
		want string
	}{
		{
			name: "SortedKeys",
			m:    map[string]string{"query": "olympics", "lang": "en"},
			want: "lang=\"en\", query=\"olympics\", ",
		},
		{
			name: "EmptyMap",
			m:    map[string]string{},
			want: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := FlattenMapStringString(test.m)
			if got != test.want {
				t.Errorf("got %q want %q", got, test.want)
			}
		})
	}
}
