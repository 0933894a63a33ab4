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

func TestUnitSanitizeObjectName(t *testing.T) {
	var tests = []struct {
		name string
		in   string
		want string
	}{
		{
			name: "TimestampedKey",
			in:   "olympics_2021-08-05 14:03:02.123456.json",
			want: "olympics_2021-08-05_14_03_02.123456.json",
		},
		{
			name: "AllowedRunesUntouched",
			in:   "flightData_2021-08-05.json",
			want: "flightData_2021-08-05.json",
		},
		{
			name: "QuotedPhrase",
			in:   "\"swim-dive set\"",
			want: "_swim-dive_set_",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := SanitizeObjectName(test.in)
			if got != test.want {
				t.Errorf("SanitizeObjectName(%q) = %q, want %q", test.in, got, test.want)
			}
		})
	}
}
