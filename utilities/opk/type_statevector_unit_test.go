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

package opk

import (
	"encoding/json"
	"testing"
)

const sampleStatesBody = `{"time":1628172182,"states":[
["4b1817","SWR193H ","Switzerland",1628172181,1628172181,8.5569,47.4567,434.34,false,74.2,273.5,-3.25,null,472.44,"1021",false,0],
["abc123",null,"France",null,1628172000,null,null,null,true,null,null,null,null,null,null,null,0]
]}`

func TestUnitStateVectorUnmarshal(t *testing.T) {
	var response StatesResponse
	if err := json.Unmarshal([]byte(sampleStatesBody), &response); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if response.Time != 1628172182 {
		t.Errorf("time = %d", response.Time)
	}
	if len(response.States) != 2 {
		t.Fatalf("states = %d, want 2", len(response.States))
	}

	full := response.States[0]
	if full.Icao24 == nil || *full.Icao24 != "4b1817" {
		t.Errorf("icao24 = %v", full.Icao24)
	}
	if full.Callsign == nil || *full.Callsign != "SWR193H " {
		t.Errorf("callsign = %v", full.Callsign)
	}
	if full.TimePosition == nil || *full.TimePosition != 1628172181 {
		t.Errorf("time_position = %v", full.TimePosition)
	}
	if full.Longitude == nil || *full.Longitude != 8.5569 {
		t.Errorf("longitude = %v", full.Longitude)
	}
	if full.OnGround == nil || *full.OnGround {
		t.Errorf("on_ground = %v", full.OnGround)
	}
	if full.Squawk == nil || *full.Squawk != "1021" {
		t.Errorf("squawk = %v", full.Squawk)
	}
	if full.PositionSource == nil || *full.PositionSource != 0 {
		t.Errorf("position_source = %v", full.PositionSource)
	}

	sparse := response.States[1]
	if sparse.Callsign != nil {
		t.Errorf("null callsign must stay nil, got %v", *sparse.Callsign)
	}
	if sparse.Longitude != nil || sparse.TimePosition != nil {
		t.Error("null positions must stay nil")
	}
	if sparse.OnGround == nil || !*sparse.OnGround {
		t.Errorf("on_ground = %v", sparse.OnGround)
	}
}

func TestUnitStateVectorShortArray(t *testing.T) {
	var state StateVector
	if err := json.Unmarshal([]byte(`["4b1817","SWR193H "]`), &state); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if state.Icao24 == nil || *state.Icao24 != "4b1817" {
		t.Errorf("icao24 = %v", state.Icao24)
	}
	if state.OriginCountry != nil || state.PositionSource != nil {
		t.Error("fields past the array end must stay nil")
	}
}
