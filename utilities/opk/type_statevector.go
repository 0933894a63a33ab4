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
	"fmt"
)

// StateVector is one aircraft state as served by OpenSky. Pointer fields
// distinguish a null position from a zero value.
type StateVector struct {
	Icao24         *string
	Callsign       *string
	OriginCountry  *string
	TimePosition   *int64
	LastContact    *int64
	Longitude      *float64
	Latitude       *float64
	BaroAltitude   *float64
	OnGround       *bool
	Velocity       *float64
	Heading        *float64
	VerticalRate   *float64
	Sensors        *string
	GeoAltitude    *float64
	Squawk         *string
	Spi            *bool
	PositionSource *int64
}

// StatesResponse is the envelope of the states/all endpoint
type StatesResponse struct {
	Time   int64         `json:"time"`
	States []StateVector `json:"states"`
}

// UnmarshalJSON decodes the 17-element positional array OpenSky uses on
// the wire. Shorter arrays leave the trailing fields null.
func (state *StateVector) UnmarshalJSON(data []byte) error {
	var fields []interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("opk.StateVector %v", err)
	}
	stringAt(fields, 0, &state.Icao24)
	stringAt(fields, 1, &state.Callsign)
	stringAt(fields, 2, &state.OriginCountry)
	intAt(fields, 3, &state.TimePosition)
	intAt(fields, 4, &state.LastContact)
	floatAt(fields, 5, &state.Longitude)
	floatAt(fields, 6, &state.Latitude)
	floatAt(fields, 7, &state.BaroAltitude)
	boolAt(fields, 8, &state.OnGround)
	floatAt(fields, 9, &state.Velocity)
	floatAt(fields, 10, &state.Heading)
	floatAt(fields, 11, &state.VerticalRate)
	stringAt(fields, 12, &state.Sensors)
	floatAt(fields, 13, &state.GeoAltitude)
	stringAt(fields, 14, &state.Squawk)
	boolAt(fields, 15, &state.Spi)
	intAt(fields, 16, &state.PositionSource)
	return nil
}

func stringAt(fields []interface{}, index int, target **string) {
	if index >= len(fields) || fields[index] == nil {
		return
	}
	if value, ok := fields[index].(string); ok {
		*target = &value
	}
}

func floatAt(fields []interface{}, index int, target **float64) {
	if index >= len(fields) || fields[index] == nil {
		return
	}
	if value, ok := fields[index].(float64); ok {
		*target = &value
	}
}

func intAt(fields []interface{}, index int, target **int64) {
	if index >= len(fields) || fields[index] == nil {
		return
	}
	if value, ok := fields[index].(float64); ok {
		integer := int64(value)
		*target = &integer
	}
}

func boolAt(fields []interface{}, index int, target **bool) {
	if index >= len(fields) || fields[index] == nil {
		return
	}
	if value, ok := fields[index].(bool); ok {
		*target = &value
	}
}
