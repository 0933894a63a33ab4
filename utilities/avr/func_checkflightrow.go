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

package avr

import (
	"fmt"

	"github.com/hamba/avro/v2"

	"github.com/bigdataonline/scavenger/utilities/rec"
)

// flightRowSchema mirrors the schema attached to the flight topic. Rows
// destined for that topic must encode against it before publication.
var flightRowSchema = avro.MustParse(`{
	"type": "record",
	"name": "FlightRow",
	"namespace": "scavenger.flights",
	"fields": [
		{"name": "icao24", "type": "string"},
		{"name": "callsign", "type": "string"},
		{"name": "origin", "type": "string"},
		{"name": "time", "type": "long"},
		{"name": "contact", "type": "long"},
		{"name": "longitude", "type": "double"},
		{"name": "latitude", "type": "double"},
		{"name": "altitude", "type": "double"},
		{"name": "on_ground", "type": "boolean"},
		{"name": "velocity", "type": "double"},
		{"name": "heading", "type": "double"},
		{"name": "vertical_rate", "type": "double"},
		{"name": "sensors", "type": "string"},
		{"name": "baro_altitude", "type": "double"},
		{"name": "squawk", "type": "string"},
		{"name": "spi", "type": "boolean"},
		{"name": "position_source", "type": "long"},
		{"name": "time_bq", "type": "string"},
		{"name": "contact_bq", "type": "string"},
		{"name": "query_time_bq", "type": "string"},
		{"name": "time_avro", "type": "long"},
		{"name": "contact_avro", "type": "long"},
		{"name": "query_time_avro", "type": "long"}
	]
}`)

// CheckFlightRow reports whether the row encodes against the flight
// topic schema
func CheckFlightRow(row rec.Record) error {
	if _, err := avro.Marshal(flightRowSchema, map[string]interface{}(row)); err != nil {
		return fmt.Errorf("avr.CheckFlightRow %v", err)
	}
	return nil
}
