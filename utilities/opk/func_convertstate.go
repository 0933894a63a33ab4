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
	"time"

	"github.com/bigdataonline/scavenger/utilities/rec"
)

const bigQueryTimestampLayout = "2006-01-02 15:04:05"

// ConvertState flattens one state vector into a named row.
//
// Without forAvro, null positions are omitted and a vector with no
// populated field at all yields nil. With forAvro every schema field is
// present, nulls defaulted to "", 0 or false, and the millisecond
// time_avro, contact_avro and query_time_avro fields are added.
// Timestamp fields also get a *_bq companion formatted for BigQuery
// ingestion.
func ConvertState(state StateVector, queryTime int64, forAvro bool) rec.Record {
	row := rec.Record{}
	setString(row, "icao24", state.Icao24, forAvro)
	setString(row, "callsign", state.Callsign, forAvro)
	setString(row, "origin", state.OriginCountry, forAvro)
	setInt(row, "time", state.TimePosition, forAvro)
	setInt(row, "contact", state.LastContact, forAvro)
	setFloat(row, "longitude", state.Longitude, forAvro)
	setFloat(row, "latitude", state.Latitude, forAvro)
	setFloat(row, "altitude", state.GeoAltitude, forAvro)
	setBool(row, "on_ground", state.OnGround, forAvro)
	setFloat(row, "velocity", state.Velocity, forAvro)
	setFloat(row, "heading", state.Heading, forAvro)
	setFloat(row, "vertical_rate", state.VerticalRate, forAvro)
	setString(row, "sensors", state.Sensors, forAvro)
	setFloat(row, "baro_altitude", state.BaroAltitude, forAvro)
	setString(row, "squawk", state.Squawk, forAvro)
	setBool(row, "spi", state.Spi, forAvro)
	setInt(row, "position_source", state.PositionSource, forAvro)
	if len(row) == 0 && !forAvro {
		return nil
	}
	setTimestampBQ(row, "time_bq", state.TimePosition, forAvro)
	setTimestampBQ(row, "contact_bq", state.LastContact, forAvro)
	setTimestampBQ(row, "query_time_bq", &queryTime, forAvro)
	if forAvro {
		row["time_avro"] = millis(state.TimePosition)
		row["contact_avro"] = millis(state.LastContact)
		row["query_time_avro"] = millis(&queryTime)
	}
	return row
}

// ConvertStates flattens a whole response, stopping once the row count
// exceeds limit. A limit below 1 means no limit.
func ConvertStates(response *StatesResponse, queryTime int64, forAvro bool, limit int) []rec.Record {
	var records []rec.Record
	for _, state := range response.States {
		row := ConvertState(state, queryTime, forAvro)
		if row == nil {
			continue
		}
		records = append(records, row)
		if limit > 0 && len(records) > limit {
			break
		}
	}
	return records
}

func setString(row rec.Record, name string, value *string, forAvro bool) {
	if value != nil {
		row[name] = *value
	} else if forAvro {
		row[name] = ""
	}
}

func setInt(row rec.Record, name string, value *int64, forAvro bool) {
	if value != nil {
		row[name] = *value
	} else if forAvro {
		row[name] = int64(0)
	}
}

func setFloat(row rec.Record, name string, value *float64, forAvro bool) {
	if value != nil {
		row[name] = *value
	} else if forAvro {
		row[name] = float64(0)
	}
}

func setBool(row rec.Record, name string, value *bool, forAvro bool) {
	if value != nil {
		row[name] = *value
	} else if forAvro {
		row[name] = false
	}
}

func setTimestampBQ(row rec.Record, name string, timestamp *int64, forAvro bool) {
	if timestamp != nil {
		row[name] = time.Unix(*timestamp, 0).UTC().Format(bigQueryTimestampLayout)
	} else if forAvro {
		row[name] = ""
	}
}

func millis(timestamp *int64) int64 {
	if timestamp == nil {
		return 0
	}
	return *timestamp * 1000
}
