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

/*
Package flightstates snapshots OpenSky flight states and fans them out

Triggered by

HTTP requests carrying a JSON message, or nothing at all.

Instances

one-one, one request - one states/all query.

Output

Newline-delimited JSON rows written to a GCS bucket, and/or messages
published to a PubSub topic, optionally shaped for a topic with an Avro
schema.

Cardinality

One-few: one snapshot - one row per aircraft, bounded by limit.

Automatic retrying

No, a failed invocation reports zero counts.

Implementation example

 package p
 import (
     "context"
     "net/http"

     "github.com/bigdataonline/scavenger/services/flightstates"
 )
 var global flightstates.Global
 var ctx = context.Background()

 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(w http.ResponseWriter, r *http.Request) {
     flightstates.EntryPoint(w, r, &global)
 }

 func init() {
     flightstates.Initialize(ctx, &global)
 }

*/
package flightstates
