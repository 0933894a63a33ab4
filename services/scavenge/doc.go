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
Package scavenge pulls records from a REST endpoint and fans them out

Triggered by

HTTP requests carrying a JSON message, or nothing at all.

Instances

one-one, one request - one query against the source endpoint.

Output

JSON objects written to a GCS bucket keyed by content hash, and/or
messages published to a PubSub topic.

Cardinality

One-few: one source response - one record per list element.

Automatic retrying

No, a failed invocation reports zero counts.

Required environment variables

- SCAVENGE_URL the source endpoint to query

Optional environment variables

- SCAVENGE_FIELDS comma separated message fields forwarded to the
endpoint as query parameters

Implementation example

 package p
 import (
     "context"
     "net/http"

     "github.com/bigdataonline/scavenger/services/scavenge"
 )
 var global scavenge.Global
 var ctx = context.Background()

 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(w http.ResponseWriter, r *http.Request) {
     scavenge.EntryPoint(w, r, &global)
 }

 func init() {
     scavenge.Initialize(ctx, &global)
 }

*/
package scavenge
