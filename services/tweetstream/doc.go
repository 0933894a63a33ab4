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
Package tweetstream filters the Twitter stream and fans tweets and users out

Triggered by

HTTP requests carrying a JSON message with one or more query terms.

Instances

one-one, one request - one stream session per query term.

Output

Per-event JSON objects written to separate GCS buckets for tweets and
users, and/or messages published to separate PubSub topics.

Cardinality

One-many: one streamed event - one or more tweet rows plus one row per
authoring user.

Automatic retrying

No, a term whose stream fails is logged and the next term proceeds.

Required files

- twitterKeys.json credentials deployed alongside the function, format
{"consumer_key":"...","consumer_secret":"...","access_token":"...",
"access_secret":"...","bearer_token":"..."}

Implementation example

 package p
 import (
     "context"
     "net/http"

     "github.com/bigdataonline/scavenger/services/tweetstream"
 )
 var global tweetstream.Global
 var ctx = context.Background()

 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(w http.ResponseWriter, r *http.Request) {
     tweetstream.EntryPoint(w, r, &global)
 }

 func init() {
     tweetstream.Initialize(ctx, &global)
 }

*/
package tweetstream
