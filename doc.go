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
Package scavenger gathers records from external sources into Google Cloud

## What

Serverless functions that pull data from external sources and fan each
batch of records out to Google Cloud Storage and PubSub, where the
records can be loaded into BigQuery or consumed downstream.

### Sources

1. Generic REST endpoints returning JSON (scavenge)
2. The OpenSky network flight state API (flightstates)
3. The Twitter streaming API (tweetstream)

## Why

- Landing raw source data in GCS and PubSub decouples gathering from analysis
- The same trigger message drives a deployed function and a local run
*/
package scavenger
