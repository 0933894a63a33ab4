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
Package gcs storage sink writing batches of records to a GCS bucket

Objects are JSON text, either one JSON document per object or multiple
JSON documents newline-delimited within one object. A failure while
writing never propagates past this package: it is logged with the target
and key attempted and contributes zero to the returned count.
*/
package gcs
