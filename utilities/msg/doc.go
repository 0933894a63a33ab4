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
Package msg trigger message normalization and canonical settings

Each function is triggered by an HTTP request carrying a message either in
the query string, in the JSON body, or wrapped in a field named "message"
holding string-encoded JSON or a nested object. GetMessageJSON resolves
all those shapes into one message map, and ParseSettings derives the
canonical configuration consumed by the pipeline.
*/
package msg
