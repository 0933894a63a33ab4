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
Package rec output record model shared by extractors and sinks

An output record is the flat, field-projected form of one raw record
fetched from an external source. A batch is the ordered set of output
records produced within one invocation. Records are created by an
extractor, handed read-only to both sinks, and not kept beyond the
current batch.
*/
package rec
