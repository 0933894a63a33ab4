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
Package gps publish sink emitting batches of records to a pubsub topic

Each record becomes one message: UTF-8 encoded JSON body plus the
record's scalar fields as message attributes. When a publish attempt
with attributes fails, one attribute-free attempt follows before the
record contributes zero. Delivery is best effort, at most once from this
package's perspective.
*/
package gps
