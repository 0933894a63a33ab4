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
Package twt reads and flattens events from the Twitter streaming API

A streamed event is a deeply nested JSON document. The package projects
it into flat tweet rows keeping a fixed field set, reduces nested
entities to their reference values, and pulls the authoring users out
into their own rows. Nesting is bounded, a document nested deeper than
the bound loses the excess levels instead of recursing after them.
*/
package twt
