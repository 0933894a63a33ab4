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
Package opk reads flight state vectors from the OpenSky network

OpenSky serves each state vector as a positional JSON array. The package
decodes the arrays into typed state vectors, then flattens them into
named rows, either sparse rows that omit null positions or fully
defaulted rows suited to a fixed schema.
*/
package opk
