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

package rec

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is one flat output record, field name to scalar, list or nested-mapping value
type Record map[string]interface{}

// JSON serializes the record as one JSON document
func (record Record) JSON() (string, error) {
	content, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("json.Marshal(record): %v", err)
	}
	return string(content), nil
}

// ScalarAttributes returns the scalar fields of the record formatted as pubsub
// message attributes. Lists and nested mappings are skipped. Values are never
// empty-filtered: a field holding an empty string still yields an attribute.
func (record Record) ScalarAttributes() map[string]string {
	attributes := make(map[string]string)
	for field, value := range record {
		switch v := value.(type) {
		case string:
			attributes[field] = v
		case bool:
			attributes[field] = strconv.FormatBool(v)
		case int:
			attributes[field] = strconv.Itoa(v)
		case int64:
			attributes[field] = strconv.FormatInt(v, 10)
		case float64:
			attributes[field] = strconv.FormatFloat(v, 'f', -1, 64)
		case json.Number:
			attributes[field] = v.String()
		}
	}
	return attributes
}

// JoinLists returns a copy of the record with every list-valued field joined
// into a single string using delim. Scalar and nested-mapping fields are kept
// as is.
func (record Record) JoinLists(delim string) Record {
	joined := make(Record, len(record))
	for field, value := range record {
		switch v := value.(type) {
		case []interface{}:
			parts := make([]string, len(v))
			for i, element := range v {
				parts[i] = fmt.Sprint(element)
			}
			joined[field] = strings.Join(parts, delim)
		case []string:
			joined[field] = strings.Join(v, delim)
		default:
			joined[field] = value
		}
	}
	return joined
}
