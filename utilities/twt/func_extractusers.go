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

package twt

import (
	"encoding/json"

	"github.com/bigdataonline/scavenger/utilities/rec"
	"github.com/bigdataonline/scavenger/utilities/str"
)

// userFields are the user profile fields kept on a user row
var userFields = []string{"id", "id_str", "name", "screen_name", "location", "description",
	"followers_count", "friends_count", "listed_count", "favourites_count", "statuses_count",
	"created_at", "following", "follow_request_sent", "notifications"}

// ExtractUsers walks one streamed tweet and returns a row per user
// object found anywhere in it, the retweeted author included
func ExtractUsers(tweet map[string]interface{}) []rec.Record {
	type pending struct {
		element interface{}
		depth   int
	}
	var rows []rec.Record
	worklist := []pending{{element: tweet, depth: 0}}
	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]
		if item.depth > maxNestingDepth {
			continue
		}
		switch value := item.element.(type) {
		case map[string]interface{}:
			if envelope, present := value["tweet"]; present {
				if inner, ok := envelope.(map[string]interface{}); ok {
					value = inner
				}
			}
			for field, subvalue := range value {
				if subvalue == nil {
					continue
				}
				if field == "user" {
					if userData, ok := subvalue.(map[string]interface{}); ok {
						if row := extractUser(userData); row != nil {
							rows = append(rows, row)
						}
						continue
					}
				}
				switch subvalue.(type) {
				case map[string]interface{}, []interface{}:
					worklist = append(worklist, pending{element: subvalue, depth: item.depth + 1})
				}
			}
		case []interface{}:
			for _, subelement := range value {
				worklist = append(worklist, pending{element: subelement, depth: item.depth + 1})
			}
		}
	}
	return rows
}

// extractUser projects one user object onto the kept fields, the full
// profile is preserved serialized under text. An object with no kept
// field yields no row.
func extractUser(userData map[string]interface{}) rec.Record {
	row := rec.Record{}
	for field, value := range userData {
		if value == nil {
			continue
		}
		if str.Find(userFields, field) {
			row[field] = value
		}
	}
	if len(row) == 0 {
		return nil
	}
	if serialized, err := json.Marshal(userData); err == nil {
		row["text"] = string(serialized)
	}
	return row
}
