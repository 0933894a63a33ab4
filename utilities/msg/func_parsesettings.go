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

package msg

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseSettings derives the canonical settings from a resolved message map.
// A topic without a companion project ID is rejected here, before any
// network call is attempted.
func ParseSettings(messageJSON map[string]interface{}, expectedFields []string) (settings Settings, err error) {
	settings.ProjectID = getString(messageJSON, "projectId")
	settings.Topic = getString(messageJSON, "topic")
	settings.UserTopic = getString(messageJSON, "userTopic")
	settings.Bucket = getString(messageJSON, "bucket")
	settings.UserBucket = getString(messageJSON, "userBucket")
	settings.Path = getString(messageJSON, "path")
	settings.Delim = getString(messageJSON, "delim")
	settings.Query = getQuery(messageJSON)
	settings.Limit = getInt(messageJSON, "limit")
	settings.Debug = getInt(messageJSON, "debug")
	settings.ForAvro = getBool(messageJSON, "forAvro")

	if value, ok := messageJSON["separateLines"]; ok {
		// Presence of the key is enough, the value does not matter, except
		// for an explicit boolean false.
		if b, isBool := value.(bool); isBool {
			settings.SeparateLines = b
		} else {
			settings.SeparateLines = true
		}
	}

	settings.SourceParams = make(map[string]string)
	for _, field := range expectedFields {
		if value, ok := messageJSON[field]; ok && value != nil {
			settings.SourceParams[field] = formatParam(value)
		}
	}

	if settings.Topic != "" && settings.ProjectID == "" {
		return settings, fmt.Errorf("must include a project ID if you include topic %s", settings.Topic)
	}
	if settings.UserTopic != "" && settings.ProjectID == "" {
		return settings, fmt.Errorf("must include a project ID if you include topic %s", settings.UserTopic)
	}
	return settings, nil
}

func getString(messageJSON map[string]interface{}, field string) string {
	value, ok := messageJSON[field]
	if !ok || value == nil {
		return ""
	}
	if s, isString := value.(string); isString {
		return s
	}
	return fmt.Sprint(value)
}

func getInt(messageJSON map[string]interface{}, field string) int {
	switch value := messageJSON[field].(type) {
	case float64:
		return int(value)
	case int:
		return value
	case json.Number:
		n, _ := value.Int64()
		return int(n)
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func getBool(messageJSON map[string]interface{}, field string) bool {
	switch value := messageJSON[field].(type) {
	case bool:
		return value
	case string:
		return value == "true"
	default:
		return false
	}
}

// getQuery accepts one term, a list of terms, or a string-encoded list of
// terms. Quoted phrases keep their inner text.
func getQuery(messageJSON map[string]interface{}) []string {
	switch value := messageJSON["query"].(type) {
	case string:
		if value == "" {
			return nil
		}
		if strings.HasPrefix(value, "[") {
			var terms []string
			if err := json.Unmarshal([]byte(value), &terms); err == nil {
				return terms
			}
		}
		return []string{strings.Trim(value, `"`)}
	case []interface{}:
		terms := make([]string, 0, len(value))
		for _, term := range value {
			terms = append(terms, strings.Trim(fmt.Sprint(term), `"`))
		}
		return terms
	default:
		return nil
	}
}

// formatParam renders a source parameter value the way it appeared in the
// message, so numeric parameters do not grow a float suffix on the wire.
func formatParam(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
