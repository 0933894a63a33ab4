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
	"io/ioutil"
	"log"
	"net/http"
)

// GetMessageJSON resolves the trigger request into one message map.
// Resolution order, first match wins:
//  1. query parameter literally named "message", parsed as JSON
//  2. any expected field present among the query parameters: the whole
//     query parameter set is the message
//  3. field named "message" in the parsed body, string-decoded or used as is
//  4. the parsed body itself
//  5. the source-specific default message
//
// A message string that fails JSON parsing returns an empty map and an
// error; the caller decides whether to proceed or abort.
func GetMessageJSON(request *http.Request, expectedFields []string, defaultMessage string) (map[string]interface{}, error) {
	queryParams := request.URL.Query()
	requestJSON := getRequestJSON(request)

	var message interface{}
	if values, ok := queryParams["message"]; ok && len(values) > 0 {
		message = values[0]
	}
	if message == nil {
		for _, field := range expectedFields {
			if _, ok := queryParams[field]; !ok {
				continue
			}
			// The query parameters hold the fields expected in the message.
			flattened := make(map[string]interface{}, len(queryParams))
			for name, values := range queryParams {
				if len(values) > 0 {
					flattened[name] = values[0]
				}
			}
			message = flattened
			break
		}
	}
	if message == nil && requestJSON != nil {
		if wrapped, ok := requestJSON["message"]; ok {
			message = wrapped
		} else {
			message = requestJSON
		}
	}
	if message == nil {
		log.Printf("message is empty, falling back to default message %s", defaultMessage)
		message = defaultMessage
	}

	switch m := message.(type) {
	case string:
		var messageJSON map[string]interface{}
		if err := json.Unmarshal([]byte(m), &messageJSON); err != nil {
			log.Printf("ERROR - cannot parse the message provided to this function %s %v", m, err)
			return map[string]interface{}{}, fmt.Errorf("json.Unmarshal(message): %v", err)
		}
		return messageJSON, nil
	case map[string]interface{}:
		return m, nil
	default:
		log.Printf("ERROR - unexpected message shape %T %v", message, message)
		return map[string]interface{}{}, fmt.Errorf("unexpected message shape %T", message)
	}
}

// getRequestJSON decodes the request body as JSON regardless of content type,
// tolerating an absent or unparsable body.
func getRequestJSON(request *http.Request) map[string]interface{} {
	if request.Body == nil {
		return nil
	}
	body, err := ioutil.ReadAll(request.Body)
	if err != nil || len(body) == 0 {
		return nil
	}
	var requestJSON map[string]interface{}
	if err := json.Unmarshal(body, &requestJSON); err != nil {
		return nil
	}
	return requestJSON
}
