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

package scavenge

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUnitParseRecords(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"list of objects", `[{"id":1},{"id":2},{"id":3}]`, 3},
		{"single object", `{"data":{"id":1}}`, 1},
		{"empty list", `[]`, 0},
		{"not json", `<html>busy</html>`, 1},
	}
	for _, test := range tests {
		records := parseRecords([]byte(test.body))
		if len(records) != test.want {
			t.Errorf("%s: records = %d, want %d", test.name, len(records), test.want)
		}
	}
	errorRecords := parseRecords([]byte(`<html>busy</html>`))
	if errorRecords[0]["error"] != `<html>busy</html>` {
		t.Errorf("error record = %v", errorRecords[0])
	}
}

func TestUnitEntryPointNoSinks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1},{"id":2}]`))
	}))
	defer server.Close()

	global := &Global{sourceURL: server.URL, httpClient: server.Client()}
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/?message=%7B%7D", nil)
	EntryPoint(recorder, request, global)

	response := recorder.Body.String()
	// No bucket and no topic configured, the records have nowhere to go.
	if !strings.HasSuffix(response, "completed. written=0 published=0") {
		t.Errorf("response = %s", response)
	}
}

func TestUnitEntryPointRejectsTopicWithoutProject(t *testing.T) {
	global := &Global{}
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/?message=%7B%22topic%22%3A%22t1%22%7D", nil)
	EntryPoint(recorder, request, global)
	if recorder.Body.String() != "Error attempting to access Pub/Sub topic with no project ID." {
		t.Errorf("response = %s", recorder.Body.String())
	}
}

func TestUnitParseRecordsKeepsLargeIDsExact(t *testing.T) {
	// An id above 2^53 loses its low digits if it travels as a float64.
	records := parseRecords([]byte(`[{"id":9007199254740993}]`))
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0]["id"] != json.Number("9007199254740993") {
		t.Errorf("id = %v (%T), want the exact number", records[0]["id"], records[0]["id"])
	}
	content, err := records[0].JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if content != `{"id":9007199254740993}` {
		t.Errorf("serialized record rounds the id: %s", content)
	}
}
