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
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUnitFilterStreamsLines(t *testing.T) {
	var gotTrack string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTrack = r.URL.Query().Get("track")
		w.Write([]byte("{\"id_str\":\"1\"}\n\n{\"id_str\":\"2\"}\n{\"id_str\":\"3\"}\n"))
	}))
	defer server.Close()

	var events []string
	reader := &StreamReader{HTTPClient: server.Client(), URL: server.URL}
	err := reader.Filter(context.Background(), "olympics", func(data []byte) bool {
		events = append(events, string(data))
		return len(events) < 2
	})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if gotTrack != "olympics" {
		t.Errorf("track = %s", gotTrack)
	}
	// Blank keep-alive lines are skipped and streaming stops when the
	// callback declines more data.
	if len(events) != 2 || events[0] != `{"id_str":"1"}` || events[1] != `{"id_str":"2"}` {
		t.Errorf("events = %v", events)
	}
}

func TestUnitFilterRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(420)
	}))
	defer server.Close()

	reader := &StreamReader{HTTPClient: server.Client(), URL: server.URL}
	err := reader.Filter(context.Background(), "olympics", func(data []byte) bool { return true })
	if err == nil {
		t.Error("want an error on a 420 response")
	}
}
