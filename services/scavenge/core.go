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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/bigdataonline/scavenger/utilities/fan"
	"github.com/bigdataonline/scavenger/utilities/key"
	"github.com/bigdataonline/scavenger/utilities/logging"
	"github.com/bigdataonline/scavenger/utilities/msg"
	"github.com/bigdataonline/scavenger/utilities/rec"
	"github.com/bigdataonline/scavenger/utilities/web"
)

const defaultMessage = `{"start":1,"limit":50,"convert":"USD"}`

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	ctx            context.Context
	initFailed     bool
	storageClient  *storage.Client
	httpClient     *http.Client
	sourceURL      string
	expectedFields []string
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
func Initialize(ctx context.Context, global *Global) {
	global.ctx = ctx
	global.initFailed = false
	global.sourceURL = os.Getenv("SCAVENGE_URL")
	if fields := os.Getenv("SCAVENGE_FIELDS"); fields != "" {
		global.expectedFields = strings.Split(fields, ",")
	}
	var err error
	global.storageClient, err = storage.NewClient(ctx)
	if err != nil {
		log.Printf("ERROR - storage.NewClient: %v", err)
		global.initFailed = true
	}
}

// EntryPoint is the function to be executed for each cloud function occurence
func EntryPoint(w http.ResponseWriter, r *http.Request, global *Global) {
	invocationID := uuid.New().String()
	messageJSON, err := msg.GetMessageJSON(r, global.expectedFields, defaultMessage)
	if err != nil {
		log.Println(logging.Entry{
			FunctionName: "scavenge", InvocationID: invocationID, Severity: "WARNING",
			Message: fmt.Sprintf("proceeding with an empty message: %v", err)})
	}
	messageString, _ := json.Marshal(messageJSON)
	log.Println(logging.Entry{
		FunctionName: "scavenge", InvocationID: invocationID,
		Message: fmt.Sprintf("trigger message received is %s", messageString)})

	settings, err := msg.ParseSettings(messageJSON, global.expectedFields)
	if err != nil {
		log.Printf("ERROR - %v", err)
		fmt.Fprint(w, "Error attempting to access Pub/Sub topic with no project ID.")
		return
	}
	if global.sourceURL == "" {
		log.Printf("ERROR - SCAVENGE_URL is not set, nothing to query")
		fmt.Fprintf(w, "%s completed. written=0 published=0", messageString)
		return
	}

	body, err := web.FetchJSON(r.Context(), global.httpClient, global.sourceURL, settings.SourceParams)
	if err != nil {
		log.Printf("ERROR - %v", err)
		fmt.Fprintf(w, "%s completed. written=0 published=0", messageString)
		return
	}
	records := parseRecords(body)

	generator := key.NewGenerator(nil)
	pipeline := fan.BuildPipeline(r.Context(), fan.Target{
		StorageClient:   global.storageClient,
		BucketName:      settings.Bucket,
		PathPrefix:      settings.Path,
		SeparateObjects: settings.SeparateLines,
		ContentKeys:     true,
		ProjectID:       settings.ProjectID,
		TopicName:       settings.Topic,
	}, generator)
	defer pipeline.Close()
	result := pipeline.Dispatch(r.Context(), records)

	log.Println(logging.Entry{
		FunctionName: "scavenge", InvocationID: invocationID,
		Message:        "completed",
		RecordsWritten: result.Written, RecordsPublished: result.Published})
	fmt.Fprintf(w, "%s completed. written=%d published=%d", messageString, result.Written, result.Published)
}

// parseRecords turns a source response into records. A JSON list yields
// one record per element, a JSON object yields one record, anything else
// is kept as a single error record so no response is silently lost.
func parseRecords(body []byte) []rec.Record {
	var asList []map[string]interface{}
	if err := decodeJSON(body, &asList); err == nil {
		records := make([]rec.Record, 0, len(asList))
		for _, element := range asList {
			records = append(records, rec.Record(element))
		}
		return records
	}
	var asObject map[string]interface{}
	if err := decodeJSON(body, &asObject); err == nil {
		return []rec.Record{rec.Record(asObject)}
	}
	log.Printf("ERROR - source response is not JSON, keeping it as an error record")
	return []rec.Record{{"error": string(body)}}
}

// decodeJSON decodes with UseNumber so source ids above 2^53 survive the
// round trip to the sinks exactly
func decodeJSON(body []byte, target interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	return decoder.Decode(target)
}
