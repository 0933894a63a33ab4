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

package flightstates

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/bigdataonline/scavenger/utilities/avr"
	"github.com/bigdataonline/scavenger/utilities/fan"
	"github.com/bigdataonline/scavenger/utilities/key"
	"github.com/bigdataonline/scavenger/utilities/logging"
	"github.com/bigdataonline/scavenger/utilities/msg"
	"github.com/bigdataonline/scavenger/utilities/opk"
	"github.com/bigdataonline/scavenger/utilities/rec"
)

const defaultMessage = "{}"
const defaultPath = "flightData"
const defaultDebug = 10

var expectedFields = []string{"bucket", "path", "topic", "projectId"}

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	ctx           context.Context
	initFailed    bool
	storageClient *storage.Client
	httpClient    *http.Client
	statesURL     string
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
func Initialize(ctx context.Context, global *Global) {
	global.ctx = ctx
	global.initFailed = false
	global.statesURL = opk.StatesURL
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
	messageJSON, err := msg.GetMessageJSON(r, expectedFields, defaultMessage)
	if err != nil {
		log.Println(logging.Entry{
			FunctionName: "flightstates", InvocationID: invocationID, Severity: "WARNING",
			Message: fmt.Sprintf("proceeding with an empty message: %v", err)})
	}
	messageString, _ := json.Marshal(messageJSON)

	settings, err := msg.ParseSettings(messageJSON, expectedFields)
	if err != nil {
		log.Printf("ERROR - %v", err)
		fmt.Fprint(w, "Error attempting to access Pub/Sub topic with no project ID.")
		return
	}
	if _, present := messageJSON["debug"]; !present {
		settings.Debug = defaultDebug
	}
	if settings.Path == "" {
		settings.Path = defaultPath
	}
	if settings.Debug != 0 {
		log.Println(logging.Entry{
			FunctionName: "flightstates", InvocationID: invocationID,
			Message: fmt.Sprintf("trigger message received is %s", messageString)})
	}

	queryTime := time.Now().Unix()
	response, err := opk.FetchStates(r.Context(), global.httpClient, global.statesURL)
	if err != nil {
		log.Printf("ERROR - %v", err)
		fmt.Fprintf(w, "%s completed. written=0 published=0", messageString)
		return
	}
	records := opk.ConvertStates(response, queryTime, settings.ForAvro, settings.Limit)
	if settings.ForAvro {
		records = checkRows(records)
	}
	if settings.Debug != 0 {
		log.Println(logging.Entry{
			FunctionName: "flightstates", InvocationID: invocationID,
			Message: fmt.Sprintf("found %d records to process", len(records))})
	}

	generator := key.NewGenerator(nil)
	pipeline := fan.BuildPipeline(r.Context(), fan.Target{
		StorageClient:   global.storageClient,
		BucketName:      settings.Bucket,
		PathPrefix:      settings.Path,
		SeparateObjects: settings.SeparateLines,
		ProjectID:       settings.ProjectID,
		TopicName:       settings.Topic,
	}, generator)
	defer pipeline.Close()
	result := pipeline.Dispatch(r.Context(), records)

	log.Println(logging.Entry{
		FunctionName: "flightstates", InvocationID: invocationID,
		Message:        "completed",
		RecordsWritten: result.Written, RecordsPublished: result.Published})
	fmt.Fprintf(w, "%s completed. written=%d published=%d", messageString, result.Written, result.Published)
}

// checkRows drops rows that would not encode against the flight topic
// schema, a schema-bearing topic rejects the whole publish otherwise
func checkRows(records []rec.Record) []rec.Record {
	checked := records[:0]
	for _, row := range records {
		if err := avr.CheckFlightRow(row); err != nil {
			log.Printf("ERROR - SKIPPING row %v: %v", row["icao24"], err)
			continue
		}
		checked = append(checked, row)
	}
	return checked
}
