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

package tweetstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/bigdataonline/scavenger/utilities/aut"
	"github.com/bigdataonline/scavenger/utilities/fan"
	"github.com/bigdataonline/scavenger/utilities/key"
	"github.com/bigdataonline/scavenger/utilities/logging"
	"github.com/bigdataonline/scavenger/utilities/msg"
	"github.com/bigdataonline/scavenger/utilities/twt"
)

const defaultMessage = `{"query":"The Spicy Amigos"}`
const defaultLimit = 10
const keyFilePath = "twitterKeys.json"

var defaultQuery = []string{"The Fast Dog"}
var expectedFields = []string{"query"}

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	ctx           context.Context
	initFailed    bool
	storageClient *storage.Client
	streamClient  *http.Client
	streamURL     string
	keysOK        bool
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
func Initialize(ctx context.Context, global *Global) {
	global.ctx = ctx
	global.initFailed = false
	global.streamURL = twt.FilterStreamURL
	var err error
	global.storageClient, err = storage.NewClient(ctx)
	if err != nil {
		log.Printf("ERROR - storage.NewClient: %v", err)
		global.initFailed = true
	}
	var keys aut.StreamKeys
	keys, global.keysOK = aut.GetStreamKeys(keyFilePath)
	if global.keysOK {
		global.streamClient = aut.GetStreamHTTPClient(ctx, keys)
	}
}

// EntryPoint is the function to be executed for each cloud function occurence
func EntryPoint(w http.ResponseWriter, r *http.Request, global *Global) {
	invocationID := uuid.New().String()
	messageJSON, err := msg.GetMessageJSON(r, expectedFields, defaultMessage)
	if err != nil {
		log.Println(logging.Entry{
			FunctionName: "tweetstream", InvocationID: invocationID, Severity: "WARNING",
			Message: fmt.Sprintf("proceeding with an empty message: %v", err)})
	}
	messageString, _ := json.Marshal(messageJSON)
	log.Println(logging.Entry{
		FunctionName: "tweetstream", InvocationID: invocationID,
		Message: fmt.Sprintf("trigger message received is %s", messageString)})

	settings, err := msg.ParseSettings(messageJSON, expectedFields)
	if err != nil {
		log.Printf("ERROR - %v", err)
		fmt.Fprint(w, "Error attempting to access Pub/Sub topic with no project ID.")
		return
	}
	if len(settings.Query) == 0 {
		settings.Query = defaultQuery
	}
	if settings.Limit <= 0 {
		settings.Limit = defaultLimit
	}
	log.Println(logging.Entry{
		FunctionName: "tweetstream", InvocationID: invocationID,
		Query:   strings.Join(settings.Query, ","),
		Message: fmt.Sprintf("limit is set to %d per term", settings.Limit)})

	if !global.keysOK {
		fmt.Fprintf(w, "Cannot read required keys from %s", keyFilePath)
		return
	}

	generator := key.NewGenerator(nil)
	reader := &twt.StreamReader{HTTPClient: global.streamClient, URL: global.streamURL}
	var total fan.Result
	for _, term := range settings.Query {
		tweetPipeline := fan.BuildPipeline(r.Context(), fan.Target{
			StorageClient:   global.storageClient,
			BucketName:      settings.Bucket,
			PathPrefix:      settings.Path,
			SeparateObjects: true,
			ProjectID:       settings.ProjectID,
			TopicName:       settings.Topic,
		}, generator)
		userPipeline := fan.BuildPipeline(r.Context(), fan.Target{
			StorageClient:   global.storageClient,
			BucketName:      settings.UserBucket,
			PathPrefix:      settings.Path,
			SeparateObjects: true,
			ProjectID:       settings.ProjectID,
			TopicName:       settings.UserTopic,
		}, generator)
		listener := &Listener{
			Ctx:           r.Context(),
			Query:         term,
			Limit:         settings.Limit,
			Delim:         settings.Delim,
			TweetPipeline: tweetPipeline,
			UserPipeline:  userPipeline,
		}
		if err := reader.Filter(r.Context(), term, listener.OnData); err != nil {
			log.Printf("ERROR - %v", err)
		}
		total.Add(listener.Total)
		tweetPipeline.Close()
		userPipeline.Close()
	}

	log.Println(logging.Entry{
		FunctionName: "tweetstream", InvocationID: invocationID,
		Message:        "completed",
		RecordsWritten: total.Written, RecordsPublished: total.Published})
	fmt.Fprintf(w, "%s completed. written=%d published=%d", messageString, total.Written, total.Published)
}
