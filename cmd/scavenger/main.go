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

// scavenger runs one of the functions from the command line. The flags
// are assembled into the same trigger message a deployed function
// receives over HTTP, so a local run and a deployed run behave alike.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"

	"github.com/bigdataonline/scavenger/services/flightstates"
	"github.com/bigdataonline/scavenger/services/scavenge"
	"github.com/bigdataonline/scavenger/services/tweetstream"
)

// stdoutResponseWriter lets the function entry points answer on stdout
type stdoutResponseWriter struct {
	header http.Header
}

func (writer *stdoutResponseWriter) Header() http.Header {
	if writer.header == nil {
		writer.header = http.Header{}
	}
	return writer.header
}

func (writer *stdoutResponseWriter) Write(data []byte) (int, error) {
	return os.Stdout.Write(data)
}

func (writer *stdoutResponseWriter) WriteHeader(statusCode int) {
	if statusCode != http.StatusOK {
		log.Printf("status %d", statusCode)
	}
}

func main() {
	service := flag.String("service", "scavenge", "which function to run: scavenge, flightstates or tweetstream")
	query := flag.String("query", "", "comma separated query terms (tweetstream)")
	limit := flag.Int("limit", 0, "limit the number of records per query")
	bucket := flag.String("bucket", "", "GCS bucket for the records")
	userBucket := flag.String("userBucket", "", "GCS bucket for user records (tweetstream)")
	projectID := flag.String("projectId", "", "Google Cloud project ID, required when publishing")
	topic := flag.String("topic", "", "PubSub topic for the records")
	userTopic := flag.String("userTopic", "", "PubSub topic for user records (tweetstream)")
	path := flag.String("path", "", "path within the buckets")
	delim := flag.String("delim", "", "delimiter turning multivalue fields into strings")
	separateLines := flag.Bool("separateLines", false, "one object per record instead of one per batch")
	forAvro := flag.Bool("avro", false, "shape rows for a topic carrying an Avro schema (flightstates)")
	debug := flag.Int("debug", 0, "log level, 0 keeps the default")
	credentials := flag.String("credentials", "", "service account key file used to verify the topic exists before running")
	flag.Parse()

	message := map[string]interface{}{}
	if *query != "" {
		terms := strings.Split(*query, ",")
		if len(terms) == 1 {
			message["query"] = terms[0]
		} else {
			message["query"] = terms
		}
	}
	if *limit > 0 {
		message["limit"] = *limit
	}
	setIfNotEmpty(message, "bucket", *bucket)
	setIfNotEmpty(message, "userBucket", *userBucket)
	setIfNotEmpty(message, "projectId", *projectID)
	setIfNotEmpty(message, "topic", *topic)
	setIfNotEmpty(message, "userTopic", *userTopic)
	setIfNotEmpty(message, "path", *path)
	setIfNotEmpty(message, "delim", *delim)
	if *separateLines {
		message["separateLines"] = true
	}
	if *forAvro {
		message["forAvro"] = true
	}
	if *debug != 0 {
		message["debug"] = *debug
	}

	ctx := context.Background()
	if *credentials != "" && *topic != "" && *projectID != "" {
		if err := checkTopicExists(ctx, *projectID, *topic, *credentials); err != nil {
			log.Printf("ERROR - %v", err)
			os.Exit(1)
		}
	}

	messageString, err := json.Marshal(message)
	if err != nil {
		log.Printf("ERROR - json.Marshal: %v", err)
		os.Exit(1)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, "/?message="+url.QueryEscape(string(messageString)), nil)
	if err != nil {
		log.Printf("ERROR - http.NewRequestWithContext: %v", err)
		os.Exit(1)
	}

	writer := &stdoutResponseWriter{}
	switch *service {
	case "scavenge":
		var global scavenge.Global
		scavenge.Initialize(ctx, &global)
		scavenge.EntryPoint(writer, request, &global)
	case "flightstates":
		var global flightstates.Global
		flightstates.Initialize(ctx, &global)
		flightstates.EntryPoint(writer, request, &global)
	case "tweetstream":
		var global tweetstream.Global
		tweetstream.Initialize(ctx, &global)
		tweetstream.EntryPoint(writer, request, &global)
	default:
		log.Printf("ERROR - unknown service %q", *service)
		flag.Usage()
		os.Exit(1)
	}
	fmt.Println()
}

func setIfNotEmpty(message map[string]interface{}, field string, value string) {
	if value != "" {
		message[field] = value
	}
}

// checkTopicExists fails fast when the target topic is missing, a
// deployed function would otherwise discover it one publish at a time
func checkTopicExists(ctx context.Context, projectID string, topicName string, credentialsFile string) error {
	pubSubClient, err := pubsub.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return fmt.Errorf("pubsub.NewClient %v", err)
	}
	defer pubSubClient.Close()
	exists, err := pubSubClient.Topic(topicName).Exists(ctx)
	if err != nil {
		return fmt.Errorf("topic.Exists %v", err)
	}
	if !exists {
		return fmt.Errorf("topic %s does not exist in project %s", topicName, projectID)
	}
	return nil
}
