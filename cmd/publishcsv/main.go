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

// publishcsv publishes the lines of a data file to a PubSub topic, one
// message per line. With a headings file each line is split on the
// delimiter and zipped into a record, without one each line must be a
// JSON object. Unparsable lines go out as error records instead of being
// dropped.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/pubsub"

	"github.com/bigdataonline/scavenger/utilities/gps"
	"github.com/bigdataonline/scavenger/utilities/rec"
)

func main() {
	projectID := flag.String("projectId", "", "Google Cloud project ID, required")
	topicName := flag.String("topic", "", "PubSub topic to publish to, required")
	delim := flag.String("delim", ",", "delimiter splitting the data lines when headers are used")
	headersPath := flag.String("headers", "", "file whose first line holds the column headings, omit for JSON lines")
	dataPath := flag.String("data", "data.csv", "file holding one record per line")
	flag.Parse()

	if *projectID == "" || *topicName == "" {
		log.Println("ERROR - must include a project ID and a topic")
		flag.Usage()
		os.Exit(1)
	}

	var columnHeadings []string
	if *headersPath != "" {
		headingsLine, err := readFirstLine(*headersPath)
		if err != nil {
			log.Printf("ERROR - cannot read headings from %s: %v", *headersPath, err)
			os.Exit(1)
		}
		columnHeadings = strings.Split(strings.TrimSpace(headingsLine), *delim)
	}

	dataFile, err := os.Open(*dataPath)
	if err != nil {
		log.Printf("ERROR - cannot open data file %q to read data from: %v", *dataPath, err)
		os.Exit(1)
	}
	defer dataFile.Close()

	ctx := context.Background()
	pubSubClient, err := pubsub.NewClient(ctx, *projectID)
	if err != nil {
		log.Printf("ERROR - pubsub.NewClient: %v", err)
		os.Exit(1)
	}
	defer pubSubClient.Close()
	topic := gps.NewTopicPublisher(pubSubClient, *topicName)
	defer topic.Stop()
	publisher := &gps.BatchPublisher{
		Publisher: topic,
		TopicPath: gps.TopicPath(*projectID, *topicName),
	}

	var records []rec.Record
	scanner := bufio.NewScanner(dataFile)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		records = append(records, parseLine(line, columnHeadings, *delim))
	}
	if err := scanner.Err(); err != nil {
		log.Printf("ERROR - reading %s: %v", *dataPath, err)
		os.Exit(1)
	}

	published := publisher.Publish(ctx, records)
	fmt.Printf("Published %d messages to %s.\n", published, publisher.TopicPath)
}

func readFirstLine(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return "", fmt.Errorf("%s is empty", path)
	}
	return scanner.Text(), scanner.Err()
}

func parseLine(line string, columnHeadings []string, delim string) rec.Record {
	if len(columnHeadings) > 0 {
		record := rec.Record{}
		values := strings.Split(line, delim)
		for i, heading := range columnHeadings {
			if i < len(values) {
				record[heading] = values[i]
			}
		}
		return record
	}
	var record rec.Record
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		log.Printf("ERROR - error parsing data as JSON string. %s", line)
		return rec.Record{"error": line}
	}
	return record
}
