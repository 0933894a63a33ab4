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

package gps

import (
	"context"
	"fmt"
	"log"

	"github.com/bigdataonline/scavenger/utilities/rec"
	"github.com/bigdataonline/scavenger/utilities/str"
)

// MessagePublisher publishes one message body with optional attributes
type MessagePublisher interface {
	Publish(ctx context.Context, data []byte, attributes map[string]string) (serverID string, err error)
}

// BatchPublisher emits each record of a batch as one pubsub message
type BatchPublisher struct {
	Publisher MessagePublisher
	TopicPath string
}

// TopicPath builds the fully qualified topic path
func TopicPath(projectID string, topicName string) string {
	return fmt.Sprintf("projects/%s/topics/%s", projectID, topicName)
}

// Publish emits the batch and returns the number of records published.
// An empty batch returns 0 without any backend call. A record whose
// attribute-laden attempt fails gets one attribute-free attempt; a record
// failing both attempts is logged and contributes zero, the rest of the
// batch proceeds.
func (publisher *BatchPublisher) Publish(ctx context.Context, records []rec.Record) (recordsPublished int) {
	for _, record := range records {
		content, err := record.JSON()
		if err != nil {
			log.Printf("ERROR - skipping record, %v", err)
			continue
		}
		// Attribute values are computed at publish time and never
		// empty-filtered.
		attributes := record.ScalarAttributes()
		if len(attributes) > 0 {
			if _, err = publisher.Publisher.Publish(ctx, []byte(content), attributes); err == nil {
				recordsPublished++
				continue
			}
			log.Printf("cannot include %sas attributes on the message to %s: %v", str.FlattenMapStringString(attributes), publisher.TopicPath, err)
		}
		if _, err = publisher.Publisher.Publish(ctx, []byte(content), nil); err != nil {
			log.Printf("ERROR - cannot publish message %q to %s: %v", content, publisher.TopicPath, err)
			continue
		}
		recordsPublished++
	}
	return recordsPublished
}
