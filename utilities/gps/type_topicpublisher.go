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

	"cloud.google.com/go/pubsub"
)

// TopicPublisher publishes through a pubsub topic handle
type TopicPublisher struct {
	topic *pubsub.Topic
}

// NewTopicPublisher returns a publisher bound to the named topic.
// The topic must already exist.
func NewTopicPublisher(pubSubClient *pubsub.Client, topicName string) *TopicPublisher {
	return &TopicPublisher{topic: pubSubClient.Topic(topicName)}
}

// Publish sends one message and waits for the server-assigned message ID.
// No retry on pubsub publish as already implemented in the GO client.
func (publisher *TopicPublisher) Publish(ctx context.Context, data []byte, attributes map[string]string) (string, error) {
	publishResult := publisher.topic.Publish(ctx, &pubsub.Message{Data: data, Attributes: attributes})
	return publishResult.Get(ctx)
}

// Stop flushes and releases the topic's publish resources
func (publisher *TopicPublisher) Stop() {
	publisher.topic.Stop()
}
