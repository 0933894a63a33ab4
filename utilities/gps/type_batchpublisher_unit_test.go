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
	"strings"
	"testing"

	"github.com/bigdataonline/scavenger/utilities/rec"
)

type publishedMessage struct {
	data       string
	attributes map[string]string
}

// fakePublisher records publish calls, optionally rejecting attribute-laden
// attempts or failing every attempt
type fakePublisher struct {
	messages         []publishedMessage
	rejectAttributes bool
	failAll          bool
}

func (publisher *fakePublisher) Publish(ctx context.Context, data []byte, attributes map[string]string) (string, error) {
	if publisher.failAll {
		return "", fmt.Errorf("topic unavailable")
	}
	if publisher.rejectAttributes && len(attributes) > 0 {
		return "", fmt.Errorf("invalid attribute")
	}
	publisher.messages = append(publisher.messages, publishedMessage{data: string(data), attributes: attributes})
	return fmt.Sprintf("msg-%d", len(publisher.messages)), nil
}

func TestUnitPublishEmptyBatch(t *testing.T) {
	fake := &fakePublisher{}
	publisher := &BatchPublisher{Publisher: fake, TopicPath: TopicPath("p1", "t1")}
	if published := publisher.Publish(context.Background(), nil); published != 0 {
		t.Errorf("published = %d, want 0", published)
	}
	if len(fake.messages) != 0 {
		t.Errorf("empty batch must not touch the backend, got %d messages", len(fake.messages))
	}
}

func TestUnitPublishWithAttributes(t *testing.T) {
	fake := &fakePublisher{}
	publisher := &BatchPublisher{Publisher: fake, TopicPath: TopicPath("p1", "t1")}
	batch := []rec.Record{
		{"query": "olympics", "id": int64(42)},
	}
	if published := publisher.Publish(context.Background(), batch); published != 1 {
		t.Fatalf("published = %d, want 1", published)
	}
	message := fake.messages[0]
	if message.attributes["query"] != "olympics" || message.attributes["id"] != "42" {
		t.Errorf("scalar fields missing from attributes: %v", message.attributes)
	}
	if !strings.Contains(message.data, `"query":"olympics"`) {
		t.Errorf("body does not carry the full record: %s", message.data)
	}
}

func TestUnitPublishAttributeFallback(t *testing.T) {
	fake := &fakePublisher{rejectAttributes: true}
	publisher := &BatchPublisher{Publisher: fake, TopicPath: TopicPath("p1", "t1")}
	batch := []rec.Record{
		{"query": "olympics", "hashtags": []interface{}{"tokyo"}},
	}
	if published := publisher.Publish(context.Background(), batch); published != 1 {
		t.Fatalf("published = %d, want 1 via the attribute-free fallback", published)
	}
	if len(fake.messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(fake.messages))
	}
	if len(fake.messages[0].attributes) != 0 {
		t.Errorf("fallback attempt must omit all attributes, got %v", fake.messages[0].attributes)
	}
}

func TestUnitPublishBothAttemptsFail(t *testing.T) {
	fake := &fakePublisher{failAll: true}
	publisher := &BatchPublisher{Publisher: fake, TopicPath: TopicPath("p1", "t1")}
	batch := []rec.Record{
		{"query": "olympics"},
		{"query": "tennis"},
	}
	if published := publisher.Publish(context.Background(), batch); published != 0 {
		t.Errorf("published = %d, want 0 when every attempt fails", published)
	}
}

func TestUnitPublishAttributeOnlyRecord(t *testing.T) {
	// A record with only attribute-eligible fields is publishable even if
	// the storage writer would have suppressed it upstream.
	fake := &fakePublisher{}
	publisher := &BatchPublisher{Publisher: fake, TopicPath: TopicPath("p1", "t1")}
	batch := []rec.Record{{"callsign": ""}}
	if published := publisher.Publish(context.Background(), batch); published != 1 {
		t.Fatalf("published = %d, want 1", published)
	}
	if _, ok := fake.messages[0].attributes["callsign"]; !ok {
		t.Errorf("empty-string scalar must still become an attribute, got %v", fake.messages[0].attributes)
	}
}

func TestUnitTopicPath(t *testing.T) {
	if got := TopicPath("helical-ranger-294523", "openskyWithSchema"); got != "projects/helical-ranger-294523/topics/openskyWithSchema" {
		t.Errorf("TopicPath = %s", got)
	}
}
