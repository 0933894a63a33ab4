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

package fan

import (
	"context"
	"log"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"

	"github.com/bigdataonline/scavenger/utilities/gcs"
	"github.com/bigdataonline/scavenger/utilities/gps"
	"github.com/bigdataonline/scavenger/utilities/key"
	"github.com/bigdataonline/scavenger/utilities/rec"
)

// Result carries the per-sink outcome of one dispatch
type Result struct {
	Written   int
	Published int
}

// Add accumulates another dispatch outcome
func (result *Result) Add(other Result) {
	result.Written += other.Written
	result.Published += other.Published
}

// Target names the sinks one pipeline should feed. Empty BucketName means
// no storage sink, empty TopicName means no publish sink.
type Target struct {
	StorageClient   *storage.Client
	BucketName      string
	PathPrefix      string
	SeparateObjects bool
	ContentKeys     bool
	ProjectID       string
	TopicName       string
}

// Pipeline fans record batches out to its sinks
type Pipeline struct {
	Writer       *gcs.BatchWriter
	Publisher    *gps.BatchPublisher
	Generator    *key.Generator
	pubSubClient *pubsub.Client
	topic        *gps.TopicPublisher
}

// BuildPipeline resolves the target into live sinks. A publish sink that
// cannot get a pubsub client is logged and left out, the storage sink
// still operates.
func BuildPipeline(ctx context.Context, target Target, generator *key.Generator) *Pipeline {
	pipeline := &Pipeline{Generator: generator}
	if target.BucketName != "" && target.StorageClient != nil {
		pipeline.Writer = &gcs.BatchWriter{
			Uploader:        gcs.NewBucketUploader(target.StorageClient, target.BucketName),
			BucketName:      target.BucketName,
			PathPrefix:      target.PathPrefix,
			SeparateObjects: target.SeparateObjects,
			ContentKeys:     target.ContentKeys,
		}
	}
	if target.TopicName != "" && target.ProjectID != "" {
		pubSubClient, err := pubsub.NewClient(ctx, target.ProjectID)
		if err != nil {
			log.Printf("ERROR - pubsub.NewClient %s: %v", target.ProjectID, err)
		} else {
			pipeline.pubSubClient = pubSubClient
			pipeline.topic = gps.NewTopicPublisher(pubSubClient, target.TopicName)
			pipeline.Publisher = &gps.BatchPublisher{
				Publisher: pipeline.topic,
				TopicPath: gps.TopicPath(target.ProjectID, target.TopicName),
			}
		}
	}
	return pipeline
}

// Dispatch hands the batch to each configured sink and returns what they
// accepted. An empty batch short-circuits to zero counts.
func (pipeline *Pipeline) Dispatch(ctx context.Context, records []rec.Record) Result {
	var result Result
	if len(records) == 0 {
		return result
	}
	if pipeline.Writer != nil {
		result.Written = pipeline.Writer.Write(ctx, records, pipeline.Generator)
	}
	if pipeline.Publisher != nil {
		result.Published = pipeline.Publisher.Publish(ctx, records)
	}
	return result
}

// Close releases the pipeline's publish resources
func (pipeline *Pipeline) Close() {
	if pipeline.topic != nil {
		pipeline.topic.Stop()
	}
	if pipeline.pubSubClient != nil {
		if err := pipeline.pubSubClient.Close(); err != nil {
			log.Printf("ERROR - pubSubClient.Close: %v", err)
		}
	}
}
