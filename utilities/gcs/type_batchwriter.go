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

package gcs

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/bigdataonline/scavenger/utilities/key"
	"github.com/bigdataonline/scavenger/utilities/rec"
	"github.com/bigdataonline/scavenger/utilities/str"
	"google.golang.org/api/googleapi"
)

// ObjectUploader uploads one object's content at a key in a bucket
type ObjectUploader interface {
	Upload(ctx context.Context, objectName string, content string) error
}

// BatchWriter persists batches of output records as JSON objects in one bucket
type BatchWriter struct {
	Uploader   ObjectUploader
	BucketName string
	PathPrefix string
	// SeparateObjects writes one object per record instead of one
	// newline-delimited object for the whole batch
	SeparateObjects bool
	// ContentKeys derives object names from a content hash instead of the
	// key generator, so identical payloads land at the same key
	ContentKeys bool
}

// Write persists the batch and returns the number of records durably
// written. An empty batch returns 0 without any backend call.
func (writer *BatchWriter) Write(ctx context.Context, records []rec.Record, generator *key.Generator) (recordsWritten int) {
	if len(records) == 0 {
		return 0
	}
	if writer.SeparateObjects {
		for _, record := range records {
			content, err := record.JSON()
			if err != nil {
				log.Printf("ERROR - skipping record, %v", err)
				continue
			}
			if writer.upload(ctx, writer.objectName(record, content, generator), content) {
				recordsWritten++
			}
		}
		return recordsWritten
	}

	lines := make([]string, 0, len(records))
	for _, record := range records {
		content, err := record.JSON()
		if err != nil {
			log.Printf("ERROR - skipping record, %v", err)
			continue
		}
		lines = append(lines, content)
	}
	if len(lines) == 0 {
		return 0
	}
	content := strings.Join(lines, "\n")
	// The object name is computed once and reused for both the log entry
	// and the write.
	objectName := writer.objectName(nil, content, generator)
	log.Printf("storing %d records in gs://%s/%s", len(lines), writer.BucketName, objectName)
	if writer.upload(ctx, objectName, content) {
		recordsWritten = len(lines)
	}
	return recordsWritten
}

// objectName derives a fresh object name. Records carrying an id field get
// it appended so related objects sort together in the bucket.
func (writer *BatchWriter) objectName(record rec.Record, content string, generator *key.Generator) string {
	var name string
	if writer.ContentKeys {
		name = key.ContentID(content)
	} else {
		name = generator.Next()
		if record != nil {
			if id, ok := record["id"]; ok {
				name = str.SanitizeObjectName(fmt.Sprintf("%s_%v", name, id))
			}
		}
	}
	if writer.PathPrefix != "" {
		return writer.PathPrefix + "/" + name
	}
	return name
}

func (writer *BatchWriter) upload(ctx context.Context, objectName string, content string) bool {
	err := writer.Uploader.Upload(ctx, objectName, content)
	if err == nil {
		return true
	}
	if gerr, ok := err.(*googleapi.Error); ok && gerr.Code == http.StatusForbidden {
		log.Printf("ERROR - failed to write to GCS bucket %s because access to object %s is forbidden, code %d body %s", writer.BucketName, objectName, gerr.Code, gerr.Body)
		return false
	}
	log.Printf("ERROR - failed to write to GCS bucket %s object %s %v", writer.BucketName, objectName, err)
	return false
}
