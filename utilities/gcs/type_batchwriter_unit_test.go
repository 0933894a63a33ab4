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
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/bigdataonline/scavenger/utilities/key"
	"github.com/bigdataonline/scavenger/utilities/rec"
	"github.com/jonboulle/clockwork"
	"google.golang.org/api/googleapi"
)

// fakeUploader records uploads and optionally fails every call
type fakeUploader struct {
	uploads map[string]string
	err     error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploads: map[string]string{}}
}

func (uploader *fakeUploader) Upload(ctx context.Context, objectName string, content string) error {
	if uploader.err != nil {
		return uploader.err
	}
	uploader.uploads[objectName] = content
	return nil
}

func testGenerator() *key.Generator {
	return key.NewGenerator(clockwork.NewFakeClockAt(time.Date(2021, 8, 5, 14, 3, 2, 0, time.UTC)))
}

func TestUnitWriteEmptyBatch(t *testing.T) {
	uploader := newFakeUploader()
	writer := &BatchWriter{Uploader: uploader, BucketName: "b1"}
	if written := writer.Write(context.Background(), nil, testGenerator()); written != 0 {
		t.Errorf("written = %d, want 0", written)
	}
	if len(uploader.uploads) != 0 {
		t.Errorf("empty batch must not touch the backend, got %d uploads", len(uploader.uploads))
	}
}

func TestUnitWriteCombined(t *testing.T) {
	uploader := newFakeUploader()
	writer := &BatchWriter{Uploader: uploader, BucketName: "b1", PathPrefix: "flightData"}
	batch := []rec.Record{
		{"icao24": "ab1234"},
		{"icao24": "cd5678"},
	}
	written := writer.Write(context.Background(), batch, testGenerator())
	if written != 2 {
		t.Fatalf("written = %d, want 2", written)
	}
	if len(uploader.uploads) != 1 {
		t.Fatalf("combined mode must write exactly one object, got %d", len(uploader.uploads))
	}
	for objectName, content := range uploader.uploads {
		if !strings.HasPrefix(objectName, "flightData/2021-08-05_14-03-02_") {
			t.Errorf("unexpected object name %s", objectName)
		}
		lines := strings.Split(content, "\n")
		if len(lines) != 2 {
			t.Errorf("content holds %d lines, want 2 newline-delimited JSON documents", len(lines))
		}
		if strings.HasPrefix(content, "[") {
			t.Errorf("content is a JSON array, want one document per line")
		}
	}
}

func TestUnitWriteSeparateObjects(t *testing.T) {
	uploader := newFakeUploader()
	writer := &BatchWriter{Uploader: uploader, BucketName: "b1", SeparateObjects: true}
	batch := []rec.Record{
		{"query": "olympics", "id": int64(11)},
		{"query": "olympics", "id": int64(12)},
		{"query": "olympics"},
	}
	written := writer.Write(context.Background(), batch, testGenerator())
	if written != 3 {
		t.Fatalf("written = %d, want 3", written)
	}
	if len(uploader.uploads) != 3 {
		t.Fatalf("separate mode must write one object per record, got %d", len(uploader.uploads))
	}
	withIDSuffix := 0
	for objectName, content := range uploader.uploads {
		if !strings.Contains(content, "olympics") {
			t.Errorf("object %s does not carry the query term", objectName)
		}
		if strings.HasSuffix(objectName, "_11") || strings.HasSuffix(objectName, "_12") {
			withIDSuffix++
		}
	}
	if withIDSuffix != 2 {
		t.Errorf("%d object names carry the record id, want 2", withIDSuffix)
	}
}

func TestUnitWriteContentKeys(t *testing.T) {
	uploader := newFakeUploader()
	writer := &BatchWriter{Uploader: uploader, BucketName: "b1", SeparateObjects: true, ContentKeys: true}
	batch := []rec.Record{{"convert": "USD"}}

	if written := writer.Write(context.Background(), batch, testGenerator()); written != 1 {
		t.Fatalf("written = %d, want 1", written)
	}
	// Same payload, same key: the second write overrides instead of duplicating.
	if written := writer.Write(context.Background(), batch, testGenerator()); written != 1 {
		t.Fatalf("second written = %d, want 1", written)
	}
	if len(uploader.uploads) != 1 {
		t.Errorf("content-keyed writes of identical payloads yielded %d objects, want 1", len(uploader.uploads))
	}
}

func TestUnitWriteFailuresContributeZero(t *testing.T) {
	var tests = []struct {
		name string
		err  error
	}{
		{name: "GenericFailure", err: fmt.Errorf("backend unavailable")},
		{name: "Forbidden", err: &googleapi.Error{Code: http.StatusForbidden, Body: "access denied"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			uploader := newFakeUploader()
			uploader.err = test.err
			writer := &BatchWriter{Uploader: uploader, BucketName: "b1", SeparateObjects: true}
			batch := []rec.Record{{"id": int64(1)}, {"id": int64(2)}}
			if written := writer.Write(context.Background(), batch, testGenerator()); written != 0 {
				t.Errorf("written = %d, want 0 when every upload fails", written)
			}
		})
	}
}
