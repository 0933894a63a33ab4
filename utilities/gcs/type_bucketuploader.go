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

	"cloud.google.com/go/storage"
)

// BucketUploader uploads objects through a GCS bucket handle
type BucketUploader struct {
	bucketHandle *storage.BucketHandle
}

// NewBucketUploader returns an uploader bound to the named bucket.
// The bucket must already exist.
func NewBucketUploader(storageClient *storage.Client, bucketName string) *BucketUploader {
	return &BucketUploader{bucketHandle: storageClient.Bucket(bucketName)}
}

// Upload writes content at objectName, overriding any existing object
func (uploader *BucketUploader) Upload(ctx context.Context, objectName string, content string) error {
	storageObjectWriter := uploader.bucketHandle.Object(objectName).NewWriter(ctx)
	if _, err := fmt.Fprint(storageObjectWriter, content); err != nil {
		return fmt.Errorf("fmt.Fprint(storageObjectWriter, content): %s %v", objectName, err)
	}
	if err := storageObjectWriter.Close(); err != nil {
		return fmt.Errorf("storageObjectWriter.Close(): %s %v", objectName, err)
	}
	return nil
}
