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

package msg

// Settings is the canonical configuration derived once per invocation from
// the normalized message. An empty string for projectId, topic or bucket is
// treated identically to the field being absent.
type Settings struct {
	Query         []string
	Limit         int
	ProjectID     string
	Topic         string
	UserTopic     string
	Bucket        string
	UserBucket    string
	Path          string
	Delim         string
	SeparateLines bool
	ForAvro       bool
	Debug         int
	SourceParams  map[string]string
}

// HasPublishTarget reports whether a valid publish target is configured.
// A publish target needs both a project ID and a topic name.
func (settings Settings) HasPublishTarget() bool {
	return settings.Topic != "" && settings.ProjectID != ""
}

// HasStorageTarget reports whether a storage target is configured
func (settings Settings) HasStorageTarget() bool {
	return settings.Bucket != ""
}
