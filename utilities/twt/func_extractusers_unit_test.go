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

package twt

import (
	"strings"
	"testing"
)

func TestUnitExtractUsers(t *testing.T) {
	rows := ExtractUsers(sampleTweet(t))
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want the tweeting user and the retweeted author", len(rows))
	}
	found := map[string]bool{}
	for _, row := range rows {
		screenName, _ := row["screen_name"].(string)
		found[screenName] = true
		text, ok := row["text"].(string)
		if !ok || !strings.Contains(text, screenName) {
			t.Errorf("text must serialize the full profile, got %v", row["text"])
		}
	}
	if !found["fan"] || !found["runner"] {
		t.Errorf("users found: %v", found)
	}
}

func TestUnitExtractUsersNoUser(t *testing.T) {
	tweet := map[string]interface{}{"id_str": "1", "text": "hello", "entities": map[string]interface{}{}}
	if rows := ExtractUsers(tweet); len(rows) != 0 {
		t.Errorf("rows = %v, want none for a tweet without user objects", rows)
	}
}

func TestUnitExtractUsersUnrecognizedProfile(t *testing.T) {
	tweet := map[string]interface{}{"user": map[string]interface{}{"unknown_field": "x"}}
	if rows := ExtractUsers(tweet); len(rows) != 0 {
		t.Errorf("rows = %v, want a profile with no kept field skipped", rows)
	}
}
