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

package tweetstream

import (
	"bytes"
	"context"
	"encoding/json"
	"log"

	"github.com/bigdataonline/scavenger/utilities/fan"
	"github.com/bigdataonline/scavenger/utilities/twt"
)

// Listener consumes streamed events for one query term until its event
// budget runs out
type Listener struct {
	Ctx           context.Context
	Query         string
	Limit         int
	Delim         string
	TweetPipeline *fan.Pipeline
	UserPipeline  *fan.Pipeline
	Total         fan.Result
}

// OnData handles one streamed event. Every event consumes one unit of
// the budget whether or not it parses, the return value tells the stream
// reader whether to keep going. An unparsable event is logged and
// dispatched nowhere.
func (listener *Listener) OnData(data []byte) bool {
	// UseNumber keeps 64-bit tweet ids exact, float64 would round them.
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var tweet map[string]interface{}
	if err := decoder.Decode(&tweet); err != nil {
		log.Printf("ERROR - cannot parse streamed event for %q: %v", listener.Query, err)
	} else {
		tweetRecords := twt.ExtractTweet(tweet, listener.Query, listener.Delim)
		userRecords := twt.ExtractUsers(tweet)
		listener.Total.Add(listener.TweetPipeline.Dispatch(listener.Ctx, tweetRecords))
		listener.Total.Add(listener.UserPipeline.Dispatch(listener.Ctx, userRecords))
	}
	listener.Limit--
	return listener.Limit > 0
}
