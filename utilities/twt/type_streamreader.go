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
	"bufio"
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// FilterStreamURL is the statuses/filter endpoint of the streaming API
const FilterStreamURL = "https://stream.twitter.com/1.1/statuses/filter.json"

// maxEventBytes bounds the size of one streamed event line
const maxEventBytes = 1024 * 1024

// StreamReader consumes the line-delimited streaming API
type StreamReader struct {
	HTTPClient *http.Client
	URL        string
}

// Filter streams events matching track and feeds each one to onData.
// Blank keep-alive lines are skipped. Streaming stops without error once
// onData returns false. A 420 status means the rate limit was exceeded
// and is returned as an error.
func (reader *StreamReader) Filter(ctx context.Context, track string, onData func(data []byte) bool) error {
	httpClient := reader.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, reader.URL, nil)
	if err != nil {
		return fmt.Errorf("twt.StreamReader http.NewRequestWithContext %v", err)
	}
	queryValues := url.Values{}
	queryValues.Set("track", track)
	request.URL.RawQuery = queryValues.Encode()

	response, err := httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("twt.StreamReader httpClient.Do %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode == 420 {
		return fmt.Errorf("twt.StreamReader rate limit exceeded for %q, exiting stream", track)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("twt.StreamReader %q status %s", track, response.Status)
	}

	scanner := bufio.NewScanner(response.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !onData(line) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("twt.StreamReader scanner %v", err)
	}
	return nil
}
