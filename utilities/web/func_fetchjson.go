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

package web

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
)

// FetchJSON GETs the url with params as the query string and returns the
// response body. A nil httpClient falls back to http.DefaultClient. Any
// non-2xx status is an error.
func FetchJSON(ctx context.Context, httpClient *http.Client, rawURL string, params map[string]string) ([]byte, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("web.FetchJSON http.NewRequestWithContext %v", err)
	}
	request.Header.Set("Accepts", "application/json")
	queryValues := url.Values{}
	for name, value := range params {
		queryValues.Set(name, value)
	}
	request.URL.RawQuery = queryValues.Encode()

	response, err := httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("web.FetchJSON httpClient.Do %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("web.FetchJSON %s status %s", request.URL.Host, response.Status)
	}
	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("web.FetchJSON ioutil.ReadAll %v", err)
	}
	return body, nil
}
