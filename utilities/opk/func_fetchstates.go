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

package opk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bigdataonline/scavenger/utilities/web"
)

// StatesURL is the anonymous states/all endpoint of the OpenSky network
const StatesURL = "https://opensky-network.org/api/states/all"

// FetchStates queries statesURL for the current state vectors
func FetchStates(ctx context.Context, httpClient *http.Client, statesURL string) (*StatesResponse, error) {
	body, err := web.FetchJSON(ctx, httpClient, statesURL, nil)
	if err != nil {
		return nil, err
	}
	var response StatesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("opk.FetchStates %v", err)
	}
	return &response, nil
}
