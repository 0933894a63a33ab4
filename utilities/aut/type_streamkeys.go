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

package aut

import (
	"context"
	"io/ioutil"
	"log"
	"net/http"

	"golang.org/x/oauth2"
	"gopkg.in/yaml.v2"
)

// StreamKeys are the credentials for the streaming API. The key file is
// JSON, which the YAML parser accepts as a subset.
type StreamKeys struct {
	ConsumerKey    string `yaml:"consumer_key"`
	ConsumerSecret string `yaml:"consumer_secret"`
	AccessToken    string `yaml:"access_token"`
	AccessSecret   string `yaml:"access_secret"`
	BearerToken    string `yaml:"bearer_token"`
}

// GetStreamKeys reads the credentials from keyFilePath. ok is false when
// the file is missing, unparsable or lacks a bearer token.
func GetStreamKeys(keyFilePath string) (keys StreamKeys, ok bool) {
	keyFileContent, err := ioutil.ReadFile(keyFilePath)
	if err != nil {
		log.Printf("ERROR - cannot read %s: %v. This file must exist and have the format {\"consumer_key\":\"...\",\"consumer_secret\":\"...\",\"access_token\":\"...\",\"access_secret\":\"...\",\"bearer_token\":\"...\"}", keyFilePath, err)
		return keys, false
	}
	if err = yaml.Unmarshal(keyFileContent, &keys); err != nil {
		log.Printf("ERROR - cannot parse %s: %v", keyFilePath, err)
		return keys, false
	}
	if keys.BearerToken == "" {
		log.Printf("ERROR - %s holds no bearer_token, cannot authorize stream requests", keyFilePath)
		return keys, false
	}
	return keys, true
}

// GetStreamHTTPClient returns an HTTP client carrying the bearer token
// on every request
func GetStreamHTTPClient(ctx context.Context, keys StreamKeys) *http.Client {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: keys.BearerToken})
	return oauth2.NewClient(ctx, tokenSource)
}
