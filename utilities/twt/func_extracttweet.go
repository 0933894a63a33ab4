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
	"encoding/json"
	"log"

	"github.com/bigdataonline/scavenger/utilities/rec"
	"github.com/bigdataonline/scavenger/utilities/str"
)

// maxNestingDepth bounds how deep retweet chains and reference lists are
// followed. Levels beyond the bound are dropped with an ERROR log.
const maxNestingDepth = 4

// tweetFields are the scalar tweet fields kept as-is on a row
var tweetFields = []string{"created_at", "id", "id_str", "text", "in_reply_to_status_id",
	"in_reply_to_status_id_str", "in_reply_to_user_id", "in_reply_to_user_id_str",
	"in_reply_to_screen_name", "geo", "coordinates", "place", "contributors",
	"quoted_status_id", "quoted_status_id_str", "is_quote_status", "quote_count",
	"reply_count", "retweet_count", "favorite_count", "favorited", "retweeted",
	"lang", "timestamp_ms"}

// tweetReferences maps a nested field to the subfield that stands in for
// each referenced entity
var tweetReferences = map[string]string{
	"user":             "id",
	"retweeted_status": "id",
	"hashtags":         "text",
	"user_mentions":    "id",
	"symbols":          "text",
	"extended_tweet":   "full_text",
}

// singularReferenceFields hold exactly one object, the row keeps a
// single reference value instead of a list
var singularReferenceFields = []string{"user", "retweeted_status"}

// multivalueTweetFields are list-shaped on the row. Without a delimiter
// they are backfilled with empty lists since REPEATED columns cannot be
// null downstream.
var multivalueTweetFields = []string{"coordinates", "hashtags", "user_mentions", "symbols", "extended_tweet"}

// ExtractReference reduces a nested element to the reference values of
// the entities it holds. element is one entity object or an arbitrarily
// nested list of them.
func ExtractReference(outerField string, element interface{}) []interface{} {
	subfield, known := tweetReferences[outerField]
	if !known {
		return nil
	}
	type pending struct {
		element interface{}
		depth   int
	}
	var entities []interface{}
	worklist := []pending{{element: element, depth: 0}}
	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]
		switch value := item.element.(type) {
		case map[string]interface{}:
			if reference, present := value[subfield]; present {
				entities = append(entities, reference)
			}
		case []interface{}:
			if item.depth >= maxNestingDepth {
				log.Printf("ERROR - dropping %s entities nested deeper than %d levels", outerField, maxNestingDepth)
				continue
			}
			children := make([]pending, 0, len(value))
			for _, subelement := range value {
				children = append(children, pending{element: subelement, depth: item.depth + 1})
			}
			worklist = append(children, worklist...)
		}
	}
	return entities
}

// ExtractTweet flattens one streamed tweet into rows. A tweet carrying a
// retweeted_status yields a row for the outer tweet and one per nested
// tweet, outer first. An empty delim keeps multivalue fields as lists
// and backfills the missing ones, a non-empty delim joins them into
// delimited strings instead. A tweet with no recognized field yields no
// row.
func ExtractTweet(tweet map[string]interface{}, query string, delim string) []rec.Record {
	type pending struct {
		tweet map[string]interface{}
		depth int
	}
	var rows []rec.Record
	worklist := []pending{{tweet: tweet, depth: 0}}
	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]
		current := item.tweet
		// Some stream formats wrap the payload in a tweet envelope.
		if envelope, present := current["tweet"]; present {
			if inner, ok := envelope.(map[string]interface{}); ok {
				current = inner
			}
		}
		row := rec.Record{}
		for field, value := range current {
			if value == nil {
				continue
			}
			switch {
			case str.Find(tweetFields, field):
				row[field] = value
			case str.Find(singularReferenceFields, field):
				if references := ExtractReference(field, value); len(references) > 0 {
					row[field] = references[0]
				}
			case field == "entities":
				entities, ok := value.(map[string]interface{})
				if !ok {
					continue
				}
				for entityType, entity := range entities {
					if references := ExtractReference(entityType, entity); len(references) > 0 {
						row[entityType] = references
					}
				}
			default:
				if _, known := tweetReferences[field]; known {
					if references := ExtractReference(field, value); len(references) > 0 {
						row[field] = references
					}
				}
			}
			if field == "retweeted_status" {
				nested, ok := value.(map[string]interface{})
				if !ok {
					log.Printf("ERROR - SKIPPING cannot parse nested tweet %v", value)
					continue
				}
				if item.depth+1 > maxNestingDepth {
					log.Printf("ERROR - SKIPPING tweet nested deeper than %d levels", maxNestingDepth)
					continue
				}
				worklist = append(worklist, pending{tweet: nested, depth: item.depth + 1})
			}
		}
		if len(row) == 0 {
			continue
		}
		row["query"] = query
		if delim == "" {
			// REPEATED columns cannot be null downstream.
			for _, multivalueField := range multivalueTweetFields {
				if _, present := row[multivalueField]; !present {
					row[multivalueField] = []interface{}{}
				}
			}
		}
		if raw, err := json.Marshal(current); err == nil {
			row["raw"] = string(raw)
		}
		if delim != "" {
			row = row.JoinLists(delim)
		}
		rows = append(rows, row)
	}
	return rows
}
