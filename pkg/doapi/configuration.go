/*
 * Configuration - client configuration.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package doapi

import (
	"github.com/codingconcepts/env"
)

// Configuration contains the client's configuration.
type Configuration struct {
	// API token
	Token string `env:"DIGITALOCEAN_TOKEN" required:"true"`
	// Base URL of the API
	APIURL string `env:"DIGITALOCEAN_API_URL" default:"https://api.digitalocean.com/v2"`
	// Enable debugging logs
	Debug bool `env:"DIGITALOCEAN_DEBUG" default:"false"`
	// Request timeout in seconds
	RequestTimeout int `env:"REQUEST_TIMEOUT" default:"30"`
	// If true, absent optional record fields are omitted from request
	// bodies instead of being serialized as null.
	OmitAbsentFields bool `env:"OMIT_ABSENT_FIELDS" default:"false"`
}

// NewConfiguration creates a new configuration object.
func NewConfiguration() (*Configuration, error) {
	cfg := &Configuration{}

	// Populate with values from environment.
	if err := env.Set(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EncodingPolicy returns the record encoding policy selected by the
// configuration.
func (c Configuration) EncodingPolicy() EncodingPolicy {
	if c.OmitAbsentFields {
		return EncodeOmitAbsent
	}
	return EncodeNullAbsent
}
