/*
 * Manager - top-level client and resource scope factories.
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
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"digitalocean-doapi/pkg/doapi/response"
)

// DefaultAPIURL is the base URL of the DigitalOcean v2 API.
const DefaultAPIURL = "https://api.digitalocean.com/v2"

// Manager is the entry point of the client. It owns the credential shared
// by every builder it produces, and is safe for concurrent use.
type Manager struct {
	auth   *Auth
	base   string
	policy EncodingPolicy
	ex     *executor
}

// NewManager creates a manager from the given configuration.
func NewManager(config *Configuration) (*Manager, error) {
	if config.Token == "" {
		return nil, errors.New("no API token provided")
	}

	var logLevel log.Level
	if config.Debug {
		logLevel = log.DebugLevel
	} else {
		logLevel = log.InfoLevel
	}
	log.SetLevel(logLevel)

	base := config.APIURL
	if base == "" {
		base = DefaultAPIURL
	}

	return &Manager{
		auth:   &Auth{Token: config.Token},
		base:   base,
		policy: config.EncodingPolicy(),
		ex: &executor{
			client: &http.Client{
				Timeout: time.Duration(config.RequestTimeout) * time.Second,
			},
		},
	}, nil
}

// WithToken creates a manager for the public API with the given token and
// default settings.
func WithToken(token string) *Manager {
	return &Manager{
		auth: &Auth{Token: token},
		base: DefaultAPIURL,
		ex: &executor{
			client: &http.Client{Timeout: 30 * time.Second},
		},
	}
}

// Account returns the scope for the account information.
func (m *Manager) Account() AccountRequest {
	return AccountRequest{RequestBuilder[response.Account]{
		method: http.MethodGet,
		url:    m.base + "/account",
		auth:   m.auth,
		policy: m.policy,
		ex:     m.ex,
		action: "get_account",
	}}
}

// Domains returns the scope for the domain collection.
func (m *Manager) Domains() DomainsRequest {
	return DomainsRequest{RequestBuilder[response.Domains]{
		method: http.MethodGet,
		url:    m.base + "/domains",
		auth:   m.auth,
		policy: m.policy,
		ex:     m.ex,
		action: "list_domains",
	}}
}

// Domain returns the scope for a single domain.
func (m *Manager) Domain(name string) DomainRequest {
	return DomainRequest{RequestBuilder[response.Domain]{
		method: http.MethodGet,
		url:    m.base + "/domains/" + name,
		auth:   m.auth,
		policy: m.policy,
		ex:     m.ex,
		action: "get_domain",
	}}
}
