/*
 * Request - generic request builder and verb transitions.
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
	"encoding/json"
	"fmt"
	"net/http"

	"digitalocean-doapi/pkg/doapi/response"
)

// Auth holds the API credential. It is owned by the manager and shared
// read-only with every builder derived from it.
type Auth struct {
	Token string
}

// RequestBuilder carries everything needed to construct one HTTP request.
// The type parameter marks the response shape the eventual reply should
// deserialize into; it holds no runtime data. Builders are immutable:
// every verb transition yields a new value and the prior builder is not
// reused.
type RequestBuilder[T any] struct {
	method string
	url    string
	auth   *Auth
	body   []byte
	policy EncodingPolicy
	ex     *executor
	action string
}

// Method returns the HTTP method the builder is configured for.
func (b RequestBuilder[T]) Method() string {
	return b.method
}

// URL returns the target URL.
func (b RequestBuilder[T]) URL() string {
	return b.url
}

// Auth returns the shared credential reference.
func (b RequestBuilder[T]) Auth() *Auth {
	return b.auth
}

// Body returns the serialized request body, or nil when the request
// carries none.
func (b RequestBuilder[T]) Body() []byte {
	return b.body
}

// AccountRequest retrieves the account information.
type AccountRequest struct {
	RequestBuilder[response.Account]
}

// DomainsRequest is scoped to the domain collection.
type DomainsRequest struct {
	RequestBuilder[response.Domains]
}

// Create returns a builder for registering a new domain pointing to the
// given IP address.
func (r DomainsRequest) Create(name, ipAddress string) (DomainRequest, error) {
	body, err := json.Marshal(map[string]string{
		"name":       name,
		"ip_address": ipAddress,
	})
	if err != nil {
		return DomainRequest{}, fmt.Errorf("cannot encode domain: %w", err)
	}
	return DomainRequest{RequestBuilder[response.Domain]{
		method: http.MethodPost,
		url:    r.url,
		auth:   r.auth,
		body:   body,
		policy: r.policy,
		ex:     r.ex,
		action: "create_domain",
	}}, nil
}

// DomainRequest is scoped to a single domain.
type DomainRequest struct {
	RequestBuilder[response.Domain]
}

// Delete returns a builder for deleting the domain. The reply carries no
// body, so the expected shape is header-only.
func (r DomainRequest) Delete() HeaderOnlyRequest {
	return HeaderOnlyRequest{RequestBuilder[response.HeaderOnly]{
		method: http.MethodDelete,
		url:    r.url,
		auth:   r.auth,
		policy: r.policy,
		ex:     r.ex,
		action: "delete_domain",
	}}
}

// Records returns the collection scope for the domain's DNS records.
func (r DomainRequest) Records() DomainRecordsRequest {
	return DomainRecordsRequest{RequestBuilder[response.DomainRecords]{
		method: http.MethodGet,
		url:    r.url + "/records",
		auth:   r.auth,
		policy: r.policy,
		ex:     r.ex,
		action: "list_records",
	}}
}

// Record returns the scope for a single DNS record of the domain.
func (r DomainRequest) Record(id string) DomainRecordRequest {
	return DomainRecordRequest{RequestBuilder[response.DomainRecord]{
		method: http.MethodGet,
		url:    r.url + "/records/" + id,
		auth:   r.auth,
		policy: r.policy,
		ex:     r.ex,
		action: "get_record",
	}}
}

// DomainRecordsRequest is scoped to a domain's record collection.
type DomainRecordsRequest struct {
	RequestBuilder[response.DomainRecords]
}

// Create returns a builder for creating the given DNS record. An error
// is returned when the record cannot be encoded.
func (r DomainRecordsRequest) Create(record *Record) (DomainRecordRequest, error) {
	body, err := record.Encode(r.policy)
	if err != nil {
		return DomainRecordRequest{}, err
	}
	return DomainRecordRequest{RequestBuilder[response.DomainRecord]{
		method: http.MethodPost,
		url:    r.url,
		auth:   r.auth,
		body:   body,
		policy: r.policy,
		ex:     r.ex,
		action: "create_record",
	}}, nil
}

// DomainRecordRequest is scoped to a single DNS record.
type DomainRecordRequest struct {
	RequestBuilder[response.DomainRecord]
}

// Update returns a builder for replacing the record with the given one.
func (r DomainRecordRequest) Update(record *Record) (DomainRecordRequest, error) {
	body, err := record.Encode(r.policy)
	if err != nil {
		return DomainRecordRequest{}, err
	}
	return DomainRecordRequest{RequestBuilder[response.DomainRecord]{
		method: http.MethodPut,
		url:    r.url,
		auth:   r.auth,
		body:   body,
		policy: r.policy,
		ex:     r.ex,
		action: "update_record",
	}}, nil
}

// Delete returns a builder for deleting the record. The reply carries no
// body, so the expected shape is header-only.
func (r DomainRecordRequest) Delete() HeaderOnlyRequest {
	return HeaderOnlyRequest{RequestBuilder[response.HeaderOnly]{
		method: http.MethodDelete,
		url:    r.url,
		auth:   r.auth,
		policy: r.policy,
		ex:     r.ex,
		action: "delete_record",
	}}
}

// HeaderOnlyRequest expects a reply without a body.
type HeaderOnlyRequest struct {
	RequestBuilder[response.HeaderOnly]
}
