/*
 * Request - unit tests for the verb transitions.
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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIURL = "https://api.example.com/v2"

// testManager builds a manager that is not meant to hit the network.
func testManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := NewManager(&Configuration{
		Token:  "test-token",
		APIURL: testAPIURL,
	})
	require.NoError(t, err)
	return mgr
}

// Test_DomainRecordsRequest_Create tests the collection-to-item POST
// transition.
func Test_DomainRecordsRequest_Create(t *testing.T) {
	mgr := testManager(t)
	collection := mgr.Domain("example.com").Records()

	record := Record{
		Type: RecordTypeA.String(),
		Name: String("www"),
		Data: String("1.2.3.4"),
	}
	request, err := collection.Create(&record)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, request.Method())
	assert.Equal(t, collection.URL(), request.URL())
	assert.Same(t, collection.Auth(), request.Auth())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(request.Body(), &decoded))
	assert.Equal(t, "A", decoded["type"])
	assert.Equal(t, "www", decoded["name"])
	assert.Equal(t, "1.2.3.4", decoded["data"])
	// Absent optionals are rendered as null under the default policy.
	for _, key := range []string{"priority", "port", "weight"} {
		value, present := decoded[key]
		assert.True(t, present, key)
		assert.Nil(t, value, key)
	}
}

// Test_DomainRecordRequest_Update tests the PUT transition on a single
// record scope.
func Test_DomainRecordRequest_Update(t *testing.T) {
	mgr := testManager(t)
	item := mgr.Domain("example.com").Record("1234")

	record := Record{
		Type:     RecordTypeMX.String(),
		Data:     String("mail.example.com"),
		Priority: Uint64(20),
	}
	request, err := item.Update(&record)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, request.Method())
	assert.Equal(t, item.URL(), request.URL())
	assert.Same(t, item.Auth(), request.Auth())

	expected, err := record.Encode(EncodeNullAbsent)
	require.NoError(t, err)
	assert.JSONEq(t, string(expected), string(request.Body()))
}

// Test_DomainRecordRequest_Delete tests that deletion always yields a
// body-less DELETE request.
func Test_DomainRecordRequest_Delete(t *testing.T) {
	type testCase struct {
		name string
		item func(m *Manager) DomainRecordRequest
	}

	run := func(t *testing.T, tc testCase) {
		mgr := testManager(t)
		item := tc.item(mgr)
		request := item.Delete()

		assert.Equal(t, http.MethodDelete, request.Method())
		assert.Equal(t, item.URL(), request.URL())
		assert.Same(t, item.Auth(), request.Auth())
		assert.Nil(t, request.Body())
	}

	testCases := []testCase{
		{
			name: "fresh item scope",
			item: func(m *Manager) DomainRecordRequest {
				return m.Domain("example.com").Record("1234")
			},
		},
		{
			name: "item scope produced by create",
			item: func(m *Manager) DomainRecordRequest {
				record := Record{Type: "TXT", Data: String("v=spf1 -all")}
				request, err := m.Domain("example.com").Records().Create(&record)
				require.NoError(t, err)
				return request
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}

// Test_DomainsRequest_Create tests domain registration.
func Test_DomainsRequest_Create(t *testing.T) {
	mgr := testManager(t)
	collection := mgr.Domains()

	request, err := collection.Create("example.com", "1.2.3.4")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, request.Method())
	assert.Equal(t, collection.URL(), request.URL())
	assert.Same(t, collection.Auth(), request.Auth())
	assert.JSONEq(t, `{"name":"example.com","ip_address":"1.2.3.4"}`, string(request.Body()))
}

// Test_DomainRequest_Delete tests domain deletion.
func Test_DomainRequest_Delete(t *testing.T) {
	mgr := testManager(t)
	item := mgr.Domain("example.com")

	request := item.Delete()

	assert.Equal(t, http.MethodDelete, request.Method())
	assert.Equal(t, item.URL(), request.URL())
	assert.Same(t, item.Auth(), request.Auth())
	assert.Nil(t, request.Body())
}

// Test_RequestBuilder_OmitPolicy tests that the manager's encoding policy
// is honored by the verb transitions.
func Test_RequestBuilder_OmitPolicy(t *testing.T) {
	mgr, err := NewManager(&Configuration{
		Token:            "test-token",
		APIURL:           testAPIURL,
		OmitAbsentFields: true,
	})
	require.NoError(t, err)

	record := Record{Type: "NS", Data: String("ns1.example.com")}
	request, err := mgr.Domain("example.com").Records().Create(&record)
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":"NS","data":"ns1.example.com"}`, string(request.Body()))
}
