/*
 * Account - unit tests.
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
package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test_Account_String tests the fixed account report. The droplet limit
// is printed without decimals.
func Test_Account_String(t *testing.T) {
	type testCase struct {
		name     string
		account  Account
		expected string
	}

	run := func(t *testing.T, tc testCase) {
		assert.Equal(t, tc.expected, tc.account.String())
	}

	testCases := []testCase{
		{
			name: "verified account",
			account: Account{
				DropletLimit:  25.0,
				Email:         "a@b.com",
				UUID:          "abc-123",
				EmailVerified: true,
			},
			expected: "DigitalOcean Account:\n" +
				"\tEmail: a@b.com\n" +
				"\tDroplet Limit: 25\n" +
				"\tUUID: abc-123\n" +
				"\tE-Mail Verified: true",
		},
		{
			name: "unverified account",
			account: Account{
				DropletLimit:  10.0,
				Email:         "c@d.org",
				UUID:          "def-456",
				EmailVerified: false,
			},
			expected: "DigitalOcean Account:\n" +
				"\tEmail: c@d.org\n" +
				"\tDroplet Limit: 10\n" +
				"\tUUID: def-456\n" +
				"\tE-Mail Verified: false",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}

// Test_Account_Unmarshal tests that the wire quirk is preserved: the
// droplet limit is taken as-is, even when fractional or negative.
func Test_Account_Unmarshal(t *testing.T) {
	payload := `{"droplet_limit":-2.5,"email":"a@b.com","uuid":"abc-123","email_verified":true}`

	var account Account
	require.NoError(t, json.Unmarshal([]byte(payload), &account))
	assert.Equal(t, -2.5, account.DropletLimit)
}
