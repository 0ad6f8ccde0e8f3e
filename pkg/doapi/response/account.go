/*
 * Account - account response shape.
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

import "fmt"

// Account represents the account information returned by the API.
type Account struct {
	// DropletLimit is a JSON "number" on the wire, so it could be a float
	// or even negative. The client does not coerce or validate it.
	DropletLimit  float64 `json:"droplet_limit"`
	Email         string  `json:"email"`
	UUID          string  `json:"uuid"`
	EmailVerified bool    `json:"email_verified"`
}

// String renders the account as a fixed multi-line report. The droplet
// limit is printed with zero decimal places.
func (a Account) String() string {
	return fmt.Sprintf("DigitalOcean Account:\n\t"+
		"Email: %s\n\t"+
		"Droplet Limit: %.0f\n\t"+
		"UUID: %s\n\t"+
		"E-Mail Verified: %t",
		a.Email,
		a.DropletLimit,
		a.UUID,
		a.EmailVerified)
}
