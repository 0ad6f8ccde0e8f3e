/*
 * Domain - domain response shapes.
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
	"fmt"
	"strings"
)

// Domain represents a domain hosted with the provider. The zone file is
// nullable: it is empty until the zone has been generated.
type Domain struct {
	Name     string  `json:"name"`
	TTL      uint64  `json:"ttl"`
	ZoneFile *string `json:"zone_file"`
}

// String renders the domain as a fixed multi-line report.
func (d Domain) String() string {
	zoneFile := "None"
	if d.ZoneFile != nil {
		zoneFile = *d.ZoneFile
	}
	return fmt.Sprintf("Name: %s\n"+
		"TTL: %d\n"+
		"Zone File: %s\n",
		d.Name,
		d.TTL,
		zoneFile)
}

// Domains is the collection shape for domain listings.
type Domains struct {
	Domains []Domain `json:"domains"`
}

// String renders every domain report separated by a blank line.
func (d Domains) String() string {
	reports := make([]string, len(d.Domains))
	for i, dom := range d.Domains {
		reports[i] = dom.String()
	}
	return strings.Join(reports, "\n")
}
