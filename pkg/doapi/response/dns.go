/*
 * DNS - domain record response shapes.
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
	"strconv"
	"strings"
)

// DomainRecord represents a single DNS record as returned by the API.
// Priority, port and weight are nullable on the wire: they are set only
// for the record types that use them (MX, SRV).
type DomainRecord struct {
	ID       uint64  `json:"id"`
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Data     string  `json:"data"`
	Priority *uint64 `json:"priority"`
	Port     *uint64 `json:"port"`
	Weight   *uint64 `json:"weight"`
}

// String renders the record as a fixed multi-line report, with a literal
// "None" for every absent nullable field.
func (r DomainRecord) String() string {
	return fmt.Sprintf("ID: %d\n"+
		"Record Type: %s\n"+
		"Name: %s\n"+
		"Data: %s\n"+
		"Priority: %s\n"+
		"Port: %s\n"+
		"Weight: %s\n",
		r.ID,
		r.Type,
		r.Name,
		r.Data,
		numberOrNone(r.Priority),
		numberOrNone(r.Port),
		numberOrNone(r.Weight))
}

// DomainRecords is the collection shape for record listings.
type DomainRecords struct {
	DomainRecords []DomainRecord `json:"domain_records"`
}

// String renders every record report separated by a blank line.
func (r DomainRecords) String() string {
	reports := make([]string, len(r.DomainRecords))
	for i, rec := range r.DomainRecords {
		reports[i] = rec.String()
	}
	return strings.Join(reports, "\n")
}

// numberOrNone renders a nullable number, with "None" when absent.
func numberOrNone(n *uint64) string {
	if n == nil {
		return "None"
	}
	return strconv.FormatUint(*n, 10)
}
