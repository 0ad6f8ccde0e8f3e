/*
 * Commands - CLI subcommands.
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
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"digitalocean-doapi/pkg/doapi"
)

var recordFlags struct {
	recType  string
	name     string
	data     string
	priority uint64
	port     uint64
	weight   uint64
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the account information",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := newManager()
		if err != nil {
			return err
		}
		account, err := mgr.Account().Retrieve(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(account)
		return nil
	},
}

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the domains of the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := newManager()
		if err != nil {
			return err
		}
		domains, err := mgr.Domains().Retrieve(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(domains)
		return nil
	},
}

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage the DNS records of a domain",
}

var recordsListCmd = &cobra.Command{
	Use:   "list DOMAIN",
	Short: "List the DNS records of a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := newManager()
		if err != nil {
			return err
		}
		records, err := mgr.Domain(args[0]).Records().Retrieve(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(records)
		return nil
	},
}

var recordsCreateCmd = &cobra.Command{
	Use:   "create DOMAIN",
	Short: "Create a DNS record in a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recType := doapi.RecordType(recordFlags.recType)
		if !recType.Valid() {
			return fmt.Errorf("unsupported record type %q", recordFlags.recType)
		}
		mgr, err := newManager()
		if err != nil {
			return err
		}
		request, err := mgr.Domain(args[0]).Records().Create(recordFromFlags(cmd, recType))
		if err != nil {
			return err
		}
		record, err := request.Retrieve(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(record)
		return nil
	},
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete DOMAIN RECORD_ID",
	Short: "Delete a DNS record from a domain",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := newManager()
		if err != nil {
			return err
		}
		request := mgr.Domain(args[0]).Record(args[1]).Delete()
		if _, err := request.Retrieve(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Record deleted")
		return nil
	},
}

// recordFromFlags builds the record payload from the command line flags,
// leaving unset numeric options absent.
func recordFromFlags(cmd *cobra.Command, recType doapi.RecordType) *doapi.Record {
	record := doapi.Record{Type: recType.String()}
	if recordFlags.name != "" {
		record.Name = doapi.String(recordFlags.name)
	}
	if recordFlags.data != "" {
		record.Data = doapi.String(recordFlags.data)
	}
	if cmd.Flags().Changed("priority") {
		record.Priority = doapi.Uint64(recordFlags.priority)
	}
	if cmd.Flags().Changed("port") {
		record.Port = doapi.Uint64(recordFlags.port)
	}
	if cmd.Flags().Changed("weight") {
		record.Weight = doapi.Uint64(recordFlags.weight)
	}
	return &record
}

func init() {
	flags := recordsCreateCmd.Flags()
	flags.StringVar(&recordFlags.recType, "type", "", "record type (A, AAAA, CNAME, MX, NS, SRV, TXT)")
	flags.StringVar(&recordFlags.name, "name", "", "host name, alias or service")
	flags.StringVar(&recordFlags.data, "data", "", "record data")
	flags.Uint64Var(&recordFlags.priority, "priority", 0, "priority (MX, SRV)")
	flags.Uint64Var(&recordFlags.port, "port", 0, "port (SRV)")
	flags.Uint64Var(&recordFlags.weight, "weight", 0, "weight (SRV)")
	_ = recordsCreateCmd.MarkFlagRequired("type")

	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsCreateCmd)
	recordsCmd.AddCommand(recordsDeleteCmd)
}
