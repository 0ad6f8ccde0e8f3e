/*
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
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"digitalocean-doapi/pkg/doapi"
)

var rootCmd = &cobra.Command{
	Use:   "doapi",
	Short: "Typed client for the DigitalOcean v2 API",
	Long: `doapi talks to the DigitalOcean v2 API to inspect the account and
manage domains and their DNS records. The API token is read from the
DIGITALOCEAN_TOKEN environment variable (a .env file is honored).`,
	SilenceUsage: true,
}

// newManager reads the configuration from the environment and builds the
// API manager.
func newManager() (*doapi.Manager, error) {
	config, err := doapi.NewConfiguration()
	if err != nil {
		return nil, err
	}
	return doapi.NewManager(config)
}

func init() {
	// Load .env if present, for local development.
	_ = godotenv.Load()

	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(domainsCmd)
	rootCmd.AddCommand(recordsCmd)
}

// main function
func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
