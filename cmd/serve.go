/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/valpere/perevodchik/internal/config"
	"github.com/valpere/perevodchik/internal/i18n"
	"github.com/valpere/perevodchik/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web form",
	Long: `Serve the translation form over HTTP.

GET  /         the empty form
POST /         run the pressed action (translate or judge)
GET  /healthz  liveness probe

The inference API key is read from MENTORPIECE_API_KEY.
Set MOCK_MENTORPIECE=true (or --mock) to answer with canned responses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd, config.KeyAddr, config.KeyJournal, config.KeyMock, config.KeyLocale); err != nil {
			return err
		}

		cfg, err := config.Load(v)
		if err != nil {
			return err
		}

		db, err := openJournal(cfg.Journal)
		if err != nil {
			return err
		}
		if db != nil {
			defer db.Close()
		}

		catalog, err := i18n.NewCatalog(cfg.Locale)
		if err != nil {
			return err
		}

		srv, err := web.New(buildController(cfg, db), catalog, web.Options{Mock: cfg.Mock, Debug: cfg.Debug})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := srv.Run(ctx, cfg.Addr); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String(config.KeyAddr, ":5000", "Listen address")
	serveCmd.Flags().String(config.KeyJournal, "", "SQLite call journal path (empty disables journaling)")
	serveCmd.Flags().Bool(config.KeyMock, false, "Answer with canned responses instead of calling the API")
	serveCmd.Flags().String(config.KeyLocale, "ru", "UI locale (ru or en)")
}
