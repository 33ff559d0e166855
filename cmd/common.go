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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/valpere/perevodchik/internal/config"
	"github.com/valpere/perevodchik/internal/controller"
	"github.com/valpere/perevodchik/internal/inference"
	"github.com/valpere/perevodchik/internal/judge"
	"github.com/valpere/perevodchik/internal/store"
	"github.com/valpere/perevodchik/internal/translator"
)

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// bindFlags binds the named flags of cmd to the config keys of the same name.
// It runs per command so that commands sharing a key do not steal each
// other's flags.
func bindFlags(cmd *cobra.Command, keys ...string) error {
	for _, key := range keys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", key, err)
		}
	}
	return nil
}

// buildCaller picks the HTTP client or, in mock mode, the offline stub.
func buildCaller(cfg *config.Config) inference.Caller {
	if cfg.Mock {
		slog.Warn("mock mode enabled, no requests will reach the inference API")
		return inference.NewMockClient()
	}
	client := inference.NewClient(cfg.Endpoint, cfg.APIKey, cfg.Timeout)
	slog.Debug("inference client ready", "endpoint", client.Endpoint(), "timeout", cfg.Timeout)
	return client
}

// openJournal opens the call journal when a path is configured. It returns
// nil, nil when journaling is disabled.
func openJournal(path string) (*store.Store, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}
	db, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return db, nil
}

func buildController(cfg *config.Config, journal *store.Store) *controller.Controller {
	caller := buildCaller(cfg)

	var opts []controller.Option
	if journal != nil {
		opts = append(opts, controller.WithJournal(journal))
	}

	return controller.New(
		translator.New(caller, cfg.TranslationModel),
		judge.New(caller, cfg.JudgeModel),
		opts...,
	)
}
