package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/valpere/perevodchik/internal/config"
	"github.com/valpere/perevodchik/internal/controller"
	"github.com/valpere/perevodchik/internal/i18n"
	"github.com/valpere/perevodchik/internal/store"
)

func validationError(t *testing.T, sub controller.Submission) error {
	t.Helper()

	_, err := controller.New(nil, nil).Handle(context.Background(), sub)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	return err
}

func TestLocalize(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		sub    controller.Submission
		want   string
	}{
		{"empty ru", "ru", controller.Submission{OriginalText: " "}, "Пожалуйста, введите текст для перевода."},
		{"empty en", "en", controller.Submission{OriginalText: " "}, "Please enter text to translate."},
		{"language en", "en", controller.Submission{OriginalText: "x", Language: "Spanish"}, "Spanish"},
		{"missing translation ru", "ru", controller.Submission{OriginalText: "x", Action: controller.ActionJudge}, "Сначала выполните перевод."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := i18n.NewCatalog(tt.locale)
			if err != nil {
				t.Fatalf("failed to build catalog: %v", err)
			}

			got := localize(catalog, validationError(t, tt.sub))

			if !strings.Contains(got.Error(), tt.want) {
				t.Errorf("expected %q in %q", tt.want, got.Error())
			}
		})
	}
}

func TestLocalize_PassesOtherErrorsThrough(t *testing.T) {
	catalog, err := i18n.NewCatalog("en")
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	orig := errors.New("disk full")
	if got := localize(catalog, orig); got != orig {
		t.Errorf("expected the original error, got %v", got)
	}
}

func TestReadInput(t *testing.T) {
	t.Cleanup(func() { inputText, inputFile = "", "" })

	inputText = "Солнце светит."
	got, err := readInput()
	if err != nil || got != "Солнце светит." {
		t.Errorf("expected --text value, got %q, %v", got, err)
	}

	path := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(path, []byte("from file\n"), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	inputText, inputFile = "", path
	got, err = readInput()
	if err != nil || got != "from file\n" {
		t.Errorf("expected file content, got %q, %v", got, err)
	}

	inputFile = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := readInput(); err == nil {
		t.Error("expected error for a missing input file")
	}
}

func journalCommand(t *testing.T, path string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String(config.KeyJournal, "", "")
	if path != "" {
		if err := cmd.Flags().Set(config.KeyJournal, path); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}
	}
	return cmd
}

func TestOpenHistory(t *testing.T) {
	t.Setenv("PEREVODCHIK_JOURNAL", "")

	if _, err := openHistory(journalCommand(t, "")); err == nil {
		t.Error("expected error without a journal path")
	}

	missing := filepath.Join(t.TempDir(), "missing.db")
	if _, err := openHistory(journalCommand(t, missing)); err == nil {
		t.Error("expected error for a journal that does not exist")
	}
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Error("opening history must not create a journal")
	}

	path := filepath.Join(t.TempDir(), "journal.db")
	db, err := store.New(path)
	if err != nil {
		t.Fatalf("failed to create journal: %v", err)
	}
	db.Close()

	got, err := openHistory(journalCommand(t, path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got.Close()
}
