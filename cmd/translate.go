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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/valpere/perevodchik/internal"
	"github.com/valpere/perevodchik/internal/config"
	"github.com/valpere/perevodchik/internal/controller"
	"github.com/valpere/perevodchik/internal/i18n"
)

var (
	inputText  string
	inputFile  string
	outputFile string
	targetLang string
	withJudge  bool
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate text once from the shell",
	Long: `Run the same translate (and optionally judge) flow as the web form.

Text is taken from --text, from --input, or from stdin when neither is set.
Supported languages: English, French, German. Codes such as "de" or "fr-CA"
and lower-case names are accepted here as well.

Examples:
  perevodchik translate --text "Солнце светит." --language French
  perevodchik translate -i note.txt -l German --judge`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputText != "" && inputFile != "" {
			return errors.New("--text and --input are mutually exclusive")
		}
		if inputFile != "" && inputFile == outputFile {
			return errors.New("input file and output file cannot be the same")
		}

		if err := bindFlags(cmd, config.KeyJournal, config.KeyMock, config.KeyLocale); err != nil {
			return err
		}
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}

		text, err := readInput()
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

		ctx := cmd.Context()
		ctrl := buildController(cfg, db)

		lang := targetLang
		if l, ok := internal.LookupLanguage(targetLang); ok {
			lang = l.Name
		}

		out, err := ctrl.Handle(ctx, controller.Submission{
			OriginalText: text,
			Language:     lang,
			Action:       controller.ActionTranslate,
		})
		if err != nil {
			return localize(catalog, err)
		}

		fmt.Fprintf(os.Stderr, "%s (%s):\n", catalog.T("TranslationHeading", nil), out.Language.Name)
		fmt.Println(out.Translation.Text)

		if out.HasTranslation() && outputFile != "" {
			if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := os.WriteFile(outputFile, []byte(out.Translation.Text), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Translation written to %s\n", outputFile)
		}

		if !withJudge || !out.HasTranslation() {
			return nil
		}

		graded, err := ctrl.Handle(ctx, controller.Submission{
			OriginalText:   text,
			Language:       out.Language.Name,
			TranslatedText: out.Translation.Text,
			Action:         controller.ActionJudge,
		})
		if err != nil {
			return localize(catalog, err)
		}

		fmt.Fprintf(os.Stderr, "\n%s:\n", catalog.T("GradeHeading", nil))
		fmt.Println(graded.Grade.Text)
		return nil
	},
}

func readInput() (string, error) {
	switch {
	case inputText != "":
		return inputText, nil
	case inputFile != "":
		b, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(b), nil
	default:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
}

// localize renders validation errors in the configured UI locale.
func localize(catalog *i18n.Catalog, err error) error {
	var verr *controller.ValidationError
	if errors.As(err, &verr) {
		return errors.New(catalog.T(verr.MessageID, verr.Data))
	}
	return err
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputText, "text", "x", "", "Text to translate")
	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file path")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the translation to this file")
	translateCmd.Flags().StringVarP(&targetLang, "language", "l", "English", "Target language (English, French, German)")
	translateCmd.Flags().BoolVar(&withJudge, "judge", false, "Grade the translation with the judge model")

	translateCmd.Flags().String(config.KeyJournal, "", "SQLite call journal path (empty disables journaling)")
	translateCmd.Flags().Bool(config.KeyMock, false, "Answer with canned responses instead of calling the API")
	translateCmd.Flags().String(config.KeyLocale, "ru", "Message locale (ru or en)")
}
