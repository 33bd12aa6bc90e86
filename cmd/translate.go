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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/valpere/lingobuddy/internal/language"
	"github.com/valpere/lingobuddy/internal/session"
)

var (
	outputFile string
	copyResult bool
)

var translateCmd = &cobra.Command{
	Use:   "translate <text>...",
	Short: "Translate a word or phrase",
	Long: `Translate a word or phrase and print the translation.

The text is trimmed and lower-cased before it is sent. Languages are given
as codes or names:

  lingobuddy translate -s en -t french "Good morning"
  lingobuddy translate -t uk --copy -o out.txt hello`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, closeFn, err := newController(appCfg)
		if err != nil {
			return err
		}
		defer closeFn()

		catalog := ctrl.Catalog()
		return runTranslate(cmd, ctrl, strings.Join(args, " "),
			resolveLang(catalog, appCfg.Source), resolveLang(catalog, appCfg.Target))
	},
}

// runTranslate performs one translation under the command's context and
// prints, saves or copies the result.
func runTranslate(cmd *cobra.Command, ctrl *session.Controller, text string, src, dst language.Code) error {
	res, err := ctrl.RequestTranslation(cmd.Context(), text, src, dst)
	if err != nil {
		return errors.New(userMessage(err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), ctrl.CopyResultText(res))

	if outputFile != "" {
		if err := ctrl.ExportResult(res, outputFile); err != nil {
			return fmt.Errorf("failed to save translation: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Translation saved to %s\n", outputFile)
	}

	if copyResult {
		if err := clipboard.WriteAll(ctrl.CopyResultText(res)); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Translation copied to clipboard.")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Save the translation to a file")
	translateCmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the translation to the clipboard")
}
