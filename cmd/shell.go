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
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/valpere/lingobuddy/internal/detector"
	"github.com/valpere/lingobuddy/internal/language"
	"github.com/valpere/lingobuddy/internal/session"
)

const shellHelp = `Type a word or phrase to translate it. Commands:
  :from CODE    set the source language
  :to CODE      set the target language
  :swap         swap source and target
  :history      show the session history
  :save PATH    save the last translation to a file
  :copy         copy the last translation to the clipboard
  :detect TEXT  suggest the source language of TEXT and use it
  :langs        list the available languages
  :help         show this help
  :quit         leave the session`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive translation session",
	Long: `Start an interactive session. Every line that is not a command is
translated from the source to the target language and recorded in the
session history. Type :help for the list of commands.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, closeFn, err := newController(appCfg)
		if err != nil {
			return err
		}
		defer closeFn()

		sh := newShell(ctrl, cmd.InOrStdin(), cmd.OutOrStdout())
		sh.src = resolveLang(ctrl.Catalog(), appCfg.Source)
		sh.dst = resolveLang(ctrl.Catalog(), appCfg.Target)

		return sh.run(cmd.Context())
	},
}

// shell is a line-oriented front end over one session controller.
type shell struct {
	ctrl     *session.Controller
	catalog  *language.Catalog
	detector *detector.Detector
	in       io.Reader
	out      io.Writer
	copy     func(string) error

	src language.Code
	dst language.Code
}

func newShell(ctrl *session.Controller, in io.Reader, out io.Writer) *shell {
	return &shell{
		ctrl:    ctrl,
		catalog: ctrl.Catalog(),
		in:      in,
		out:     out,
		copy:    clipboard.WriteAll,
		src:     language.Code("en"),
		dst:     language.Code("fr"),
	}
}

func (s *shell) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintf(s.out, "lingobuddy %s (%s). Type :help for commands.\n", version, s.ctrl.ServiceName())
	s.prompt()

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		if quit := s.handle(ctx, scanner.Text()); quit {
			return nil
		}
		s.prompt()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	fmt.Fprintln(s.out)
	return nil
}

func (s *shell) prompt() {
	fmt.Fprintf(s.out, "%s -> %s> ", s.src, s.dst)
}

// handle processes one input line and reports whether the session should end.
func (s *shell) handle(ctx context.Context, line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ":") {
		s.translate(ctx, line)
		return false
	}

	name, arg, _ := strings.Cut(trimmed[1:], " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "q", "quit", "exit":
		return true
	case "h", "help":
		fmt.Fprintln(s.out, shellHelp)
	case "from":
		s.setLang(&s.src, arg)
	case "to":
		s.setLang(&s.dst, arg)
	case "swap":
		s.src, s.dst = s.dst, s.src
	case "history":
		for i, line := range s.ctrl.History() {
			fmt.Fprintf(s.out, "%3d  %s\n", i+1, line)
		}
	case "save":
		s.save(arg)
	case "copy":
		s.copyCurrent()
	case "detect":
		s.detect(arg)
	case "langs":
		if err := printLanguages(s.out, s.catalog); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	default:
		fmt.Fprintf(s.out, "Unknown command :%s (try :help)\n", name)
	}
	return false
}

func (s *shell) translate(ctx context.Context, text string) {
	res, err := s.ctrl.RequestTranslation(ctx, text, s.src, s.dst)
	if err != nil {
		fmt.Fprintln(s.out, userMessage(err))
		return
	}
	fmt.Fprintln(s.out, session.DisplayText(res))
}

func (s *shell) setLang(dst *language.Code, input string) {
	code, err := s.catalog.Resolve(input)
	if err != nil {
		fmt.Fprintf(s.out, "Unknown language %q\n", input)
		return
	}
	*dst = code
}

func (s *shell) save(path string) {
	res, ok := s.ctrl.Current()
	if !ok {
		fmt.Fprintln(s.out, "Nothing to save yet.")
		return
	}
	if path == "" {
		fmt.Fprintln(s.out, "Usage: :save PATH")
		return
	}
	if err := s.ctrl.ExportResult(res, path); err != nil {
		fmt.Fprintf(s.out, "Failed to save translation. %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Translation saved successfully.")
}

func (s *shell) copyCurrent() {
	res, ok := s.ctrl.Current()
	if !ok {
		fmt.Fprintln(s.out, "Nothing to copy yet.")
		return
	}
	if err := s.copy(s.ctrl.CopyResultText(res)); err != nil {
		fmt.Fprintf(s.out, "Failed to copy to clipboard: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Translation copied to clipboard.")
}

func (s *shell) detect(text string) {
	if text == "" {
		fmt.Fprintln(s.out, "Usage: :detect TEXT")
		return
	}
	if s.detector == nil {
		s.detector = detector.New()
	}

	sug, ok := s.detector.Suggest(text, s.catalog)
	if !ok {
		fmt.Fprintln(s.out, "Could not detect the language.")
		return
	}
	s.src = sug.Code
	fmt.Fprintf(s.out, "Detected %s (%s), confidence %.2f\n", s.catalog.Name(sug.Code), sug.Code, sug.Confidence)
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
