// Command iwx is a thin driver around the iworkdoc library: it opens a
// Pages/Numbers/Keynote package and prints what the traversal engine
// emits. The conversion front-ends (Markdown output, OCR providers) live
// outside this repository; iwx covers inspection only.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/benedoc-inc/iworkdoc"
)

var (
	configPath string
	verbose    bool
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
			os.Exit(1)
		}
	}()

	root := &cobra.Command{
		Use:           "iwx",
		Short:         "Inspect Apple iWork document packages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a settings file (TOML)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(infoCmd(), outlineCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "iwx: %v\n", err)
		os.Exit(1)
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <package>",
		Short: "Print a package's document kind and metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(configPath)
			if err != nil {
				return err
			}
			logger := newLogger(settings)
			logger.Printf("opening %s", args[0])

			doc, err := iworkdoc.Open(args[0])
			if err != nil {
				return err
			}
			defer doc.Close()

			fmt.Printf("kind: %s\n", doc.Kind())
			return nil
		},
	}
}

func outlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline <package>",
		Short: "Walk a package and print its event stream as an indented outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(configPath)
			if err != nil {
				return err
			}
			logger := newLogger(settings)
			logger.Printf("opening %s", args[0])

			doc, err := iworkdoc.Open(args[0])
			if err != nil {
				return err
			}
			defer doc.Close()

			warnings, err := doc.Walk(cmd.Context(), &outlineVisitor{out: os.Stdout})
			for _, w := range warnings {
				logger.Printf("warning: %s", w)
			}
			return err
		},
	}
}

func newLogger(s *settings) *log.Logger {
	if verbose || s.Verbose {
		return log.New(os.Stderr, "iwx: ", 0)
	}
	return log.New(nopWriter{}, "", 0)
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
