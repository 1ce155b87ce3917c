// Package main implements the docmap CLI: expression-based reads,
// writes and copies on JSON or YAML documents from the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dhawalhost/docmap"
)

type app struct {
	indexMode string
	noNulls   bool
	yamlMode  bool
	debug     bool

	logger *zap.Logger
}

func main() {
	a := &app{logger: zap.NewNop()}
	if err := newRootCmd(a).Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "docmap: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "docmap",
		Short:         "Read, write and map values in JSON/YAML documents using dot notation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if a.debug {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				a.logger = logger
			}
			switch a.indexMode {
			case "additive", "explicit":
				return nil
			default:
				return fmt.Errorf("unknown index mode %q (want additive or explicit)", a.indexMode)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.indexMode, "index-mode", "additive", "array index mode for writes: additive or explicit")
	pf.BoolVar(&a.noNulls, "no-nulls", false, "never write null values")
	pf.BoolVar(&a.yamlMode, "yaml", false, "treat documents as YAML instead of JSON")
	pf.BoolVar(&a.debug, "debug", false, "enable debug logging and document dumps")

	root.AddCommand(a.getCmd(), a.setCmd(), a.mapCmd())
	return root
}

func (a *app) mapper() *docmap.Mapper {
	mode := docmap.Additive
	if a.indexMode == "explicit" {
		mode = docmap.Explicit
	}
	return docmap.New(
		docmap.WithArrayIndexMode(mode),
		docmap.WithSetNulls(!a.noNulls),
		docmap.WithLogger(a.logger),
	)
}

func (a *app) getCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:     "get <expr> [expr...]",
		Short:   "resolve one or more expressions and print the first match",
		Example: `  docmap get -f doc.json user.name user.login`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(file)
			if err != nil {
				return err
			}

			var value any
			if len(args) == 1 {
				value, err = a.mapper().GetValue(doc, args[0])
				if err != nil {
					return err
				}
			} else {
				value = a.mapper().GetFirst(doc, args...)
			}
			if value == nil {
				return fmt.Errorf("no value at %v", args)
			}

			out, err := docmap.MarshalValue(value)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "document to read ('-' for stdin)")
	return cmd
}

func (a *app) setCmd() *cobra.Command {
	var file, out string
	cmd := &cobra.Command{
		Use:     "set <expr> <value>",
		Short:   "set a value at an expression and write the document back",
		Example: `  docmap set -f doc.json --index-mode explicit items.0.name '"fred"'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := a.load(file)
			if err != nil {
				return err
			}

			value, err := docmap.ParseJSONValue([]byte(args[1]))
			if err != nil {
				// Not a JSON literal, keep it as a plain string.
				value = args[1]
			}
			if err := a.mapper().SetValue(doc, args[0], value); err != nil {
				return err
			}
			return a.save(doc, file, out)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "document to modify ('-' for stdin)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output destination (default: the input file, '-' for stdout)")
	return cmd
}

func (a *app) mapCmd() *cobra.Command {
	var srcFile, dstFile, out string
	cmd := &cobra.Command{
		Use:     "map <source-expr> <target-expr>",
		Short:   "copy a value between two documents",
		Example: `  docmap map -f src.json -t dst.json user.id owner.id`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			source, err := a.load(srcFile)
			if err != nil {
				return err
			}
			target, err := a.load(dstFile)
			if err != nil {
				return err
			}
			if err := a.mapper().Map(source, args[0], target, args[1]); err != nil {
				return err
			}
			return a.save(target, dstFile, out)
		},
	}
	cmd.Flags().StringVarP(&srcFile, "file", "f", "", "source document")
	cmd.Flags().StringVarP(&dstFile, "target", "t", "", "target document")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output destination (default: the target file, '-' for stdout)")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))
	cobra.CheckErr(cmd.MarkFlagRequired("target"))
	return cmd
}

func (a *app) load(path string) (*docmap.Document, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var doc *docmap.Document
	if a.yamlMode {
		doc, err = docmap.FromYAML(data)
	} else {
		doc, err = docmap.FromJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if a.debug {
		a.logger.Debug("decoded document",
			zap.String("path", path),
			zap.String("dump", spew.Sdump(doc)))
	}
	return doc, nil
}

func (a *app) save(doc *docmap.Document, file, out string) error {
	var (
		data []byte
		err  error
	)
	if a.yamlMode {
		data, err = docmap.ToYAML(doc)
	} else {
		data, err = docmap.ToJSON(doc)
	}
	if err != nil {
		return err
	}
	if !a.yamlMode {
		data = append(data, '\n')
	}

	dest := out
	if dest == "" {
		dest = file
	}
	if dest == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintf(os.Stderr, "wrote %s\n", dest)
	return nil
}
