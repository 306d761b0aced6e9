package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"devset/internal/develop"
	"devset/internal/luatable"
	"devset/internal/sliders"
)

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOut   bool
		showTree  bool
		normalize bool
		filePath  string
	)

	cmd := &cobra.Command{
		Use:         "decode [settings-text]",
		Short:       "Decode a develop-settings blob into slider values",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDecodeInput(cmd, args, filePath)
			if err != nil {
				return err
			}
			reg, err := ctx.ensureRegistry()
			if err != nil {
				return err
			}

			vector, err := develop.DecodeText(text, reg)
			if err != nil {
				var parseErr *luatable.ParseError
				if errors.As(err, &parseErr) {
					return fmt.Errorf("settings text is not parseable: %w", parseErr)
				}
				return err
			}

			if showTree {
				tree, err := luatable.Parse(develop.StripAssignmentPrefix(text))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), tree.String())
				return nil
			}

			if jsonOut {
				payload := map[string]any{"sliders": vector}
				if normalize {
					payload["normalized"] = vector.Normalized(reg)
				}
				return writeJSON(cmd, payload)
			}
			return renderVector(cmd, reg, vector, normalize)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit decoded sliders as JSON")
	cmd.Flags().BoolVar(&showTree, "tree", false, "Print the parsed settings tree instead of sliders")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Include [-1, 1] normalized values")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read the settings text from a file ('-' for stdin)")
	return cmd
}

func readDecodeInput(cmd *cobra.Command, args []string, filePath string) (string, error) {
	if len(args) == 1 && filePath != "" {
		return "", errors.New("pass the settings text as an argument or via --file, not both")
	}
	if len(args) == 1 {
		return args[0], nil
	}
	switch filePath {
	case "":
		return "", errors.New("settings text is required (argument or --file)")
	case "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("read settings file: %w", err)
		}
		return string(data), nil
	}
}

func renderVector(cmd *cobra.Command, reg *sliders.Registry, vector sliders.Vector, normalize bool) error {
	ids := make([]string, 0, len(vector))
	for id := range vector {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	headers := []string{"Slider", "Value"}
	aligns := []columnAlignment{alignLeft, alignRight}
	if normalize {
		headers = append(headers, "Normalized")
		aligns = append(aligns, alignRight)
	}

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		def, _ := reg.Lookup(id)
		value := vector[id]
		row := []string{id, formatSliderValue(def, value)}
		if normalize {
			row = append(row, strconv.FormatFloat(sliders.Normalize(def, value), 'f', 4, 64))
		}
		rows = append(rows, row)
	}

	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "No known sliders present in the settings text.")
		return nil
	}
	fmt.Fprintln(out, renderTable(headers, rows, aligns))
	return nil
}
