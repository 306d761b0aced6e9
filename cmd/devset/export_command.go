package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"devset/internal/sliders"
	"devset/internal/xmpmeta"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export decoded or predicted settings",
	}
	exportCmd.AddCommand(newExportXMPCommand(ctx))
	return exportCmd
}

func newExportXMPCommand(ctx *commandContext) *cobra.Command {
	var (
		inputPath   string
		outputPath  string
		denormalize bool
	)

	cmd := &cobra.Command{
		Use:         "xmp",
		Short:       "Build a Lightroom XMP develop-settings fragment from slider values",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := ctx.ensureRegistry()
			if err != nil {
				return err
			}

			values, err := readSliderValues(cmd, inputPath)
			if err != nil {
				return err
			}

			settings := make(map[string]float64, len(values))
			for name, value := range values {
				def, ok := reg.Lookup(name)
				if !ok {
					return fmt.Errorf("unknown slider %q", name)
				}
				if denormalize {
					value = sliders.Denormalize(def, value)
				} else {
					value = sliders.Coerce(def, value)
				}
				settings[def.ID] = value
			}

			fragment := xmpmeta.Build(settings)
			if outputPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), fragment)
				return nil
			}
			if err := os.WriteFile(outputPath, []byte(fragment+"\n"), 0o644); err != nil {
				return fmt.Errorf("write xmp fragment: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote XMP fragment to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "JSON file of slider values ('-' for stdin)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination file (default stdout)")
	cmd.Flags().BoolVar(&denormalize, "denormalize", false, "Treat input values as normalized [-1, 1] predictions")
	return cmd
}

// readSliderValues decodes a flat JSON object mapping slider names (canonical
// IDs, friendly names, or any registered alias) to numeric values.
func readSliderValues(cmd *cobra.Command, path string) (map[string]float64, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read slider values: %w", err)
		}
	}

	values := map[string]float64{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse slider values: %w", err)
	}
	if len(values) == 0 {
		return nil, errors.New("no slider values provided")
	}
	return values, nil
}
