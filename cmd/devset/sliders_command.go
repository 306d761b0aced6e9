package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"devset/internal/sliders"
)

func newSlidersCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:         "sliders",
		Short:       "List the slider registry",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := ctx.ensureRegistry()
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, sliderViews(reg))
			}

			rows := make([][]string, 0, reg.Len())
			for _, def := range reg.All() {
				rows = append(rows, []string{
					displayTitle(def.FriendlyName),
					def.ID,
					def.Type.String(),
					formatSliderValue(def, def.Min),
					formatSliderValue(def, def.Max),
					strconv.FormatFloat(def.Step, 'f', -1, 64),
					formatSliderValue(def, def.Default),
				})
			}
			headers := []string{"Slider", "ID", "Type", "Min", "Max", "Step", "Default"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the registry as JSON")
	return cmd
}

type sliderView struct {
	ID           string   `json:"id"`
	FriendlyName string   `json:"friendly_name"`
	Aliases      []string `json:"aliases"`
	Type         string   `json:"type"`
	Min          float64  `json:"min"`
	Max          float64  `json:"max"`
	Step         float64  `json:"step"`
	Default      float64  `json:"default"`
}

func sliderViews(reg *sliders.Registry) []sliderView {
	defs := reg.All()
	views := make([]sliderView, 0, len(defs))
	for _, def := range defs {
		views = append(views, sliderView{
			ID:           def.ID,
			FriendlyName: def.FriendlyName,
			Aliases:      def.Aliases,
			Type:         def.Type.String(),
			Min:          def.Min,
			Max:          def.Max,
			Step:         def.Step,
			Default:      def.Default,
		})
	}
	return views
}

// displayTitle turns a friendly name like "hue_adjust_red" into "Hue Adjust Red".
func displayTitle(friendly string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(friendly, "_", " "))
}

func formatSliderValue(def sliders.Definition, v float64) string {
	if def.Type == sliders.Integer {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
