package verbose

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/chriscorrea/orcall/internal/llm/common"

	"github.com/fatih/color"
)

// OutputConfig contains parameters for verbose output formatting
type OutputConfig struct {
	Writer       io.Writer
	KeyColor     *color.Color
	ValueColor   *color.Color
	EnableColors bool
}

// DefaultOutputConfig returns a default configuration for verbose output
func DefaultOutputConfig(writer io.Writer) *OutputConfig {
	return &OutputConfig{
		Writer:       writer,
		KeyColor:     color.New(color.FgCyan, color.Bold),
		ValueColor:   color.New(color.FgMagenta),
		EnableColors: true,
	}
}

// PrintRequestParameters displays the outgoing request parameters in a multi-column table
// unset sampling parameters are shown as "default"
func PrintRequestParameters(providerName, modelName, endpoint string, opts *common.GenerateOptions, outputCfg *OutputConfig) {
	if outputCfg == nil {
		outputCfg = DefaultOutputConfig(os.Stderr)
	}
	if opts == nil {
		opts = &common.GenerateOptions{}
	}

	w := tabwriter.NewWriter(outputCfg.Writer, 0, 0, 3, ' ', 0)

	type param struct {
		Key   string
		Value string
	}

	params := []param{
		{Key: "Provider", Value: providerName},
		{Key: "Model", Value: modelName},
		{Key: "Temperature", Value: formatFloat(opts.Temperature)},
		{Key: "Top P", Value: formatFloat(opts.TopP)},
		{Key: "Top K", Value: formatInt(opts.TopK)},
		{Key: "Frequency Penalty", Value: formatFloat(opts.FrequencyPenalty)},
		{Key: "Presence Penalty", Value: formatFloat(opts.PresencePenalty)},
		{Key: "Repetition Penalty", Value: formatFloat(opts.RepetitionPenalty)},
	}

	// two parameters per row
	for i := 0; i < len(params); i += 2 {
		p1 := params[i]
		if (i + 1) < len(params) {
			p2 := params[i+1]
			printRow(w, outputCfg, p1.Key, p1.Value, p2.Key, p2.Value)
		} else {
			printRow(w, outputCfg, p1.Key, p1.Value, "", "")
		}
	}

	if endpoint != "" {
		printRow(w, outputCfg, "Endpoint", endpoint, "", "")
	}

	fmt.Fprintf(w, "\n")
	w.Flush()
}

func formatFloat(v *float64) string {
	if v == nil {
		return "default"
	}
	return fmt.Sprintf("%.2f", *v)
}

func formatInt(v *int) string {
	if v == nil {
		return "default"
	}
	return fmt.Sprintf("%d", *v)
}

// printRow prints a multi-column row for one or two key-value pairs
// and handles color formatting and alignment via tabwriter
func printRow(w io.Writer, outputCfg *OutputConfig, key1, value1, key2, value2 string) {
	keySprint := outputCfg.KeyColor.SprintFunc()
	valueSprint := outputCfg.ValueColor.SprintFunc()

	if !outputCfg.EnableColors {
		keySprint = fmt.Sprint
		valueSprint = fmt.Sprint
	}

	if key2 != "" {
		fmt.Fprintf(w, "%s:\t%s\t%s:\t%s\n",
			keySprint(key1),
			valueSprint(value1),
			keySprint(key2),
			valueSprint(value2),
		)
	} else {
		fmt.Fprintf(w, "%s:\t%s\n",
			keySprint(key1),
			valueSprint(value1),
		)
	}
}
