package cli

import (
	"fmt"
	"io"

	"github.com/vfg2006/sales-insights-api/pkg/utils"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// render escreve o resultado já convertido para a forma de transporte
func render(w io.Writer, format string, value any) error {
	shaped := utils.ToTransport(value)

	switch format {
	case outputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(shaped); err != nil {
			return fmt.Errorf("yaml: %w", err)
		}
		return encoder.Close()
	default:
		out, err := utils.PrettyJson(shaped)
		if err != nil {
			return fmt.Errorf("json: %w", err)
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}
}
