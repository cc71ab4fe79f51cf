package humadocs

import (
	"encoding/json"
	"io"

	"github.com/danielgtaylor/huma/v2"
)

// WriteSpecJSON writes the API's OpenAPI spec as indented JSON to w.
func WriteSpecJSON(api huma.API, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(api.OpenAPI())
}

// WriteSpecYAML writes the API's OpenAPI spec as YAML to w.
func WriteSpecYAML(api huma.API, w io.Writer) error {
	out, err := api.OpenAPI().YAML()
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
