package humadocs_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/humadocs"
)

func TestWriteSpecJSON(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI()

	var buf bytes.Buffer
	require.NoError(t, humadocs.WriteSpecJSON(api, &buf))

	var spec struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &spec))
	assert.Equal(t, "Test API", spec.Info.Title)
}

func TestWriteSpecYAML(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI()

	var buf bytes.Buffer
	require.NoError(t, humadocs.WriteSpecYAML(api, &buf))

	var spec struct {
		Info struct {
			Title string `yaml:"title"`
		} `yaml:"info"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &spec))
	assert.Equal(t, "Test API", spec.Info.Title)
}
