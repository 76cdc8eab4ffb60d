package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID   int64  `yaml:"id" json:"id"`
	Text string `yaml:"text" json:"text"`
}

func TestForPath(t *testing.T) {
	assert.Equal(t, "yaml", ForPath("records.yaml").Name())
	assert.Equal(t, "yaml", ForPath("records.yml").Name())
	assert.Equal(t, "yaml", ForPath("records").Name())
	assert.Equal(t, "json", ForPath("/data/Records.JSON").Name())
}

func TestForName(t *testing.T) {
	c, ok := ForName("JSON")
	require.True(t, ok)
	assert.Equal(t, JSON{}, c)

	c, ok = ForName("yml")
	require.True(t, ok)
	assert.Equal(t, YAML{}, c)

	_, ok = ForName("toml")
	assert.False(t, ok)
}

func TestYAMLMarshal(t *testing.T) {
	buffer, err := YAML{}.Marshal([]entry{})
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(buffer))

	buffer, err = YAML{}.Marshal([]entry{{ID: 1, Text: "Exception"}, {ID: 2, Text: "ошибка"}})
	require.NoError(t, err)
	assert.Equal(t, "- id: 1\n  text: Exception\n- id: 2\n  text: ошибка\n", string(buffer))
}

func TestYAMLUnmarshal(t *testing.T) {
	value, err := YAML{}.Unmarshal([]byte("- id: 1\n  text: a\n"))
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"id": 1, "text": "a"}}, value)

	value, err = YAML{}.Unmarshal(nil)
	require.NoError(t, err)
	assert.Nil(t, value)

	_, err = YAML{}.Unmarshal([]byte("- id: 1\n  text: \"unterminated\n"))
	assert.Error(t, err)
}

func TestJSONMarshal(t *testing.T) {
	buffer, err := JSON{}.Marshal([]entry{})
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(buffer))

	buffer, err = JSON{}.Marshal([]entry{{ID: 1, Text: "<b>&</b> ünïcode"}})
	require.NoError(t, err)
	assert.Contains(t, string(buffer), "<b>&</b> ünïcode")
	assert.Contains(t, string(buffer), "\n")
	assert.JSONEq(t, `[{"id": 1, "text": "<b>&</b> ünïcode"}]`, string(buffer))
}

func TestJSONUnmarshal(t *testing.T) {
	value, err := JSON{}.Unmarshal([]byte(`[{"id": 1, "text": "a"}]`))
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"id": json.Number("1"), "text": "a"}}, value)

	value, err = JSON{}.Unmarshal([]byte("  \n"))
	require.NoError(t, err)
	assert.Nil(t, value)

	_, err = JSON{}.Unmarshal([]byte(`[{"id": 1`))
	assert.Error(t, err)

	_, err = JSON{}.Unmarshal([]byte(`{} {}`))
	assert.Error(t, err)
}
