package codec

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// YAML Implements [Codec] with YAML 1.2 block style documents, emitting unicode as is
type YAML struct{}

var _ Codec = YAML{}

func (YAML) Name() string {
	return "yaml"
}

func (YAML) Marshal(v any) ([]byte, error) {
	var buffer bytes.Buffer

	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func (YAML) Unmarshal(data []byte) (any, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, err
	}

	return value, nil
}
