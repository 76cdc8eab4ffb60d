package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/tidwall/pretty"
)

// JSON Implements [Codec] with indented JSON documents. Numbers are decoded as
// [json.Number] so integer ids keep their type
type JSON struct{}

var _ Codec = JSON{}

func (JSON) Name() string {
	return "json"
}

func (JSON) Marshal(v any) ([]byte, error) {
	var buffer bytes.Buffer

	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return nil, err
	}

	return pretty.Pretty(buffer.Bytes()), nil
}

func (JSON) Unmarshal(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	// A second value means trailing garbage after the document
	if err := decoder.Decode(new(any)); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}

		return nil, err
	}

	return value, nil
}
