package content

import (
	"bytes"
	stdjson "encoding/json"
)

// Encode serializes a document the way it is offered for download
func Encode(v interface{}) ([]byte, error) {
	compact, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	// re-indent, custom marshalers are not indented by the encoder
	var buf bytes.Buffer
	if err := stdjson.Indent(&buf, compact, "", Indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
