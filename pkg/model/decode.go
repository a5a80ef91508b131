package model

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode parses a building model from JSON. Legacy encodings are accepted
// as-is: unit and position normalization happens lazily in the accessor
// methods, so the decoded struct mirrors the wire data. The only repair
// made here is filling missing floor indices from slice order.
func Decode(data []byte) (*BuildingModel, error) {
	var m BuildingModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode building model: %w", err)
	}
	for i := range m.Floors {
		if m.Floors[i].Index == 0 && i > 0 {
			m.Floors[i].Index = i
		}
	}
	return &m, nil
}

// DecodeReader reads r to completion and decodes a building model from it.
func DecodeReader(r io.Reader) (*BuildingModel, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read building model: %w", err)
	}
	return Decode(data)
}
