package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Model responses usually wrap the requested JSON in prose or markdown
// fences. decodeBracketed takes everything between the first opening bracket
// and the last closing one and parses it strictly. The slice is taken
// verbatim, so a stray bracket inside the prose can still break the parse;
// callers treat any failure as "no usable result" and move on.
func decodeBracketed(raw string, opening, closing byte, dst any) error {
	start := strings.IndexByte(raw, opening)
	end := strings.LastIndexByte(raw, closing)
	if start == -1 || end == -1 || end < start {
		return fmt.Errorf("no %c...%c block in response", opening, closing)
	}
	return json.Unmarshal([]byte(raw[start:end+1]), dst)
}

func decodeArray(raw string, dst any) error {
	return decodeBracketed(raw, '[', ']', dst)
}

func decodeObject(raw string, dst any) error {
	return decodeBracketed(raw, '{', '}', dst)
}
