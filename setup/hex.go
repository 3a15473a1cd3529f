package setup

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// decodeHexPoint decodes a hex string (with or without a "0x" prefix)
// into exactly wantLen bytes, matching the teacher's agg_kzg package's
// tolerant hex-parsing convention for compressed point fields.
func decodeHexPoint(s string, wantLen int) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %v", err)
	}
	if len(b) != wantLen {
		return nil, fmt.Errorf("expected %d bytes, got %d", wantLen, len(b))
	}
	return b, nil
}
