package floorplan

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Scan payload types.
const (
	ScanRoofRef = "roofRef"
	ScanManual  = "manual"
)

// ScanPayload is the JSON carried by a ceiling tag or typed in by hand:
//
//	{"type": "roofRef", "code": "A101", "timestamp": "2024-05-01T10:00:00.000Z"}
type ScanPayload struct {
	Type      string    `json:"type"`
	Code      string    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
}

// ParseScan decodes and checks a scan payload. The timestamp is optional.
func ParseScan(data []byte) (ScanPayload, error) {
	var p ScanPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return ScanPayload{}, fmt.Errorf("%w: %v", ErrScanPayload, err)
	}
	p.Code = strings.TrimSpace(p.Code)
	if p.Code == "" {
		return ScanPayload{}, fmt.Errorf("%w: missing code", ErrScanPayload)
	}
	switch p.Type {
	case ScanRoofRef, ScanManual:
	default:
		return ScanPayload{}, fmt.Errorf("%w: unknown type %q", ErrScanPayload, p.Type)
	}
	return p, nil
}

// ResolveScan maps a payload to a Location. A roofRef payload must name a
// known roof reference; a manual payload goes through Resolve.
func (d *Directory) ResolveScan(p ScanPayload) (Location, error) {
	switch p.Type {
	case ScanRoofRef:
		if r, ok := d.RoofRef(p.Code); ok {
			return r, nil
		}
		return nil, fmt.Errorf("%w: roof reference %q", ErrLocationNotFound, p.Code)
	case ScanManual:
		return d.Resolve(p.Code)
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrScanPayload, p.Type)
	}
}
