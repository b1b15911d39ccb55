package types

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Defaults applied when a masterlist entry omits a field.
const (
	DefaultName   = "Unknown"
	DefaultStatus = "Unknown"
)

// LicenseID is the registry's opaque identifier. Masterlist exports carry it either as a
// JSON string or a number; both are kept as text. An absent or null id is empty.
type LicenseID string

// EntityRecord is one business entity from the filings masterlist.
type EntityRecord struct {
	LicenseID   LicenseID
	Name        string
	Status      string
	StatusDate  string
	Street      string
	City        string
	County      string
	ServiceType string
}

// UnmarshalJSON decodes an entity and fills in defaults for missing fields. Keys match
// exactly, so "Street" is not "street". Strings and numbers are kept as text; any other
// value counts as missing. A null entity is an error.
func (e *EntityRecord) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return errors.New("entity is null")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	licenseID := scalarText(fields["license_id"])
	if licenseID == nil {
		licenseID = new(string)
	}
	*e = NewEntityRecord(*licenseID,
		scalarText(fields["name"]),
		scalarText(fields["status"]),
		scalarText(fields["status_date"]),
		scalarText(fields["street"]),
		scalarText(fields["city"]),
		scalarText(fields["county"]),
		scalarText(fields["service_type"]),
	)
	return nil
}

// scalarText renders a JSON string or number as text. Absent keys, null, booleans,
// objects and arrays yield nil.
func scalarText(raw json.RawMessage) *string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		return &s
	case c == '-' || (c >= '0' && c <= '9'):
		s := string(raw)
		return &s
	}
	return nil
}

// NewEntityRecord builds an EntityRecord from optional values. A nil name or status
// becomes "Unknown"; every other nil field becomes the empty string.
func NewEntityRecord(licenseID string, name, status, statusDate, street, city, county, serviceType *string) EntityRecord {
	return EntityRecord{
		LicenseID:   LicenseID(licenseID),
		Name:        valueOr(name, DefaultName),
		Status:      valueOr(status, DefaultStatus),
		StatusDate:  valueOr(statusDate, ""),
		Street:      valueOr(street, ""),
		City:        valueOr(city, ""),
		County:      valueOr(county, ""),
		ServiceType: valueOr(serviceType, ""),
	}
}

func valueOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

// String renders the id for reports.
func (id LicenseID) String() string { return string(id) }

