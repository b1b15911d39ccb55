package types

// TargetRecord is an eligible entity enriched with a registered-agent search link.
type TargetRecord struct {
	LicenseID   LicenseID
	Name        string
	Status      string
	StatusDate  string
	City        string
	County      string
	ServiceType string
	DeepLink    string
}

// TargetHeader lists the targets report columns in TargetRecord field order.
var TargetHeader = []string{
	"License_ID", "Name", "Status", "Status_Date", "City", "County", "Service_Type", "MBLS_Deep_Link",
}

// Row returns the record's CSV cells in TargetHeader order.
func (t TargetRecord) Row() []string {
	return []string{
		t.LicenseID.String(), t.Name, t.Status, t.StatusDate, t.City, t.County, t.ServiceType, t.DeepLink,
	}
}

// GhostOfficeRecord is an entity registered without a usable street address.
type GhostOfficeRecord struct {
	LicenseID LicenseID
	Name      string
	Status    string
	Address   string
}

// GhostOfficeHeader lists the ghost-office report columns.
var GhostOfficeHeader = []string{"License_ID", "Name", "Status", "Address"}

// Row returns the record's CSV cells in GhostOfficeHeader order.
func (g GhostOfficeRecord) Row() []string {
	return []string{g.LicenseID.String(), g.Name, g.Status, g.Address}
}
