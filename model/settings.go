package model

type StorageType string

const (
	StorageDatabase StorageType = "DATABASE"
	StorageExcel    StorageType = "EXCEL"
)

// DefaultPasswordHash is the digest of the out-of-the-box admin password
// ("password"). The value is part of the persisted-state contract and must
// not change: stores written by earlier deployments carry it.
const DefaultPasswordHash = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"

const DefaultAdminUsername = "admin"

const DefaultOrganizationName = "White Lotus Corp"

// SystemSettings is a singleton record. StorageType is an informational
// preference only; it does not change how the store persists.
type SystemSettings struct {
	StorageType       StorageType `json:"storageType"`
	OrganizationName  string      `json:"organizationName"`
	LogoURL           string      `json:"logoUrl,omitempty"`
	AdminUsername     string      `json:"adminUsername,omitempty"`
	AdminPasswordHash string      `json:"adminPasswordHash,omitempty"`
}

func DefaultSettings() SystemSettings {
	return SystemSettings{
		StorageType:       StorageDatabase,
		OrganizationName:  DefaultOrganizationName,
		AdminUsername:     DefaultAdminUsername,
		AdminPasswordHash: DefaultPasswordHash,
	}
}

// MergeDefaults fills unset fields from DefaultSettings so settings written
// by an older build still resolve every field on read.
func (s SystemSettings) MergeDefaults() SystemSettings {
	def := DefaultSettings()
	if s.StorageType == "" {
		s.StorageType = def.StorageType
	}
	if s.OrganizationName == "" {
		s.OrganizationName = def.OrganizationName
	}
	if s.AdminUsername == "" {
		s.AdminUsername = def.AdminUsername
	}
	if s.AdminPasswordHash == "" {
		s.AdminPasswordHash = def.AdminPasswordHash
	}
	return s
}
