package models

type UserRole string

const (
	RoleUser   UserRole = "user"
	RoleVendor UserRole = "vendor"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// SiteSettings are the admin-configurable feature flags.
type SiteSettings struct {
	EnableBundles       bool `json:"enable_bundles"`
	EnableBooking       bool `json:"enable_booking"`
	EnableAISuggestions bool `json:"enable_ai_suggestions"`
	DefaultDarkMode     bool `json:"default_dark_mode"`
}

func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		EnableBundles:       true,
		EnableBooking:       true,
		EnableAISuggestions: true,
		DefaultDarkMode:     false,
	}
}
