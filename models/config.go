package models

// ConfigPasswordField is the site config key holding the admin password.
// It must never appear in a response payload.
const ConfigPasswordField = "adminPassword"

// DefaultAdminPassword is used when the stored config has no password set.
const DefaultAdminPassword = "admin"

// SiteConfig is the single free-form site configuration record: site
// metadata, color theme and the admin password. It is kept schemaless so
// that updates merge caller-supplied keys over the stored record.
type SiteConfig map[string]any

// Password returns the stored admin password, falling back to the default
// when the field is absent or not a string.
func (c SiteConfig) Password() string {
	if v, ok := c[ConfigPasswordField].(string); ok && v != "" {
		return v
	}
	return DefaultAdminPassword
}

// Sanitized returns a copy of the config with the password field removed.
func (c SiteConfig) Sanitized() SiteConfig {
	out := make(SiteConfig, len(c))
	for k, v := range c {
		if k == ConfigPasswordField {
			continue
		}
		out[k] = v
	}
	return out
}

// Merge returns a copy of the config with the update's keys layered on
// top. The stored password is preserved when the update omits it.
func (c SiteConfig) Merge(update SiteConfig) SiteConfig {
	out := make(SiteConfig, len(c)+len(update))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range update {
		out[k] = v
	}
	if _, ok := update[ConfigPasswordField]; !ok {
		if existing, ok := c[ConfigPasswordField]; ok {
			out[ConfigPasswordField] = existing
		}
	}
	return out
}
