// internal/domain/models/site.go
package models

// DefaultSiteName is used anywhere a display name is needed before
// configuration has been loaded.
const DefaultSiteName = "Sovra"
