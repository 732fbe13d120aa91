package model

// SiteReplicationInfo describes the site replication group this deployment
// belongs to, if any.
type SiteReplicationInfo struct {
	Enabled bool       `json:"enabled"`
	Name    string     `json:"name,omitempty"`
	Sites   []PeerSite `json:"sites"`
}

// PeerSite is one member of a site replication group.
type PeerSite struct {
	Name         string `json:"name"`
	Endpoint     string `json:"endpoint"`
	DeploymentID string `json:"deploymentId"`
}
