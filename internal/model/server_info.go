package model

// ServerInfo is the basic identity of the MinIO deployment.
type ServerInfo struct {
	Mode         string `json:"mode"`
	Region       string `json:"region,omitempty"`
	DeploymentID string `json:"deploymentId"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
