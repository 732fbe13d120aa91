package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// MinIOTLS builds a *tls.Config for HTTPS MinIO endpoints.
// Returns nil, nil when nothing beyond the system defaults is configured.
func (c *Config) MinIOTLS() (*tls.Config, error) {
	m := c.MinIO
	if m.CACert == "" && m.ClientCert == "" && m.ClientKey == "" && !m.InsecureSkipVerify {
		return nil, nil
	}

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: m.InsecureSkipVerify, //nolint:gosec // opt-in for self-signed lab clusters
	}

	if m.ClientCert != "" || m.ClientKey != "" {
		cert, err := tls.LoadX509KeyPair(m.ClientCert, m.ClientKey)
		if err != nil {
			return nil, fmt.Errorf("load minio client cert: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	if m.CACert != "" {
		caPEM, err := os.ReadFile(m.CACert)
		if err != nil {
			return nil, fmt.Errorf("read minio CA cert: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caPEM) {
			return nil, fmt.Errorf("failed to parse minio CA cert")
		}
		tlsConfig.RootCAs = pool
	}

	return tlsConfig, nil
}
