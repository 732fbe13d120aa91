package infra

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/edvin/minio-lite-admin/internal/config"
)

// AdminClient adapts *madmin.AdminClient to the narrow set of calls the
// core services depend on.
type AdminClient struct {
	client *madmin.AdminClient
}

// NewMinIOAdmin creates a MinIO admin client from the MinIO section of cfg.
func NewMinIOAdmin(cfg *config.Config) (*AdminClient, error) {
	endpoint, err := url.Parse(cfg.MinIO.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid MinIO URL: %w", err)
	}

	transport, err := newTransport(cfg)
	if err != nil {
		return nil, err
	}

	opts := &madmin.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.RootUser, cfg.MinIO.Password, ""),
		Secure: endpoint.Scheme == "https",
	}
	if transport != nil {
		opts.Transport = transport
	}

	client, err := madmin.NewWithOptions(endpoint.Host, opts)
	if err != nil {
		return nil, fmt.Errorf("create MinIO admin client: %w", err)
	}

	return &AdminClient{client: client}, nil
}

func (a *AdminClient) ServerInfo(ctx context.Context) (madmin.InfoMessage, error) {
	return a.client.ServerInfo(ctx)
}

func (a *AdminClient) ListUsers(ctx context.Context) (map[string]madmin.UserInfo, error) {
	return a.client.ListUsers(ctx)
}

func (a *AdminClient) ListAccessKeysBulk(ctx context.Context, users []string, opts madmin.ListAccessKeysOpts) (map[string]madmin.ListAccessKeysResp, error) {
	return a.client.ListAccessKeysBulk(ctx, users, opts)
}

func (a *AdminClient) AddServiceAccount(ctx context.Context, req madmin.AddServiceAccountReq) (madmin.Credentials, error) {
	return a.client.AddServiceAccount(ctx, req)
}

func (a *AdminClient) UpdateServiceAccount(ctx context.Context, accessKey string, req madmin.UpdateServiceAccountReq) error {
	return a.client.UpdateServiceAccount(ctx, accessKey, req)
}

func (a *AdminClient) DeleteServiceAccount(ctx context.Context, accessKey string) error {
	return a.client.DeleteServiceAccount(ctx, accessKey)
}

func (a *AdminClient) SiteReplicationInfo(ctx context.Context) (madmin.SiteReplicationInfo, error) {
	return a.client.SiteReplicationInfo(ctx)
}

// newTransport returns a transport carrying the configured TLS settings, or
// nil when the SDK defaults apply.
func newTransport(cfg *config.Config) (*http.Transport, error) {
	tlsConfig, err := cfg.MinIOTLS()
	if err != nil {
		return nil, err
	}
	if tlsConfig == nil {
		return nil, nil
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig
	transport.ResponseHeaderTimeout = 60 * time.Second
	return transport, nil
}
