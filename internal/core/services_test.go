package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	admin := &mockAdmin{}
	s3c := &mockS3{}
	services := NewServices(admin, s3c)

	require.NotNil(t, services)
	assert.Equal(t, admin, services.ServerInfo.admin)
	assert.Equal(t, admin, services.AccessKey.admin)
	assert.Equal(t, admin, services.SiteReplication.admin)
	assert.Equal(t, s3c, services.Bucket.s3)
}
