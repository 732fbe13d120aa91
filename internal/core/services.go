package core

type Services struct {
	ServerInfo      *ServerInfoService
	AccessKey       *AccessKeyService
	SiteReplication *SiteReplicationService
	Bucket          *BucketService
}

func NewServices(admin AdminAPI, s3c S3API) *Services {
	return &Services{
		ServerInfo:      NewServerInfoService(admin),
		AccessKey:       NewAccessKeyService(admin),
		SiteReplication: NewSiteReplicationService(admin),
		Bucket:          NewBucketService(s3c),
	}
}
