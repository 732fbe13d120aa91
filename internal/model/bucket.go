package model

import "time"

// Bucket is an S3 bucket visible to the admin credentials.
type Bucket struct {
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// BucketsResponse is the envelope returned by GET /api/buckets.
type BucketsResponse struct {
	Buckets []Bucket `json:"buckets"`
	Total   int      `json:"total"`
}
