package mocks

import (
	"context"
	"mahalo/infras/s3"
)

// StaticS3 serves a fixed image set per room for tests.
type StaticS3 struct {
	Images map[string][]string
}

func NewStaticS3() *StaticS3 {
	return &StaticS3{
		Images: map[string][]string{},
	}
}

// ListRoomImages implements s3.S3.
func (s *StaticS3) ListRoomImages(_ context.Context, roomID string) ([]string, error) {
	return s.Images[roomID], nil
}

var _ s3.S3 = (*StaticS3)(nil)
