// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface so the feed refresh
// path can be tested against mocks (see core/storage/mocks). Both AWS S3 and
// self-hosted MinIO instances are supported.
//
// # Operations
//
//   - BucketExists / MakeBucket: used by EnsureBucket at startup.
//   - PutObject: uploads a dataset feed.
//   - GetObject: retrieves a feed as a stream.
//   - ListObjects: lists the feeds present under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, config.Bucket, config.Region)
package storage
