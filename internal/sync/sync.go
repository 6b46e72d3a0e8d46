// Package sync copies organization documents between the local store
// and an S3 bucket, for backup and restore across machines.
package sync

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Paintersrp/studio/internal/config"
)

// Dedicated backup credentials override the ambient AWS chain when both
// are set.
const (
	accessKeyEnv = "STUDIO_BACKUP_ACCESS_KEY_ID"
	secretKeyEnv = "STUDIO_BACKUP_SECRET_ACCESS_KEY"
)

type Syncer struct {
	client     *s3.Client
	uploader   *manager.Uploader
	downloader *manager.Downloader
	bucket     string
	prefix     string
}

func NewSyncer(ctx context.Context, backup config.BackupConfig) (*Syncer, error) {
	if backup.Bucket == "" {
		return nil, fmt.Errorf("backup bucket is not configured; set one with 'studio org backup --bucket'")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if backup.Region != "" {
		opts = append(opts, awsconfig.WithRegion(backup.Region))
	}
	if access, secret := os.Getenv(accessKeyEnv), os.Getenv(secretKeyEnv); access != "" && secret != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(access, secret, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	return &Syncer{
		client:     client,
		uploader:   manager.NewUploader(client),
		downloader: manager.NewDownloader(client),
		bucket:     backup.Bucket,
		prefix:     strings.Trim(backup.Prefix, "/"),
	}, nil
}

// Backup uploads a document under a timestamped key and returns the
// key.
func (s *Syncer) Backup(ctx context.Context, doc []byte) (string, error) {
	name := fmt.Sprintf("organization-%s.json", time.Now().UTC().Format(keyTimeLayout))
	key := s.objectKey(name)

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(doc),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("uploading backup: %w", err)
	}

	return key, nil
}

// Restore downloads the document at key, resolving an empty key to the
// most recent backup. The resolved key is returned alongside the bytes.
func (s *Syncer) Restore(ctx context.Context, key string) ([]byte, string, error) {
	if key == "" {
		latest, err := s.latestKey(ctx)
		if err != nil {
			return nil, "", err
		}
		key = latest
	}

	buf := manager.NewWriteAtBuffer(nil)
	if _, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return nil, "", fmt.Errorf("downloading backup %s: %w", key, err)
	}

	return buf.Bytes(), key, nil
}

// List returns the stored backups, newest first.
func (s *Syncer) List(ctx context.Context) ([]BackupEntry, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	if s.prefix != "" {
		input.Prefix = aws.String(s.prefix + "/")
	}

	var entries []BackupEntry
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing backups: %w", err)
		}
		for _, obj := range page.Contents {
			if obj.Key == nil || !strings.HasSuffix(*obj.Key, ".json") {
				continue
			}
			entry := BackupEntry{Key: *obj.Key}
			if obj.LastModified != nil {
				entry.LastModified = *obj.LastModified
			}
			if obj.Size != nil {
				entry.Size = *obj.Size
			}
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LastModified.After(entries[j].LastModified)
	})

	return entries, nil
}

func (s *Syncer) latestKey(ctx context.Context) (string, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("no backups found in bucket %s", s.bucket)
	}
	return entries[0].Key, nil
}

func (s *Syncer) objectKey(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}
