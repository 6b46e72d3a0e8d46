package sync

import "time"

// keyTimeLayout orders object names lexicographically by creation time.
const keyTimeLayout = "20060102T150405Z"

// BackupEntry describes one stored backup object.
type BackupEntry struct {
	Key          string
	LastModified time.Time
	Size         int64
}
