package scanner

import (
	"path/filepath"
	"strings"
)

// SyncProvider is a desktop sync client whose folder may hold online-only
// placeholders. Hashing such files forces the client to download them.
type SyncProvider int

const (
	NoSync SyncProvider = iota
	Dropbox
	GoogleDrive
	OneDrive
)

func (p SyncProvider) String() string {
	switch p {
	case Dropbox:
		return "Dropbox"
	case GoogleDrive:
		return "Google Drive"
	case OneDrive:
		return "OneDrive"
	default:
		return "none"
	}
}

// DetectSyncFolder reports which sync client, if any, manages path. A path
// segment must name the client, e.g. "Dropbox", "Dropbox (Personal)",
// "GoogleDrive-me@example.com" or "OneDrive - Contoso".
func DetectSyncFolder(path string) SyncProvider {
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		switch {
		case isSyncSegment(seg, "Dropbox"):
			return Dropbox
		case isSyncSegment(seg, "GoogleDrive"), isSyncSegment(seg, "Google Drive"):
			return GoogleDrive
		case isSyncSegment(seg, "OneDrive"):
			return OneDrive
		}
	}
	return NoSync
}

func isSyncSegment(seg, name string) bool {
	return seg == name || strings.HasPrefix(seg, name+" ") || strings.HasPrefix(seg, name+"-")
}

// SyncWarning returns the message shown before uploading from a sync folder
func SyncWarning(provider SyncProvider) string {
	return "Uploading from a " + provider.String() + " folder. Online-only files are downloaded to compute their hash."
}
