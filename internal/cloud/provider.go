package cloud

import (
	"github.com/yukifiles/go/internal/types"
)

// FileService is the set of remote file operations used by the CLI and TUI
type FileService interface {
	UploadFile(localPath, description string) (*types.FileDescriptor, error)
	DownloadFile(fileID, outputPath string) (string, error)
	ListFiles(limit, offset int) ([]types.FileDescriptor, error)
	GetFileInfo(fileID string) (*types.FileDescriptor, error)
	UpdateFile(fileID string, req types.UpdateRequest) (*types.FileDescriptor, error)
	DeleteFile(fileID string) (bool, error)
	CreateShareLink(fileID string, req types.ShareRequest) (*types.ShareLink, error)
	SearchFiles(filter types.SearchFilter) ([]types.FileDescriptor, error)
}

var _ FileService = (*Client)(nil)
