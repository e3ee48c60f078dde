package cloud

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/yukifiles/go/internal/types"
)

// DefaultListLimit is the page size used when none is given
const DefaultListLimit = 50

type fileList struct {
	Files []types.FileDescriptor `json:"files"`
}

// ListFiles returns one page of the user's files. A page shorter than
// limit marks the end of the listing.
func (c *Client) ListFiles(limit, offset int) ([]types.FileDescriptor, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var list fileList
	if err := c.doJSON(http.MethodGet, "/files", query, nil, &list); err != nil {
		return nil, err
	}
	return nonNil(list.Files), nil
}

// GetFileInfo returns the metadata of a single file
func (c *Client) GetFileInfo(fileID string) (*types.FileDescriptor, error) {
	path, err := filePath(fileID, "")
	if err != nil {
		return nil, err
	}

	var file types.FileDescriptor
	if err := c.doJSON(http.MethodGet, path, nil, nil, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// UpdateFile changes the name and/or description of a file. Fields left
// empty in req are not sent, so they keep their server-side value.
func (c *Client) UpdateFile(fileID string, req types.UpdateRequest) (*types.FileDescriptor, error) {
	path, err := filePath(fileID, "")
	if err != nil {
		return nil, err
	}

	var file types.FileDescriptor
	if err := c.doJSON(http.MethodPut, path, nil, req.Body(), &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// DeleteFile removes a file. It returns true on success; a failed call is
// always reported as an error.
func (c *Client) DeleteFile(fileID string) (bool, error) {
	path, err := filePath(fileID, "")
	if err != nil {
		return false, err
	}

	resp, err := c.do(http.MethodDelete, path, nil, nil)
	if err != nil {
		return false, err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return true, nil
}

// CreateShareLink creates a shareable link for a file
func (c *Client) CreateShareLink(fileID string, req types.ShareRequest) (*types.ShareLink, error) {
	path, err := filePath(fileID, "/share")
	if err != nil {
		return nil, err
	}

	var link types.ShareLink
	if err := c.doJSON(http.MethodPost, path, nil, req.Body(), &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// SearchFiles searches files by name. Only the filters that are set are sent.
func (c *Client) SearchFiles(filter types.SearchFilter) ([]types.FileDescriptor, error) {
	query := url.Values{}
	query.Set("q", filter.Query)
	if filter.FileType != "" {
		query.Set("type", filter.FileType)
	}
	if filter.MinSize > 0 {
		query.Set("min_size", strconv.FormatInt(filter.MinSize, 10))
	}
	if filter.MaxSize > 0 {
		query.Set("max_size", strconv.FormatInt(filter.MaxSize, 10))
	}

	var list fileList
	if err := c.doJSON(http.MethodGet, "/files/search", query, nil, &list); err != nil {
		return nil, err
	}
	return nonNil(list.Files), nil
}

// DownloadFile writes the content of a file to outputPath, replacing any
// existing file. Nothing is written when the API call fails.
func (c *Client) DownloadFile(fileID, outputPath string) (string, error) {
	path, err := filePath(fileID, "/download")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(outputPath) == "" {
		return "", &IOError{Op: "write", Path: outputPath, Err: fmt.Errorf("output path is required")}
	}

	resp, err := c.do(http.MethodGet, path, nil, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return "", &IOError{Op: "create", Path: outputPath, Err: err}
	}

	n, err := io.Copy(out, resp.Body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if removeErr := os.Remove(outputPath); removeErr != nil {
			log.Warn().Err(removeErr).Str("path", outputPath).Msg("Could not remove partial download")
		}
		return "", &IOError{Op: "write", Path: outputPath, Err: err}
	}

	log.Debug().Str("file_id", fileID).Str("path", outputPath).Int64("bytes", n).Msg("Downloaded file")
	return outputPath, nil
}

func nonNil(files []types.FileDescriptor) []types.FileDescriptor {
	if files == nil {
		return []types.FileDescriptor{}
	}
	return files
}
