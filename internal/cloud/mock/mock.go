// Package mock provides an in-memory cloud.FileService for tests.
package mock

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/yukifiles/go/internal/checksum"
	"github.com/yukifiles/go/internal/cloud"
	"github.com/yukifiles/go/internal/types"
)

type fileEntry struct {
	desc types.FileDescriptor
	data []byte
	seq  int
}

// Mock stores files in memory and mimics the service's error behaviour
type Mock struct {
	mu     sync.Mutex
	files  map[string]*fileEntry
	nextID int
	fail   map[string]error
	calls  []string
}

var _ cloud.FileService = (*Mock)(nil)

// New constructs an empty store
func New() *Mock {
	return &Mock{
		files: make(map[string]*fileEntry),
		fail:  make(map[string]error),
	}
}

// Seed adds a file with the given name and content and returns its descriptor
func (m *Mock) Seed(name string, data []byte) types.FileDescriptor {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store(name, data, "")
}

// FailOn makes every later call of op return err. op is the method name,
// e.g. "ListFiles". A nil err clears the failure.
func (m *Mock) FailOn(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.fail, op)
		return
	}
	m.fail[op] = err
}

// Calls returns the names of the methods called so far
func (m *Mock) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *Mock) enter(op string) error {
	m.calls = append(m.calls, op)
	return m.fail[op]
}

func (m *Mock) store(name string, data []byte, description string) types.FileDescriptor {
	m.nextID++
	hash, _ := checksum.HashReader(strings.NewReader(string(data)), checksum.ChunkSize)
	desc := types.FileDescriptor{
		ID:          fmt.Sprintf("f%d", m.nextID),
		Name:        name,
		Size:        int64(len(data)),
		MimeType:    checksum.DetectMIME(name),
		Hash:        hash,
		Description: description,
	}
	m.files[desc.ID] = &fileEntry{desc: desc, data: append([]byte(nil), data...), seq: m.nextID}
	return desc
}

func notFound(fileID string) error {
	return &cloud.RemoteError{
		Method:     http.MethodGet,
		URL:        "/files/" + fileID,
		StatusCode: http.StatusNotFound,
		Body:       []byte(`{"error":"file not found"}`),
		Message:    "file not found",
	}
}

func (m *Mock) lookup(fileID string) (*fileEntry, error) {
	if strings.TrimSpace(fileID) == "" {
		return nil, cloud.ErrEmptyFileID
	}
	entry, ok := m.files[fileID]
	if !ok {
		return nil, notFound(fileID)
	}
	return entry, nil
}

func (m *Mock) UploadFile(localPath, description string) (*types.FileDescriptor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(localPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &cloud.NotFoundError{Path: localPath, Err: err}
		}
		return nil, &cloud.IOError{Op: "read", Path: localPath, Err: err}
	}
	if err := m.enter("UploadFile"); err != nil {
		return nil, err
	}

	desc := m.store(filepath.Base(localPath), data, description)
	return &desc, nil
}

func (m *Mock) DownloadFile(fileID, outputPath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("DownloadFile"); err != nil {
		return "", err
	}

	entry, err := m.lookup(fileID)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outputPath, entry.data, 0644); err != nil {
		return "", &cloud.IOError{Op: "write", Path: outputPath, Err: err}
	}
	return outputPath, nil
}

func (m *Mock) sorted() []types.FileDescriptor {
	entries := make([]*fileEntry, 0, len(m.files))
	for _, e := range m.files {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	files := make([]types.FileDescriptor, 0, len(entries))
	for _, e := range entries {
		files = append(files, e.desc)
	}
	return files
}

func (m *Mock) ListFiles(limit, offset int) ([]types.FileDescriptor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("ListFiles"); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = cloud.DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	all := m.sorted()
	if offset >= len(all) {
		return []types.FileDescriptor{}, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (m *Mock) GetFileInfo(fileID string) (*types.FileDescriptor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("GetFileInfo"); err != nil {
		return nil, err
	}

	entry, err := m.lookup(fileID)
	if err != nil {
		return nil, err
	}
	desc := entry.desc
	return &desc, nil
}

func (m *Mock) UpdateFile(fileID string, req types.UpdateRequest) (*types.FileDescriptor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("UpdateFile"); err != nil {
		return nil, err
	}

	entry, err := m.lookup(fileID)
	if err != nil {
		return nil, err
	}
	body := req.Body()
	if name, ok := body["name"]; ok {
		entry.desc.Name = name
	}
	if description, ok := body["description"]; ok {
		entry.desc.Description = description
	}
	desc := entry.desc
	return &desc, nil
}

func (m *Mock) DeleteFile(fileID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("DeleteFile"); err != nil {
		return false, err
	}

	if _, err := m.lookup(fileID); err != nil {
		return false, err
	}
	delete(m.files, fileID)
	return true, nil
}

func (m *Mock) CreateShareLink(fileID string, req types.ShareRequest) (*types.ShareLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("CreateShareLink"); err != nil {
		return nil, err
	}

	if _, err := m.lookup(fileID); err != nil {
		return nil, err
	}
	body := req.Body()
	_, protected := body["password"]
	return &types.ShareLink{
		URL:               "https://yukifiles.test/s/" + fileID,
		ExpiresIn:         body["expires_in"],
		PasswordProtected: protected,
	}, nil
}

func (m *Mock) SearchFiles(filter types.SearchFilter) ([]types.FileDescriptor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("SearchFiles"); err != nil {
		return nil, err
	}

	query := strings.ToLower(filter.Query)
	matches := []types.FileDescriptor{}
	for _, f := range m.sorted() {
		if !strings.Contains(strings.ToLower(f.Name), query) {
			continue
		}
		if filter.FileType != "" && f.MimeType != filter.FileType {
			continue
		}
		if filter.MinSize > 0 && f.Size < filter.MinSize {
			continue
		}
		if filter.MaxSize > 0 && f.Size > filter.MaxSize {
			continue
		}
		matches = append(matches, f)
	}
	return matches, nil
}

// Content returns the stored bytes of a file
func (m *Mock) Content(fileID string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.files[fileID]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), entry.data...), true
}
