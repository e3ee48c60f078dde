package types

import (
	"time"
)

// DefaultBaseURL is the public YukiFiles API endpoint
const DefaultBaseURL = "https://api.yukifiles.com/v1"

// FileDescriptor represents a file stored on the remote service
type FileDescriptor struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Size        int64      `json:"size"`
	MimeType    string     `json:"mime_type"`
	Hash        string     `json:"hash"`
	Description string     `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// UploadSession is returned by the service when an upload is registered
type UploadSession struct {
	UploadURL string            `json:"upload_url"`
	Headers   map[string]string `json:"headers"`
	File      FileDescriptor    `json:"file"`
}

// ShareLink represents a shareable link for a file
type ShareLink struct {
	URL               string     `json:"url"`
	ExpiresIn         string     `json:"expires_in,omitempty"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	PasswordProtected bool       `json:"password_protected"`
}

// UploadRequest is the metadata registered before the file bytes are sent
type UploadRequest struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	Type        string `json:"type"`
	Hash        string `json:"hash"`
	Description string `json:"description,omitempty"`
}

// UpdateRequest holds the optional fields of a metadata update.
// Empty fields are never sent.
type UpdateRequest struct {
	Name        string
	Description string
}

// Body returns the partial update payload
func (r UpdateRequest) Body() map[string]string {
	body := map[string]string{}
	if r.Name != "" {
		body["name"] = r.Name
	}
	if r.Description != "" {
		body["description"] = r.Description
	}
	return body
}

// DefaultShareExpiry is used when no expiry is given
const DefaultShareExpiry = "7d"

// ShareRequest describes a share link to create
type ShareRequest struct {
	ExpiresIn string
	Password  string
}

// Body returns the share payload; password is omitted when empty
func (r ShareRequest) Body() map[string]string {
	expiresIn := r.ExpiresIn
	if expiresIn == "" {
		expiresIn = DefaultShareExpiry
	}
	body := map[string]string{"expires_in": expiresIn}
	if r.Password != "" {
		body["password"] = r.Password
	}
	return body
}

// SearchFilter narrows a file search. Zero values are not sent.
type SearchFilter struct {
	Query    string
	FileType string
	MinSize  int64
	MaxSize  int64
}

// LocalFile is a file found on disk that can be uploaded
type LocalFile struct {
	Path         string    `json:"path"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	ModifiedTime time.Time `json:"modified_time"`
}

// UploadResult records the outcome of a single file in a batch upload
type UploadResult struct {
	Path  string          `json:"path"`
	File  *FileDescriptor `json:"file,omitempty"`
	Error string          `json:"error,omitempty"`
}

// UploadOutput is the JSON document printed after a batch upload
type UploadOutput struct {
	Uploaded []UploadResult `json:"uploaded"`
	Failed   []UploadResult `json:"failed"`
}

// Config holds the client configuration
type Config struct {
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}
