package cloud

import (
	"errors"
	"fmt"
	"net/http"
	"os"
)

// ErrEmptyFileID is returned when an operation is called without a file id
var ErrEmptyFileID = errors.New("cloud: file id is required")

// ConfigurationError reports a missing or invalid client setting
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cloud: invalid configuration: %s %s", e.Field, e.Reason)
}

// NotFoundError reports a local file that does not exist
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cloud: file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// RemoteError represents a non-2xx response from the API
type RemoteError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("cloud: %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("cloud: %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, string(e.Body))
}

// IOError reports a local read or write failure
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cloud: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NetworkError wraps a transport failure: no HTTP response was received
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cloud: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err came from the transport layer
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsAPIError reports whether err came from talking to the service: a
// transport failure or a non-2xx response.
func IsAPIError(err error) bool {
	var remote *RemoteError
	return IsNetworkError(err) || errors.As(err, &remote)
}

// IsNotFound reports whether err is a missing local file or a remote 404
func IsNotFound(err error) bool {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return true
	}
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.StatusCode == http.StatusNotFound
	}
	return errors.Is(err, os.ErrNotExist)
}

// StatusCode returns the HTTP status of a RemoteError, or 0
func StatusCode(err error) int {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.StatusCode
	}
	return 0
}
