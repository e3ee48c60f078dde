package cloud

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/yukifiles/go/internal/checksum"
	"github.com/yukifiles/go/internal/types"
)

// UploadFile registers a local file with the service and then sends its
// content to the pre-signed URL of the returned session. If the second step
// fails the registered session is left on the server.
func (c *Client) UploadFile(localPath, description string) (*types.FileDescriptor, error) {
	info, err := os.Stat(localPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Path: localPath, Err: err}
		}
		return nil, &IOError{Op: "stat", Path: localPath, Err: err}
	}
	if info.IsDir() {
		return nil, &IOError{Op: "read", Path: localPath, Err: fmt.Errorf("is a directory")}
	}

	hash, err := checksum.HashFile(localPath)
	if err != nil {
		return nil, &IOError{Op: "hash", Path: localPath, Err: err}
	}

	name := filepath.Base(localPath)
	meta := types.UploadRequest{
		Name:        name,
		Size:        info.Size(),
		Type:        checksum.DetectMIME(name),
		Hash:        hash,
		Description: description,
	}

	var session types.UploadSession
	if err := c.doJSON(http.MethodPost, "/uploads", nil, meta, &session); err != nil {
		return nil, err
	}
	if strings.TrimSpace(session.UploadURL) == "" {
		return nil, fmt.Errorf("cloud: upload session for %s has no upload_url", name)
	}

	log.Debug().Str("name", name).Int64("size", meta.Size).Str("hash", hash).Msg("Upload session created")

	if err := c.sendFile(&session, localPath, meta); err != nil {
		return nil, err
	}

	file := session.File
	return &file, nil
}

// sendFile posts the file as multipart form data using only the headers
// supplied by the session. The upload URL is redacted in returned errors
// since its query string carries the signature.
func (c *Client) sendFile(session *types.UploadSession, localPath string, meta types.UploadRequest) error {
	f, err := os.Open(localPath)
	if err != nil {
		return &IOError{Op: "open", Path: localPath, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return &IOError{Op: "stat", Path: localPath, Err: err}
	}
	if info.Size() != meta.Size {
		return &IOError{Op: "read", Path: localPath, Err: fmt.Errorf("file changed during upload: registered %d bytes, now %d", meta.Size, info.Size())}
	}

	head, tail, contentType, err := multipartFrame(meta.Name, meta.Type)
	if err != nil {
		return fmt.Errorf("cloud: build multipart body: %w", err)
	}

	redacted := redactURL(session.UploadURL)
	body := io.MultiReader(bytes.NewReader(head), f, bytes.NewReader(tail))
	req, err := http.NewRequest(http.MethodPost, session.UploadURL, body)
	if err != nil {
		return fmt.Errorf("cloud: build upload request for %s: invalid upload_url", redacted)
	}
	req.ContentLength = int64(len(head)) + info.Size() + int64(len(tail))
	req.Header.Set("Content-Type", contentType)
	for k, v := range session.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.uploadClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = redacted
		}
		return &NetworkError{Method: http.MethodPost, URL: redacted, Err: err}
	}
	if err := checkResponse(resp); err != nil {
		var remote *RemoteError
		if errors.As(err, &remote) {
			remote.URL = redacted
		}
		return err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	log.Debug().Str("name", meta.Name).Int("status", resp.StatusCode).Msg("File content uploaded")
	return nil
}

// redactURL drops the query and fragment of a pre-signed URL
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid upload_url>"
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.User = nil
	return u.String()
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// multipartFrame returns the bytes that go before and after the file content
// in a single-part form with field name "file".
func multipartFrame(filename, mimeType string) ([]byte, []byte, string, error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(filename)))
	h.Set("Content-Type", mimeType)
	if _, err := mw.CreatePart(h); err != nil {
		return nil, nil, "", err
	}
	head := append([]byte(nil), buf.Bytes()...)

	buf.Reset()
	if err := mw.Close(); err != nil {
		return nil, nil, "", err
	}
	tail := append([]byte(nil), buf.Bytes()...)

	return head, tail, mw.FormDataContentType(), nil
}
