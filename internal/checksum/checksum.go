package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// ChunkSize is the read size used when hashing files
const ChunkSize = 4096

// DefaultMIMEType is reported when the type cannot be inferred
const DefaultMIMEType = "application/octet-stream"

// HashFile calculates the SHA-256 hash of a file, reading it in ChunkSize pieces
func HashFile(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	return HashReader(file, ChunkSize)
}

// HashReader streams r through SHA-256 using a buffer of chunkSize bytes
// and returns the lowercase hex digest.
func HashReader(r io.Reader, chunkSize int) (string, error) {
	if chunkSize <= 0 {
		chunkSize = ChunkSize
	}

	hash := sha256.New()
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			hash.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// DetectMIME infers a media type from the file name. Parameters such as
// charset are dropped.
func DetectMIME(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return DefaultMIMEType
	}

	typ := mime.TypeByExtension(ext)
	if typ == "" {
		return DefaultMIMEType
	}

	mediaType, _, err := mime.ParseMediaType(typ)
	if err != nil {
		return DefaultMIMEType
	}
	return mediaType
}
