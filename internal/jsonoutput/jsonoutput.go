package jsonoutput

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yukifiles/go/internal/types"
)

// FromUploads splits batch upload results into uploaded and failed entries.
// Paths are made relative to baseDir when possible.
func FromUploads(results []types.UploadResult, baseDir string) *types.UploadOutput {
	output := &types.UploadOutput{
		Uploaded: []types.UploadResult{},
		Failed:   []types.UploadResult{},
	}

	for _, res := range results {
		res.Path = makeRelativePath(res.Path, baseDir)
		if res.Error != "" {
			output.Failed = append(output.Failed, res)
		} else {
			output.Uploaded = append(output.Uploaded, res)
		}
	}

	// Sort by path for deterministic output
	sort.Slice(output.Failed, func(i, j int) bool {
		return output.Failed[i].Path < output.Failed[j].Path
	})

	return output
}

// ToJSON converts v to an indented JSON string
func ToJSON(v any) (string, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("JSON serialization failed: %w", err)
	}
	return string(jsonBytes), nil
}

// makeRelativePath converts an absolute path to a relative path using forward slashes
func makeRelativePath(path, baseDir string) string {
	if baseDir == "" {
		return filepath.ToSlash(path)
	}

	relPath, err := filepath.Rel(baseDir, path)
	if err != nil || strings.HasPrefix(relPath, "..") {
		// Outside baseDir: keep the path as given
		relPath = path
	}

	return strings.ReplaceAll(relPath, "\\", "/")
}
