package advisor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// KnowledgeFile is a reference document uploaded to the Files API and made
// available to the model for grounding answers.
type KnowledgeFile struct {
	Name        string
	DisplayName string
	URI         string
	MIMEType    string
}

var knowledgeMIMETypes = map[string]string{
	".pdf": "application/pdf",
	".txt": "text/plain",
	".md":  "text/markdown",
}

const knowledgePollInterval = 2 * time.Second

// UploadKnowledgeDir uploads every supported document in dir and waits for
// each to finish server-side processing. Files that fail to upload or
// process are logged and skipped so one bad PDF does not sink the session.
func (c *GeminiClient) UploadKnowledgeDir(ctx context.Context, dir string) ([]KnowledgeFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge directory: %w", err)
	}

	var files []KnowledgeFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		mimeType, ok := knowledgeMIMETypes[strings.ToLower(filepath.Ext(entry.Name()))]
		if !ok {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		kf, err := c.uploadAndWait(ctx, path, entry.Name(), mimeType)
		if err != nil {
			c.log.Warn("skipping knowledge file",
				zap.String("file", entry.Name()),
				zap.Error(err))
			continue
		}
		c.log.Info("knowledge file ready",
			zap.String("file", kf.DisplayName),
			zap.String("uri", kf.URI))
		files = append(files, *kf)
	}
	return files, nil
}

func (c *GeminiClient) uploadAndWait(ctx context.Context, path, displayName, mimeType string) (*KnowledgeFile, error) {
	file, err := c.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType:    mimeType,
		DisplayName: displayName,
	})
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	for file.State == genai.FileStateProcessing {
		select {
		case <-time.After(knowledgePollInterval):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		file, err = c.client.Files.Get(ctx, file.Name, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to poll file state: %w", err)
		}
	}
	if file.State == genai.FileStateFailed {
		return nil, fmt.Errorf("server-side processing failed")
	}

	return &KnowledgeFile{
		Name:        file.Name,
		DisplayName: displayName,
		URI:         file.URI,
		MIMEType:    mimeType,
	}, nil
}
