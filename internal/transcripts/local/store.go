package local

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"interview-backend/internal/shared/util"
	"interview-backend/internal/transcripts"
)

// Store implements transcripts.Sink using the local filesystem. Each
// transcript is written as a single pretty-printed JSON file.
type Store struct {
	baseDir string
}

// New creates a local transcript store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save writes the transcript to disk and returns the file name as reference.
func (s *Store) Save(ctx context.Context, sessionID string, transcript transcripts.Transcript) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := util.SanitizeFileName(transcript.ParticipantName)
	if err != nil {
		name = sessionID
	}
	fileName := fmt.Sprintf("interview_log_%s_%s.json", name, time.Now().UTC().Format("20060102_150405"))

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", s.baseDir, err)
	}

	data, err := json.MarshalIndent(transcript, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal transcript: %w", err)
	}

	fullPath := filepath.Join(s.baseDir, fileName)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write transcript %s: %w", fullPath, err)
	}

	return fileName, nil
}

var _ transcripts.Sink = (*Store)(nil)
