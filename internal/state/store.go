package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/morningbot/morning-signin-bot/internal/domain/entity"
)

// FileStore persists the outstanding message state as a small JSON
// file so it survives process restarts.
type FileStore struct {
	path string
}

func New(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the tracked message state. A missing file means no
// message is outstanding and returns (nil, nil). A corrupted or
// incomplete file is removed so the next cycle starts clean.
func (s *FileStore) Load() (*entity.MessageState, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	st := &entity.MessageState{}
	if err := json.Unmarshal(data, st); err != nil {
		s.removeCorrupted()
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	if !st.IsValid() {
		s.removeCorrupted()
		return nil, nil
	}

	return st, nil
}

func (s *FileStore) Save(st entity.MessageState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// Clear removes the state file. Clearing already-cleared state is not
// an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}

func (s *FileStore) removeCorrupted() {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to remove corrupted state file %s: %v", s.path, err)
	}
}
