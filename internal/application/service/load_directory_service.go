package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"BattleFS/internal/domain"
)

type LoadDirectoryService struct {
	session *domain.StoreSession
	logger  *slog.Logger
}

func NewLoadDirectoryService(session *domain.StoreSession, logger *slog.Logger) *LoadDirectoryService {
	return &LoadDirectoryService{
		session: session,
		logger:  logger,
	}
}

type LoadDirectoryCommand struct {
	Dir string
}

type LoadDirectoryResult struct {
	Dir    string
	Loaded int
	Failed map[string]error
}

// Execute creates one object per regular file directly under Dir. A file
// that fails is recorded and skipped; only a directory level failure stops
// the batch, in which case Loaded is -1.
func (s *LoadDirectoryService) Execute(command LoadDirectoryCommand) (LoadDirectoryResult, error) {
	result := LoadDirectoryResult{Loaded: -1, Failed: map[string]error{}}

	if !s.session.Initialized() {
		return result, domain.ErrNotInitialized
	}

	dir, err := filepath.Abs(command.Dir)
	if err != nil {
		return result, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	result.Dir = dir

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return result, fmt.Errorf("%w: %s", domain.ErrNotADirectory, dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return result, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}

	s.logger.Info("loading directory", "dir", dir)
	result.Loaded = 0
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		// seguir symlinks como hace stat
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		err = s.session.With(func(store *domain.Store) error {
			return store.Create(path)
		})
		if err != nil {
			s.logger.Warn("failed to load file", "file", entry.Name(), "err", err)
			result.Failed[path] = err
			continue
		}
		s.logger.Debug("loaded file", "file", entry.Name())
		result.Loaded++
	}
	return result, nil
}
