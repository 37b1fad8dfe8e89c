package userconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/omni/pkg/errors"
	"github.com/arthur-debert/omni/pkg/logging"
	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
)

// UpdateFunc inspects and possibly modifies doc in place.
// Returning true asks the store to write doc back.
type UpdateFunc func(doc Document) (bool, error)

// Store gives locked access to one user configuration file
type Store struct {
	file   string
	codec  Codec
	logger zerolog.Logger
}

// NewStore creates a store for file; the codec follows the file extension
func NewStore(file string) *Store {
	return &Store{
		file:   file,
		codec:  CodecFor(file),
		logger: logging.GetLogger("userconfig"),
	}
}

// File returns the path of the configuration file
func (s *Store) File() string {
	return s.file
}

// Load reads the document without locking; a missing file is an empty document
func (s *Store) Load() (Document, error) {
	data, err := os.ReadFile(s.file)
	if os.IsNotExist(err) {
		return Document{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrUserConfig, "failed to read %s", s.file)
	}

	doc, err := s.codec.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrUserConfig, "failed to parse %s", s.file).
			WithDetail("format", s.codec.Name())
	}
	return doc, nil
}

// Update runs fn on the current document while holding the file lock,
// and writes the document back only when fn returns true.
// It reports whether the file was written.
func (s *Store) Update(fn UpdateFunc) (bool, error) {
	dir := filepath.Dir(s.file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrUserConfig, "failed to create %s", dir)
	}

	lock := flock.New(s.file + ".lock")
	if err := lock.Lock(); err != nil {
		return false, errors.Wrapf(err, errors.ErrUserConfig, "failed to lock %s", s.file)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Warn().Err(err).Str("file", s.file).Msg("Failed to release lock")
		}
	}()

	doc, err := s.Load()
	if err != nil {
		return false, err
	}

	write, err := fn(doc)
	if err != nil || !write {
		return false, err
	}

	if err := s.write(doc); err != nil {
		return false, err
	}
	s.logger.Info().Str("file", s.file).Msg("User configuration updated")
	return true, nil
}

// write replaces the file through a temporary sibling and a rename
func (s *Store) write(doc Document) error {
	data, err := s.codec.Encode(doc)
	if err != nil {
		return errors.Wrapf(err, errors.ErrUserConfig, "failed to encode %s", s.file)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.file), "."+filepath.Base(s.file)+".*")
	if err != nil {
		return errors.Wrapf(err, errors.ErrUserConfig, "failed to write %s", s.file)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, errors.ErrUserConfig, "failed to write %s", s.file)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrUserConfig, "failed to write %s", s.file)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(s.file); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return errors.Wrapf(err, errors.ErrUserConfig, "failed to write %s", s.file)
	}

	if err := os.Rename(tmpName, s.file); err != nil {
		return errors.Wrapf(err, errors.ErrUserConfig, "failed to replace %s", s.file)
	}
	return nil
}
