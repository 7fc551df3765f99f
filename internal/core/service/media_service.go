package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/DioneMartin/REST-AWS/internal/api/metrics"
	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/core/ports"
)

const FieldPhoto = "photo"

type MediaService struct {
	students *StudentService
	storage  ports.ObjectStorage
	ext      external
	logger   zerolog.Logger
}

func NewMediaService(students *StudentService, storage ports.ObjectStorage, timeout time.Duration, logger zerolog.Logger) *MediaService {
	return &MediaService{
		students: students,
		storage:  storage,
		ext:      newExternal(timeout),
		logger:   logger,
	}
}

// AttachProfilePicture uploads the file and only then records its locator on
// the student, so a failed upload leaves the record untouched.
func (s *MediaService) AttachProfilePicture(ctx context.Context, studentID int64, up ports.Upload) (string, error) {
	if _, err := s.students.GetStudent(ctx, studentID); err != nil {
		return "", err
	}

	name := cleanFilename(up.Filename)
	if up.Body == nil || name == "" {
		return "", &domain.ValidationError{Field: FieldPhoto, Reason: "must be a file with a name"}
	}

	key := storageKey(name)
	var locator string
	err := s.ext.call(ctx, "storage.put", func(ctx context.Context) error {
		var err error
		locator, err = s.storage.Put(ctx, key, up.ContentType, up.Body)
		return err
	})
	if err != nil {
		metrics.MediaUploadsTotal.WithLabelValues("failed").Inc()
		return "", fmt.Errorf("attach profile picture: %w", err)
	}

	if err := s.students.setProfilePicture(ctx, studentID, locator); err != nil {
		metrics.MediaUploadsTotal.WithLabelValues("failed").Inc()
		s.logger.Warn().Err(err).Str("key", key).Int64("student_id", studentID).Msg("stored object not linked to student")
		return "", fmt.Errorf("attach profile picture: %w", err)
	}

	metrics.MediaUploadsTotal.WithLabelValues("stored").Inc()
	s.logger.Info().Int64("student_id", studentID).Str("key", key).Msg("profile picture attached")
	return locator, nil
}

// storageKey prefixes the filename with a random identifier.
func storageKey(filename string) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + "-" + filename
}

// cleanFilename drops any client-supplied directories and replaces every
// byte outside [A-Za-z0-9._-] with '_', so the key is safe in a URL path.
func cleanFilename(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	if name == "" {
		return ""
	}
	base := path.Base(name)
	if base == "." || base == "/" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(base))
	for i := 0; i < len(base); i++ {
		if isKeyByte(base[i]) {
			b.WriteByte(base[i])
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func isKeyByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '.', c == '_', c == '-':
		return true
	}
	return false
}
