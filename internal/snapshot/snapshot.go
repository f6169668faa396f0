// snapshot — файловый кэш последней успешной выборки по тегу.
//
// Один JSON-файл на тег, перезаписывается целиком при каждом успешном
// запросе. TTL и вытеснения нет: устаревший снапшот валиден до следующей
// перезаписи — решение о приемлемости staleness принимает оркестратор
// (он всегда приемлем: снапшот и есть назначенный fallback).
//
// Известная гонка: конкурентные ingest по одному тегу не сериализуются,
// побеждает последний писатель. Кэш best-effort, это допустимо.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pribylovaa/go-tweet-dashboard/internal/models"
)

// ErrNotFound — снапшот по тегу отсутствует.
var ErrNotFound = errors.New("snapshot not found")

// Store — файловое хранилище снапшотов.
type Store struct {
	dir string
}

// New создаёт хранилище и каталог под снапшоты, если его ещё нет.
func New(dir string) (*Store, error) {
	const op = "snapshot.New"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Store{dir: dir}, nil
}

// Write атомарно записывает снапшот тега, полностью заменяя предыдущий.
//
// Атомарность для читателей — через запись во временный файл и rename:
// читатель никогда не видит частично записанный снапшот.
func (s *Store) Write(ctx context.Context, tag string, tweets []models.Tweet) error {
	const op = "snapshot.Write"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	snap := models.Snapshot{
		Tag:        tag,
		Tweets:     tweets,
		CapturedAt: time.Now().UTC(),
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", op, err)
	}

	tmp, err := os.CreateTemp(s.dir, "tweets_*.tmp")
	if err != nil {
		return fmt.Errorf("%s: create_temp: %w", op, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: write_temp: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: close_temp: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), s.path(tag)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: rename: %w", op, err)
	}

	return nil
}

// Read возвращает последний снапшот тега.
// Если снапшота нет — ErrNotFound.
func (s *Store) Read(ctx context.Context, tag string) (*models.Snapshot, error) {
	const op = "snapshot.Read"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := os.ReadFile(s.path(tag))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%s: unmarshal: %w", op, err)
	}

	return &snap, nil
}

// path — файл снапшота тега. Тег к этому моменту уже нормализован
// сервисным слоем ([A-Za-z0-9_]+), поэтому безопасен как часть имени.
func (s *Store) path(tag string) string {
	return filepath.Join(s.dir, "tweets_"+tag+".json")
}
