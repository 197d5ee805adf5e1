package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vidaemdestaque/entreconsultas/internal/logger"
)

const reloadDebounce = 300 * time.Millisecond

// Store holds the landing copy served to new page instances. Pages take a snapshot with
// Current and never observe a reload halfway through a render.
type Store struct {
	mu       sync.RWMutex
	landing  *Landing
	checkout string
	log      *slog.Logger
}

func NewStore(l *Landing, log *slog.Logger) *Store {
	return &Store{landing: l, log: log.With(logger.Scope("content"))}
}

func (s *Store) Current() *Landing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.landing
}

// OverrideCheckoutURL pins the checkout link, for the current copy and every reload.
func (s *Store) OverrideCheckoutURL(checkoutURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.landing.WithCheckoutURL(checkoutURL)
	if err != nil {
		return err
	}
	s.checkout = checkoutURL
	s.landing = l
	return nil
}

// Reload replaces the copy with the file at path. On error the previous copy stays.
func (s *Store) Reload(path string) error {
	l, err := Load(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkout != "" {
		if l, err = l.WithCheckoutURL(s.checkout); err != nil {
			return err
		}
	}
	s.landing = l
	return nil
}

// Watch reloads path whenever it changes until ctx is cancelled. The parent directory is
// watched so editors that save by rename are picked up.
func (s *Store) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve content path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	s.log.Info("watching content file", slog.String("path", abs))

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, func() {
				if err := s.Reload(abs); err != nil {
					s.log.Error("content reload failed, keeping previous copy", logger.Error(err))
					return
				}
				s.log.Info("content reloaded", slog.String("path", abs))
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("content watcher error", logger.Error(err))
		}
	}
}
