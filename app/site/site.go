// Package site loads the blog metadata (title, author, description, social links) from a
// YAML file and keeps it current when the file changes.
package site

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

// Social is a link to a social profile.
type Social struct {
	Name string `yaml:"name" jsonschema:"required,minLength=1"`
	URL  string `yaml:"url" jsonschema:"required,description=absolute http(s) profile url"`
}

// Config is the site metadata.
type Config struct {
	Title       string   `yaml:"title" jsonschema:"minLength=1"`
	Author      string   `yaml:"author"`
	Description string   `yaml:"description"`
	Social      []Social `yaml:"social,omitempty"`
}

// Default returns the metadata used when no site file is configured.
func Default() Config {
	return Config{
		Title:       "Blog",
		Author:      "Author",
		Description: "Personal blog",
	}
}

// Validate checks required fields and social links.
func (c Config) Validate() error {
	if c.Title == "" {
		return errors.New("title is required")
	}
	for i, s := range c.Social {
		if s.Name == "" {
			return fmt.Errorf("social link %d: name is required", i)
		}
		u, err := url.Parse(s.URL)
		if err != nil {
			return fmt.Errorf("social link %q: %w", s.Name, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("social link %q: absolute http(s) url required, got %q", s.Name, s.URL)
		}
	}
	return nil
}

// Load reads and validates the site file. Fields missing in the file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from trusted configuration
	if err != nil {
		return Config{}, fmt.Errorf("failed to read site config: %w", err)
	}
	if err := VerifyConfig(data); err != nil {
		return Config{}, fmt.Errorf("invalid site config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse site config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid site config %s: %w", path, err)
	}
	return cfg, nil
}

// Site holds the current metadata.
type Site struct {
	path string

	mu  sync.RWMutex
	cfg Config
}

// New makes a Site from the file at path, or from defaults if path is empty.
func New(path string) (*Site, error) {
	if path == "" {
		return &Site{cfg: Default()}, nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Site{path: path, cfg: cfg}, nil
}

// Current returns the current metadata.
func (s *Site) Current() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Reload re-reads the site file. On error the previous metadata stays in effect.
func (s *Site) Reload() error {
	if s.path == "" {
		return errors.New("site config path not set")
	}
	cfg, err := Load(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	log.Printf("[INFO] site config reloaded from %s", s.path)
	return nil
}

// StartWatcher reloads the site file whenever it changes, until ctx is canceled.
func (s *Site) StartWatcher(ctx context.Context) error {
	if s.path == "" {
		return errors.New("site config path not set")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// watch the directory, editors replace files with atomic renames
	dir := filepath.Dir(s.path)
	filename := filepath.Base(s.path)

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	log.Printf("[INFO] watching site config %s for changes", s.path)

	go func() {
		defer watcher.Close()

		var debounceTimer *time.Timer
		const debounceDelay = 100 * time.Millisecond

		for {
			select {
			case <-ctx.Done():
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				log.Printf("[DEBUG] site config watcher stopped")
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filename {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDelay, func() {
					if err := s.Reload(); err != nil {
						log.Printf("[WARN] failed to reload site config: %v", err)
					}
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[WARN] site config watcher error: %v", err)
			}
		}
	}()

	return nil
}
