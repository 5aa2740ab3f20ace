package i18n

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

// Translator is a key -> display-text lookup for the active locale. Lookup
// falls back to English and finally to the key itself, mirroring the
// behavior users of the web UI already rely on.
type Translator struct {
	mu        sync.RWMutex
	tag       language.Tag
	overrides map[string]map[string]string
}

// New builds a Translator for the given locale string ("en", "ru", or
// anything language.Parse accepts; unknown locales match to English).
func New(locale string) *Translator {
	t := &Translator{}
	t.SetLocale(locale)
	return t
}

// SetLocale switches the active locale and returns the canonical base code
// actually selected ("en" or "ru").
func (t *Translator) SetLocale(locale string) string {
	desired, err := language.Parse(locale)
	if err != nil {
		desired = language.English
	}
	tag, _, _ := matcher.Match(desired)
	base, _ := tag.Base()

	t.mu.Lock()
	t.tag = tag
	t.mu.Unlock()
	return base.String()
}

// Locale returns the active base locale code.
func (t *Translator) Locale() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	base, _ := t.tag.Base()
	return base.String()
}

// T renders the message for key in the active locale. Missing keys fall
// back to English, then to the key itself.
func (t *Translator) T(key string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	locale := "en"
	if base, _ := t.tag.Base(); base.String() != "und" {
		locale = base.String()
	}
	if v, ok := t.lookup(locale, key); ok {
		return v
	}
	if v, ok := t.lookup("en", key); ok {
		return v
	}
	return key
}

func (t *Translator) lookup(locale, key string) (string, bool) {
	if bundle, ok := t.overrides[locale]; ok {
		if v, ok := bundle[key]; ok {
			return v, true
		}
	}
	if bundle, ok := bundles[locale]; ok {
		if v, ok := bundle[key]; ok {
			return v, true
		}
	}
	return "", false
}

// Printer returns a locale-aware formatter, used for currency and number
// rendering (digit grouping differs between en and ru).
func (t *Translator) Printer() *message.Printer {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return message.NewPrinter(t.tag)
}

// LoadOverrides merges a YAML file of the shape {locale: {key: text}} on top
// of the built-in bundles. A missing file is not an error.
func (t *Translator) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read overrides: %w", err)
	}
	parsed := make(map[string]map[string]string)
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parse overrides: %w", err)
	}

	t.mu.Lock()
	t.overrides = parsed
	t.mu.Unlock()
	return nil
}

// Watch reloads the override file whenever it changes on disk, until ctx is
// cancelled.
func (t *Translator) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := t.LoadOverrides(path); err != nil {
					log.WithError(err).Warn("failed to reload translation overrides")
					continue
				}
				log.WithField("path", path).Info("translation overrides reloaded")
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WithError(err).Warn("translation watcher error")
			}
		}
	}()
	return nil
}
