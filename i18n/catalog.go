// Package i18n provides the translation function applied to the human-readable
// strings of integration schemas.
package i18n

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"

	"github.com/cmk-notify/alerting/receivers/schema"
)

//go:embed translations/*.yaml
var translations embed.FS

// SourceLanguage is the language schema strings are written in.
var SourceLanguage = language.English

// Catalog holds translations of schema strings, keyed by the source string.
type Catalog struct {
	mtx     sync.Mutex
	builder *catalog.Builder
	// known records which source strings have a translation per language.
	known  map[language.Tag]map[string]struct{}
	logger *slog.Logger
}

func NewCatalog(logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Catalog{
		builder: catalog.NewBuilder(catalog.Fallback(SourceLanguage)),
		known:   make(map[language.Tag]map[string]struct{}),
		logger:  logger,
	}
}

// LoadCatalog reads translations from YAML documents shaped as
// language -> source string -> translation.
func LoadCatalog(r io.Reader, logger *slog.Logger) (*Catalog, error) {
	c := NewCatalog(logger)
	if err := c.Load(r); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultCatalog returns the translations shipped with this module.
func DefaultCatalog(logger *slog.Logger) (*Catalog, error) {
	c := NewCatalog(logger)
	files, err := fs.Glob(translations, "translations/*.yaml")
	if err != nil {
		return nil, err
	}
	for _, name := range files {
		f, err := translations.Open(name)
		if err != nil {
			return nil, err
		}
		err = c.Load(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return c, nil
}

func (c *Catalog) Load(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	for {
		doc := map[string]map[string]string{}
		err := dec.Decode(&doc)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to decode translations: %w", err)
		}
		for lang, messages := range doc {
			if err := c.Add(lang, messages); err != nil {
				return err
			}
		}
	}
}

// Add registers translations for lang. Existing translations of the same source strings are replaced.
func (c *Catalog) Add(lang string, messages map[string]string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("invalid language %q: %w", lang, err)
	}
	c.mtx.Lock()
	defer c.mtx.Unlock()
	known, ok := c.known[tag]
	if !ok {
		known = make(map[string]struct{}, len(messages))
		c.known[tag] = known
	}
	for source, translated := range messages {
		// Translations are used as format strings by the printer.
		if err := c.builder.SetString(tag, source, strings.ReplaceAll(translated, "%", "%%")); err != nil {
			return fmt.Errorf("failed to add translation for %q: %w", source, err)
		}
		known[source] = struct{}{}
	}
	c.logger.Debug("Loaded translations", "lang", tag.String(), "count", len(messages))
	return nil
}

// Languages returns the languages with translations, not including the source language.
func (c *Catalog) Languages() []language.Tag {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	result := make([]language.Tag, 0, len(c.known))
	for tag := range c.known {
		result = append(result, tag)
	}
	return result
}

// Translator returns the translation function for lang. Strings without a translation, and all
// strings of unsupported languages, are returned unchanged.
func (c *Catalog) Translator(lang string) schema.TranslateFunc {
	identity := func(s string) string { return s }
	if lang == "" {
		return identity
	}
	tag, err := language.Parse(lang)
	if err != nil {
		c.logger.Warn("Invalid language, falling back to source strings", "lang", lang, "err", err)
		return identity
	}

	c.mtx.Lock()
	supported := make([]language.Tag, 0, len(c.known)+1)
	supported = append(supported, SourceLanguage)
	for t := range c.known {
		supported = append(supported, t)
	}
	_, idx, confidence := language.NewMatcher(supported).Match(tag)
	matched := supported[idx]
	known := make(map[string]struct{}, len(c.known[matched]))
	for k := range c.known[matched] {
		known[k] = struct{}{}
	}
	c.mtx.Unlock()

	if idx == 0 || confidence == language.No {
		if tag != SourceLanguage {
			c.logger.Info("No translations for language, falling back to source strings", "lang", lang)
		}
		return identity
	}

	p := message.NewPrinter(matched, message.Catalog(c.builder))
	return func(s string) string {
		if _, ok := known[s]; !ok {
			return s
		}
		return p.Sprintf(s)
	}
}
