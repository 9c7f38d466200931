package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prometheus/common/version"
	"gopkg.in/yaml.v3"

	"github.com/cmk-notify/alerting/i18n"
	"github.com/cmk-notify/alerting/notify"
	"github.com/cmk-notify/alerting/receivers/schema"
	"github.com/cmk-notify/alerting/utils"
	"github.com/cmk-notify/alerting/utils/hash"
)

// document is the json and yaml export.
type document struct {
	Fingerprint  string                         `json:"fingerprint" yaml:"fingerprint"`
	Lang         string                         `json:"lang,omitempty" yaml:"lang,omitempty"`
	Integrations []schema.IntegrationTypeSchema `json:"integrations" yaml:"integrations"`
}

const programName = "notification-schemas"

func run(cfg Config, stdout, stderr io.Writer) error {
	if cfg.PrintVersion {
		_, err := io.WriteString(stdout, version.Print(programName)+"\n")
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	baseLogger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(stderr))
	var filtered kitlog.Logger
	slogLevel := slog.LevelInfo
	if cfg.Debug {
		filtered = level.NewFilter(baseLogger, level.AllowDebug())
		slogLevel = slog.LevelDebug
	} else {
		filtered = level.NewFilter(baseLogger, level.AllowInfo())
	}
	logger := kitlog.With(filtered, "ts", kitlog.DefaultTimestampUTC, "caller", kitlog.DefaultCaller)

	registry, err := notify.NewDefaultSchemaRegistry(logger, nil)
	if err != nil {
		return errors.Wrap(err, "failed to register integrations")
	}

	schemas, err := selectSchemas(registry, cfg.Type)
	if err != nil {
		return err
	}

	catalog, err := i18n.DefaultCatalog(utils.SlogFromGoKitWithLevel(kitlog.With(logger, "component", "i18n"), slogLevel))
	if err != nil {
		return errors.Wrap(err, "failed to load built-in translations")
	}
	if cfg.TranslationsPath != "" {
		if err := loadTranslations(catalog, cfg.TranslationsPath); err != nil {
			return err
		}
	}
	tr := catalog.Translator(cfg.Lang)
	for i := range schemas {
		schemas[i] = schemas[i].Localize(tr)
	}
	level.Debug(logger).Log("msg", "Exporting integration schemas", "count", len(schemas), "format", cfg.Format, "lang", cfg.Lang)

	b, err := encode(cfg, schemas)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", cfg.Format)
	}
	if cfg.OutPath == "" {
		_, err = stdout.Write(b)
		return err
	}
	if err := os.WriteFile(cfg.OutPath, b, 0o644); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	level.Info(logger).Log("msg", "Wrote integration schemas", "path", cfg.OutPath, "count", len(schemas))
	return nil
}

func selectSchemas(registry *notify.SchemaRegistry, integrationType string) ([]schema.IntegrationTypeSchema, error) {
	if integrationType == "" {
		return registry.List(), nil
	}
	s, ok := registry.Get(schema.IntegrationType(integrationType))
	if !ok {
		return nil, errors.Errorf("unknown integration type %q", integrationType)
	}
	return []schema.IntegrationTypeSchema{s}, nil
}

func loadTranslations(catalog *i18n.Catalog, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open translations")
	}
	defer f.Close()
	if err := catalog.Load(f); err != nil {
		return errors.Wrapf(err, "failed to load translations from %s", path)
	}
	return nil
}

func encode(cfg Config, schemas []schema.IntegrationTypeSchema) ([]byte, error) {
	switch cfg.Format {
	case FormatJSONSchema:
		out := make(map[string]*schema.JSONSchema, len(schemas))
		for _, s := range schemas {
			out[string(s.Type)] = schema.ToJSONSchema(s, s.GetCurrentVersion())
		}
		return marshalJSON(out)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(cfg, schemas)); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return marshalJSON(newDocument(cfg, schemas))
	}
}

func newDocument(cfg Config, schemas []schema.IntegrationTypeSchema) document {
	return document{
		Fingerprint:  hash.Fingerprint(schemas),
		Lang:         cfg.Lang,
		Integrations: schemas,
	}
}

func marshalJSON(v any) ([]byte, error) {
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
