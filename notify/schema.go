package notify

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/cmk-notify/alerting/receivers/gotify"
	"github.com/cmk-notify/alerting/receivers/schema"
	"github.com/cmk-notify/alerting/utils/hash"
)

var ErrSchemaAlreadyRegistered = errors.New("integration schema already registered")

// GetSchemaForAllIntegrations returns the current schema for all integrations.
func GetSchemaForAllIntegrations() []schema.IntegrationTypeSchema {
	return []schema.IntegrationTypeSchema{
		gotify.Schema(),
	}
}

// GetSchemaForIntegration returns the schema registered under the type or one of its version aliases.
func GetSchemaForIntegration(integrationType schema.IntegrationType) (schema.IntegrationTypeSchema, bool) {
	for _, s := range GetSchemaForAllIntegrations() {
		if strings.EqualFold(string(s.Type), string(integrationType)) {
			return s, true
		}
		if _, ok := s.GetVersionByTypeAlias(integrationType); ok {
			return s, true
		}
	}
	return schema.IntegrationTypeSchema{}, false
}

func GetSchemaVersionForIntegration(integrationType schema.IntegrationType, version schema.Version) (schema.IntegrationSchemaVersion, bool) {
	s, ok := GetSchemaForIntegration(integrationType)
	if !ok {
		return schema.IntegrationSchemaVersion{}, false
	}
	return s.GetVersion(version)
}

// RegisterDefaultIntegrations adds the schemas of all integrations shipped with this module to r.
func RegisterDefaultIntegrations(r *SchemaRegistry) error {
	for _, s := range GetSchemaForAllIntegrations() {
		if err := r.Register(s); err != nil {
			return err
		}
	}
	return nil
}

// SchemaRegistry maps integration types to the settings forms operators fill in.
// The host owns the registry and populates it during start-up. Schemas are copied on the way in and
// out, so registered schemas cannot be changed afterwards.
type SchemaRegistry struct {
	mtx sync.RWMutex
	// schemas is keyed by the lower-cased integration type.
	schemas map[string]schema.IntegrationTypeSchema
	// aliases maps lower-cased type aliases to the key in schemas.
	aliases map[string]string

	logger  log.Logger
	metrics *RegistryMetrics
}

func NewSchemaRegistry(logger log.Logger, m *RegistryMetrics) *SchemaRegistry {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if m == nil {
		m = NewRegistryMetrics(nil)
	}
	return &SchemaRegistry{
		schemas: make(map[string]schema.IntegrationTypeSchema),
		aliases: make(map[string]string),
		logger:  log.With(logger, "component", "schema-registry"),
		metrics: m,
	}
}

// NewDefaultSchemaRegistry returns a registry holding all integrations shipped with this module.
func NewDefaultSchemaRegistry(logger log.Logger, m *RegistryMetrics) (*SchemaRegistry, error) {
	r := NewSchemaRegistry(logger, m)
	if err := RegisterDefaultIntegrations(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Register validates s and adds it to the registry. Types and type aliases share one
// case-insensitive namespace. Register fails if any of them is taken.
func (r *SchemaRegistry) Register(s schema.IntegrationTypeSchema) error {
	if err := schema.ValidateTypeSchema(s); err != nil {
		r.metrics.registrationFailures.Inc()
		level.Error(r.logger).Log("msg", "Rejected invalid integration schema", "type", s.Type, "err", err)
		return fmt.Errorf("invalid schema for integration %q: %w", s.Type, err)
	}

	key := strings.ToLower(string(s.Type))
	names := []string{key}
	for _, v := range s.Versions {
		if v.TypeAlias != "" {
			names = append(names, strings.ToLower(string(v.TypeAlias)))
		}
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		_, own := seen[name]
		if own || r.isTaken(name) {
			r.metrics.registrationFailures.Inc()
			level.Error(r.logger).Log("msg", "Rejected duplicate integration schema", "type", s.Type, "name", name)
			return fmt.Errorf("%w: %s", ErrSchemaAlreadyRegistered, name)
		}
		seen[name] = struct{}{}
	}

	r.schemas[key] = s.Clone()
	for _, name := range names[1:] {
		r.aliases[name] = key
	}
	r.metrics.schemas.Set(float64(len(r.schemas)))
	level.Debug(r.logger).Log("msg", "Registered integration schema", "type", s.Type, "versions", len(s.Versions), "current", s.CurrentVersion)
	return nil
}

// MustRegister is like Register but panics on error. It is meant for start-up code.
func (r *SchemaRegistry) MustRegister(schemas ...schema.IntegrationTypeSchema) {
	for _, s := range schemas {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
}

func (r *SchemaRegistry) isTaken(name string) bool {
	if _, ok := r.schemas[name]; ok {
		return true
	}
	_, ok := r.aliases[name]
	return ok
}

// Get returns the schema registered under the type or one of its type aliases.
func (r *SchemaRegistry) Get(integrationType schema.IntegrationType) (schema.IntegrationTypeSchema, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	name := strings.ToLower(string(integrationType))
	if key, ok := r.aliases[name]; ok {
		name = key
	}
	s, ok := r.schemas[name]
	if !ok {
		r.metrics.lookups.WithLabelValues(LookupResultMiss).Inc()
		return schema.IntegrationTypeSchema{}, false
	}
	r.metrics.lookups.WithLabelValues(LookupResultHit).Inc()
	return s.Clone(), true
}

func (r *SchemaRegistry) GetVersion(integrationType schema.IntegrationType, version schema.Version) (schema.IntegrationSchemaVersion, bool) {
	s, ok := r.Get(integrationType)
	if !ok {
		return schema.IntegrationSchemaVersion{}, false
	}
	return s.GetVersion(version)
}

// List returns all registered schemas ordered by type.
func (r *SchemaRegistry) List() []schema.IntegrationTypeSchema {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	result := make([]schema.IntegrationTypeSchema, 0, len(r.schemas))
	for _, s := range r.schemas {
		result = append(result, s.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Type < result[j].Type
	})
	return result
}

func (r *SchemaRegistry) Len() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.schemas)
}

// Fingerprint identifies the registered schemas. It changes whenever a schema is added or differs.
func (r *SchemaRegistry) Fingerprint() string {
	return hash.Fingerprint(r.List())
}
