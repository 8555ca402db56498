package schema

import (
	"fmt"
	"strings"
	"sync"
)

// Registry stores the catalog of section definitions available to the
// builder. Lookups are pure: an unknown type is reported as absence, never as
// an error, so callers can render a display fallback instead of failing.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]SectionDefinition
	order       []string
}

// NewRegistry creates an empty section definition registry.
func NewRegistry() *Registry {
	return &Registry{definitions: make(map[string]SectionDefinition)}
}

// Register adds a definition under its normalised type key. It returns an
// error when the definition is structurally invalid.
func (r *Registry) Register(def SectionDefinition) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}

	sectionType := strings.TrimSpace(strings.ToLower(def.Type))
	if sectionType == "" {
		return fmt.Errorf("section type is empty")
	}
	if len(def.Schema) == 0 {
		return fmt.Errorf("section %s declares no fields", sectionType)
	}

	seen := make(map[string]struct{}, len(def.Schema))
	for _, field := range def.Schema {
		if field.Key == "" {
			return fmt.Errorf("section %s has a field without a key", sectionType)
		}
		if !field.Type.Valid() {
			return fmt.Errorf("section %s field %s has unknown type %q", sectionType, field.Key, field.Type)
		}
		if _, dup := seen[field.Key]; dup {
			return fmt.Errorf("section %s declares field %s twice", sectionType, field.Key)
		}
		seen[field.Key] = struct{}{}
	}

	def.Type = sectionType

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.definitions == nil {
		r.definitions = make(map[string]SectionDefinition)
	}
	if _, exists := r.definitions[sectionType]; !exists {
		r.order = append(r.order, sectionType)
	}
	r.definitions[sectionType] = def
	return nil
}

// MustRegister registers the definition and panics if registration fails.
func (r *Registry) MustRegister(def SectionDefinition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Get retrieves the definition for the provided section type if it exists.
func (r *Registry) Get(sectionType string) (SectionDefinition, bool) {
	if r == nil {
		return SectionDefinition{}, false
	}

	sectionType = strings.TrimSpace(strings.ToLower(sectionType))
	if sectionType == "" {
		return SectionDefinition{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[sectionType]
	return def, ok
}

// All returns every registered definition in registration order.
func (r *Registry) All() []SectionDefinition {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]SectionDefinition, 0, len(r.order))
	for _, key := range r.order {
		result = append(result, r.definitions[key])
	}
	return result
}
