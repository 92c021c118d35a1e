package provider

import (
	"fmt"
	"sort"

	"github.com/klimatr26/booking-hub/internal/domain"
)

// Provider is one configured remote backend.
type Provider struct {
	Name    string
	Type    domain.ServiceType
	Enabled bool
	Gateway Gateway
}

// Registry is built once at startup and read concurrently afterwards.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register wraps gw in a Guard so disabled providers fail fast.
func (r *Registry) Register(name string, typ domain.ServiceType, enabled bool, gw Gateway) error {
	if name == "" {
		return fmt.Errorf("%w: provider name is required", domain.ErrValidation)
	}
	if !typ.Valid() {
		return fmt.Errorf("%w: provider %s has unknown type %q", domain.ErrValidation, name, typ)
	}
	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("%w: provider %s registered twice", domain.ErrValidation, name)
	}
	r.providers[name] = Provider{
		Name:    name,
		Type:    typ,
		Enabled: enabled,
		Gateway: NewGuard(name, enabled, gw),
	}
	return nil
}

func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return Provider{}, fmt.Errorf("%w: %s", domain.ErrProviderNotFound, name)
	}
	return p, nil
}

// Enabled returns the enabled providers of the given types, sorted by name.
// No types means every type.
func (r *Registry) Enabled(types ...domain.ServiceType) []Provider {
	want := make(map[domain.ServiceType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}

	var res []Provider
	for _, p := range r.providers {
		if !p.Enabled {
			continue
		}
		if len(want) > 0 && !want[p.Type] {
			continue
		}
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

func (r *Registry) All() []Provider {
	res := make([]Provider, 0, len(r.providers))
	for _, p := range r.providers {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}
