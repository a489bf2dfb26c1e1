package schema

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/chronoarc/marvel-go/internal/errors"
	"github.com/chronoarc/marvel-go/internal/models"
)

// ResolvedField is a declared field together with its resolved type and the
// name it uses on the wire.
type ResolvedField struct {
	Field
	Kind     models.TypeInfo
	WireName string
}

// Descriptor is a registered definition whose field types have been
// resolved. Descriptors are immutable.
type Descriptor struct {
	Definition Definition
	Fields     []ResolvedField

	byName   map[string]int
	fromWire map[string]string
}

// Name returns the type name.
func (d *Descriptor) Name() string {
	return d.Definition.Name
}

// New constructs an empty instance of the type.
func (d *Descriptor) New() Object {
	return d.Definition.New()
}

// Lookup finds the declared field a JSON key refers to. Keys are translated
// from wire names to internal names first; unmapped keys are used verbatim.
func (d *Descriptor) Lookup(key string) (ResolvedField, bool) {
	name := key
	if internal, ok := d.fromWire[key]; ok {
		name = internal
	}
	i, ok := d.byName[name]
	if !ok {
		return ResolvedField{}, false
	}
	return d.Fields[i], true
}

// Registry holds object and enumeration definitions by name. It is safe for
// concurrent use and is normally populated once during initialization.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*Descriptor
	enums map[string]Enum
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]*Descriptor),
		enums: make(map[string]Enum),
	}
}

// Register resolves def and stores it under def.Name.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return errors.NewInvalidAttributeTypeError("type definition has no name", nil)
	}
	if def.New == nil {
		return errors.NewMissingConstructorError(def.Name)
	}

	def = withFieldTables(def)
	kinds, err := Resolve(def)
	if err != nil {
		return err
	}

	desc := &Descriptor{
		Definition: def,
		Fields:     make([]ResolvedField, len(def.Fields)),
		byName:     make(map[string]int, len(def.Fields)),
		fromWire:   make(map[string]string, len(def.AttributeMap)),
	}
	for i, f := range def.Fields {
		if _, dup := desc.byName[f.Name]; dup {
			return errors.NewInvalidAttributeTypeError(
				fmt.Sprintf("type `%s` declares field `%s` twice", def.Name, f.Name), nil)
		}
		desc.byName[f.Name] = i
		desc.Fields[i] = ResolvedField{Field: f, Kind: kinds[i], WireName: def.WireName(f.Name)}
	}
	for internal, wire := range def.AttributeMap {
		desc.fromWire[wire] = internal
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[def.Name]; exists {
		return errors.NewInvalidAttributeTypeError(fmt.Sprintf("type `%s` is already registered", def.Name), nil)
	}
	if _, exists := r.enums[def.Name]; exists {
		return errors.NewInvalidAttributeTypeError(fmt.Sprintf("`%s` is already registered as an enum", def.Name), nil)
	}
	r.types[def.Name] = desc
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(defs ...Definition) {
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
}

// RegisterEnum stores an enumeration definition.
func (r *Registry) RegisterEnum(e Enum) error {
	if e.Name == "" {
		return errors.NewInvalidAttributeTypeError("enum definition has no name", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.enums[e.Name]; exists {
		return errors.NewInvalidAttributeTypeError(fmt.Sprintf("enum `%s` is already registered", e.Name), nil)
	}
	if _, exists := r.types[e.Name]; exists {
		return errors.NewInvalidAttributeTypeError(fmt.Sprintf("`%s` is already registered as a type", e.Name), nil)
	}
	r.enums[e.Name] = Enum{Name: e.Name, Values: slices.Clone(e.Values)}
	return nil
}

// MustRegisterEnum is like RegisterEnum but panics on error.
func (r *Registry) MustRegisterEnum(enums ...Enum) {
	for _, e := range enums {
		if err := r.RegisterEnum(e); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.types[name]
	return d, ok
}

// LookupEnum returns the enumeration registered under name.
func (r *Registry) LookupEnum(name string) (Enum, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.enums[name]
	return e, ok
}

// Resolve returns the resolved fields of a registered type. Types that were
// never registered fail with a missing-constructor error.
func (r *Registry) Resolve(name string) ([]ResolvedField, error) {
	d, ok := r.Lookup(name)
	if !ok {
		return nil, errors.NewMissingConstructorError(name)
	}
	return d.Fields, nil
}

// Types lists registered type names in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.types))
}

// Enums lists registered enumeration names in sorted order.
func (r *Registry) Enums() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.enums))
}

// withFieldTables copies the side tables of def and fills them from the
// element and enum types carried by its field declarations. Entries already
// present in the tables win.
func withFieldTables(def Definition) Definition {
	def.AttributeMap = maps.Clone(def.AttributeMap)
	def.ComplexArrayTypes = maps.Clone(def.ComplexArrayTypes)
	def.EnumTypes = maps.Clone(def.EnumTypes)

	for _, f := range def.Fields {
		if f.elem != "" {
			if def.ComplexArrayTypes == nil {
				def.ComplexArrayTypes = make(map[string]string)
			}
			if _, ok := def.ComplexArrayTypes[f.Name]; !ok {
				def.ComplexArrayTypes[f.Name] = f.elem
			}
		}
		if f.enum != "" {
			if def.EnumTypes == nil {
				def.EnumTypes = make(map[string]string)
			}
			if _, ok := def.EnumTypes[f.Name]; !ok {
				def.EnumTypes[f.Name] = f.enum
			}
		}
	}
	return def
}
