package storage

// Entity is implemented by every storable domain type. Field and
// ListField give filters a uniform way to read named fields without
// reflection.
type Entity interface {
	// EntityID returns the entity's unique id.
	EntityID() string

	// Field returns the named scalar field, false if the entity has no
	// such scalar field.
	Field(name string) (string, bool)

	// ListField returns the named sequence field, false if the entity
	// has no such sequence field.
	ListField(name string) ([]string, bool)
}

// Op is a filter operator.
type Op int

const (
	// Equals matches entities whose scalar field equals Value.
	Equals Op = iota
	// OneOf matches entities whose scalar field equals any of Values.
	OneOf
	// Contains matches entities whose sequence field contains Value.
	Contains
)

// Filter is a predicate over a single named field. A nil *Filter
// matches everything.
type Filter struct {
	Key    string
	Op     Op
	Value  string
	Values []string
}

// ByKey returns an Equals filter.
func ByKey(key, value string) *Filter {
	return &Filter{Key: key, Op: Equals, Value: value}
}

// AnyOf returns a OneOf filter.
func AnyOf(key string, values []string) *Filter {
	return &Filter{Key: key, Op: OneOf, Values: values}
}

// InList returns a Contains filter.
func InList(key, value string) *Filter {
	return &Filter{Key: key, Op: Contains, Value: value}
}

// Matches reports whether e satisfies the filter.
func (f *Filter) Matches(e Entity) bool {
	if f == nil {
		return true
	}
	switch f.Op {
	case Equals:
		v, ok := e.Field(f.Key)
		return ok && v == f.Value
	case OneOf:
		v, ok := e.Field(f.Key)
		if !ok {
			return false
		}
		for _, candidate := range f.Values {
			if v == candidate {
				return true
			}
		}
		return false
	case Contains:
		list, ok := e.ListField(f.Key)
		if !ok {
			return false
		}
		for _, item := range list {
			if item == f.Value {
				return true
			}
		}
		return false
	}
	return false
}
