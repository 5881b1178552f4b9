package meta

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"inspector-kit/internal/analyze"
)

// Cache introspects types once and memoizes the ordered, grouped and
// alphabetical member lists per type. Lists are never invalidated.
//
// Cache is not safe for concurrent use; it belongs to the UI thread.
type Cache struct {
	scanner *analyze.Scanner
	logger  *zap.Logger
	tables  map[reflect.Type]*TypeTable

	base         map[reflect.Type][]*Member
	ordered      map[reflect.Type][]*Member
	alphabetical map[reflect.Type][]*Member
	grouped      map[reflect.Type][]*Grouping
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used to report discovery problems.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCache creates a Cache. scanProperties enables getter/setter method
// pairs, scanFields enables exported struct fields.
func NewCache(scanProperties, scanFields bool, opts ...Option) *Cache {
	c := &Cache{
		scanner:      analyze.NewScanner(scanProperties, scanFields),
		logger:       zap.NewNop(),
		tables:       make(map[reflect.Type]*TypeTable),
		base:         make(map[reflect.Type][]*Member),
		ordered:      make(map[reflect.Type][]*Member),
		alphabetical: make(map[reflect.Type][]*Member),
		grouped:      make(map[reflect.Type][]*Grouping),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Register installs explicit descriptor tables. A table registered after its
// type was first described has no effect.
func (c *Cache) Register(tables ...*TypeTable) {
	for _, t := range tables {
		if _, done := c.base[t.typ]; done {
			c.logger.Warn("type table registered after first use",
				zap.Stringer("type", analyze.IDOf(t.typ)))

			continue
		}

		c.tables[t.typ] = t
	}
}

// Ordered returns the members of t with prioritized members first
// (ascending level, stable) followed by the rest in discovery order.
func (c *Cache) Ordered(t reflect.Type) []*Member {
	t = deref(t)
	if cached, ok := c.ordered[t]; ok {
		return cached
	}

	members := slices.Clone(c.describe(t))
	slices.SortStableFunc(members, comparePriority)

	c.ordered[t] = members

	return members
}

// Grouped returns the members of t bucketed by category. Groups are sorted
// by name and keep the Ordered order inside.
func (c *Cache) Grouped(t reflect.Type) []*Grouping {
	t = deref(t)
	if cached, ok := c.grouped[t]; ok {
		return cached
	}

	groups := []*Grouping{}
	byName := make(map[string]*Grouping)

	for _, m := range c.Ordered(t) {
		g, ok := byName[m.Category]
		if !ok {
			g = &Grouping{Name: m.Category}
			byName[m.Category] = g
			groups = append(groups, g)
		}

		g.Members = append(g.Members, m)
	}

	slices.SortStableFunc(groups, func(a, b *Grouping) int {
		return cmp.Compare(a.Name, b.Name)
	})

	c.grouped[t] = groups

	return groups
}

// Alphabetical returns the members of t sorted by display name, ties in
// discovery order.
func (c *Cache) Alphabetical(t reflect.Type) []*Member {
	t = deref(t)
	if cached, ok := c.alphabetical[t]; ok {
		return cached
	}

	members := slices.Clone(c.describe(t))
	slices.SortStableFunc(members, func(a, b *Member) int {
		return cmp.Compare(a.DisplayName, b.DisplayName)
	})

	c.alphabetical[t] = members

	return members
}

// OrderedOf is Ordered for the dynamic type of v.
func (c *Cache) OrderedOf(v any) []*Member { return c.Ordered(reflect.TypeOf(v)) }

// GroupedOf is Grouped for the dynamic type of v.
func (c *Cache) GroupedOf(v any) []*Grouping { return c.Grouped(reflect.TypeOf(v)) }

// AlphabeticalOf is Alphabetical for the dynamic type of v.
func (c *Cache) AlphabeticalOf(v any) []*Member { return c.Alphabetical(reflect.TypeOf(v)) }

// Lookup returns the member of t whose display name is name.
func (c *Cache) Lookup(t reflect.Type, name string) (*Member, bool) {
	for _, m := range c.Alphabetical(t) {
		if m.DisplayName == name {
			return m, true
		}
	}

	return nil, false
}

func comparePriority(a, b *Member) int {
	switch {
	case a.HasPriority && !b.HasPriority:
		return -1
	case !a.HasPriority && b.HasPriority:
		return 1
	case a.HasPriority && b.HasPriority:
		return cmp.Compare(a.Priority, b.Priority)
	default:
		return 0
	}
}

func deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

// rawMember is a discovered member before annotations are applied.
type rawMember struct {
	name   string
	source Source
	typ    reflect.Type
	tag    string
	get    func(any) any
	set    func(any, any)
}

// describe returns the filtered members of t in discovery order.
func (c *Cache) describe(t reflect.Type) []*Member {
	if t == nil {
		return []*Member{}
	}

	if cached, ok := c.base[t]; ok {
		return cached
	}

	var (
		raws  []rawMember
		class []ClassAnnotation
	)

	if table, ok := c.tables[t]; ok {
		raws = tableMembers(table)
		class = table.class
	} else {
		raws = c.scanMembers(t)
		class = classAnnotationsOf(t)
	}

	idx := indexClassAnnotations(class)
	members := make([]*Member, 0, len(raws))

	for _, raw := range raws {
		m, ok := c.buildMember(t, raw, idx)
		if !ok {
			continue
		}

		m.Index = len(members)
		members = append(members, m)
	}

	c.base[t] = members
	c.logger.Debug("described type",
		zap.Stringer("type", analyze.IDOf(t)),
		zap.Int("discovered", len(raws)),
		zap.Int("editable", len(members)))

	return members
}

// buildMember applies annotations to raw. Returns false when the member is
// excluded.
func (c *Cache) buildMember(t reflect.Type, raw rawMember, idx classAnnotations) (*Member, bool) {
	if idx.ignores[raw.name] {
		return nil, false
	}

	ann := c.parseTag(t, raw.name, idx.tags[raw.name])
	if raw.tag != "" {
		ann = ann.Merge(c.parseTag(t, raw.name, raw.tag))
	}

	if ann.Excluded() {
		return nil, false
	}

	m := &Member{
		AccessName: raw.name,
		Tip:        ann.Description,
		Kind:       KindOf(raw.typ),
		Type:       raw.typ,
		Source:     raw.source,
		Category:   ann.Category,
		Flags:      ann.Flags,
		get:        raw.get,
		set:        raw.set,
	}

	switch newName, renamed := idx.renames[raw.name]; {
	case renamed:
		m.DisplayName = newName
	case ann.Name != "":
		m.DisplayName = ann.Name
	default:
		m.DisplayName = SplitWords(raw.name)
	}

	if m.Category == "" {
		m.Category = DefaultCategory
	}

	if ann.HasPriority {
		m.Priority, m.HasPriority = ann.Priority, true
	} else if level, ok := idx.priorities[raw.name]; ok {
		m.Priority, m.HasPriority = level, true
	}

	if m.Kind == KindEnum {
		m.EnumValues = enumValuesOf(raw.typ)
		for _, v := range m.EnumValues {
			m.EnumNames = append(m.EnumNames, fmt.Sprint(v))
		}
	}

	return m, true
}

func (c *Cache) parseTag(t reflect.Type, member, tag string) analyze.Annotations {
	if tag == "" {
		return analyze.Annotations{}
	}

	ann, err := analyze.ParseTag(tag)
	if err != nil {
		c.logger.Warn("invalid annotation",
			zap.Stringer("type", analyze.IDOf(t)),
			zap.String("member", member),
			zap.Error(err))
	}

	return ann
}

func tableMembers(table *TypeTable) []rawMember {
	raws := make([]rawMember, 0, len(table.members))
	for _, tm := range table.members {
		raws = append(raws, rawMember{
			name:   tm.name,
			source: Accessor,
			typ:    tm.typ,
			tag:    tm.tag,
			get:    tm.get,
			set:    tm.set,
		})
	}

	return raws
}
