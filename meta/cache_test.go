package meta

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspector-kit/widget"
)

type priorityFixture struct {
	C    int `inspect:"priority=3"`
	A    int `inspect:"priority=1"`
	None int
	B    int `inspect:"priority=2"`
	Tie  int `inspect:"priority=1"`
}

type ignoreFixture struct {
	Foo    int
	Bar    int
	Baz    int `inspect:"ignore"`
	Qux    int `inspect:"browsable=false"`
	Hidden int `inspect:"hidden"`
	Dash   int `inspect:"-"`
}

func (ignoreFixture) InspectorAnnotations() []ClassAnnotation {
	return []ClassAnnotation{IgnoreMember("Foo")}
}

type nameFixture struct {
	MaxHP      int `inspect:"name=Hit Points"`
	ManaPool   int `inspect:"name=Mana"`
	Item2Count int
	Rank       int
}

func (nameFixture) InspectorAnnotations() []ClassAnnotation {
	return []ClassAnnotation{
		RenameMember("MaxHP", "Health"),
		PriorityFor(1, "Rank"),
		PriorityFor(9, "ManaPool"),
	}
}

type groupFixture struct {
	Speed float32 `inspect:"category=Movement,priority=2"`
	Name  string
	Jump  float32 `inspect:"category=Movement,priority=1"`
	Armor int     `inspect:"category=Combat,desc='Damage taken, reduced'"`
	Notes string
}

type mode int

const (
	modeIdle mode = iota
	modeRun
	modeFly
)

func (m mode) String() string {
	return [...]string{"Idle", "Run", "Fly"}[m]
}

func (mode) EnumValues() []any {
	return []any{modeIdle, modeRun, modeFly}
}

type propFixture struct {
	level   int
	Visible bool
	Mode    mode
}

func (p *propFixture) Level() int { return p.level }
func (p *propFixture) SetLevel(v int) { p.level = v }
func (p *propFixture) String() string { return "prop" }
func (p *propFixture) Half() float64 { return float64(p.level) / 2 }
func (p *propFixture) SetOther(v int) {}
func (p *propFixture) Other() string { return "" }
func (p *propFixture) InspectorAnnotations() []ClassAnnotation {
	return []ClassAnnotation{Tag("Level", "priority=1,desc=Current level")}
}

type Base struct {
	ID   int
	Name string
}

type embedFixture struct {
	Base
	Name  string
	Extra bool
}

type kindFixture struct {
	Flag   bool
	Count  int32
	Ratio  float32
	Scale  float64
	Label  string
	Note   *string
	Tint   widget.Color
	Pos    widget.Vec3
	Rot    widget.Quat
	Xform  widget.Mat4
	Mode   mode
	Items  []int
	Blob   []byte
	Lookup map[string]int
}

func memberNames(members []*Member) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.AccessName)
	}

	return names
}

func TestCache_OrderedPriority(t *testing.T) {
	cache := NewCache(false, true)
	ordered := cache.Ordered(reflect.TypeFor[priorityFixture]())

	assert.Equal(t, []string{"A", "Tie", "B", "C", "None"}, memberNames(ordered))
}

func TestCache_OrderedIsCached(t *testing.T) {
	cache := NewCache(false, true)
	typ := reflect.TypeFor[priorityFixture]()

	first := cache.Ordered(typ)
	second := cache.Ordered(reflect.PointerTo(typ))
	require.NotEmpty(t, first)
	assert.Same(t, &first[0], &second[0])
	assert.Same(t, first[0], cache.Alphabetical(typ)[0])
}

func TestCache_IgnoreRules(t *testing.T) {
	cache := NewCache(false, true)

	names := memberNames(cache.Ordered(reflect.TypeFor[ignoreFixture]()))
	assert.Equal(t, []string{"Bar"}, names)
	assert.Equal(t, []string{"Bar"}, memberNames(cache.Alphabetical(reflect.TypeFor[ignoreFixture]())))
}

func TestCache_NamePrecedence(t *testing.T) {
	cache := NewCache(false, true)
	ordered := cache.Ordered(reflect.TypeFor[nameFixture]())

	names := make(map[string]string)
	for _, m := range ordered {
		names[m.AccessName] = m.DisplayName
	}

	assert.Equal(t, "Health", names["MaxHP"])
	assert.Equal(t, "Mana", names["ManaPool"])
	assert.Equal(t, "Item2 Count", names["Item2Count"])

	// Class-level priorities apply to members without their own.
	assert.Equal(t, []string{"Rank", "ManaPool", "MaxHP", "Item2Count"}, memberNames(ordered))
}

func TestCache_Grouped(t *testing.T) {
	cache := NewCache(false, true)
	groups := cache.Grouped(reflect.TypeFor[groupFixture]())

	require.Len(t, groups, 3)
	assert.Equal(t, "Combat", groups[0].Name)
	assert.Equal(t, []string{"Armor"}, memberNames(groups[0].Members))
	assert.Equal(t, DefaultCategory, groups[1].Name)
	assert.Equal(t, []string{"Name", "Notes"}, memberNames(groups[1].Members))
	assert.Equal(t, "Movement", groups[2].Name)
	assert.Equal(t, []string{"Jump", "Speed"}, memberNames(groups[2].Members))

	assert.Equal(t, "Damage taken, reduced", groups[0].Members[0].Tip)
}

func TestCache_GroupedPartitionsOrdered(t *testing.T) {
	cache := NewCache(false, true)
	typ := reflect.TypeFor[groupFixture]()

	ordered := cache.Ordered(typ)
	position := make(map[*Member]int)
	for i, m := range ordered {
		position[m] = i
	}

	total := 0
	for _, g := range cache.Grouped(typ) {
		for i, m := range g.Members {
			_, ok := position[m]
			require.True(t, ok, "%s not in ordered view", m.AccessName)

			if i > 0 {
				assert.Less(t, position[g.Members[i-1]], position[m])
			}
		}

		total += len(g.Members)
	}

	assert.Equal(t, len(ordered), total)
}

func TestCache_Alphabetical(t *testing.T) {
	cache := NewCache(false, true)
	typ := reflect.TypeFor[groupFixture]()

	alpha := cache.Alphabetical(typ)
	assert.Equal(t, []string{"Armor", "Jump", "Name", "Notes", "Speed"}, memberNames(alpha))

	for i := 1; i < len(alpha); i++ {
		assert.LessOrEqual(t, alpha[i-1].DisplayName, alpha[i].DisplayName)
	}

	assert.ElementsMatch(t, cache.Ordered(typ), alpha)
}

func TestCache_ScanConfiguration(t *testing.T) {
	typ := reflect.TypeFor[propFixture]()

	both := NewCache(true, true)
	assert.Equal(t, []string{"Level", "Visible", "Mode"}, memberNames(both.Ordered(typ)))

	fieldsOnly := NewCache(false, true)
	assert.Equal(t, []string{"Visible", "Mode"}, memberNames(fieldsOnly.Ordered(typ)))

	propsOnly := NewCache(true, false)
	members := propsOnly.Ordered(typ)
	require.Len(t, members, 1)
	assert.Equal(t, "Level", members[0].AccessName)
	assert.Equal(t, Property, members[0].Source)
	assert.Equal(t, "Current level", members[0].Tip)
	assert.True(t, members[0].HasPriority)
}

func TestCache_EmptyType(t *testing.T) {
	cache := NewCache(true, true)

	assert.Empty(t, cache.Ordered(reflect.TypeFor[struct{}]()))
	assert.NotNil(t, cache.Ordered(reflect.TypeFor[struct{}]()))
	assert.Empty(t, cache.Grouped(reflect.TypeFor[struct{}]()))
	assert.Empty(t, cache.Alphabetical(reflect.TypeFor[int]()))
}

func TestCache_EmbeddedPromotion(t *testing.T) {
	cache := NewCache(false, true)
	members := cache.Ordered(reflect.TypeFor[embedFixture]())

	assert.Equal(t, []string{"ID", "Name", "Extra"}, memberNames(members))

	obj := &embedFixture{Base: Base{ID: 4}}
	members[0].Set(obj, 9)
	assert.Equal(t, 9, obj.ID)
}

func TestCache_EmbeddedShadowing(t *testing.T) {
	cache := NewCache(false, true)
	obj := &embedFixture{Base: Base{Name: "inner"}, Name: "outer"}

	name, ok := cache.Lookup(reflect.TypeFor[embedFixture](), "Name")
	require.True(t, ok)
	assert.Equal(t, "outer", name.Get(obj))

	name.Set(obj, "edited")
	assert.Equal(t, "edited", obj.Name)
	assert.Equal(t, "inner", obj.Base.Name)
}

func TestMember_GetSet(t *testing.T) {
	cache := NewCache(true, true)
	typ := reflect.TypeFor[propFixture]()
	obj := &propFixture{level: 3}

	level, ok := cache.Lookup(typ, "Level")
	require.True(t, ok)
	assert.Equal(t, 3, level.Get(obj))
	assert.Equal(t, 3, level.Get(*obj))

	level.Set(obj, 7)
	assert.Equal(t, 7, obj.level)

	// Numeric conversion on commit.
	level.Set(obj, float32(5))
	assert.Equal(t, 5, obj.level)

	// Incompatible values and non-pointer targets are ignored.
	level.Set(obj, "eleven")
	assert.Equal(t, 5, obj.level)
	level.Set(*obj, 1)
	assert.Equal(t, 5, obj.level)

	visible, ok := cache.Lookup(typ, "Visible")
	require.True(t, ok)
	visible.Bind(obj).Set(true)
	assert.True(t, obj.Visible)
	assert.Equal(t, true, visible.Bind(obj).Get())

	// Wrong target type reads as nil.
	assert.Nil(t, visible.Get(&groupFixture{}))
}

func TestMember_Enum(t *testing.T) {
	cache := NewCache(false, true)
	m, ok := cache.Lookup(reflect.TypeFor[propFixture](), "Mode")
	require.True(t, ok)

	assert.Equal(t, KindEnum, m.Kind)
	assert.Equal(t, []string{"Idle", "Run", "Fly"}, m.EnumNames)

	obj := &propFixture{Mode: modeFly}
	assert.Equal(t, 2, m.EnumIndex(obj))

	m.Set(obj, m.EnumValues[1])
	assert.Equal(t, modeRun, obj.Mode)
}

func TestKindOf(t *testing.T) {
	cache := NewCache(false, true)
	kinds := make(map[string]ValueKind)
	for _, m := range cache.Ordered(reflect.TypeFor[kindFixture]()) {
		kinds[m.AccessName] = m.Kind
	}

	assert.Equal(t, KindBool, kinds["Flag"])
	assert.Equal(t, KindInt, kinds["Count"])
	assert.Equal(t, KindFloat, kinds["Ratio"])
	assert.Equal(t, KindDouble, kinds["Scale"])
	assert.Equal(t, KindString, kinds["Label"])
	assert.Equal(t, KindString, kinds["Note"])
	assert.Equal(t, KindColor, kinds["Tint"])
	assert.Equal(t, KindVector3, kinds["Pos"])
	assert.Equal(t, KindQuaternion, kinds["Rot"])
	assert.Equal(t, KindMatrix, kinds["Xform"])
	assert.Equal(t, KindEnum, kinds["Mode"])
	assert.Equal(t, KindList, kinds["Items"])
	assert.Equal(t, KindUnhandled, kinds["Blob"])
	assert.Equal(t, KindUnhandled, kinds["Lookup"])
}

func TestValueKind_String(t *testing.T) {
	assert.Equal(t, "Bool", KindBool.String())
	assert.Equal(t, "Vector3", KindVector3.String())
	assert.Equal(t, "List", KindList.String())
	assert.Equal(t, "ValueKind(99)", ValueKind(99).String())
	assert.False(t, KindQuaternion.IsBuiltin())
}
