package inspector

import (
	"fmt"
	"reflect"
	"strconv"

	"go.uber.org/zap"

	"inspector-kit/internal/common"
	"inspector-kit/meta"
	"inspector-kit/widget"
)

// Grid draws several objects side by side, one row per object and one
// column per display name all of them share.
type Grid struct {
	*Inspector

	objects []any
	dirty   bool
	tables  [][]*meta.Member
	common  []string
	page    PageHandler
}

// NewGrid creates a Grid drawing through r.
func NewGrid(cache *meta.Cache, r widget.Renderer, opts ...Option) *Grid {
	return &Grid{
		Inspector: New(cache, r, opts...),
		dirty:     true,
	}
}

// SetObjects replaces the displayed objects. Tables are recomputed on the
// next Draw only when the slice itself changed (length or backing array);
// replacing elements in place keeps the previous tables.
func (g *Grid) SetObjects(objs []any) {
	if sameSlice(g.objects, objs) {
		return
	}

	g.objects = objs
	g.dirty = true
}

// Objects returns the displayed objects.
func (g *Grid) Objects() []any { return g.objects }

// CommonFields returns the display names shared by every object as of the
// last Draw.
func (g *Grid) CommonFields() []string { return g.common }

// DrawAsWindow draws the grid inside a window.
func (g *Grid) DrawAsWindow(title string) {
	if g.r.Begin(title, widget.WindowResizeFromAnySide) {
		g.Draw()
	}

	g.r.End()
}

// Draw draws the header row and one row per object.
func (g *Grid) Draw() {
	r := g.r
	if common.IsEmpty(g.objects) {
		r.Text(NoObjectsSelected)
		return
	}

	if g.dirty {
		g.refresh()
	}

	if common.IsEmpty(g.common) {
		r.Text(NoCommonFields)
		return
	}

	r.PushItemWidth(-1)

	useColumns := common.IsMultiple(g.common)
	if useColumns {
		r.Columns(len(g.common))
	}

	for i, name := range g.common {
		r.Text(name)

		if useColumns && r.ColumnWidth(i) < r.CalcTextWidth(name)+10 && r.IsItemHovered() {
			r.SetTooltip(name)
		}

		if useColumns {
			r.NextColumn()
		}
	}

	r.Separator()

	for o, obj := range g.objects {
		if g.page != nil {
			r.PushID(strconv.Itoa(o))
			g.page.EmitColumns(r, g.common, obj)
			r.PopID()
		} else {
			g.drawRow(o, obj, useColumns)
		}

		r.Separator()
	}

	if useColumns {
		r.Columns(1)
	}

	r.PopItemWidth()
}

func (g *Grid) drawRow(o int, obj any, useColumns bool) {
	r := g.r

	for _, name := range g.common {
		r.PushID(fmt.Sprintf("%d:%s", o, name))
		r.PushItemWidth(-1)

		if m := memberNamed(g.tables[o], name); m != nil {
			g.DrawField(m, obj, false)
		}

		r.PopItemWidth()
		r.PopID()

		if useColumns {
			r.NextColumn()
		}
	}
}

// refresh rebuilds the per-object tables and the running intersection of
// display names, seeded by the first object.
func (g *Grid) refresh() {
	g.tables = make([][]*meta.Member, len(g.objects))
	g.common = nil
	g.page = g.sharedPage()

	for o, obj := range g.objects {
		g.tables[o] = g.cache.AlphabeticalOf(obj)

		names := make([]string, 0, len(g.tables[o]))
		for _, m := range g.tables[o] {
			names = append(names, m.DisplayName)
		}

		if o == 0 {
			g.common = distinct(names)
			continue
		}

		g.common = intersect(g.common, names)
	}

	g.dirty = false
	g.logger.Debug("grid tables rebuilt",
		zap.Int("objects", len(g.objects)),
		zap.Int("common", len(g.common)))
}

// sharedPage returns the page registered for the type every object has.
func (g *Grid) sharedPage() PageHandler {
	first := reflect.TypeOf(g.objects[0])
	for _, obj := range g.objects[1:] {
		if reflect.TypeOf(obj) != first {
			return nil
		}
	}

	page, _ := g.Pages.Lookup(first)

	return page
}

func memberNamed(members []*meta.Member, name string) *meta.Member {
	for _, m := range members {
		if m.DisplayName == name {
			return m
		}
	}

	return nil
}

func distinct(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))

	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	return out
}

func intersect(common, names []string) []string {
	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}

	out := make([]string, 0, len(common))
	for _, name := range common {
		if present[name] {
			out = append(out, name)
		}
	}

	return out
}

func sameSlice(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}

	return len(a) == 0 || &a[0] == &b[0]
}
