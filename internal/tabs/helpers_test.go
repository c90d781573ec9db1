package tabs

import (
	"testing"

	"github.com/atomicstack/tabdeck/internal/tree"
)

type fixture struct {
	doc   *tree.Document
	group *Group
}

func newFixture(opts ...GroupOption) *fixture {
	doc := tree.NewDocument()
	return &fixture{doc: doc, group: NewGroup(doc, opts...)}
}

// container builds a host holding one item per title and binds a container
// to it. Titles prefixed with "*" start active.
func (f *fixture) container(t *testing.T, name string, titles []string, opts ...Option) (*Container, []*tree.Node) {
	t.Helper()
	host := f.doc.NewNode(name)
	if err := f.doc.Root().Append(host); err != nil {
		t.Fatalf("append host: %v", err)
	}
	items := make([]*tree.Node, len(titles))
	for i, title := range titles {
		items[i] = f.item(title)
		if err := host.Append(items[i]); err != nil {
			t.Fatalf("append item: %v", err)
		}
	}
	f.doc.Flush()
	c := f.group.NewContainer(host, append([]Option{WithName(name)}, opts...)...)
	f.doc.Flush()
	return c, items
}

func (f *fixture) item(title string) *tree.Node {
	n := f.doc.NewNode("pane")
	if len(title) > 0 && title[0] == '*' {
		title = title[1:]
		n.SetAttr(AttrActive, "")
	}
	n.SetAttr(AttrTitle, title)
	return n
}

func itemTitles(c *Container) []string {
	out := []string{}
	for _, item := range c.Items() {
		out = append(out, ItemTitle(item))
	}
	return out
}

func handleTitles(c *Container) []string {
	out := []string{}
	for _, h := range c.Handles() {
		out = append(out, h.Title())
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// assertConsistent checks the invariants every settled container must hold.
func assertConsistent(t *testing.T, c *Container) {
	t.Helper()
	items := c.Items()
	handles := c.Handles()
	if len(items) != len(handles) {
		t.Fatalf("%s: expected %d handles, got %d", c.Name(), len(items), len(handles))
	}
	activeItems, activeHandles := 0, 0
	for i, h := range handles {
		if h.Item() != items[i] {
			t.Fatalf("%s: handle %d mirrors the wrong item", c.Name(), i)
		}
		if h.Title() != ItemTitle(items[i]) {
			t.Fatalf("%s: expected handle title %q, got %q", c.Name(), ItemTitle(items[i]), h.Title())
		}
		if ItemID(items[i]) == "" {
			t.Fatalf("%s: item %d has no identifier", c.Name(), i)
		}
		if IsActive(items[i]) {
			activeItems++
		}
		if h.Marker(MarkerActive) {
			activeHandles++
			if !IsActive(items[i]) {
				t.Fatalf("%s: handle %d active but its item is not", c.Name(), i)
			}
		}
	}
	want := 1
	if len(items) == 0 {
		want = 0
	}
	if activeItems != want || activeHandles != want {
		t.Fatalf("%s: expected %d active pair(s), got %d items and %d handles", c.Name(), want, activeItems, activeHandles)
	}
	if want == 1 && c.Active() == nil {
		t.Fatalf("%s: expected an active handle", c.Name())
	}
}

type surfaceCall struct {
	op    string
	title string
	name  string
	on    bool
}

type recordingSurface struct {
	calls []surfaceCall
	live  map[*Handle]bool
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{live: make(map[*Handle]bool)}
}

func (s *recordingSurface) Construct(h *Handle) {
	s.live[h] = true
	s.calls = append(s.calls, surfaceCall{op: "construct", title: h.Title()})
}

func (s *recordingSurface) Destroy(h *Handle) {
	delete(s.live, h)
	s.calls = append(s.calls, surfaceCall{op: "destroy", title: h.Title()})
}

func (s *recordingSurface) SetTitle(h *Handle, title string) {
	s.calls = append(s.calls, surfaceCall{op: "title", title: title})
}

func (s *recordingSurface) SetMarker(h *Handle, name string, on bool) {
	s.calls = append(s.calls, surfaceCall{op: "marker", title: h.Title(), name: name, on: on})
}

func (s *recordingSurface) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}
