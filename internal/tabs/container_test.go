package tabs

import (
	"errors"
	"testing"
)

func TestNewContainerBuildsHandlesAndDefaultsToFirst(t *testing.T) {
	f := newFixture()
	c, items := f.container(t, "A", []string{"a1", "a2", "a3"})
	assertConsistent(t, c)
	if got := handleTitles(c); !equalStrings(got, []string{"a1", "a2", "a3"}) {
		t.Fatalf("expected [a1 a2 a3], got %v", got)
	}
	if c.ActiveItem() != items[0] || c.ActiveIndex() != 0 {
		t.Fatalf("expected a1 active by default, got index %d", c.ActiveIndex())
	}
}

func TestPreMarkedActiveItemIsKept(t *testing.T) {
	f := newFixture()
	c, items := f.container(t, "A", []string{"a1", "*a2", "a3"})
	assertConsistent(t, c)
	if c.ActiveItem() != items[1] {
		t.Fatalf("expected a2 active, got index %d", c.ActiveIndex())
	}
}

func TestSeveralActiveItemsCollapseToFirst(t *testing.T) {
	f := newFixture()
	c, items := f.container(t, "A", []string{"a1", "*a2", "*a3"})
	assertConsistent(t, c)
	if c.ActiveItem() != items[1] {
		t.Fatalf("expected first marked item to win, got index %d", c.ActiveIndex())
	}
	if IsActive(items[2]) {
		t.Fatalf("expected a3 to lose its active flag")
	}
}

func TestMissingTitleIsEmpty(t *testing.T) {
	f := newFixture()
	c, _ := f.container(t, "A", []string{"a1"})
	untitled := f.doc.NewNode("pane")
	_ = c.Host().Append(untitled)
	f.doc.Flush()
	assertConsistent(t, c)
	if h := c.Registry().HandleFor(untitled); h == nil || h.Title() != "" {
		t.Fatalf("expected a handle with an empty title, got %#v", h)
	}
}

func TestResyncIsIdempotent(t *testing.T) {
	f := newFixture()
	c, _ := f.container(t, "A", []string{"a1", "*a2", "a3"})
	snapshot := func() []string {
		out := []string{}
		for _, h := range c.Handles() {
			mark := ""
			if h.Marker(MarkerActive) {
				mark = "*"
			}
			out = append(out, mark+h.Title()+"#"+ItemID(h.Item()))
		}
		return out
	}
	c.Resync()
	first := snapshot()
	c.Resync()
	second := snapshot()
	if !equalStrings(first, second) {
		t.Fatalf("expected identical handles, got %v then %v", first, second)
	}
	f.doc.Flush()
	assertConsistent(t, c)
}

func TestResyncDestroysPreviousGeneration(t *testing.T) {
	f := newFixture()
	surface := newRecordingSurface()
	c, _ := f.container(t, "A", []string{"a1", "a2"}, WithSurface(surface))
	old := c.Handles()
	c.Resync()
	for _, h := range old {
		if h.Live() {
			t.Fatalf("expected old handle %q to be destroyed", h.Title())
		}
	}
	if len(surface.live) != 2 {
		t.Fatalf("expected 2 live surface handles, got %d", len(surface.live))
	}
	if err := c.SelectTab(old[1]); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference for stale handle, got %v", err)
	}
}

func TestIdentifiersAreAssignedOnceAndKept(t *testing.T) {
	f := newFixture()
	c, items := f.container(t, "A", []string{"a1", "a2"})
	ids := []string{ItemID(items[0]), ItemID(items[1])}
	if ids[0] == "" || ids[0] == ids[1] {
		t.Fatalf("expected distinct identifiers, got %v", ids)
	}
	c.Resync()
	if ItemID(items[0]) != ids[0] || ItemID(items[1]) != ids[1] {
		t.Fatalf("expected identifiers to survive resync")
	}
}

func TestSelectTabByEveryReferenceKind(t *testing.T) {
	f := newFixture()
	c, items := f.container(t, "A", []string{"a1", "a2", "a3"})

	if err := c.SelectTab(Index(2)); err != nil {
		t.Fatalf("select by index: %v", err)
	}
	if c.ActiveItem() != items[2] {
		t.Fatalf("expected a3 active")
	}
	if err := c.SelectTab(Item(items[1])); err != nil {
		t.Fatalf("select by item: %v", err)
	}
	if c.ActiveItem() != items[1] {
		t.Fatalf("expected a2 active")
	}
	if err := c.SelectTab(c.Handles()[0]); err != nil {
		t.Fatalf("select by handle: %v", err)
	}
	if c.ActiveItem() != items[0] {
		t.Fatalf("expected a1 active")
	}
	f.doc.Flush()
	assertConsistent(t, c)
}

func TestSelectTabErrors(t *testing.T) {
	f := newFixture()
	a, _ := f.container(t, "A", []string{"a1", "a2"})
	b, bItems := f.container(t, "B", []string{"b1"})

	if err := a.SelectTab(Index(5)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if err := a.SelectTab(Index(-1)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for negative index, got %v", err)
	}
	if err := a.SelectTab(nil); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference for nil, got %v", err)
	}
	if err := a.SelectTab(Item(nil)); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference for nil item, got %v", err)
	}
	if err := a.SelectTab(Item(bItems[0])); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference for foreign item, got %v", err)
	}
	if err := a.SelectTab(b.Handles()[0]); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference for foreign handle, got %v", err)
	}
	var nilHandle *Handle
	if err := a.SelectTab(nilHandle); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference for nil handle, got %v", err)
	}
	if a.ActiveIndex() != 0 {
		t.Fatalf("expected failed selections to leave a1 active, got %d", a.ActiveIndex())
	}
}

func TestSelectItemBeforeResync(t *testing.T) {
	f := newFixture()
	c, _ := f.container(t, "A", []string{"a1", "a2"})
	fresh := f.item("a3")
	_ = c.Host().Append(fresh)
	if err := c.SelectTab(Item(fresh)); err != nil {
		t.Fatalf("select pending item: %v", err)
	}
	if c.Active() != nil {
		t.Fatalf("expected no active handle before resync")
	}
	f.doc.Flush()
	assertConsistent(t, c)
	if c.ActiveItem() != fresh || c.ActiveIndex() != 2 {
		t.Fatalf("expected a3 active after resync, got index %d", c.ActiveIndex())
	}
}

func TestCloseActiveTabPromotesNext(t *testing.T) {
	f := newFixture()
	c, items := f.container(t, "A", []string{"*a1", "a2", "a3"})
	if err := c.CloseTab(Item(items[0])); err != nil {
		t.Fatalf("close: %v", err)
	}
	if items[0].Parent() != nil {
		t.Fatalf("expected a1 detached")
	}
	f.doc.Flush()
	assertConsistent(t, c)
	if got := itemTitles(c); !equalStrings(got, []string{"a2", "a3"}) {
		t.Fatalf("expected [a2 a3], got %v", got)
	}
	if c.ActiveItem() != items[1] {
		t.Fatalf("expected a2 active, got index %d", c.ActiveIndex())
	}
}

func TestCloseTabByIndexAndErrors(t *testing.T) {
	f := newFixture()
	c, items := f.container(t, "A", []string{"a1", "a2"})
	if err := c.CloseTab(Index(3)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if err := c.CloseTab(nil); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
	if err := c.CloseTab(Index(1)); err != nil {
		t.Fatalf("close by index: %v", err)
	}
	f.doc.Flush()
	if got := itemTitles(c); !equalStrings(got, []string{"a1"}) {
		t.Fatalf("expected [a1], got %v", got)
	}
	if err := c.CloseTab(Item(items[1])); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference for closed item, got %v", err)
	}
}

func TestEmptyFiresOncePerTransition(t *testing.T) {
	f := newFixture()
	fired := 0
	c, items := f.container(t, "A", nil, OnEmpty(func(*Container) { fired++ }))
	if fired != 0 {
		t.Fatalf("expected no empty notification at construction, got %d", fired)
	}
	_ = c.Host().Append(f.item("a1"))
	f.doc.Flush()
	if fired != 0 || c.Len() != 1 {
		t.Fatalf("expected one tab and no notification, got len %d fired %d", c.Len(), fired)
	}
	items = c.Items()
	_ = c.CloseTab(Item(items[0]))
	f.doc.Flush()
	if fired != 1 {
		t.Fatalf("expected one notification, got %d", fired)
	}
	c.Resync()
	c.Resync()
	if fired != 1 {
		t.Fatalf("expected repeated empty resyncs not to notify, got %d", fired)
	}
	if c.Len() != 0 || c.Active() != nil || c.ActiveIndex() != -1 {
		t.Fatalf("expected no handles and no selection")
	}
}

func TestReentrantResyncIsCoalesced(t *testing.T) {
	f := newFixture()
	fired := 0
	var c *Container
	c, _ = f.container(t, "A", []string{"a1"}, OnEmpty(func(got *Container) {
		fired++
		got.Resync()
	}))
	_ = c.CloseTab(Index(0))
	f.doc.Flush()
	if fired != 1 {
		t.Fatalf("expected a single notification, got %d", fired)
	}
	assertConsistent(t, c)
}

func TestTitleAttributeUpdatesHandleInPlace(t *testing.T) {
	f := newFixture()
	surface := newRecordingSurface()
	c, items := f.container(t, "A", []string{"a1", "a2"}, WithSurface(surface))
	before := c.Handles()[1]
	constructs := surface.count("construct")

	items[1].SetAttr(AttrTitle, "renamed")
	f.doc.Flush()
	if before.Title() != "renamed" || !before.Live() {
		t.Fatalf("expected live handle retitled, got %q live=%v", before.Title(), before.Live())
	}
	if surface.count("construct") != constructs {
		t.Fatalf("expected no rebuild for a title change")
	}
	if surface.count("title") != 1 {
		t.Fatalf("expected one SetTitle call, got %d", surface.count("title"))
	}
}

func TestExternalActiveFlagChanges(t *testing.T) {
	f := newFixture()
	c, items := f.container(t, "A", []string{"a1", "a2", "a3"})

	items[2].SetAttr(AttrActive, "")
	f.doc.Flush()
	assertConsistent(t, c)
	if c.ActiveItem() != items[2] {
		t.Fatalf("expected a3 active, got index %d", c.ActiveIndex())
	}

	items[2].RemoveAttr(AttrActive)
	f.doc.Flush()
	assertConsistent(t, c)
	if c.ActiveItem() != items[0] {
		t.Fatalf("expected default policy to pick a1, got index %d", c.ActiveIndex())
	}
}

func TestLastActiveFlagInBatchWins(t *testing.T) {
	f := newFixture()
	c, items := f.container(t, "A", []string{"a1", "a2", "a3"})

	items[1].SetAttr(AttrActive, "")
	items[2].SetAttr(AttrActive, "")
	f.doc.Flush()
	assertConsistent(t, c)
	if c.ActiveItem() != items[2] {
		t.Fatalf("expected a3 active, got index %d", c.ActiveIndex())
	}

	items[0].SetAttr(AttrActive, "")
	items[1].SetAttr(AttrActive, "")
	items[1].RemoveAttr(AttrActive)
	f.doc.Flush()
	assertConsistent(t, c)
	if c.ActiveItem() != items[0] {
		t.Fatalf("expected a1 active once a2 dropped its flag, got index %d", c.ActiveIndex())
	}
}

func TestAfterNextResyncRunsOnce(t *testing.T) {
	f := newFixture()
	c, _ := f.container(t, "A", []string{"a1"})
	runs := 0
	c.AfterNextResync(func() { runs++ })
	c.AfterNextResync(nil)
	if runs != 0 {
		t.Fatalf("expected callback to wait for a resync")
	}
	_ = c.Host().Append(f.item("a2"))
	f.doc.Flush()
	c.Resync()
	if runs != 1 {
		t.Fatalf("expected one run, got %d", runs)
	}
}

func TestTeardownStopsWatching(t *testing.T) {
	f := newFixture()
	surface := newRecordingSurface()
	c, items := f.container(t, "A", []string{"a1", "a2"}, WithSurface(surface))
	c.Teardown()
	c.Teardown()
	if len(surface.live) != 0 || c.Len() != 0 {
		t.Fatalf("expected every handle destroyed")
	}
	if len(f.group.Containers()) != 0 {
		t.Fatalf("expected container unregistered from group")
	}
	_ = c.Host().Append(f.item("a3"))
	items[0].SetAttr(AttrTitle, "changed")
	f.doc.Flush()
	if c.Len() != 0 {
		t.Fatalf("expected no resync after teardown, got %d handles", c.Len())
	}
	if c.Host().Len() != 3 {
		t.Fatalf("expected host items untouched, got %d", c.Host().Len())
	}
}
