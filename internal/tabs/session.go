package tabs

// DragSession is the single slot naming the item currently being dragged. One
// session is shared by all containers of a Group.
type DragSession struct {
	id   string
	live bool
}

// Start records id as the dragged item, replacing any previous session.
func (s *DragSession) Start(id string) {
	s.id = id
	s.live = id != ""
}

// ID returns the dragged identifier and whether a session is live.
func (s *DragSession) ID() (string, bool) {
	return s.id, s.live
}

// Active reports whether a drag is in progress.
func (s *DragSession) Active() bool {
	return s.live
}

// Clear empties the session.
func (s *DragSession) Clear() {
	s.id = ""
	s.live = false
}
