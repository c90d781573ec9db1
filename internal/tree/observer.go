package tree

// RecordType distinguishes structural from attribute changes.
type RecordType int

const (
	ChildList RecordType = iota
	Attributes
)

func (t RecordType) String() string {
	switch t {
	case ChildList:
		return "childList"
	case Attributes:
		return "attributes"
	default:
		return "unknown"
	}
}

// Record describes a single mutation.
type Record struct {
	Type          RecordType
	Target        *Node
	Added         []*Node
	Removed       []*Node
	AttributeName string
	OldValue      string
	HadValue      bool
}

// ObserveOptions selects which mutations of a node an observer receives.
type ObserveOptions struct {
	ChildList bool
	// Attributes lists the attribute names to watch; empty means none.
	Attributes []string
}

// Callback receives every record queued for an observer since its last delivery.
type Callback func(records []Record)

// Observer receives batches of records for the nodes it observes.
type Observer struct {
	doc      *Document
	callback Callback
	targets  map[*Node]ObserveOptions
	queue    []Record
}

// maxFlushRounds bounds how many delivery rounds one Flush performs when
// callbacks keep producing new records.
const maxFlushRounds = 64

// NewObserver registers an observer. It receives nothing until Observe is called.
func (d *Document) NewObserver(callback Callback) *Observer {
	o := &Observer{doc: d, callback: callback, targets: make(map[*Node]ObserveOptions)}
	d.observers = append(d.observers, o)
	return o
}

// Observe starts (or replaces) observation of target.
func (o *Observer) Observe(target *Node, opts ObserveOptions) {
	if target == nil {
		return
	}
	if o.targets == nil {
		o.targets = make(map[*Node]ObserveOptions)
		o.doc.observers = append(o.doc.observers, o)
	}
	o.targets[target] = opts
}

// Disconnect stops all observation and drops undelivered records. The observer
// may be reused by calling Observe again.
func (o *Observer) Disconnect() {
	if o.targets == nil {
		return
	}
	o.targets = nil
	o.queue = nil
	for i, other := range o.doc.observers {
		if other == o {
			o.doc.observers = append(o.doc.observers[:i], o.doc.observers[i+1:]...)
			break
		}
	}
}

// TakeRecords returns and clears the undelivered records.
func (o *Observer) TakeRecords() []Record {
	records := o.queue
	o.queue = nil
	return records
}

func (o *Observer) wants(rec Record) bool {
	opts, ok := o.targets[rec.Target]
	if !ok {
		return false
	}
	switch rec.Type {
	case ChildList:
		return opts.ChildList
	case Attributes:
		for _, name := range opts.Attributes {
			if name == rec.AttributeName {
				return true
			}
		}
	}
	return false
}

func (d *Document) enqueue(rec Record) {
	for _, o := range d.observers {
		if o.wants(rec) {
			o.queue = append(o.queue, rec)
			d.pending = true
		}
	}
}

// Pending reports whether any observer has undelivered records.
func (d *Document) Pending() bool {
	return d.pending
}

// Flush delivers queued records, one callback per observer per round, in
// observer registration order. Records produced by callbacks are delivered in
// a following round. Flush returns the number of callbacks invoked. Calling
// Flush from inside a callback is a no-op.
func (d *Document) Flush() int {
	if d.flushing {
		return 0
	}
	d.flushing = true
	defer func() { d.flushing = false }()

	delivered := 0
	for round := 0; round < maxFlushRounds && d.pending; round++ {
		d.pending = false
		ready := make([]*Observer, 0, len(d.observers))
		for _, o := range d.observers {
			if len(o.queue) > 0 {
				ready = append(ready, o)
			}
		}
		for _, o := range ready {
			records := o.TakeRecords()
			if len(records) == 0 || o.callback == nil {
				continue
			}
			o.callback(records)
			delivered++
		}
	}
	return delivered
}
