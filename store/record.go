package store

// Record is one row of a table: an ordered field→value mapping. Field order
// matters — append sends values in this order and replace derives the header
// row from it, so it must match the destination worksheet's header order.
// Values are opaque strings; numeric coercion is up to the caller.
type Record struct {
	keys []string
	vals map[string]string
}

func NewRecord() *Record {
	return &Record{vals: make(map[string]string)}
}

// Set assigns a field value. A new key is appended at the end; an existing
// key keeps its position.
func (r *Record) Set(key, value string) *Record {
	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = value
	return r
}

// Get returns the value for key, or "" when the field is absent.
func (r *Record) Get(key string) string {
	return r.vals[key]
}

func (r *Record) Has(key string) bool {
	_, ok := r.vals[key]
	return ok
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Values returns the field values aligned with Keys.
func (r *Record) Values() []string {
	out := make([]string, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.vals[k])
	}
	return out
}

func (r *Record) Len() int {
	return len(r.keys)
}

func (r *Record) Clone() *Record {
	c := NewRecord()
	for _, k := range r.keys {
		c.Set(k, r.vals[k])
	}
	return c
}
