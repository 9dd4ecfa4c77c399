package tmpl

// Params is an insertion-ordered set of named template values. Order matters
// for repeatable blocks, which emit one copy per unused parameter.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams creates an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// Set adds or replaces a value, keeping the key's original position.
func (p *Params) Set(key, value string) *Params {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value for key.
func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return p.keys
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}
