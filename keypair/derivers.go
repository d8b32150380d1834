package keypair

import (
	"sort"
	"sync"
)

var DefaultDerivers *Derivers

func init() {
	DefaultDerivers = NewDerivers()
	_ = DefaultDerivers.Register(CurveDeriver{})
	_ = DefaultDerivers.Register(CirclDeriver{})
}

type Derivers struct {
	sync.RWMutex
	derivers    map[string]Deriver
	defaultName string
}

func NewDerivers() *Derivers {
	return &Derivers{
		derivers: map[string]Deriver{},
	}
}

// Register adds deriver; the first registered one becomes the default.
func (d *Derivers) Register(deriver Deriver) error {
	d.Lock()
	defer d.Unlock()

	if _, found := d.derivers[deriver.Name()]; found {
		return DeriverAlreadyRegisteredError.Newf("name=%q", deriver.Name())
	}

	d.derivers[deriver.Name()] = deriver

	if len(d.defaultName) < 1 {
		d.defaultName = deriver.Name()
	}

	return nil
}

func (d *Derivers) SetDefault(name string) error {
	deriver, err := d.Deriver(name)
	if err != nil {
		return err
	}

	d.Lock()
	defer d.Unlock()

	d.defaultName = deriver.Name()

	return nil
}

func (d *Derivers) Deriver(name string) (Deriver, error) {
	d.RLock()
	defer d.RUnlock()

	deriver, found := d.derivers[name]
	if !found {
		return nil, DeriverNotRegisteredError.Newf("name=%q", name)
	}

	return deriver, nil
}

func (d *Derivers) Default() (Deriver, error) {
	d.RLock()
	name := d.defaultName
	d.RUnlock()

	return d.Deriver(name)
}

func (d *Derivers) Names() []string {
	d.RLock()
	defer d.RUnlock()

	names := make([]string, 0, len(d.derivers))
	for name := range d.derivers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
