// Package registry runs the module lifecycle (init, then bind rounds) and
// routes capability discovery between modules.
//
// Modules are added during construction, before Start. Start seals the
// registry: later Add calls panic, and the set of modules is read-only.
package registry

import (
	"strconv"
	"sync"

	"junoadc-go/errcode"
)

// ModuleID names a module.
type ModuleID string

// APIID names one API exposed by a module.
type APIID struct {
	Module ModuleID
	Name   string
}

func (a APIID) String() string { return string(a.Module) + "." + a.Name }

// ID addresses a module (Element < 0) or one of its elements.
type ID struct {
	Module  ModuleID
	Element int
}

func ModuleScope(m ModuleID) ID         { return ID{Module: m, Element: -1} }
func ElementScope(m ModuleID, i int) ID { return ID{Module: m, Element: i} }
func (id ID) IsModule() bool            { return id.Element < 0 }

func (id ID) String() string {
	if id.IsModule() {
		return string(id.Module)
	}
	return string(id.Module) + "[" + strconv.Itoa(id.Element) + "]"
}

// Request is a discovery request delivered to the providing module.
type Request struct {
	Source ModuleID
	API    APIID
	Target any // provider-defined; providers reject types they do not know
}

// Module is implemented by everything the registry drives.
type Module interface {
	ElementCount() int
	Init() error
	// Bind is called for the module scope and then for every element,
	// once per round.
	Bind(r *Registry, id ID, round uint) error
	ProcessBindRequest(req Request) (any, error)
}

// BindRounds is the number of bind passes run by Start.
const BindRounds = 2

type state uint8

const (
	stateNew state = iota
	stateBinding
	stateRunning
	stateFailed
)

type Registry struct {
	mu    sync.RWMutex
	order []ModuleID
	mods  map[ModuleID]Module
	st    state
	err   error // startup failure, sticky
}

func New() *Registry {
	return &Registry{mods: map[ModuleID]Module{}}
}

// Add registers m under id. Duplicate ids and late registration panic.
func (r *Registry) Add(id ModuleID, m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.st != stateNew {
		panic("registry: Add after Start")
	}
	if _, exists := r.mods[id]; exists {
		panic("registry: module already registered: " + string(id))
	}
	r.mods[id] = m
	r.order = append(r.order, id)
}

// Start initialises every module in registration order, then runs the bind
// rounds. After a successful Start further calls are no-ops; after a failed
// one they return the same error.
func (r *Registry) Start() error {
	r.mu.Lock()
	switch r.st {
	case stateRunning:
		r.mu.Unlock()
		return nil
	case stateBinding:
		r.mu.Unlock()
		return errcode.NotReady
	case stateFailed:
		err := r.err
		r.mu.Unlock()
		return err
	}
	r.st = stateBinding
	order := append([]ModuleID(nil), r.order...)
	r.mu.Unlock()

	err := r.run(order)

	r.mu.Lock()
	if err != nil {
		r.st, r.err = stateFailed, err
	} else {
		r.st = stateRunning
	}
	r.mu.Unlock()
	return err
}

func (r *Registry) run(order []ModuleID) error {
	for _, id := range order {
		if err := r.mods[id].Init(); err != nil {
			return &errcode.E{C: errcode.Of(err), Op: "init", Msg: string(id), Err: err}
		}
	}
	for round := uint(0); round < BindRounds; round++ {
		for _, mid := range order {
			m := r.mods[mid]
			if err := m.Bind(r, ModuleScope(mid), round); err != nil {
				return &errcode.E{C: errcode.Of(err), Op: "bind", Msg: string(mid), Err: err}
			}
			for i := 0; i < m.ElementCount(); i++ {
				eid := ElementScope(mid, i)
				if err := m.Bind(r, eid, round); err != nil {
					return &errcode.E{C: errcode.Of(err), Op: "bind", Msg: eid.String(), Err: err}
				}
			}
		}
	}
	return nil
}

// Bind asks the module owning api to hand out that API for target.
// Only valid once Start has begun binding, and never after it failed.
func (r *Registry) Bind(source ModuleID, api APIID, target any) (any, error) {
	r.mu.RLock()
	st, failed := r.st, r.err
	p, ok := r.mods[api.Module]
	r.mu.RUnlock()

	switch st {
	case stateNew:
		return nil, errcode.NotReady
	case stateFailed:
		return nil, failed
	}
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownCapability, Op: "bind", Msg: api.String()}
	}
	return p.ProcessBindRequest(Request{Source: source, API: api, Target: target})
}

// BindAs is Bind with the result asserted to T.
func BindAs[T any](r *Registry, source ModuleID, api APIID, target any) (T, error) {
	var zero T
	v, err := r.Bind(source, api, target)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &errcode.E{C: errcode.UnknownCapability, Op: "bind", Msg: api.String() + ": unexpected api type"}
	}
	return t, nil
}
