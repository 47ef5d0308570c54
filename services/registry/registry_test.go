package registry

import (
	"errors"
	"testing"

	"junoadc-go/errcode"
)

type call struct {
	id    ID
	round uint
}

type fakeModule struct {
	elems   int
	initErr error
	binds   []call
	onBind  func(r *Registry, id ID, round uint) error
	handout any
	reqs    []Request
}

func (f *fakeModule) ElementCount() int { return f.elems }
func (f *fakeModule) Init() error       { return f.initErr }
func (f *fakeModule) Bind(r *Registry, id ID, round uint) error {
	f.binds = append(f.binds, call{id, round})
	if f.onBind != nil {
		return f.onBind(r, id, round)
	}
	return nil
}
func (f *fakeModule) ProcessBindRequest(req Request) (any, error) {
	f.reqs = append(f.reqs, req)
	if f.handout == nil {
		return nil, errcode.AccessDenied
	}
	return f.handout, nil
}

func TestStartRunsBindRoundsPerScope(t *testing.T) {
	r := New()
	m := &fakeModule{elems: 2}
	r.Add("adc", m)
	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	want := []call{
		{ModuleScope("adc"), 0}, {ElementScope("adc", 0), 0}, {ElementScope("adc", 1), 0},
		{ModuleScope("adc"), 1}, {ElementScope("adc", 0), 1}, {ElementScope("adc", 1), 1},
	}
	if len(m.binds) != len(want) {
		t.Fatalf("binds = %v", m.binds)
	}
	for i := range want {
		if m.binds[i] != want[i] {
			t.Fatalf("bind %d = %v, want %v", i, m.binds[i], want[i])
		}
	}

	// Second Start must not rebind.
	if err := r.Start(); err != nil || len(m.binds) != len(want) {
		t.Fatalf("second Start: err=%v binds=%d", err, len(m.binds))
	}
}

func TestInitErrorStops(t *testing.T) {
	r := New()
	m := &fakeModule{initErr: errcode.NoData}
	r.Add("adc", m)
	err := r.Start()
	if errcode.Of(err) != errcode.NoData {
		t.Fatalf("err = %v, want no_data", err)
	}
	if len(m.binds) != 0 {
		t.Fatal("bind ran after failed init")
	}

	// The failure sticks: a retry must not report success.
	if again := r.Start(); again != err {
		t.Fatalf("second Start = %v, want %v", again, err)
	}
}

func TestBindErrorSticks(t *testing.T) {
	r := New()
	r.Add("adc", &fakeModule{onBind: func(*Registry, ID, uint) error { return errcode.AccessDenied }})
	err := r.Start()
	if errcode.Of(err) != errcode.AccessDenied {
		t.Fatalf("Start = %v, want access_denied", err)
	}
	if again := r.Start(); errcode.Of(again) != errcode.AccessDenied {
		t.Fatalf("second Start = %v", again)
	}
	if _, late := r.Bind("sensor", APIID{Module: "adc", Name: "driver"}, 0); late != err {
		t.Fatalf("Bind after failure = %v, want %v", late, err)
	}
}

func TestBindRoutesToProvider(t *testing.T) {
	r := New()
	api := APIID{Module: "log", Name: "log"}
	provider := &fakeModule{handout: "the-api"}
	var got string
	consumer := &fakeModule{onBind: func(r *Registry, id ID, round uint) error {
		if !id.IsModule() || round != 0 {
			return nil
		}
		v, err := BindAs[string](r, "adc", api, 3)
		got = v
		return err
	}}
	r.Add("log", provider)
	r.Add("adc", consumer)
	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got != "the-api" {
		t.Fatalf("bound %q", got)
	}
	if len(provider.reqs) != 1 || provider.reqs[0].Source != "adc" || provider.reqs[0].Target != 3 {
		t.Fatalf("requests = %+v", provider.reqs)
	}
}

func TestBindFailures(t *testing.T) {
	r := New()
	r.Add("p", &fakeModule{handout: 42})
	if _, err := r.Bind("x", APIID{"p", "a"}, nil); !errors.Is(err, errcode.NotReady) {
		t.Fatalf("before Start: %v", err)
	}
	_ = r.Start()
	if _, err := r.Bind("x", APIID{"missing", "a"}, nil); errcode.Of(err) != errcode.UnknownCapability {
		t.Fatalf("missing provider: %v", err)
	}
	if _, err := BindAs[string](r, "x", APIID{"p", "a"}, nil); errcode.Of(err) != errcode.UnknownCapability {
		t.Fatalf("type mismatch: %v", err)
	}
}

func TestAddPanics(t *testing.T) {
	r := New()
	r.Add("a", &fakeModule{})
	mustPanic(t, func() { r.Add("a", &fakeModule{}) })
	_ = r.Start()
	mustPanic(t, func() { r.Add("b", &fakeModule{}) })
}

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	f()
}
