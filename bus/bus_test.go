package bus

import (
	"sort"
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	b := NewBus(4)
	c := b.NewConnection("test")
	s := c.Subscribe(T("log", "info"))

	c.Publish(c.NewMessage(T("log", "info"), "hello", false))
	expectPayload(t, s, "hello")

	c.Publish(c.NewMessage(T("log", "warn"), "other", false))
	expectNone(t, s)
}

func TestRetainedDeliveredOnSubscribe(t *testing.T) {
	b := NewBus(4)
	c := b.NewConnection("test")
	c.Publish(b.NewMessage(T("hal", "cap", "power", "current", "big", "value"), "265", true))

	s := c.Subscribe(T("hal", "cap", "power", "+", "big", "value"))
	expectPayload(t, s, "265")
}

func TestRetainedClear(t *testing.T) {
	b := NewBus(8)
	c := b.NewConnection("test")
	c.Publish(b.NewMessage(T("a", "b"), "keep", true))
	c.Publish(b.NewMessage(T("a", "y"), "other", true))
	c.Publish(b.NewMessage(T("a", "b"), nil, true))

	s := c.Subscribe(T("a", "#"))
	expectPayload(t, s, "other")
	expectNone(t, s)
}

func TestMatch(t *testing.T) {
	cases := []struct {
		pattern, topic Topic
		want           bool
	}{
		{T("a", "+", "c"), T("a", "b", "c"), true},
		{T("a", "+", "c"), T("a", "c"), false},
		{T("a", "+", "c"), T("a", "b", "d"), false},
		{T("a", "#"), T("a"), true},
		{T("a", "#"), T("a", "b", "c"), true},
		{T("#"), T("x"), true},
		{T("a", "+", "#"), T("a"), false},
		{T("a", "+", "#"), T("a", "b"), true},
		{T("a"), T("a", "b"), false},
	}
	for _, c := range cases {
		if got := Match(c.pattern, c.topic); got != c.want {
			t.Fatalf("Match(%s, %s) = %v, want %v", c.pattern, c.topic, got, c.want)
		}
	}
}

func TestWildcardRetainedFanout(t *testing.T) {
	b := NewBus(16)
	c := b.NewConnection("test")
	for _, p := range []struct {
		topic Topic
		v     string
	}{
		{T("a"), "r0"}, {T("a", "b"), "r1"}, {T("a", "b", "c"), "r2"}, {T("a", "x"), "r3"},
	} {
		c.Publish(b.NewMessage(p.topic, p.v, true))
	}

	got := drain(c.Subscribe(T("a", "+")), 2)
	sort.Strings(got)
	if len(got) != 2 || got[0] != "r1" || got[1] != "r3" {
		t.Fatalf("a/+ got %v", got)
	}
}

func TestQueueDropsOldest(t *testing.T) {
	b := NewBus(2)
	c := b.NewConnection("test")
	s := c.Subscribe(T("q"))
	for _, v := range []string{"1", "2", "3"} {
		c.Publish(b.NewMessage(T("q"), v, false))
	}
	expectPayload(t, s, "2")
	expectPayload(t, s, "3")
}

func TestUnsubscribeClosesOnce(t *testing.T) {
	b := NewBus(2)
	c := b.NewConnection("test")
	s := c.Subscribe(T("x"))
	s.Unsubscribe()
	s.Unsubscribe()
	if _, ok := <-s.Channel(); ok {
		t.Fatal("channel should be closed")
	}
	c.Publish(b.NewMessage(T("x"), "late", false))

	s2 := c.Subscribe(T("y"))
	c.Disconnect()
	if _, ok := <-s2.Channel(); ok {
		t.Fatal("Disconnect should close subscriptions")
	}
}

// ---- helpers ----

func expectPayload(t *testing.T, s *Subscription, want string) {
	t.Helper()
	select {
	case m := <-s.Channel():
		if got, _ := m.Payload.(string); got != want {
			t.Fatalf("payload = %v, want %q", m.Payload, want)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("timeout waiting for %q", want)
	}
}

func expectNone(t *testing.T, s *Subscription) {
	t.Helper()
	select {
	case m := <-s.Channel():
		t.Fatalf("unexpected message on %s: %v", m.Topic, m.Payload)
	case <-time.After(20 * time.Millisecond):
	}
}

func drain(s *Subscription, n int) []string {
	var out []string
	for len(out) < n {
		select {
		case m := <-s.Channel():
			out = append(out, m.Payload.(string))
		case <-time.After(100 * time.Millisecond):
			return out
		}
	}
	return out
}

func TestMessageCarriesSource(t *testing.T) {
	b := NewBus(4)
	pub := b.NewConnection("adc")
	s := b.NewConnection("logsvc").Subscribe(T("log", "#"))

	pub.Publish(pub.NewMessage(T("log", "info"), "x", false))
	select {
	case m := <-s.Channel():
		if m.Source != "adc" {
			t.Fatalf("source = %q", m.Source)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout")
	}
	if m := b.NewMessage(T("log", "info"), "y", false); m.Source != "" {
		t.Fatalf("bus message source = %q", m.Source)
	}
}
