package module

import (
	"context"
	"testing"

	phttp "forumscope/internal/platform/net/http"
)

type fakeModule struct{ ports any }

func (fakeModule) MountRoutes(phttp.Router) {}
func (m fakeModule) Ports() any             { return m.ports }
func (fakeModule) Name() string             { return "fake" }

func TestPortsOfDirect(t *testing.T) {
	m := fakeModule{ports: fakeResolver{}}
	got, ok := PortsOf[resolver](m)
	if !ok {
		t.Fatalf("PortsOf missed a direct implementation")
	}
	if v, _ := got.Resolve(context.Background(), "x"); v != "x" {
		t.Fatalf("Resolve = %q", v)
	}
}

func TestPortsOfStructField(t *testing.T) {
	type bundle struct {
		Resolver resolver
	}
	m := fakeModule{ports: bundle{Resolver: fakeResolver{}}}
	if _, ok := PortsOf[resolver](m); !ok {
		t.Fatalf("PortsOf missed a struct field implementation")
	}
}

func TestPortsOfNil(t *testing.T) {
	if _, ok := PortsOf[resolver](fakeModule{}); ok {
		t.Fatalf("PortsOf matched nil ports")
	}
}

func TestMustPortsOfPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustPortsOf should panic when no port matches")
		}
	}()
	_ = MustPortsOf[resolver](fakeModule{})
}
