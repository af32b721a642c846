package registry_test

import (
	"testing"

	"github.com/dublyo/dockergen/frameworks"
	"github.com/dublyo/dockergen/frameworks/nodejs"
	"github.com/dublyo/dockergen/frameworks/python"
	"github.com/dublyo/dockergen/internal/registry"
	"github.com/google/go-cmp/cmp"
)

func TestRegistryOrderAndLookup(t *testing.T) {
	r := registry.New()
	nodejs.RegisterAll(r)
	python.RegisterAll(r)

	want := []frameworks.Key{
		frameworks.ReactVite,
		frameworks.NextJS,
		frameworks.Express,
		frameworks.FastAPI,
		frameworks.Django,
	}
	if diff := cmp.Diff(want, r.Keys()); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}
	if r.Count() != 5 {
		t.Fatalf("expected 5 frameworks, got %d", r.Count())
	}

	f, ok := r.Get(frameworks.Django)
	if !ok || f.Family != frameworks.FamilyPython {
		t.Fatalf("unexpected django lookup: %+v (ok=%v)", f, ok)
	}
	if _, ok := r.Get("rails"); ok {
		t.Fatalf("expected unknown key to be missing")
	}
}

func TestRegistryReplaceKeepsPosition(t *testing.T) {
	r := registry.New()
	nodejs.RegisterAll(r)

	replacement := nodejs.NextJS()
	replacement.Template = "FROM node:{{.Version}}"
	r.Register(replacement)

	keys := r.Keys()
	if len(keys) != 3 || keys[1] != frameworks.NextJS {
		t.Fatalf("replacement moved the key: %v", keys)
	}
	got, _ := r.Get(frameworks.NextJS)
	if got.Template != "FROM node:{{.Version}}" {
		t.Fatalf("replacement not stored")
	}
}

func TestRegistryFamilies(t *testing.T) {
	r := registry.New()
	nodejs.RegisterAll(r)
	python.RegisterAll(r)

	if diff := cmp.Diff([]frameworks.Family{frameworks.FamilyNode, frameworks.FamilyPython}, r.Families()); diff != "" {
		t.Fatalf("unexpected families (-want +got):\n%s", diff)
	}
	if n := len(r.ByFamily(frameworks.FamilyNode)); n != 3 {
		t.Fatalf("expected 3 node frameworks, got %d", n)
	}
	if n := len(r.ByFamily(frameworks.FamilyPython)); n != 2 {
		t.Fatalf("expected 2 python frameworks, got %d", n)
	}
}
