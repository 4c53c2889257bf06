package factory

import "testing"

type stubSink struct{ Bucket string }

type stubConf struct {
	Bucket string `json:"bucket"`
}

// Test registry registration and instantiation using Decode.
func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*stubSink]()
	if err := reg.Register("stub", func(conf map[string]any) (*stubSink, error) {
		var c stubConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &stubSink{Bucket: c.Bucket}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	inst, err := reg.Create(ModuleConfig{Type: "stub", Conf: map[string]any{"bucket": "solves"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inst.Bucket != "solves" {
		t.Fatalf("expected solves got %s", inst.Bucket)
	}
}

// Test duplicate registration and unknown type errors.
func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]()
	if err := reg.Register("x", func(map[string]any) (int, error) { return 1, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("x", nil); err == nil {
		t.Fatal("expected duplicate error")
	}
	if _, err := reg.Create(ModuleConfig{Type: "y"}); err == nil {
		t.Fatal("expected unknown type error")
	}
}
