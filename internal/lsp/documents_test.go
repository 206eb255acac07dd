package lsp

import (
	"testing"
)

func TestDocumentStore(t *testing.T) {
	store := NewDocumentStore()
	uri := "file:///catppuccin-blur.json"

	result := store.Set(uri, sampleFamily)
	if result == nil || len(result.Keys) == 0 {
		t.Fatal("Set should return the analysis")
	}
	if store.Result(uri) != result {
		t.Error("Result should return the stored analysis")
	}

	content, ok := store.Get(uri)
	if !ok || content != sampleFamily {
		t.Error("Get should return stored content")
	}

	updated := store.Set(uri, "{}")
	if len(updated.Keys) != 0 {
		t.Errorf("updated analysis should be empty, got %+v", updated.Keys)
	}
	if content, _ := store.Get(uri); content != "{}" {
		t.Errorf("content after update = %q", content)
	}

	store.Close(uri)
	if _, ok := store.Get(uri); ok {
		t.Error("document should be gone after Close")
	}
	if store.Result(uri) != nil {
		t.Error("Result should be nil after Close")
	}
}
