package assets

import (
	"encoding/json"
	"os"
	"reflect"
	"testing"

	"github.com/yamui/generator-backend/internal/platform/apierr"
)

func TestTagStoreRoundtrip(t *testing.T) {
	ts := NewTagStore(t.TempDir())

	store, err := ts.Persist("media/a.png", []string{" hero ", "hero", "", "brand"})
	if err != nil {
		t.Fatalf("Persist: %v", err)
	}
	want := []string{"hero", "brand"}
	if !reflect.DeepEqual(store["media/a.png"], want) {
		t.Fatalf("persisted tags: got=%v want=%v", store["media/a.png"], want)
	}

	reread := ts.Read()
	if !reflect.DeepEqual(reread["media/a.png"], want) {
		t.Fatalf("reread tags: got=%v want=%v", reread["media/a.png"], want)
	}
}

func TestTagStoreEmptyListDeletesKey(t *testing.T) {
	ts := NewTagStore(t.TempDir())
	if _, err := ts.Persist("media/a.png", []string{"hero"}); err != nil {
		t.Fatalf("Persist: %v", err)
	}
	store, err := ts.Persist("media/a.png", nil)
	if err != nil {
		t.Fatalf("Persist: %v", err)
	}
	if _, ok := store["media/a.png"]; ok {
		t.Fatal("key survived an empty-list persist")
	}

	raw, err := os.ReadFile(ts.FilePath())
	if err != nil {
		t.Fatalf("read backing file: %v", err)
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode backing file: %v", err)
	}
	if _, ok := payload["media/a.png"]; ok {
		t.Fatal("key survived in the backing file")
	}
}

func TestTagStoreToleratesCorruptFile(t *testing.T) {
	root := t.TempDir()
	ts := NewTagStore(root)
	if err := os.WriteFile(ts.FilePath(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if store := ts.Read(); len(store) != 0 {
		t.Fatalf("corrupt file: got=%v want empty map", store)
	}
}

func TestTagStoreDropsNonListValues(t *testing.T) {
	root := t.TempDir()
	ts := NewTagStore(root)
	raw := []byte(`{"media/a.png": ["hero", "  ", "brand"], "media/b.png": "oops", "media/c.png": 7}`)
	if err := os.WriteFile(ts.FilePath(), raw, 0o644); err != nil {
		t.Fatal(err)
	}
	store := ts.Read()
	if !reflect.DeepEqual(store["media/a.png"], []string{"hero", "brand"}) {
		t.Fatalf("list entry: got=%v", store["media/a.png"])
	}
	if _, ok := store["media/b.png"]; ok {
		t.Fatal("string entry survived")
	}
	if _, ok := store["media/c.png"]; ok {
		t.Fatal("number entry survived")
	}
}

func TestTagStoreRequiresRoot(t *testing.T) {
	ts := NewTagStore("")
	if ts.FilePath() != "" {
		t.Fatalf("FilePath without root: got=%q", ts.FilePath())
	}
	if store := ts.Read(); len(store) != 0 {
		t.Fatalf("Read without root: got=%v", store)
	}
	_, err := ts.Persist("media/a.png", []string{"hero"})
	if err == nil {
		t.Fatal("Persist without root succeeded")
	}
	if code := apierr.CodeOf(err); code != "configuration_error" {
		t.Fatalf("Persist error code: got=%q", code)
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" b ", "a", "b", "", "a ", "c"})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeTags: got=%v want=%v", got, want)
	}
	if got := NormalizeTags(nil); len(got) != 0 {
		t.Fatalf("NormalizeTags(nil): got=%v", got)
	}
}
