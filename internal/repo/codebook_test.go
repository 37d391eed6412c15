package repo

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/internal/model"
)

func newCodebook(t *testing.T, name string) *model.Codebook {
	t.Helper()
	e, err := huffcode.BuildFromText(name)
	if err != nil {
		t.Fatalf("BuildFromText failed: %v", err)
	}
	return &model.Codebook{Name: name, Engine: e}
}

func TestCodebookRepo(t *testing.T) {
	r := NewCodebookRepoInMemory()

	for _, name := range []string{"zeta", "alpha", "mu"} {
		if err := r.Save(newCodebook(t, name)); err != nil {
			t.Fatalf("Save(%q) failed: %v", name, err)
		}
	}
	if err := r.Save(newCodebook(t, "mu")); !errors.Is(err, ErrExists) {
		t.Errorf("expected ErrExists, got %v", err)
	}

	cb, err := r.FindByName("alpha")
	if err != nil || cb.Name != "alpha" {
		t.Errorf("FindByName(alpha) = (%v, %v)", cb, err)
	}
	if _, err := r.FindByName("omega"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	list, err := r.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	var names []string
	for _, cb := range list {
		names = append(names, cb.Name)
	}
	if fmt.Sprint(names) != "[alpha mu zeta]" {
		t.Errorf("expected sorted names, got %v", names)
	}

	if err := r.Delete("mu"); err != nil {
		t.Errorf("Delete failed: %v", err)
	}
	if err := r.Delete("mu"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCodebookRepo_Concurrent(t *testing.T) {
	r := NewCodebookRepoInMemory()
	if err := r.Save(newCodebook(t, "shared")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cb, err := r.FindByName("shared")
			if err != nil {
				t.Errorf("FindByName failed: %v", err)
				return
			}
			if _, err := huffcode.EncodeString(cb.Engine, "shared"); err != nil {
				t.Errorf("Encode failed: %v", err)
			}
			_ = r.Save(&model.Codebook{Name: fmt.Sprintf("cb%d", i), Engine: cb.Engine})
		}(i)
	}
	wg.Wait()

	list, _ := r.List()
	if len(list) != 9 {
		t.Errorf("expected 9 codebooks, got %d", len(list))
	}
}
