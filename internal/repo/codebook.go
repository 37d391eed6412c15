package repo

import (
	"errors"
	"strings"
	"sync"

	"github.com/chronos-tachyon/huffcode/internal/model"
	"golang.org/x/exp/slices"
)

var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
)

type CodebookRepo interface {
	Save(cb *model.Codebook) error
	FindByName(name string) (*model.Codebook, error)
	List() ([]*model.Codebook, error)
	Delete(name string) error
}

type codebookRepoInMemory struct {
	mu    sync.RWMutex
	store map[string]*model.Codebook
}

func NewCodebookRepoInMemory() CodebookRepo {
	return &codebookRepoInMemory{store: make(map[string]*model.Codebook)}
}

// Save stores cb.  Codebooks are immutable, so an existing name is never
// overwritten.
func (r *codebookRepoInMemory) Save(cb *model.Codebook) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[cb.Name]; ok {
		return ErrExists
	}
	r.store[cb.Name] = cb
	return nil
}

func (r *codebookRepoInMemory) FindByName(name string) (*model.Codebook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cb, ok := r.store[name]
	if !ok {
		return nil, ErrNotFound
	}
	return cb, nil
}

// List returns every codebook, sorted by name.
func (r *codebookRepoInMemory) List() ([]*model.Codebook, error) {
	r.mu.RLock()
	out := make([]*model.Codebook, 0, len(r.store))
	for _, cb := range r.store {
		out = append(out, cb)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *model.Codebook) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (r *codebookRepoInMemory) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[name]; !ok {
		return ErrNotFound
	}
	delete(r.store, name)
	return nil
}
