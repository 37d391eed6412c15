package service

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/internal/config"
	"github.com/chronos-tachyon/huffcode/internal/model"
	"github.com/chronos-tachyon/huffcode/internal/repo"
	"github.com/chronos-tachyon/huffcode/pkg/logger"
)

var exampleFreqs = []model.Frequency{
	{Symbol: "a", Weight: 32},
	{Symbol: "b", Weight: 25},
	{Symbol: "c", Weight: 20},
	{Symbol: "d", Weight: 18},
	{Symbol: "e", Weight: 5},
}

func newTestService() *CodebookService {
	cfg := config.Config{MaxAlphabet: 8, MaxMessage: 32}
	s := NewCodebookService(repo.NewCodebookRepoInMemory(), logger.Discard(), cfg)
	s.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s
}

func TestCodebookService_CreateAndUse(t *testing.T) {
	s := newTestService()

	cb, err := s.Create("letters", exampleFreqs, "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	view := cb.View()
	expectCodes := []model.CodeEntry{
		{Symbol: "a", Weight: 32, Code: "11"},
		{Symbol: "b", Weight: 25, Code: "10"},
		{Symbol: "c", Weight: 20, Code: "00"},
		{Symbol: "d", Weight: 18, Code: "011"},
		{Symbol: "e", Weight: 5, Code: "010"},
	}
	if !reflect.DeepEqual(expectCodes, view.Codes) {
		t.Errorf("wrong codes:\n\texpect: %v\n\tactual: %v", expectCodes, view.Codes)
	}
	if view.Cost != 223 || view.MinSize != 2 || view.MaxSize != 3 {
		t.Errorf("wrong summary: %+v", view)
	}

	bits, err := s.Encode("letters", "abc")
	if err != nil || bits != "111000" {
		t.Errorf("Encode = (%q, %v), expected (\"111000\", nil)", bits, err)
	}
	msg, err := s.Decode("letters", bits, nil)
	if err != nil || msg != "abc" {
		t.Errorf("Decode = (%q, %v), expected (\"abc\", nil)", msg, err)
	}

	names, err := s.List()
	if err != nil || !reflect.DeepEqual(names, []string{"letters"}) {
		t.Errorf("List = (%v, %v)", names, err)
	}

	if err := s.Delete("letters"); err != nil {
		t.Errorf("Delete failed: %v", err)
	}
	if _, err := s.Get("letters"); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCodebookService_SingleSymbol(t *testing.T) {
	s := newTestService()

	if _, err := s.Create("ones", nil, "xxxx"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	bits, err := s.Encode("ones", "xxx")
	if err != nil || bits != "" {
		t.Fatalf("Encode = (%q, %v)", bits, err)
	}
	count := 3
	msg, err := s.Decode("ones", bits, &count)
	if err != nil || msg != "xxx" {
		t.Errorf("Decode = (%q, %v), expected (\"xxx\", nil)", msg, err)
	}
}

func TestCodebookService_Errors(t *testing.T) {
	s := newTestService()
	if _, err := s.Create("letters", exampleFreqs, ""); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	negative := -1
	type testRow struct {
		name   string
		call   func() error
		expect error
	}

	testData := [...]testRow{
		{
			name:   "duplicate-name",
			call:   func() error { _, err := s.Create("letters", exampleFreqs, ""); return err },
			expect: repo.ErrExists,
		},
		{
			name:   "empty-name",
			call:   func() error { _, err := s.Create("", exampleFreqs, ""); return err },
			expect: ErrInvalidRequest,
		},
		{
			name:   "both-sources",
			call:   func() error { _, err := s.Create("x", exampleFreqs, "abc"); return err },
			expect: ErrInvalidRequest,
		},
		{
			name:   "empty-table",
			call:   func() error { _, err := s.Create("x", nil, ""); return err },
			expect: huffcode.ErrInvalidInput,
		},
		{
			name: "multibyte-symbol",
			call: func() error {
				_, err := s.Create("x", []model.Frequency{{Symbol: "ab", Weight: 1}}, "")
				return err
			},
			expect: huffcode.ErrInvalidInput,
		},
		{
			name:   "alphabet-too-large",
			call:   func() error { _, err := s.Create("x", nil, "abcdefghij"); return err },
			expect: ErrTooLarge,
		},
		{
			name:   "message-too-large",
			call:   func() error { _, err := s.Encode("letters", strings.Repeat("a", 33)); return err },
			expect: ErrTooLarge,
		},
		{
			name:   "unknown-codebook",
			call:   func() error { _, err := s.Encode("nope", "a"); return err },
			expect: repo.ErrNotFound,
		},
		{
			name:   "unknown-symbol",
			call:   func() error { _, err := s.Encode("letters", "abz"); return err },
			expect: huffcode.ErrUnknownSymbol,
		},
		{
			name:   "malformed",
			call:   func() error { _, err := s.Decode("letters", "012", nil); return err },
			expect: huffcode.ErrMalformedInput,
		},
		{
			name:   "negative-count",
			call:   func() error { _, err := s.Decode("letters", "11", &negative); return err },
			expect: ErrInvalidRequest,
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			if err := row.call(); !errors.Is(err, row.expect) {
				t.Errorf("expected %v, got %v", row.expect, err)
			}
		})
	}
}
