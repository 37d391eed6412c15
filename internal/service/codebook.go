package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/internal/config"
	"github.com/chronos-tachyon/huffcode/internal/model"
	"github.com/chronos-tachyon/huffcode/internal/repo"
	"github.com/chronos-tachyon/huffcode/pkg/logger"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrTooLarge       = errors.New("too large")
)

const maxNameLen = 64

type CodebookService struct {
	repo   repo.CodebookRepo
	logger logger.Logger
	cfg    config.Config
	now    func() time.Time
}

func NewCodebookService(r repo.CodebookRepo, l logger.Logger, cfg config.Config) *CodebookService {
	return &CodebookService{repo: r, logger: l, cfg: cfg, now: time.Now}
}

// Create builds and stores a codebook from either an explicit frequency
// table or a sample text, but not both.
func (s *CodebookService) Create(name string, freqs []model.Frequency, sample string) (*model.Codebook, error) {
	if name == "" || len(name) > maxNameLen {
		return nil, fmt.Errorf("%w: name must be 1 to %d bytes", ErrInvalidRequest, maxNameLen)
	}

	var table []huffcode.Frequency[byte]
	switch {
	case len(freqs) != 0 && sample != "":
		return nil, fmt.Errorf("%w: frequencies and sample are mutually exclusive", ErrInvalidRequest)
	case sample != "":
		if len(sample) > s.cfg.MaxMessage {
			return nil, fmt.Errorf("%w: sample is %d bytes, max %d", ErrTooLarge, len(sample), s.cfg.MaxMessage)
		}
		table = huffcode.CountFrequencies([]byte(sample))
	default:
		var err error
		if table, err = convertFrequencies(freqs); err != nil {
			return nil, err
		}
	}
	if len(table) > s.cfg.MaxAlphabet {
		return nil, fmt.Errorf("%w: alphabet has %d symbols, max %d", ErrTooLarge, len(table), s.cfg.MaxAlphabet)
	}

	e, err := huffcode.Build(table)
	if err != nil {
		return nil, err
	}

	cb := &model.Codebook{Name: name, Engine: e, CreatedAt: s.now().UTC()}
	if err := s.repo.Save(cb); err != nil {
		return nil, err
	}
	s.logger.Infof("codebook created: %s %v", name, e)
	return cb, nil
}

func convertFrequencies(freqs []model.Frequency) ([]huffcode.Frequency[byte], error) {
	out := make([]huffcode.Frequency[byte], len(freqs))
	for i, f := range freqs {
		if len(f.Symbol) != 1 {
			return nil, fmt.Errorf("%w: symbol %q at index %d is not a single byte", huffcode.ErrInvalidInput, f.Symbol, i)
		}
		out[i] = huffcode.Frequency[byte]{Symbol: f.Symbol[0], Weight: f.Weight}
	}
	return out, nil
}

func (s *CodebookService) Get(name string) (*model.Codebook, error) {
	return s.repo.FindByName(name)
}

func (s *CodebookService) List() ([]string, error) {
	list, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(list))
	for i, cb := range list {
		names[i] = cb.Name
	}
	return names, nil
}

func (s *CodebookService) Delete(name string) error {
	if err := s.repo.Delete(name); err != nil {
		return err
	}
	s.logger.Infof("codebook deleted: %s", name)
	return nil
}

func (s *CodebookService) Encode(name, msg string) (string, error) {
	if len(msg) > s.cfg.MaxMessage {
		return "", fmt.Errorf("%w: message is %d bytes, max %d", ErrTooLarge, len(msg), s.cfg.MaxMessage)
	}
	cb, err := s.repo.FindByName(name)
	if err != nil {
		return "", err
	}
	return huffcode.EncodeString(cb.Engine, msg)
}

// Decode decodes bits with the named codebook.  If count is non-nil, the
// bits must hold exactly *count symbols; this is the only way to decode a
// codebook with a single symbol.
func (s *CodebookService) Decode(name, bits string, count *int) (string, error) {
	if len(bits) > s.cfg.MaxMessage {
		return "", fmt.Errorf("%w: bit string is %d bytes, max %d", ErrTooLarge, len(bits), s.cfg.MaxMessage)
	}
	cb, err := s.repo.FindByName(name)
	if err != nil {
		return "", err
	}
	if count == nil {
		return huffcode.DecodeString(cb.Engine, bits)
	}
	if *count < 0 || *count > s.cfg.MaxMessage {
		return "", fmt.Errorf("%w: count must be 0 to %d", ErrInvalidRequest, s.cfg.MaxMessage)
	}
	return huffcode.DecodeStringN(cb.Engine, bits, *count)
}
