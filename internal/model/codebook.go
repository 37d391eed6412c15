package model

import (
	"time"

	"github.com/chronos-tachyon/huffcode"
)

// Codebook is a named Huffman code over bytes.
type Codebook struct {
	Name      string
	Engine    *huffcode.Engine[byte]
	CreatedAt time.Time
}

type Frequency struct {
	Symbol string `json:"symbol"`
	Weight int64  `json:"weight"`
}

type CodeEntry struct {
	Symbol string `json:"symbol"`
	Weight int64  `json:"weight"`
	Code   string `json:"code"`
}

type CodebookView struct {
	Name      string      `json:"name"`
	Symbols   int         `json:"symbols"`
	MinSize   int         `json:"min_size"`
	MaxSize   int         `json:"max_size"`
	Cost      int64       `json:"cost"`
	CreatedAt time.Time   `json:"created_at"`
	Codes     []CodeEntry `json:"codes"`
}

// View renders the codebook's report for JSON output.
func (cb *Codebook) View() CodebookView {
	report := cb.Engine.Report()
	codes := make([]CodeEntry, len(report))
	for i, entry := range report {
		codes[i] = CodeEntry{
			Symbol: string([]byte{entry.Symbol}),
			Weight: entry.Weight,
			Code:   string(entry.Code),
		}
	}
	return CodebookView{
		Name:      cb.Name,
		Symbols:   cb.Engine.NumSymbols(),
		MinSize:   cb.Engine.MinSize(),
		MaxSize:   cb.Engine.MaxSize(),
		Cost:      cb.Engine.Cost(),
		CreatedAt: cb.CreatedAt,
		Codes:     codes,
	}
}
