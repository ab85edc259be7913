// Package quiz serves randomly sampled multiple-choice questions from the
// bundled cyber-law question bank.
package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"
)

var (
	ErrBankMissing   = errors.New("question bank file not found")
	ErrBankMalformed = errors.New("question bank is malformed")
)

type Options struct {
	A string `json:"a"`
	B string `json:"b"`
	C string `json:"c"`
	D string `json:"d"`
}

type Question struct {
	ID       int     `json:"id"`
	Category string  `json:"category"`
	Question string  `json:"question"`
	Options  Options `json:"options"`
	Answer   string  `json:"answer"`
}

type Service struct {
	bankPath   string
	sampleSize int

	mu   sync.Mutex
	rng  *rand.Rand
	bank []Question
}

func NewService(bankPath string, sampleSize int) *Service {
	if sampleSize <= 0 {
		sampleSize = 10
	}
	return &Service{
		bankPath:   bankPath,
		sampleSize: sampleSize,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Sample returns up to sampleSize questions drawn without replacement, plus
// the bank's total size. The bank file is read once and kept in memory.
func (s *Service) Sample() ([]Question, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bank == nil {
		bank, err := loadBank(s.bankPath)
		if err != nil {
			return nil, 0, err
		}
		s.bank = bank
	}

	n := s.sampleSize
	if n > len(s.bank) {
		n = len(s.bank)
	}

	indices := s.rng.Perm(len(s.bank))[:n]
	out := make([]Question, 0, n)
	for _, i := range indices {
		out = append(out, s.bank[i])
	}
	return out, len(s.bank), nil
}

func loadBank(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBankMissing
		}
		return nil, fmt.Errorf("read question bank failed: %w", err)
	}

	var bank []Question
	if err := json.Unmarshal(raw, &bank); err != nil {
		return nil, ErrBankMalformed
	}
	if len(bank) == 0 {
		return nil, ErrBankMalformed
	}
	return bank, nil
}
