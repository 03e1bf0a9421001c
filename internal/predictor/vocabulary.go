package predictor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vytor/liveboard/internal/analysis"
)

// Vocabulary maps a model output index to its move identifier.
type Vocabulary struct {
	moves []string
}

// NewVocabulary validates every identifier and keeps them in index order.
func NewVocabulary(moves []string) (*Vocabulary, error) {
	out := make([]string, len(moves))
	for i, id := range moves {
		if _, err := analysis.ParseMove(id); err != nil {
			return nil, fmt.Errorf("vocabulary entry %d: %w", i, err)
		}
		out[i] = id
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}
	return &Vocabulary{moves: out}, nil
}

// ReadVocabulary reads one move identifier per line. Blank lines and lines
// starting with # are skipped and do not take an index.
func ReadVocabulary(r io.Reader) (*Vocabulary, error) {
	var moves []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		moves = append(moves, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewVocabulary(moves)
}

// LoadVocabulary reads a vocabulary file from disk.
func LoadVocabulary(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()
	return ReadVocabulary(f)
}

// Len returns the number of moves, which is also the model's output width.
func (v *Vocabulary) Len() int { return len(v.moves) }

// Move returns the identifier for an output index.
func (v *Vocabulary) Move(index int) (string, bool) {
	if index < 0 || index >= len(v.moves) {
		return "", false
	}
	return v.moves[index], true
}
