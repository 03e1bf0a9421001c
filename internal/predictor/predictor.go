// Package predictor wraps the pretrained move-prediction model: it feeds the
// feature tensor in and hands back move identifiers ranked by score.
package predictor

import (
	"context"
	"fmt"
	"sort"

	"github.com/vytor/liveboard/internal/features"
)

// Predictor pairs a model with the vocabulary its outputs index into.
type Predictor struct {
	model Model
	vocab *Vocabulary
}

func New(model Model, vocab *Vocabulary) *Predictor {
	return &Predictor{model: model, vocab: vocab}
}

// Rank runs the model and returns every vocabulary entry ordered by descending
// score. Equal scores keep vocabulary order.
func (p *Predictor) Rank(ctx context.Context, input *features.Tensor) ([]string, error) {
	scores, err := p.model.Predict(ctx, input)
	if err != nil {
		return nil, err
	}
	if len(scores) != p.vocab.Len() {
		return nil, fmt.Errorf("%w: got %d scores for %d moves", ErrScoreWidth, len(scores), p.vocab.Len())
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	ranked := make([]string, len(order))
	for i, idx := range order {
		ranked[i], _ = p.vocab.Move(idx)
	}
	return ranked, nil
}

// Close releases the model.
func (p *Predictor) Close() error {
	return p.model.Close()
}
