package predictor

import (
	"context"
	"errors"

	"github.com/vytor/liveboard/internal/features"
)

// ErrScoreWidth indicates the model returned a score vector whose length does not
// match the vocabulary.
var ErrScoreWidth = errors.New("score vector does not match vocabulary")

// Model scores every vocabulary entry for one position.
type Model interface {
	Predict(ctx context.Context, input *features.Tensor) ([]float32, error)
	Close() error
}
