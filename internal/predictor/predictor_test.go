package predictor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/liveboard/internal/board"
	"github.com/vytor/liveboard/internal/features"
	"github.com/vytor/liveboard/internal/predictor"
	"github.com/vytor/liveboard/internal/testutil/mocks"
)

func emptyInput(t *testing.T) *features.Tensor {
	t.Helper()
	in, err := features.FromGrid(board.GridText(board.NewPosition()))
	require.NoError(t, err)
	return in
}

func TestPredictor_RankOrdersByDescendingScore(t *testing.T) {
	vocab, err := predictor.NewVocabulary([]string{"a2a3", "b2b3", "c2c3", "d2d4"})
	require.NoError(t, err)

	model := new(mocks.MockModel)
	in := emptyInput(t)
	model.On("Predict", mock.Anything, in).Return([]float32{0.1, 0.6, 0.1, 0.2}, nil)

	ranked, err := predictor.New(model, vocab).Rank(context.Background(), in)
	require.NoError(t, err)
	// Ties keep vocabulary order.
	assert.Equal(t, []string{"b2b3", "d2d4", "a2a3", "c2c3"}, ranked)
	model.AssertExpectations(t)
}

func TestPredictor_RankWidthMismatch(t *testing.T) {
	vocab, err := predictor.NewVocabulary([]string{"a2a3", "b2b3"})
	require.NoError(t, err)

	model := new(mocks.MockModel)
	model.On("Predict", mock.Anything, mock.Anything).Return([]float32{1}, nil)

	_, err = predictor.New(model, vocab).Rank(context.Background(), emptyInput(t))
	assert.ErrorIs(t, err, predictor.ErrScoreWidth)
}

func TestPredictor_RankModelFailure(t *testing.T) {
	vocab, err := predictor.NewVocabulary([]string{"a2a3"})
	require.NoError(t, err)

	boom := errors.New("inference exploded")
	model := new(mocks.MockModel)
	model.On("Predict", mock.Anything, mock.Anything).Return(nil, boom)

	_, err = predictor.New(model, vocab).Rank(context.Background(), emptyInput(t))
	assert.ErrorIs(t, err, boom)
}

func TestPredictor_Close(t *testing.T) {
	vocab, err := predictor.NewVocabulary([]string{"a2a3"})
	require.NoError(t, err)

	model := new(mocks.MockModel)
	model.On("Close").Return(nil).Once()

	assert.NoError(t, predictor.New(model, vocab).Close())
	model.AssertExpectations(t)
}
