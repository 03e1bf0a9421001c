package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/vytor/liveboard/internal/analysis"
	"github.com/vytor/liveboard/internal/board"
	"github.com/vytor/liveboard/internal/errors"
	"github.com/vytor/liveboard/internal/features"
	"github.com/vytor/liveboard/internal/jobs"
	"github.com/vytor/liveboard/internal/logger"
	"github.com/vytor/liveboard/internal/models"
	"github.com/vytor/liveboard/internal/repository"
	"github.com/vytor/liveboard/internal/session"
)

// NoMoveFound is reported as the predicted move when no ranked candidate is legal.
const NoMoveFound = "None"

// MoveRanker orders the move vocabulary by model confidence for one position.
type MoveRanker interface {
	Rank(ctx context.Context, input *features.Tensor) ([]string, error)
}

// UpdateResult describes a completed board update.
type UpdateResult struct {
	Grid string
	// Predicted is set when the service runs in prediction mode.
	Predicted bool
	Move      *analysis.Move
}

// PredictedMove returns the selected move identifier, or NoMoveFound.
func (r *UpdateResult) PredictedMove() string {
	if r.Move == nil {
		return NoMoveFound
	}
	return r.Move.String()
}

// BoardService handles board tracking and move prediction
type BoardService interface {
	UpdateBoard(ctx context.Context, records []board.Record) (*UpdateResult, error)
	CurrentFEN(ctx context.Context) string
	Restore(ctx context.Context) error
	CheckReady(ctx context.Context) error
	PredictionEnabled() bool
}

type boardService struct {
	store     *session.Store
	ranker    MoveRanker
	snapshots repository.SnapshotRepository
	queue     jobs.SnapshotQueue
	now       func() time.Time
}

// NewBoardService creates a new BoardService. ranker is nil outside prediction
// mode; snapshots and queue are nil when persistence is disabled.
func NewBoardService(store *session.Store, ranker MoveRanker, snapshots repository.SnapshotRepository, queue jobs.SnapshotQueue) BoardService {
	return &boardService{
		store:     store,
		ranker:    ranker,
		snapshots: snapshots,
		queue:     queue,
		now:       time.Now,
	}
}

func (s *boardService) PredictionEnabled() bool {
	return s.ranker != nil
}

func (s *boardService) UpdateBoard(ctx context.Context, records []board.Record) (*UpdateResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating board from %d records", len(records))

	pos, err := board.BuildPosition(records)
	if err != nil {
		return nil, boardInputError(err)
	}
	s.store.Replace(pos)

	grid := board.GridText(pos)
	log.Info("latest board state:\n%s", grid)
	s.enqueueSnapshot(ctx, pos, grid)

	result := &UpdateResult{Grid: grid}
	if s.ranker == nil {
		return result, nil
	}
	result.Predicted = true

	input, err := features.FromGrid(grid)
	if err != nil {
		log.Error("serialized grid failed to parse: %v", err)
		return nil, errors.NewMalformedGridError(err)
	}
	log.Debug("feature tensor shape=%v", input.Shape())

	ranked, err := s.ranker.Rank(ctx, input)
	if err != nil {
		log.Error("model inference failed: %v", err)
		return nil, errors.NewInferenceError(err)
	}

	move, ok, err := analysis.SelectMove(grid, ranked)
	if err != nil {
		log.Error("move selection failed: %v", err)
		return nil, errors.NewMalformedGridError(err)
	}
	if ok {
		result.Move = &move
	}
	log.Info("predicted move: %s", result.PredictedMove())
	return result, nil
}

func (s *boardService) enqueueSnapshot(ctx context.Context, pos *board.Position, grid string) {
	if s.queue == nil {
		return
	}
	snap := models.Snapshot{
		Placement:  board.PlacementFEN(pos),
		Grid:       grid,
		PieceCount: pos.Len(),
		UpdatedAt:  s.now(),
	}
	if err := s.queue.EnqueueSnapshot(snap); err != nil {
		logger.FromContext(ctx).Warn("snapshot not queued: %v", err)
	}
}

func (s *boardService) CurrentFEN(ctx context.Context) string {
	return board.FEN(s.store.Current())
}

func (s *boardService) Restore(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if s.snapshots == nil {
		log.Debug("snapshots disabled, nothing to restore")
		return nil
	}

	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		log.Error("failed to load snapshot: %v", err)
		return errors.NewInternalError(err)
	}
	if snap == nil {
		log.Info("no saved board, starting empty")
		return nil
	}

	pos, err := board.ParsePlacement(snap.Placement)
	if err != nil {
		log.Error("saved board is unreadable: %v", err)
		return errors.NewInternalError(err)
	}
	s.store.Replace(pos)
	log.Info("restored board saved at %s: %s", snap.UpdatedAt.Format(time.RFC3339), snap.Placement)
	return nil
}

func (s *boardService) CheckReady(ctx context.Context) error {
	if s.snapshots != nil {
		if err := s.snapshots.Ping(ctx); err != nil {
			return errors.NewUnavailableError("snapshot database", err)
		}
	}
	return nil
}

// boardInputError maps board package failures to client errors.
func boardInputError(err error) *errors.AppError {
	switch {
	case stderrors.Is(err, board.ErrInvalidCoordinate):
		return errors.NewInvalidCoordinateError(err)
	case stderrors.Is(err, board.ErrUnknownPieceKind):
		return errors.NewUnknownPieceKindError(err)
	default:
		return errors.NewValidationError("board state", err.Error())
	}
}
