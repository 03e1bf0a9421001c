package api

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/vytor/liveboard/internal/board"
	"github.com/vytor/liveboard/internal/errors"
	"github.com/vytor/liveboard/internal/logger"
)

// maxBoardBody bounds an update request. A full board is 64 small records.
const maxBoardBody = 64 << 10

func (s *Server) handleUpdateBoard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	records, err := decodeRecords(w, r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	log.Debug("received %d records", len(records))

	result, err := s.BoardService.UpdateBoard(r.Context(), records)
	if err != nil {
		handleError(w, r, err)
		return
	}

	response := map[string]string{"status": "success"}
	if result.Predicted {
		response["predicted_move"] = result.PredictedMove()
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"board": s.BoardService.CurrentFEN(r.Context()),
	})
}

// decodeRecords reads the request body as a JSON array of board records.
func decodeRecords(w http.ResponseWriter, r *http.Request) ([]board.Record, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBoardBody))
	if err != nil {
		return nil, errors.NewBadRequestError("request body could not be read")
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		return nil, errors.NewBadRequestError("request body must be a JSON array of records")
	}

	var records []board.Record
	if err := json.Unmarshal(body, &records); err != nil {
		if stderrors.Is(err, board.ErrInvalidCoordinate) {
			return nil, errors.NewInvalidCoordinateError(err)
		}
		return nil, errors.NewBadRequestError("invalid JSON: " + err.Error())
	}
	return records, nil
}
