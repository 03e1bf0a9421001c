package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CellCode is the board reader's native cell number: the rank digit followed by
// the one-based file index, so "21" is a2 and "28" is h2.
type CellCode string

// UnmarshalJSON accepts the code either as a JSON string or a JSON number.
func (c *CellCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CellCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil || n == "" {
		return fmt.Errorf("%w: position must be a string or number, got %s", ErrInvalidCoordinate, data)
	}
	*c = CellCode(n.String())
	return nil
}

// ToSquare translates an external cell code into a canonical square. The rank is
// the first digit; the file is (value mod 10) - 1.
func ToSquare(code CellCode) (Square, error) {
	s := strings.TrimSpace(string(code))
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q must be two digits", ErrInvalidCoordinate, code)
	}
	if s[0] < '1' || s[0] > '8' {
		return NoSquare, fmt.Errorf("%w: %q has rank outside 1-8", ErrInvalidCoordinate, code)
	}
	value, err := strconv.Atoi(s)
	if err != nil {
		return NoSquare, fmt.Errorf("%w: %q is not numeric", ErrInvalidCoordinate, code)
	}
	file := value%10 - 1
	if file < 0 || file > 7 {
		return NoSquare, fmt.Errorf("%w: %q has file outside 1-8", ErrInvalidCoordinate, code)
	}
	return NewSquare(file, int(s[0]-'1')), nil
}

// CodeFor is the inverse of ToSquare.
func CodeFor(sq Square) CellCode {
	return CellCode(fmt.Sprintf("%d%d", sq.Rank()+1, sq.File()+1))
}
