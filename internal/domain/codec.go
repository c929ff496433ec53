package domain

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

func (s Side) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.WithMessagef(ErrUnknownSide, "side %d", s)
	}
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	v, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (c Controller) MarshalText() ([]byte, error) {
	if c == Computer {
		return []byte("computer"), nil
	}
	return []byte("human"), nil
}

func (c *Controller) UnmarshalText(text []byte) error {
	switch string(text) {
	case "computer":
		*c = Computer
	case "human":
		*c = Human
	default:
		return errors.Errorf("unknown controller '%s'", text)
	}
	return nil
}

func (b Board) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(b.Rows())
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var rows []string
	if err := jsoniter.Unmarshal(data, &rows); err != nil {
		return errors.WithMessage(err, "unmarshal board rows")
	}
	v, err := ParseBoard(rows)
	if err != nil {
		return errors.WithMessage(err, "parse board")
	}
	*b = v
	return nil
}

func (s status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "in progress":
		*s = InProgress
	case "finished":
		*s = Finished
	default:
		return errors.Errorf("unknown game status '%s'", text)
	}
	return nil
}
