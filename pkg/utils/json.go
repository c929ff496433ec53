package utils

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

func DecodeJson[T any](r io.Reader) (T, error) {
	var result T
	if err := jsoniter.NewDecoder(r).Decode(&result); err != nil {
		return *new(T), errors.WithMessage(err, "decode json")
	}
	return result, nil
}

func EncodeJson(w io.Writer, v any) error {
	if err := jsoniter.NewEncoder(w).Encode(v); err != nil {
		return errors.WithMessage(err, "encode json")
	}
	return nil
}
