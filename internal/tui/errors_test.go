package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-qr-studio/internal/assist"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeAssistError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "missing api key",
			err:  fmt.Errorf("generate bio: %w", assist.ErrNoAPIKey),
			want: "Ключ API не задан, помощник недоступен",
		},
		{
			name: "empty response",
			err:  assist.ErrEmptyResponse,
			want: "Помощник вернул пустой ответ, попробуйте ещё раз",
		},
		{
			name: "connection refused",
			err:  errors.New("Get \"https://x\": dial tcp 127.0.0.1:1: connection refused"),
			want: "Отсутствует сеть или сервис недоступен",
		},
		{
			name: "timeout",
			err:  errors.New("context deadline exceeded"),
			want: "Отсутствует сеть или сервис недоступен",
		},
		{
			name: "other errors pass through",
			err:  errors.New("что-то пошло не так"),
			want: "что-то пошло не так",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
