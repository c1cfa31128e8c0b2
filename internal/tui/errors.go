// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-qr-studio/internal/assist"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, assist.ErrNoAPIKey) {
		return "Ключ API не задан, помощник недоступен"
	}
	if errors.Is(err, assist.ErrEmptyResponse) {
		return "Помощник вернул пустой ответ, попробуйте ещё раз"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или сервис недоступен"
	}

	return err.Error()
}
