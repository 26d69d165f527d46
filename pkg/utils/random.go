package utils

import (
	"crypto/rand"
	"encoding/hex"
	"hash/fnv"
)

// GenerateID возвращает короткий случайный идентификатор (12 hex-символов).
// Используется для анонимных websocket-клиентов и записей лога.
func GenerateID() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand не отдает ошибку на поддерживаемых платформах
		return "id-fallback"
	}
	return hex.EncodeToString(b)
}

// StringToSeed детерминированно превращает строку в сид для math/rand.
// Одно и то же имя всегда дает одну и ту же карту.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}
