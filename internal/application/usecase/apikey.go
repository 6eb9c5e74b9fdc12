package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// apiKeyPrefix distingue las claves de negocio de otros secretos en logs y soporte.
const apiKeyPrefix = "rpk_"

// newAPIKey genera la api key de un negocio: prefijo + 40 hex de crypto/rand.
func newAPIKey() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generar api key: %w", err)
	}
	return apiKeyPrefix + hex.EncodeToString(buf), nil
}
