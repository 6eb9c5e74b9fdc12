package sales

import (
	"crypto/rand"
	"fmt"
)

// Prefijo de los números de factura visibles al usuario.
const invoiceNumberPrefix = "FAC-"

// Alfabeto base-32 sin caracteres ambiguos (0/O, 1/I/L).
const invoiceNumberAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const invoiceNumberLength = 10

// newInvoiceNumber genera un número de factura aleatorio (crypto/rand).
// La unicidad real la garantiza el índice único en BD; ante una colisión el
// orquestador reintenta la transacción con un número nuevo.
func newInvoiceNumber() (string, error) {
	buf := make([]byte, invoiceNumberLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generar número de factura: %w", err)
	}
	out := make([]byte, invoiceNumberLength)
	for i, b := range buf {
		out[i] = invoiceNumberAlphabet[int(b)%len(invoiceNumberAlphabet)]
	}
	return invoiceNumberPrefix + string(out), nil
}
