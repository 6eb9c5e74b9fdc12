package sales

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoiceNumber_Formato(t *testing.T) {
	n, err := newInvoiceNumber()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(n, invoiceNumberPrefix))
	assert.Len(t, n, len(invoiceNumberPrefix)+invoiceNumberLength)
	for _, c := range n[len(invoiceNumberPrefix):] {
		assert.Contains(t, invoiceNumberAlphabet, string(c),
			"carácter fuera del alfabeto: %q en %s", c, n)
	}
}

func TestNewInvoiceNumber_SinColisionesEnMuestra(t *testing.T) {
	// Con 31^10 combinaciones, 10k muestras no deben chocar.
	vistos := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		n, err := newInvoiceNumber()
		require.NoError(t, err)
		assert.False(t, vistos[n], "número repetido: %s", n)
		vistos[n] = true
	}
}
