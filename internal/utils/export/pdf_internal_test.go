package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/Odongfelix/jweb/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF_AccentedNamesUseWinAnsi(t *testing.T) {
	rows := []domain.JournalEntryReportRow{{
		Date:           time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Office:         "Bureau Côte",
		DebitAccount:   "Caisse Générale",
		CreditAccount:  "Ventes",
		DebitUSD:       decimal.NewFromInt(10),
		CreditUSD:      decimal.NewFromInt(10),
		ConversionRate: decimal.NewFromInt(3700),
		DebitUGX:       decimal.NewFromInt(37000),
		CreditUGX:      decimal.NewFromInt(37000),
	}}

	content, err := renderPDF(rows, Options{GeneratedAt: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)}, false)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
	assert.True(t, bytes.Contains(content, []byte("Bureau C\xf4te")))
	assert.True(t, bytes.Contains(content, []byte("Caisse G\xe9n\xe9rale")))
	assert.False(t, bytes.Contains(content, []byte("Côte")), "UTF-8 bytes leaked into the content stream")
}
