package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Bessima/token-shipping/internal/customerror"
	"github.com/Bessima/token-shipping/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acmeShipment() models.Shipment {
	return models.Shipment{
		TrackingID:      "T100",
		AdminName:       "A",
		RequestPlatform: "AA",
		CompanyName:     "Acme",
		Users:           []string{"alice", "bob"},
		TokenNumbers:    []string{"T1", "T2"},
		Status:          models.PendingStatus,
		Date:            "2024-05-01 10:00:00",
	}
}

func TestNewLayout_TableRows(t *testing.T) {
	layout := NewLayout(acmeShipment())

	assert.Equal(t, "COMPANY NAME: Acme", layout.CompanyLine)
	assert.Equal(t, "TRACKING ID: T100", layout.TrackingLine)
	assert.Equal(t, [2]string{"USER NAME", "TOKEN NUMBER"}, layout.Columns)
	assert.Equal(t, []models.Assignment{
		{User: "alice", TokenNumber: "T1"},
		{User: "bob", TokenNumber: "T2"},
	}, layout.Rows)
	assert.Equal(t, "User Manual", layout.ManualTitle)
	assert.Equal(t, ManualText, layout.ManualText)
}

func TestSafeFileName(t *testing.T) {
	testCases := []struct {
		company  string
		expected string
	}{
		{company: "Acme", expected: "Acme.pdf"},
		{company: "Acme Corp", expected: "Acme_Corp.pdf"},
		{company: "Globex Corp/EU", expected: "Globex_Corp_EU.pdf"},
		{company: "a / b", expected: "a___b.pdf"},
	}

	for _, tc := range testCases {
		t.Run(tc.company, func(t *testing.T) {
			assert.Equal(t, tc.expected, SafeFileName(tc.company))
		})
	}
}

func TestDownloadName_OnlyReplacesSpaces(t *testing.T) {
	assert.Equal(t, "Globex_Corp/EU.pdf", DownloadName("Globex Corp/EU"))
}

func TestRenderer_Render_WritesTwoPages(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pdfs")
	renderer := NewRenderer(dir, WithCompression(false))

	path, err := renderer.Render(acmeShipment())

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Acme.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Contains(t, string(data), "/Count 2")
	for _, text := range []string{"(COMPANY NAME: Acme)", "(TRACKING ID: T100)", "(USER NAME)", "(TOKEN NUMBER)", "(alice)", "(T1)", "(bob)", "(T2)", "(User Manual)"} {
		assert.Contains(t, string(data), text)
	}
}

func TestRenderer_Render_SameCompanyOverwrites(t *testing.T) {
	dir := t.TempDir()
	renderer := NewRenderer(dir, WithCompression(false))

	first := acmeShipment()
	second := acmeShipment()
	second.TrackingID = "T999"
	second.Users = []string{"zed"}
	second.TokenNumbers = []string{"Z1"}

	firstPath, err := renderer.Render(first)
	require.NoError(t, err)
	secondPath, err := renderer.Render(second)
	require.NoError(t, err)

	assert.Equal(t, firstPath, secondPath)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	data, err := os.ReadFile(secondPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "(TRACKING ID: T999)")
	assert.NotContains(t, string(data), "(alice)")
}

func TestRenderer_Render_UnwritableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	renderer := NewRenderer(filepath.Join(blocker, "pdfs"))

	_, err := renderer.Render(acmeShipment())

	assert.Error(t, err)
}

func TestRenderer_Render_UnprintableCharacters(t *testing.T) {
	dir := t.TempDir()
	renderer := NewRenderer(dir)
	shipment := acmeShipment()
	shipment.Users = []string{"张三", "Zoë"}

	path, err := renderer.Render(shipment)

	var validationErr *customerror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, path)
	assert.Len(t, validationErr.Messages, 1)
	assert.Contains(t, validationErr.Messages[0], "User 1 Name")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRenderer_Render_Latin1Characters(t *testing.T) {
	renderer := NewRenderer(t.TempDir(), WithCompression(false))
	shipment := acmeShipment()
	shipment.Users = []string{"Zoë", "bob"}

	path, err := renderer.Render(shipment)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "(Zo\xeb)")
}

func TestRenderer_AssetsDirOverride(t *testing.T) {
	assetsDir := t.TempDir()
	logo, err := assetsFS.ReadFile("assets/" + BannerImage)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, LogoImage), logo, 0o644))

	renderer := NewRenderer(t.TempDir(), WithAssetsDir(assetsDir))

	data, err := renderer.image(LogoImage)
	require.NoError(t, err)
	assert.Equal(t, logo, data)

	embedded, err := assetsFS.ReadFile("assets/" + BannerImage)
	require.NoError(t, err)
	data, err = renderer.image(BannerImage)
	require.NoError(t, err)
	assert.Equal(t, embedded, data)
}

func TestRenderer_BrokenAsset(t *testing.T) {
	assetsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, LogoImage), []byte("not an image"), 0o644))
	renderer := NewRenderer(t.TempDir(), WithAssetsDir(assetsDir))

	_, err := renderer.Render(acmeShipment())

	assert.Error(t, err)
}
