package manifest

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Bessima/token-shipping/internal/middlewares/logger"
	"github.com/Bessima/token-shipping/internal/models"
	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

const (
	LogoImage   = "logo.png"
	BannerImage = "banner.png"

	fontFamily  = "Arial"
	columnWidth = 90.0
	rowHeight   = 10.0
)

//go:embed assets/*.png
var assetsFS embed.FS

type Option func(*Renderer)

// WithAssetsDir makes the renderer prefer images found in dir over the
// built-in ones. Missing files fall back to the embedded copies.
func WithAssetsDir(dir string) Option {
	return func(r *Renderer) {
		r.assetsDir = dir
	}
}

// WithCompression toggles stream compression of the generated PDF.
func WithCompression(compress bool) Option {
	return func(r *Renderer) {
		r.compress = compress
	}
}

type Renderer struct {
	outputDir string
	assetsDir string
	compress  bool
}

func NewRenderer(outputDir string, options ...Option) *Renderer {
	r := &Renderer{outputDir: outputDir, compress: true}
	for _, option := range options {
		option(r)
	}
	return r
}

// SafeFileName turns a company name into the manifest file name.
func SafeFileName(companyName string) string {
	return strings.NewReplacer(" ", "_", "/", "_").Replace(companyName) + ".pdf"
}

// DownloadName is the attachment name offered to the browser.
func DownloadName(companyName string) string {
	return strings.ReplaceAll(companyName, " ", "_") + ".pdf"
}

func (r *Renderer) Path(shipment models.Shipment) string {
	return filepath.Join(r.outputDir, SafeFileName(shipment.CompanyName))
}

// Render writes the manifest of shipment to its per-company path, replacing
// any earlier file with the same name.
func (r *Renderer) Render(shipment models.Shipment) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create manifest dir %s: %w", r.outputDir, err)
	}

	pdf, err := r.build(shipment)
	if err != nil {
		return "", err
	}

	path := r.Path(shipment)
	if err = pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write manifest %s: %w", path, err)
	}

	logger.Log.Info("manifest rendered",
		zap.String("tracking_id", shipment.TrackingID),
		zap.String("path", path),
	)
	return path, nil
}

func (r *Renderer) build(shipment models.Shipment) (*fpdf.Fpdf, error) {
	layout := NewLayout(shipment)
	if err := layout.Check(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, name := range []string{LogoImage, BannerImage} {
		data, err := r.image(name)
		if err != nil {
			return nil, err
		}
		pdf.RegisterImageOptionsReader(name, imageOptions(name), bytes.NewReader(data))
	}

	pdf.AddPage()
	pdf.Rect(10, 10, 190, 277, "D")
	pdf.ImageOptions(LogoImage, 12, 12, 30, 0, false, imageOptions(LogoImage), 0, "")
	pdf.ImageOptions(BannerImage, 70, 20, 70, 20, false, imageOptions(BannerImage), 0, "")

	pdf.SetFont(fontFamily, "B", 12)
	pdf.SetXY(20, 50)
	pdf.CellFormat(0, 10, tr(layout.CompanyLine), "", 1, "", false, 0, "")
	pdf.SetXY(20, 60)
	pdf.CellFormat(0, 10, tr(layout.TrackingLine), "", 1, "", false, 0, "")

	pdf.SetXY(10, 90)
	pdf.SetFont(fontFamily, "B", 10)
	pdf.CellFormat(columnWidth, rowHeight, layout.Columns[0], "1", 0, "C", false, 0, "")
	pdf.CellFormat(columnWidth, rowHeight, layout.Columns[1], "1", 1, "C", false, 0, "")

	pdf.SetFont(fontFamily, "", 10)
	for _, row := range layout.Rows {
		pdf.CellFormat(columnWidth, rowHeight, tr(row.User), "1", 0, "C", false, 0, "")
		pdf.CellFormat(columnWidth, rowHeight, tr(row.TokenNumber), "1", 1, "C", false, 0, "")
	}

	pdf.AddPage()
	pdf.Rect(10, 10, 190, 277, "D")
	pdf.ImageOptions(LogoImage, 12, 12, 30, 0, false, imageOptions(LogoImage), 0, "")

	pdf.SetFont(fontFamily, "B", 12)
	pdf.SetXY(10, 20)
	pdf.CellFormat(200, 10, layout.ManualTitle, "", 1, "C", false, 0, "")

	pdf.SetFont(fontFamily, "", 12)
	pdf.MultiCell(0, 10, layout.ManualText, "", "", false)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("build manifest for %s: %w", shipment.TrackingID, err)
	}
	return pdf, nil
}

func (r *Renderer) image(name string) ([]byte, error) {
	if r.assetsDir != "" {
		data, err := os.ReadFile(filepath.Join(r.assetsDir, name))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read image %s: %w", name, err)
		}
	}
	return assetsFS.ReadFile("assets/" + name)
}

func imageOptions(name string) fpdf.ImageOptions {
	return fpdf.ImageOptions{ImageType: strings.ToUpper(strings.TrimPrefix(filepath.Ext(name), "."))}
}
