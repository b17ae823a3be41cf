package pdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/sangkips/drip-billing/internal/domain/entity"
	"github.com/sangkips/drip-billing/internal/domain/enum"
)

// Images carries the encoded images a receipt document may reference.
// A nil slot is skipped.
type Images struct {
	Logo      []byte
	PaymentQR []byte
}

// Renderer draws receipt documents with gofpdf.
type Renderer struct {
	fontDir string
}

// NewRenderer creates a renderer. When fontDir is set it must hold
// DejaVuSans.ttf, DejaVuSans-Bold.ttf and DejaVuSansMono.ttf, which lets
// receipts carry any Unicode text (₹ included); otherwise the core PDF
// fonts are used and text is mapped to cp1252.
func NewRenderer(fontDir string) *Renderer {
	return &Renderer{fontDir: fontDir}
}

// ImageType returns the gofpdf image type of data, or false if data is
// not a decodable PNG, JPEG or GIF.
func ImageType(data []byte) (string, bool) {
	if len(data) == 0 {
		return "", false
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", false
	}
	switch format {
	case "png":
		return "PNG", true
	case "jpeg":
		return "JPG", true
	case "gif":
		return "GIF", true
	}
	return "", false
}

// Render draws doc and returns the PDF bytes. A logo gofpdf cannot embed
// is dropped with a warning; any other failure fails the whole document.
func (r *Renderer) Render(doc *entity.ReceiptDocument, images Images) ([]byte, error) {
	if images.Logo != nil {
		if err := probeImage(images.Logo); err != nil {
			slog.Warn("pdf: skipping logo", "bill_number", doc.BillNumber, "error", err)
			images.Logo = nil
		}
	}

	layout := doc.Layout
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: layout.Width, Ht: layout.Height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.SetTitle(fmt.Sprintf("Bill %d", doc.BillNumber), true)

	fonts, tr := r.setupFonts(p)
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("pdf: load fonts: %w", err)
	}
	p.AddPage()

	for _, op := range doc.Ops {
		switch op.Kind {
		case enum.DrawText, enum.DrawTextRight:
			family, style := fonts.resolve(op.Font)
			p.SetFont(family, style, op.Font.Size)
			s := tr(op.Text)
			x := op.X
			if op.Kind == enum.DrawTextRight {
				x -= p.GetStringWidth(s)
			}
			p.Text(x, layout.Height-op.Y, s)
		case enum.DrawPageBreak:
			p.AddPage()
		case enum.DrawImage:
			data := images.Logo
			if op.Image == enum.ImageSlotPaymentQR {
				data = images.PaymentQR
			}
			if data == nil {
				continue
			}
			drawImage(p, layout, op, data)
		}
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render bill %d: %w", doc.BillNumber, err)
	}
	return buf.Bytes(), nil
}

// drawImage fits the image inside the op's box, keeping its aspect ratio
// and anchoring it to the box's top-left corner.
func drawImage(p *gofpdf.Fpdf, layout entity.PageLayout, op entity.DrawOp, data []byte) {
	typ, _ := ImageType(data)
	name := op.Image.String()
	info := p.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: typ}, bytes.NewReader(data))
	if info == nil {
		return
	}

	w, h := op.W, op.H
	if iw, ih := info.Width(), info.Height(); iw > 0 && ih > 0 {
		scale := min(op.W/iw, op.H/ih)
		w, h = iw*scale, ih*scale
	}
	top := layout.Height - (op.Y + op.H)
	p.ImageOptions(name, op.X, top, w, h, false, gofpdf.ImageOptions{ImageType: typ}, 0, "")
}

// probeImage registers data in a scratch document, since gofpdf errors are
// sticky and a bad image would otherwise spoil the real one.
func probeImage(data []byte) error {
	typ, ok := ImageType(data)
	if !ok {
		return fmt.Errorf("unsupported image format")
	}
	scratch := gofpdf.New("P", "pt", "A4", "")
	scratch.RegisterImageOptionsReader("probe", gofpdf.ImageOptions{ImageType: typ}, bytes.NewReader(data))
	return scratch.Error()
}

type fontSet struct {
	utf8 bool
}

func (r *Renderer) setupFonts(p *gofpdf.Fpdf) (fontSet, func(string) string) {
	if r.fontDir == "" {
		return fontSet{}, p.UnicodeTranslatorFromDescriptor("")
	}
	p.AddUTF8Font("DejaVu", "", filepath.Join(r.fontDir, "DejaVuSans.ttf"))
	p.AddUTF8Font("DejaVu", "B", filepath.Join(r.fontDir, "DejaVuSans-Bold.ttf"))
	p.AddUTF8Font("DejaVuMono", "", filepath.Join(r.fontDir, "DejaVuSansMono.ttf"))
	return fontSet{utf8: true}, func(s string) string { return s }
}

// resolve maps a core family onto the loaded UTF-8 fonts.
func (fs fontSet) resolve(f entity.Font) (family, style string) {
	if !fs.utf8 {
		return f.Family, f.Style
	}
	if f.Family == "Courier" {
		return "DejaVuMono", ""
	}
	return "DejaVu", f.Style
}
