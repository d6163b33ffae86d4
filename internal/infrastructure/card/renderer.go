package card

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// 카드 레이아웃
const (
	Width  = 800
	Height = 500

	qrLeft = 550
	qrTop  = 150
	qrSize = 200

	// QRModulePixels 단독 QR 이미지의 모듈당 픽셀 수
	QRModulePixels = 20

	title            = "SUNS FIDELITY CARD"
	defaultStoreName = "Suns Fidelity Card"
)

var (
	gradientStart = color.RGBA{R: 0x10, G: 0x5a, B: 0x12, A: 0xff}
	gradientEnd   = color.RGBA{R: 0x05, G: 0x3e, B: 0x30, A: 0xff}
)

// Renderer 카드 이미지, QR 코드 PNG 생성기
type Renderer struct {
	regular *truetype.Font
	bold    *truetype.Font
	mono    *truetype.Font
}

// NewRenderer Go 폰트를 파싱하여 렌더러를 생성합니다.
func NewRenderer() (*Renderer, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("regular 폰트 파싱 실패: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("bold 폰트 파싱 실패: %w", err)
	}
	mono, err := truetype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("mono 폰트 파싱 실패: %w", err)
	}

	return &Renderer{regular: regular, bold: bold, mono: mono}, nil
}

// RenderCard 800x500 카드 PNG
func (r *Renderer) RenderCard(card entity.Card) ([]byte, error) {
	dc := gg.NewContext(Width, Height)

	// 배경 그라데이션 (좌 -> 우)
	gradient := gg.NewLinearGradient(0, 0, Width, 0)
	gradient.AddColorStop(0, gradientStart)
	gradient.AddColorStop(1, gradientEnd)
	dc.SetFillStyle(gradient)
	dc.DrawRectangle(0, 0, Width, Height)
	dc.Fill()

	storeName := card.StoreName
	if storeName == "" {
		storeName = defaultStoreName
	}
	code := card.Code
	if code == "" {
		code = "N/A"
	}

	dc.SetColor(color.White)
	r.drawText(dc, r.bold, 36, title, 40, 60)
	r.drawText(dc, r.regular, 24, storeName, 40, 100)
	r.drawText(dc, r.bold, 28, card.FullName, 40, 200)
	r.drawText(dc, r.mono, 32, code, 40, 260)
	r.drawText(dc, r.regular, 24, fmt.Sprintf("Punti: %d", card.Points), 40, 320)

	qrImage, err := encodeQR(code, qrSize, qrSize)
	if err != nil {
		return nil, err
	}
	dc.DrawImage(qrImage, qrLeft, qrTop)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("카드 PNG 인코딩 실패: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderQRCode 모듈당 modulePixels 픽셀 크기의 QR PNG
func (r *Renderer) RenderQRCode(content string, modulePixels int) ([]byte, error) {
	if modulePixels <= 0 {
		modulePixels = QRModulePixels
	}

	code, err := qr.Encode(content, qr.Q, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("QR 인코딩 실패: %w", err)
	}

	side := code.Bounds().Dx() * modulePixels
	scaled, err := barcode.Scale(code, side, side)
	if err != nil {
		return nil, fmt.Errorf("QR 스케일 실패: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("QR PNG 인코딩 실패: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawText(dc *gg.Context, f *truetype.Font, size float64, text string, x, y float64) {
	dc.SetFontFace(newFace(f, size))
	dc.DrawString(text, x, y)
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

func encodeQR(content string, width, height int) (barcode.Barcode, error) {
	code, err := qr.Encode(content, qr.Q, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("QR 인코딩 실패: %w", err)
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, fmt.Errorf("QR 스케일 실패: %w", err)
	}
	return scaled, nil
}
