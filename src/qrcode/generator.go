package qrcode

import (
	"fmt"
	"os"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCode 產生 QR Code 並存成 PNG 檔 (放在 public/qrcodes 資料夾)
func GenerateQRCode(data string, filename string) error {
	if err := os.MkdirAll("public/qrcodes", 0o755); err != nil {
		return err
	}
	filePath := fmt.Sprintf("public/qrcodes/%s.png", filename)
	err := qrcode.WriteFile(data, qrcode.Medium, 256, filePath)
	if err != nil {
		return err
	}
	return nil
}

// GeneratePNG 產生 QR Code 的 PNG bytes, 直接回傳給前端下載用
func GeneratePNG(data string) ([]byte, error) {
	return qrcode.Encode(data, qrcode.Medium, 256)
}
