// Package identity derives attendee scan codes. The code is a one-way digest
// of the attendee name plus a shared seed, so a photographed QR code does not
// leak a readable name. 這不是密碼學等級的憑證, 只求實務上不可逆.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
)

// BackupLength 備用短碼長度 (手動輸入用)
const BackupLength = 8

// Encode 依學員姓名與 seed 產生掃描碼, deterministic hex SHA-256 digest
func Encode(name, seed string) string {
	sum := sha256.Sum256([]byte(name + seed))
	return hex.EncodeToString(sum[:])
}

// BackupCode 取掃描碼的固定長度前綴作為備用短碼
func BackupCode(scanCode string) string {
	if len(scanCode) < BackupLength {
		return scanCode
	}
	return scanCode[:BackupLength]
}
