package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDeterministic(t *testing.T) {
	a := Encode("王小明", "secure_seed_2024")
	b := Encode("王小明", "secure_seed_2024")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // hex SHA-256
}

func TestEncodeDistinctNames(t *testing.T) {
	a := Encode("王小明", "secure_seed_2024")
	b := Encode("李小華", "secure_seed_2024")
	assert.NotEqual(t, a, b)
}

func TestEncodeSeedChangesCode(t *testing.T) {
	a := Encode("王小明", "seed-1")
	b := Encode("王小明", "seed-2")
	assert.NotEqual(t, a, b)
}

func TestBackupCodeIsPrefix(t *testing.T) {
	code := Encode("王小明", "secure_seed_2024")
	backup := BackupCode(code)
	assert.Len(t, backup, BackupLength)
	assert.Equal(t, code[:BackupLength], backup)
}

func TestBackupCodeShortInput(t *testing.T) {
	assert.Equal(t, "abc", BackupCode("abc"))
}
