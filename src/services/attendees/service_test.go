package attendees

import (
	"testing"

	"Backend-CourseSignin/src/apperrors"
	"Backend-CourseSignin/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildValueDocs(t *testing.T) {
	attendeeID := primitive.NewObjectID()
	fieldID := primitive.NewObjectID()

	docs, err := buildValueDocs(attendeeID, map[string]string{
		fieldID.Hex(): "素食",
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0].(models.AttendeeValue)
	assert.Equal(t, attendeeID, doc.AttendeeID)
	assert.Equal(t, fieldID, doc.FieldID)
	assert.Equal(t, "素食", doc.Value)
}

func TestBuildValueDocsRejectsMalformedKey(t *testing.T) {
	_, err := buildValueDocs(primitive.NewObjectID(), map[string]string{
		"not-an-object-id": "素食",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidFieldID)
}

func TestBuildValueDocsSkipsEmptyValues(t *testing.T) {
	// 空字串代表未填, 連同格式錯誤的鍵一起被略過而不報錯
	docs, err := buildValueDocs(primitive.NewObjectID(), map[string]string{
		"whatever": "",
	})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDupKeyError(t *testing.T) {
	assert.ErrorIs(t, dupKeyError(true), apperrors.ErrDuplicateName)
	assert.ErrorIs(t, dupKeyError(false), apperrors.ErrCodeCollision)
}
