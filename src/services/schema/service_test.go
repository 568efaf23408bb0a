package schema

import (
	"testing"

	"Backend-CourseSignin/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildOptionsInsertionOrder(t *testing.T) {
	opts := buildOptions([]string{"葷食", "素食"})

	require.Len(t, opts, 2)
	assert.Equal(t, models.FieldOption{Value: "葷食", DisplayOrder: 1}, opts[0])
	assert.Equal(t, models.FieldOption{Value: "素食", DisplayOrder: 2}, opts[1])
}

func TestBuildOptionsEmpty(t *testing.T) {
	assert.Empty(t, buildOptions(nil))
}

func TestAppendOptionUpdateComputesOrderInPipeline(t *testing.T) {
	pipeline := appendOptionUpdate("其他")

	require.Len(t, pipeline, 1)
	set, ok := pipeline[0][0].Value.(bson.M)
	require.True(t, ok)

	// 新元素接在現有 options 後面
	concat, ok := set["options"].(bson.M)["$concatArrays"].(bson.A)
	require.True(t, ok)
	require.Len(t, concat, 2)

	appended, ok := concat[1].(bson.A)[0].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "其他", appended["value"])

	// 順位由伺服器端以現有最大值加一算出, 而不是客戶端先讀再寫
	order, ok := appended["displayOrder"].(bson.M)
	require.True(t, ok)
	assert.Contains(t, order, "$add")
}
