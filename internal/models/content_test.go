package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentTypeDecoding(t *testing.T) {
	for _, valid := range []string{"youtube", "twitter", "reddit", "instagram", "link", "article", "facebook"} {
		var ct ContentType
		err := json.Unmarshal([]byte(`"`+valid+`"`), &ct)
		require.NoError(t, err, valid)
		assert.True(t, ct.Valid())
	}

	for _, invalid := range []string{"tiktok", "", "YouTube", "youtube "} {
		var ct ContentType
		err := json.Unmarshal([]byte(`"`+invalid+`"`), &ct)
		assert.Error(t, err, "%q must not decode", invalid)
	}

	var ct ContentType
	assert.Error(t, json.Unmarshal([]byte(`42`), &ct))
}
