package utils

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		max     int
		wantErr bool
	}{
		{"empty", "", 1000, true},
		{"whitespace only", "   \n\t", 1000, true},
		{"simple", "obrigado por tudo", 1000, false},
		{"exactly at bound", strings.Repeat("a", 1000), 1000, false},
		{"one over bound", strings.Repeat("a", 1001), 1000, true},
		{"multibyte runes counted as one", strings.Repeat("ã", 1000), 1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText("text", tt.text, tt.max)
			if tt.wantErr {
				assert.Error(t, err)
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHexColor(t *testing.T) {
	for _, ok := range []string{"#fff", "#FF80AB", "#90caf9"} {
		assert.NoError(t, ValidateHexColor("background", ok), ok)
	}
	for _, bad := range []string{"", "red", "ff80ab", "#ff80a", "#gggggg", "#ff80ab00"} {
		assert.Error(t, ValidateHexColor("background", bad), bad)
	}
}

func TestValidateImageDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("tiny-png-bytes"))
	valid := "data:image/png;base64," + payload

	assert.NoError(t, ValidateImageDataURI("image", valid, 1024))

	assert.Error(t, ValidateImageDataURI("image", "", 1024))
	assert.Error(t, ValidateImageDataURI("image", "http://example.com/a.png", 1024))
	assert.Error(t, ValidateImageDataURI("image", "data:image/png;base64,", 1024))
	assert.Error(t, ValidateImageDataURI("image", "data:image/png,rawdata", 1024))
	assert.Error(t, ValidateImageDataURI("image", "data:image/png;base64,!!notbase64!!", 1024))
	// Payload over the byte cap.
	assert.Error(t, ValidateImageDataURI("image", valid, 4))
}
