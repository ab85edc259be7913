package filescan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberlaw-chat/internal/responder"
)

func TestAnalyzeTextFile(t *testing.T) {
	content := []byte("I received a legal notice about hacking my former employer's server.")
	result, err := Analyze("notice.txt", "text/plain", content)
	require.NoError(t, err)

	assert.Equal(t, "notice.txt", result.Name)
	assert.Equal(t, int64(len(content)), result.Size)
	assert.Equal(t, responder.IntentHacking, result.Intent)
	assert.Contains(t, result.Excerpt, "legal notice")
	assert.NotEmpty(t, result.Reply)
}

func TestAnalyzeRejectsNonUTF8Text(t *testing.T) {
	_, err := Analyze("notice.txt", "text/plain", []byte{0xff, 0xfe, 0xfd})
	assert.Error(t, err)
}

func TestAnalyzeUnsupportedTypeClassifiesFromName(t *testing.T) {
	result, err := Analyze("privacy-complaint.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte{0x50, 0x4b})
	require.NoError(t, err)
	assert.Equal(t, responder.IntentDataProtection, result.Intent)
	assert.Empty(t, result.Excerpt)
}

func TestAnalyzeExcerptTruncated(t *testing.T) {
	long := strings.Repeat("cyber law question ", 50)
	result, err := Analyze("long.txt", "text/plain", []byte(long))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.Excerpt, "..."))
	assert.LessOrEqual(t, len(result.Excerpt), excerptLimit+3)
}

func TestAnalyzeEmptyPDF(t *testing.T) {
	result, err := Analyze("empty.pdf", "application/pdf", nil)
	require.NoError(t, err)
	assert.Equal(t, responder.IntentGeneral, result.Intent)
}
