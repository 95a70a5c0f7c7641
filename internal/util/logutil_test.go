package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "abc", TruncateForLog("abc", 10))
	assert.Equal(t, "abcde...", TruncateForLog("abcdefgh", 5))
	assert.Equal(t, "", TruncateForLog("abc", 0))
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "Machine Learning", TitleWords("machine learning"))
	assert.Equal(t, "Sql", TitleWords("sql"))
	assert.Equal(t, "", TitleWords("  "))
}
