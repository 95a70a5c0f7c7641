package resume

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkillsTech(t *testing.T) {
	text := "Built services in Python and JavaScript, deployed with Docker on AWS. Strong communication."

	got := ExtractSkills(text, "tech")

	assert.Contains(t, got, "Python")
	assert.Contains(t, got, "JavaScript")
	assert.Contains(t, got, "Docker")
	assert.Contains(t, got, "AWS")
	assert.Contains(t, got, "Communication")
	assert.NotContains(t, got, "Kubernetes")
}

func TestExtractSkillsGovernment(t *testing.T) {
	text := "Prepared for exams covering Indian Polity, Current Affairs and Essay Writing."

	got := ExtractSkills(text, "government")

	assert.Contains(t, got, "Polity")
	assert.Contains(t, got, "Current Affairs")
	assert.Contains(t, got, "Essay Writing")
}

func TestExtractSkillsDeduplicates(t *testing.T) {
	got := ExtractSkills("python python PYTHON", "tech")

	count := 0
	for _, s := range got {
		if s == "Python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractExperienceLevelDefault(t *testing.T) {
	assert.Equal(t, LevelEntry, ExtractExperienceLevel("nothing relevant here"))
}

func TestExtractExperienceLevelVote(t *testing.T) {
	text := "Senior engineer, team lead and principal architect with 5+ years."

	assert.Equal(t, LevelSenior, ExtractExperienceLevel(text))
}

func TestExtractExperienceLevelTieKeepsFirstBucket(t *testing.T) {
	// One senior keyword and one entry keyword: the earlier bucket wins.
	text := "senior graduate"

	assert.Equal(t, LevelEntry, ExtractExperienceLevel(text))
}

func TestExtractExperienceLevelExecutive(t *testing.T) {
	text := "Director and VP, head of engineering, CTO experience"

	assert.Equal(t, LevelExecutive, ExtractExperienceLevel(text))
}

func TestCaptureWindowsEducation(t *testing.T) {
	text := "Education\nBachelor of Technology in Computer Science, 2019\nMaster of Science, 2021\n"

	got := ExtractEducation(text)

	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 3)
	// Window is cut at the first line break.
	for _, fragment := range got {
		assert.NotContains(t, fragment, "\n")
		assert.LessOrEqual(t, len(fragment), 100)
	}
}

func TestCaptureWindowsCertificationCap(t *testing.T) {
	// All eight certification keywords present on one long line.
	text := "certified certification certificate aws azure google cloud cisco microsoft"

	got := ExtractCertifications(text)

	assert.LessOrEqual(t, len(got), 5)
	for _, fragment := range got {
		assert.LessOrEqual(t, len(fragment), 80)
	}
}

func TestCaptureWindowsKeepsValidUTF8(t *testing.T) {
	// A two-byte rune straddles the 100-byte education window, so the cut
	// must back up to the preceding rune boundary.
	text := "bachelor " + strings.Repeat("x", 90) + "é and further study"

	got := ExtractEducation(text)

	require.NotEmpty(t, got)
	assert.True(t, utf8.ValidString(got[0]))
	assert.Len(t, got[0], 99)
}

func TestCaptureWindowsAbsentKeywords(t *testing.T) {
	assert.Empty(t, ExtractEducation("no matching words"))
	assert.Empty(t, ExtractCertifications(""))
	assert.Empty(t, ExtractProjectMentions("plain text"))
	assert.Empty(t, ExtractWorkExperience("plain text"))
}

func TestExtractWorkExperienceWindow(t *testing.T) {
	text := "Professional experience at Acme Corp as platform engineer\nmore details"

	got := ExtractWorkExperience(text)

	require.NotEmpty(t, got)
	assert.True(t, strings.HasPrefix(got[0], "experience at Acme Corp"))
}
