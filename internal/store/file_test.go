package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/roles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileListMissingFile(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "roles.json"))

	catalog, err := f.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, catalog)
}

func TestFileListParsesCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	payload := `[
	  {
	    "title": "Data Scientist",
	    "tags": ["data", "ml"],
	    "requiredSkills": [
	      {"skill": "python", "weight": 2},
	      {"skill": "statistics"}
	    ],
	    "legacyField": "ignored"
	  }
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	catalog, err := NewFile(path).List(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 1)

	role := catalog[0]
	assert.Equal(t, "Data Scientist", role.Title)
	assert.Equal(t, []string{"data", "ml"}, role.Tags)
	require.Len(t, role.RequiredSkills, 2)
	assert.Equal(t, "python", role.RequiredSkills[0].Skill)
	assert.Equal(t, 2.0, role.RequiredSkills[0].Weight)
	assert.Equal(t, 0.0, role.RequiredSkills[1].Weight)
}

func TestFileListRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFile(path).List(context.Background())
	assert.Error(t, err)
}

func TestFileAppendAssignsIDAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "roles.json")
	f := NewFile(path)
	ctx := context.Background()

	added, err := f.Append(ctx, roles.Definition{
		Title: "Cloud Engineer",
		Tags:  []string{"cloud"},
		RequiredSkills: []roles.RequiredSkill{
			{Skill: "aws", Weight: 2},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	catalog, err := f.List(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, added.ID, catalog[0].ID)
	assert.Equal(t, "Cloud Engineer", catalog[0].Title)

	// Appending again keeps the earlier entry.
	_, err = f.Append(ctx, roles.Definition{Title: "SRE"})
	require.NoError(t, err)

	catalog, err = f.List(ctx)
	require.NoError(t, err)
	assert.Len(t, catalog, 2)
}

func TestOpenWithoutDatabaseUsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")

	s, err := Open(context.Background(), "", path, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*File)
	assert.True(t, ok)
}
