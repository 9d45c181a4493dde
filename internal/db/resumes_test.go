package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestBuildResumeUpdate(t *testing.T) {
	t.Run("title only", func(t *testing.T) {
		set, args, err := buildResumeUpdate(&types.UpdateResumeRequest{Title: strPtr("New Title")})
		require.NoError(t, err)
		assert.Equal(t, "title = $1, updated_at = NOW()", set)
		assert.Equal(t, []any{"New Title"}, args)
	})

	t.Run("all fields", func(t *testing.T) {
		set, args, err := buildResumeUpdate(&types.UpdateResumeRequest{
			Title:      strPtr("New Title"),
			TemplateID: strPtr("modern"),
			IsActive:   boolPtr(true),
			Data:       &types.ResumeData{FullName: "Jane Doe"},
		})
		require.NoError(t, err)
		assert.Equal(t, "title = $1, template_id = $2, is_active = $3, data = $4, updated_at = NOW()", set)
		require.Len(t, args, 4)
		assert.Equal(t, "New Title", args[0])
		assert.Equal(t, "modern", args[1])
		assert.Equal(t, true, args[2])
		assert.Contains(t, string(args[3].([]byte)), "Jane Doe")
	})

	t.Run("placeholders stay sequential when fields are skipped", func(t *testing.T) {
		set, args, err := buildResumeUpdate(&types.UpdateResumeRequest{
			TemplateID: strPtr("slate"),
			Data:       &types.ResumeData{FullName: "Jane Doe"},
		})
		require.NoError(t, err)
		assert.Equal(t, "template_id = $1, data = $2, updated_at = NOW()", set)
		assert.Len(t, args, 2)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		_, _, err := buildResumeUpdate(&types.UpdateResumeRequest{})
		assert.Error(t, err)

		_, _, err = buildResumeUpdate(nil)
		assert.Error(t, err)
	})
}
