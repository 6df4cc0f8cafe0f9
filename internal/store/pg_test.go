package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowdesk/wacrm/internal/domain"
)

func TestArchiveUpdates(t *testing.T) {
	reason := "superseded"
	updates := archiveUpdates(&reason)

	assert.Equal(t, domain.TemplateStatusArchived, updates["status"])
	assert.Equal(t, &reason, updates["archive_reason"])
	// Archived rows must drop out of ActiveOnly listings and lineage
	// name-uniqueness checks
	assert.Equal(t, false, updates["is_active"])
	require.Contains(t, updates, "pre_archive_status")
}

func TestRestoreUpdates(t *testing.T) {
	updates := restoreUpdates()

	assert.Equal(t, true, updates["is_active"])
	assert.Nil(t, updates["pre_archive_status"])
	assert.Nil(t, updates["archive_reason"])
	require.Contains(t, updates, "status")
}
