package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValuesAreValid(t *testing.T) {
	t.Run("claim status", func(t *testing.T) {
		for _, v := range ClaimStatusValues() {
			assert.True(t, v.IsValid(), v)
		}
		assert.False(t, ClaimStatus("closed").IsValid())
	})

	t.Run("claim type", func(t *testing.T) {
		for _, v := range ClaimTypeValues() {
			assert.True(t, v.IsValid(), v)
		}
		assert.False(t, ClaimType("").IsValid())
	})

	t.Run("client status", func(t *testing.T) {
		for _, v := range ClientStatusValues() {
			assert.True(t, v.IsValid(), v)
		}
		assert.False(t, ClientStatus("suspended").IsValid())
	})

	t.Run("client type", func(t *testing.T) {
		for _, v := range ClientTypeValues() {
			assert.True(t, v.IsValid(), v)
		}
		assert.False(t, ClientType("individual").IsValid())
	})

	t.Run("employee role", func(t *testing.T) {
		for _, v := range EmployeeRoleValues() {
			assert.True(t, v.IsValid(), v)
		}
		assert.False(t, EmployeeRole("owner").IsValid())
	})

	t.Run("lead status", func(t *testing.T) {
		assert.Len(t, LeadStatusValues(), 8)
		for _, v := range LeadStatusValues() {
			assert.True(t, v.IsValid(), v)
		}
		assert.False(t, LeadStatus("open").IsValid())
	})

	t.Run("policy status", func(t *testing.T) {
		for _, v := range PolicyStatusValues() {
			assert.True(t, v.IsValid(), v)
		}
		assert.False(t, PolicyStatus("lapsed").IsValid())
	})

	t.Run("quote status", func(t *testing.T) {
		for _, v := range QuoteStatusValues() {
			assert.True(t, v.IsValid(), v)
		}
		assert.False(t, QuoteStatus("rejected").IsValid())
	})

	t.Run("task priority", func(t *testing.T) {
		for _, v := range TaskPriorityValues() {
			assert.True(t, v.IsValid(), v)
		}
		assert.False(t, TaskPriority("critical").IsValid())
	})

	t.Run("task status", func(t *testing.T) {
		for _, v := range TaskStatusValues() {
			assert.True(t, v.IsValid(), v)
		}
		assert.False(t, TaskStatus("done").IsValid())
	})
}

func TestDashboardPredicates(t *testing.T) {
	assert.True(t, ClaimStatusReported.IsOpen())
	assert.True(t, ClaimStatusApproved.IsOpen())
	assert.False(t, ClaimStatusSettled.IsOpen())
	assert.False(t, ClaimStatusDeclined.IsOpen())

	assert.True(t, QuoteStatusDraft.IsPending())
	assert.True(t, QuoteStatusSent.IsPending())
	assert.False(t, QuoteStatusAccepted.IsPending())

	assert.True(t, TaskStatusInProgress.IsActive())
	assert.False(t, TaskStatusCompleted.IsActive())

	assert.True(t, LeadStatusLost.IsClosed())
	assert.False(t, LeadStatusQuoting.IsClosed())
}

func TestParentType_ParentTable(t *testing.T) {
	table, ok := ParentTypePolicy.ParentTable()
	assert.True(t, ok)
	assert.Equal(t, "policies", table)

	_, ok = ParentType("invoice").ParentTable()
	assert.False(t, ok)
}
