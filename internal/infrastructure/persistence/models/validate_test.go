package models

import (
	"errors"
	"testing"

	"github.com/brokerdesk/crm/internal/domain/crm"
	"github.com/brokerdesk/crm/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	names := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		names[i] = f.Field
	}
	return names
}

func TestValidate_Enums(t *testing.T) {
	t.Run("valid insert", func(t *testing.T) {
		err := Validate(ClientInsert{
			ClientType: crm.ClientTypeBodyCorporate,
			Status:     Ptr(crm.ClientStatusActive),
		})
		assert.NoError(t, err)
	})

	t.Run("unknown required enum", func(t *testing.T) {
		err := Validate(ClientInsert{ClientType: "trust"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		assert.Equal(t, []string{"client_type"}, fieldNames(t, err))
	})

	t.Run("unknown optional enum", func(t *testing.T) {
		err := Validate(ClaimUpdate{Status: Ptr(crm.ClaimStatus("closed"))})
		assert.Equal(t, []string{"status"}, fieldNames(t, err))
	})

	t.Run("unset and null optional enums pass", func(t *testing.T) {
		assert.NoError(t, Validate(ClaimUpdate{}))
		assert.NoError(t, Validate(ClaimUpdate{Status: Null[crm.ClaimStatus]()}))
	})

	t.Run("pointer shapes", func(t *testing.T) {
		assert.NoError(t, Validate(&EmployeeUpdate{Role: Some(crm.EmployeeRoleManager)}))
		err := Validate(&EmployeeUpdate{Role: Some(crm.EmployeeRole("owner"))})
		assert.Equal(t, []string{"role"}, fieldNames(t, err))
	})
}

func TestValidate_Required(t *testing.T) {
	err := Validate(ClientContactInsert{})
	assert.ElementsMatch(t, []string{"client_id", "name"}, fieldNames(t, err))

	err = Validate(EmployeeInsert{FullName: "Thandi", Role: crm.EmployeeRoleBroker})
	assert.Equal(t, []string{"id"}, fieldNames(t, err))
}

func TestValidate_Email(t *testing.T) {
	base := ClientContactInsert{ClientID: uuid.New(), Name: "Ann"}

	t.Run("valid", func(t *testing.T) {
		c := base
		c.Email = Ptr("ann@example.com")
		assert.NoError(t, Validate(c))
	})

	t.Run("invalid", func(t *testing.T) {
		c := base
		c.Email = Ptr("not-an-email")
		assert.Equal(t, []string{"email"}, fieldNames(t, Validate(c)))
	})

	t.Run("lead contact email", func(t *testing.T) {
		err := Validate(LeadUpdate{ContactEmail: Ptr("nope")})
		assert.Equal(t, []string{"contact_email"}, fieldNames(t, err))
	})
}

func TestValidate_ParentType(t *testing.T) {
	t.Run("known parent", func(t *testing.T) {
		err := Validate(AddressInsert{
			ParentID:   uuid.New(),
			ParentType: string(crm.ParentTypeClient),
			Line1:      "12 Long Street",
		})
		assert.NoError(t, err)
	})

	t.Run("unknown parent", func(t *testing.T) {
		err := Validate(InteractionInsert{
			ParentID:        uuid.New(),
			ParentType:      "invoice",
			InteractionType: "call",
		})
		assert.Equal(t, []string{"parent_type"}, fieldNames(t, err))
	})

	t.Run("optional parent on task", func(t *testing.T) {
		assert.NoError(t, Validate(TaskInsert{Title: "Call back", ParentType: Ptr("claim")}))
		err := Validate(TaskInsert{Title: "Call back", ParentType: Ptr("invoice")})
		assert.Equal(t, []string{"parent_type"}, fieldNames(t, err))
	})
}

func TestValidate_NotAShape(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), shared.ErrInvalidInput)
	assert.ErrorIs(t, Validate("clients"), shared.ErrInvalidInput)
}
