package models

import (
	"encoding/json"
	"testing"

	"github.com/brokerdesk/crm/internal/domain/crm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInsertValues(t *testing.T) {
	t.Run("required and provided columns only", func(t *testing.T) {
		i := ClientInsert{
			ClientType: crm.ClientTypePersonal,
			FirstName:  Ptr("Ann"),
		}
		assert.Equal(t, map[string]any{
			"client_type": "personal",
			"first_name":  "Ann",
		}, i.InsertValues())
	})

	t.Run("null is written as nil", func(t *testing.T) {
		i := ClientInsert{
			ClientType: crm.ClientTypePersonal,
			Comments:   Null[string](),
		}
		values := i.InsertValues()
		assert.Contains(t, values, "comments")
		assert.Nil(t, values["comments"])
	})

	t.Run("valuers are kept", func(t *testing.T) {
		id := uuid.New()
		i := QuoteOptionInsert{
			QuoteID:   id,
			InsurerID: id,
			ProductID: id,
			Premium:   decimal.RequireFromString("1250.50"),
		}
		values := i.InsertValues()
		assert.Equal(t, id, values["quote_id"])
		assert.Equal(t, decimal.RequireFromString("1250.50"), values["premium"])
		assert.Len(t, values, 4)
	})

	t.Run("json documents are sent as text", func(t *testing.T) {
		i := InsurerInsert{
			Name:        "Santam",
			ContactInfo: Some(json.RawMessage(`{"phone":"0860"}`)),
		}
		assert.Equal(t, `{"phone":"0860"}`, i.InsertValues()["contact_info"])
	})
}

func TestUpdateValues(t *testing.T) {
	t.Run("empty update writes nothing", func(t *testing.T) {
		assert.Empty(t, ClientUpdate{}.UpdateValues())
	})

	t.Run("only set columns", func(t *testing.T) {
		u := TaskUpdate{
			Status:     Ptr(crm.TaskStatusCompleted),
			AssignedTo: Null[uuid.UUID](),
		}
		assert.Equal(t, map[string]any{
			"status":      "completed",
			"assigned_to": nil,
		}, u.UpdateValues())
	})

	t.Run("plain enum in an Opt", func(t *testing.T) {
		u := EmployeeUpdate{Role: Some(crm.EmployeeRoleBroker)}
		assert.Equal(t, map[string]any{"role": "broker"}, u.UpdateValues())
	})
}

func TestShapeColumns(t *testing.T) {
	assert.Equal(t,
		[]string{"policy_id", "type_id", "premium", "sum_insured", "updated_at"},
		ShapeColumns(PolicyCoverInsert{}))
	assert.Equal(t, ShapeColumns(PolicyCoverUpdate{}), ShapeColumns(&PolicyCoverUpdate{}))
}

func TestSqlValue(t *testing.T) {
	var nilID *uuid.UUID
	var nilStr *string
	status := crm.ClaimStatusSettled

	assert.Nil(t, sqlValue(nil))
	assert.Nil(t, sqlValue(nilID))
	assert.Nil(t, sqlValue(nilStr))
	assert.Equal(t, "settled", sqlValue(&status))
	assert.Equal(t, true, sqlValue(true))
	assert.Equal(t, int64(42), sqlValue(int64(42)))
}
