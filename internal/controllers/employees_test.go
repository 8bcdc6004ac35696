package controllers_test

import (
	"context"
	"testing"

	"tokoadmin/internal/controllers"
	"tokoadmin/internal/gateway"
	"tokoadmin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmployeeController_Initialize(t *testing.T) {
	gw := new(MockGateway)
	ctrl := controllers.NewEmployeeController(gw, storeOne, controllers.Options{})
	staff := []models.Employee{{ID: "1", Username: "ana", Role: models.RoleManager, StoreID: storeOne}}

	gw.On("ListEmployees", mock.Anything, storeOne).Return(staff, nil).Once()

	assert.True(t, ctrl.Initialize(context.Background()))
	assert.Equal(t, staff, ctrl.Items())
	gw.AssertExpectations(t)
}

func TestEmployeeController_DefaultRole(t *testing.T) {
	ctrl := controllers.NewEmployeeController(new(MockGateway), storeOne, controllers.Options{})

	ctrl.BeginCreate()
	draft, ok := ctrl.Draft()
	require.True(t, ok)
	assert.Equal(t, models.RoleEmployee, draft.Role)
}

func TestEmployeeController_CommitCreate(t *testing.T) {
	gw := new(MockGateway)
	ctrl := controllers.NewEmployeeController(gw, storeOne, controllers.Options{})

	ctrl.BeginCreate()
	require.NoError(t, ctrl.UpdateDraftField("username", "budi"))
	require.NoError(t, ctrl.UpdateDraftField("password", "s3cret"))
	require.NoError(t, ctrl.UpdateDraftField("role", "manager"))

	sent := models.Employee{Username: "budi", Password: "s3cret", Role: models.RoleManager}
	gw.On("CreateEmployee", mock.Anything, storeOne, sent).
		Return(&models.Employee{ID: "7", Username: "budi", Password: "s3cret", Role: models.RoleManager, StoreID: storeOne}, nil).Once()

	assert.True(t, ctrl.CommitCreate(context.Background()))
	items := ctrl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, models.ID("7"), items[0].ID)
	assert.Empty(t, items[0].Password, "password is never kept")
	_, ok := ctrl.Draft()
	assert.False(t, ok)
	gw.AssertExpectations(t)
}

func TestEmployeeController_CommitCreateValidation(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
	}{
		{"blank username", "  ", "pw"},
		{"missing password", "budi", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := new(MockGateway)
			ctrl := controllers.NewEmployeeController(gw, storeOne, controllers.Options{})

			ctrl.BeginCreate()
			require.NoError(t, ctrl.UpdateDraftField("username", tc.username))
			require.NoError(t, ctrl.UpdateDraftField("password", tc.password))

			assert.False(t, ctrl.CommitCreate(context.Background()))
			assert.Equal(t, controllers.MsgEmployeeFieldsRequired, ctrl.LastError())
			draft, ok := ctrl.Draft()
			assert.True(t, ok)
			assert.Equal(t, tc.username, draft.Username)
			gw.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestEmployeeController_CommitCreateConflict(t *testing.T) {
	gw := new(MockGateway)
	ctrl := controllers.NewEmployeeController(gw, storeOne, controllers.Options{})

	ctrl.BeginCreate()
	require.NoError(t, ctrl.UpdateDraftField("username", "budi"))
	require.NoError(t, ctrl.UpdateDraftField("password", "pw"))
	gw.On("CreateEmployee", mock.Anything, storeOne, mock.Anything).
		Return(nil, &gateway.Error{Kind: gateway.KindServer, StatusCode: 409, Message: "username already taken"}).Once()

	assert.False(t, ctrl.CommitCreate(context.Background()))
	assert.Equal(t, controllers.MsgCreateEmployeeFailed, ctrl.LastError())
	assert.Empty(t, ctrl.Items())
	draft, ok := ctrl.Draft()
	assert.True(t, ok)
	assert.Equal(t, "pw", draft.Password)
}

func TestEmployeeController_CancelDraftDropsPassword(t *testing.T) {
	ctrl := controllers.NewEmployeeController(new(MockGateway), storeOne, controllers.Options{})

	ctrl.BeginCreate()
	require.NoError(t, ctrl.UpdateDraftField("password", "pw"))
	ctrl.CancelDraft()
	ctrl.CancelDraft()

	_, ok := ctrl.Draft()
	assert.False(t, ok)
	assert.Equal(t, controllers.ModeNone, ctrl.Mode())
}
