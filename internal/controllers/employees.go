package controllers

import (
	"context"

	"tokoadmin/internal/gateway"
	"tokoadmin/internal/models"
)

// EmployeeGateway is the slice of the remote API the employee controller uses.
type EmployeeGateway interface {
	ListEmployees(ctx context.Context, storeID models.ID) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, storeID models.ID, employee models.Employee) (*models.Employee, error)
}

// EmployeeDraft is an unsaved employee. Password lives only here until the
// create succeeds.
type EmployeeDraft struct {
	Username string
	Password string
	Role     models.Role
}

func newEmployeeDraft() *EmployeeDraft {
	return &EmployeeDraft{Role: models.RoleEmployee}
}

// EmployeeController mirrors the employees of one store.
type EmployeeController struct {
	collection[models.Employee]
	gw    EmployeeGateway
	draft *EmployeeDraft
}

// NewEmployeeController creates a controller scoped to storeID.
func NewEmployeeController(gw EmployeeGateway, storeID models.ID, opts Options) *EmployeeController {
	return &EmployeeController{
		collection: newCollection("employee", storeID, func(e models.Employee) models.ID { return e.ID }, opts),
		gw:         gw,
	}
}

// StoreID returns the scope of the controller.
func (c *EmployeeController) StoreID() models.ID { return c.scope }

// Initialize fetches the store's employees once.
func (c *EmployeeController) Initialize(ctx context.Context) bool {
	return c.load(ctx, func(ctx context.Context) ([]models.Employee, error) {
		return c.gw.ListEmployees(ctx, c.scope)
	})
}

// Mode reports whether a create draft is active.
func (c *EmployeeController) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft == nil {
		return ModeNone
	}
	return ModeCreate
}

// Draft returns a copy of the active draft.
func (c *EmployeeController) Draft() (EmployeeDraft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft == nil {
		return EmployeeDraft{}, false
	}
	return *c.draft, true
}

// BeginCreate starts a draft with the default role.
func (c *EmployeeController) BeginCreate() {
	c.mu.Lock()
	c.draft = newEmployeeDraft()
	c.mu.Unlock()
}

// UpdateDraftField sets "username", "password" or "role" on the draft.
func (c *EmployeeController) UpdateDraftField(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft == nil {
		return ErrNoDraft
	}
	switch field {
	case "username":
		c.draft.Username = value
	case "password":
		c.draft.Password = value
	case "role":
		c.draft.Role = models.Role(value)
	default:
		return unknownField(c.resource, field)
	}
	return nil
}

// CancelDraft discards the draft and the password with it.
func (c *EmployeeController) CancelDraft() {
	c.mu.Lock()
	c.draft = nil
	c.mu.Unlock()
}

// CommitCreate validates the draft and creates the employee. The stored
// element never carries the password.
func (c *EmployeeController) CommitCreate(ctx context.Context) bool {
	draft, ok := c.Draft()
	if !ok {
		c.log.Debug("Controller: commit without draft ignored")
		return false
	}
	if !validEmployeeDraft(draft) {
		c.fail(ctx, "create", MsgEmployeeFieldsRequired, gateway.NewValidationError(MsgEmployeeFieldsRequired))
		return false
	}

	created, err := c.gw.CreateEmployee(ctx, c.scope, models.Employee{
		Username: draft.Username,
		Password: draft.Password,
		Role:     draft.Role,
	})
	if err != nil {
		c.fail(ctx, "create", MsgCreateEmployeeFailed, err)
		return false
	}

	employee := *created
	employee.Password = ""
	c.appendItem(employee)
	c.CancelDraft()
	c.succeed(ctx, "create", "employee created")
	return true
}
