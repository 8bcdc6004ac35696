package gateway

import (
	"context"
	"net/http"

	"tokoadmin/internal/models"
)

type createEmployeeRequest struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// ListEmployees returns the employees of storeID in server order.
func (c *Client) ListEmployees(ctx context.Context, storeID models.ID) ([]models.Employee, error) {
	var employees []models.Employee
	endpoint := c.endpoint("stores", storeID.String(), "employees")
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &employees); err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	for i := range employees {
		employees[i].Password = ""
	}
	return employees, nil
}

// CreateEmployee creates an employee in storeID. The password is sent once and
// scrubbed from whatever the server echoes back.
func (c *Client) CreateEmployee(ctx context.Context, storeID models.ID, employee models.Employee) (*models.Employee, error) {
	req := createEmployeeRequest{
		Username: employee.Username,
		Password: employee.Password,
		Role:     employee.Role,
	}
	var created models.Employee
	endpoint := c.endpoint("stores", storeID.String(), "employees")
	if err := c.do(ctx, http.MethodPost, endpoint, req, &created); err != nil {
		return nil, err
	}
	created.Password = ""
	return &created, nil
}
