package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"tokoadmin/internal/config"
	"tokoadmin/internal/controllers"
	"tokoadmin/internal/models"
	"tokoadmin/internal/notify"
	"tokoadmin/pkg/rabbitmq"
)

func (c *cli) dispatch(ctx context.Context, args []string) error {
	action := ""
	if len(args) > 1 {
		action = args[1]
	}

	switch args[0] {
	case "login":
		return c.login(ctx)
	case "logout":
		return c.logout()
	case "whoami":
		return c.whoami()
	case "stores":
		return c.stores(ctx, action)
	case "products":
		return c.products(ctx, action)
	case "employees":
		return c.employees(ctx, action)
	case "watch":
		return c.watch(ctx)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (c *cli) options() controllers.Options {
	return controllers.Options{Logger: c.log, Notifier: c.notifier}
}

// report prints the controller's last error and turns ok into an error.
func (c *cli) report(ok bool, lastError string) error {
	if ok {
		return nil
	}
	if lastError != "" {
		fmt.Fprintln(c.out, "error:", lastError)
	}
	return errReported
}

func (c *cli) requireStore() (models.ID, error) {
	if strings.TrimSpace(c.flags.store) == "" {
		return "", errors.New("--store is required")
	}
	return models.ID(c.flags.store), nil
}

func (c *cli) login(ctx context.Context) error {
	token, err := c.client.Login(ctx, c.flags.username, c.flags.password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if err := c.session.Set(token); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "logged in as", c.flags.username)
	return nil
}

func (c *cli) logout() error {
	if err := c.session.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "logged out")
	return nil
}

func (c *cli) whoami() error {
	claims, err := c.session.Claims()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s (id %s), token expires %s\n",
		claims.Username, claims.UserID, claims.ExpiresAt.Format("2006-01-02 15:04"))
	return nil
}

func (c *cli) stores(ctx context.Context, action string) error {
	ctrl := controllers.NewStoreController(c.client, c.options())
	if !ctrl.Initialize(ctx) {
		return c.report(false, ctrl.LastError())
	}

	switch action {
	case "", "list":
	case "create":
		ctrl.BeginCreate()
		if err := ctrl.UpdateDraftField("name", c.flags.name); err != nil {
			return err
		}
		if err := c.report(ctrl.CommitCreate(ctx), ctrl.LastError()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown stores action %q", action)
	}

	c.printStores(ctrl.Items())
	return nil
}

func (c *cli) products(ctx context.Context, action string) error {
	storeID, err := c.requireStore()
	if err != nil {
		return err
	}
	ctrl := controllers.NewProductController(c.client, storeID, c.options())
	if !ctrl.Initialize(ctx) {
		return c.report(false, ctrl.LastError())
	}
	id := models.ID(c.flags.id)

	switch action {
	case "", "list":
	case "create":
		ctrl.BeginCreate()
		if err := c.fillProductDraft(ctrl, false); err != nil {
			return err
		}
		if err := c.report(ctrl.CommitCreate(ctx), ctrl.LastError()); err != nil {
			return err
		}
	case "edit":
		if !ctrl.BeginEdit(id) {
			return fmt.Errorf("product %q not found in store %s", id, storeID)
		}
		if err := c.fillProductDraft(ctrl, true); err != nil {
			return err
		}
		if err := c.report(ctrl.CommitEdit(ctx), ctrl.LastError()); err != nil {
			return err
		}
	case "delete":
		if id.IsZero() {
			return errors.New("--id is required")
		}
		if err := c.report(ctrl.Delete(ctx, id), ctrl.LastError()); err != nil {
			return err
		}
	case "stock":
		if _, ok := ctrl.Find(id); !ok {
			return fmt.Errorf("product %q not found in store %s", id, storeID)
		}
		direction := controllers.Increase
		if c.flags.decrease {
			direction = controllers.Decrease
		}
		if err := c.report(ctrl.AdjustStock(ctx, id, direction), ctrl.LastError()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown products action %q", action)
	}

	c.printProducts(ctrl.Items())
	return nil
}

// fillProductDraft copies flags into the draft. When editing, only flags that
// were given replace the current values.
func (c *cli) fillProductDraft(ctrl *controllers.ProductController, onlyChanged bool) error {
	for flag, value := range map[string]string{
		"name":  c.flags.name,
		"price": c.flags.price,
		"stock": c.flags.stock,
	} {
		if onlyChanged && !c.flags.changed(flag) {
			continue
		}
		if err := ctrl.UpdateDraftField(flag, value); err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) employees(ctx context.Context, action string) error {
	storeID, err := c.requireStore()
	if err != nil {
		return err
	}
	ctrl := controllers.NewEmployeeController(c.client, storeID, c.options())
	if !ctrl.Initialize(ctx) {
		return c.report(false, ctrl.LastError())
	}

	switch action {
	case "", "list":
	case "create":
		ctrl.BeginCreate()
		fields := map[string]string{
			"username": c.flags.username,
			"password": c.flags.password,
		}
		if c.flags.changed("role") {
			fields["role"] = c.flags.role
		}
		for field, value := range fields {
			if err := ctrl.UpdateDraftField(field, value); err != nil {
				return err
			}
		}
		if err := c.report(ctrl.CommitCreate(ctx), ctrl.LastError()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown employees action %q", action)
	}

	c.printEmployees(ctrl.Items())
	return nil
}

// watch prints notifications from the broker until ctx is done.
func (c *cli) watch(ctx context.Context) error {
	if c.cfg.NotifyBackend != config.NotifyRabbitMQ {
		return errors.New("watch needs NOTIFY_BACKEND=rabbitmq")
	}
	mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: c.cfg.RabbitMQURL, Queue: c.cfg.NotifyQueue, Logger: c.log})
	if err != nil {
		return err
	}
	defer mq.Close()

	err = mq.Consume(func(body []byte) error {
		event, err := notify.Decode(body)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, formatEvent(event))
		return nil
	})
	if err != nil {
		return err
	}
	c.log.Infof("Watching queue %s", c.cfg.NotifyQueue)
	<-ctx.Done()
	return nil
}

func formatEvent(e notify.Event) string {
	scope := ""
	if e.Scope != "" {
		scope = " [" + e.Scope + "]"
	}
	return fmt.Sprintf("%s %-7s %s/%s%s: %s",
		e.Time.Format("15:04:05"), e.Level, e.Resource, e.Action, scope, e.Message)
}

func (c *cli) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
}

func (c *cli) printStores(stores []models.Store) {
	w := c.table()
	fmt.Fprintln(w, "ID\tNAME")
	for _, s := range stores {
		fmt.Fprintf(w, "%s\t%s\n", s.ID, s.Name)
	}
	w.Flush()
}

func (c *cli) printProducts(products []models.Product) {
	w := c.table()
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Price.StringFixed(2), p.Stock)
	}
	w.Flush()
}

func (c *cli) printEmployees(employees []models.Employee) {
	w := c.table()
	fmt.Fprintln(w, "ID\tUSERNAME\tROLE")
	for _, e := range employees {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.Username, e.Role)
	}
	w.Flush()
}
