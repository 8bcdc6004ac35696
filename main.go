package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"tokoadmin/internal/config"
	"tokoadmin/internal/gateway"
	"tokoadmin/internal/logging"
	"tokoadmin/internal/notify"
	"tokoadmin/internal/session"
	"tokoadmin/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const usage = `Usage: tokoadmin [flags] <command>

Commands:
  login      --username U --password P
  logout
  whoami
  stores     list | create --name N
  products   list | create | edit | delete | stock   --store S [--id P]
             [--name N] [--price X] [--stock N] [--decrease]
  employees  list | create   --store S [--username U] [--password P] [--role R]
  watch      print notifications published by other tokoadmin runs

Flags:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, nil); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "tokoadmin:", err)
		}
		os.Exit(1)
	}
}

// errReported marks a failure already printed as the controller's last error.
var errReported = errors.New("command failed")

// cli is everything a command needs.
type cli struct {
	cfg      *config.Config
	log      *logrus.Logger
	session  *session.Session
	client   *gateway.Client
	notifier notify.Notifier
	out      io.Writer
	flags    *commandFlags
	closers  []func() error
}

type commandFlags struct {
	store    string
	id       string
	name     string
	price    string
	stock    string
	decrease bool
	username string
	password string
	role     string

	set *pflag.FlagSet
}

func (f *commandFlags) changed(name string) bool { return f.set.Changed(name) }

// run parses args, wires the client and executes one command. transport
// replaces the HTTP transport when non-nil.
func run(ctx context.Context, args []string, out io.Writer, transport http.RoundTripper) error {
	fs := pflag.NewFlagSet("tokoadmin", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, usage)
		fs.PrintDefaults()
	}

	v := viper.New()
	fs.String("api-url", "", "base URL of the storefront API (API_URL)")
	fs.String("token", "", "bearer token (API_TOKEN)")
	fs.String("token-file", "", "file holding the bearer token (API_TOKEN_FILE)")
	fs.Duration("timeout", 0, "per-request timeout, 0 for none (REQUEST_TIMEOUT)")
	fs.String("log-level", "", "log level (LOG_LEVEL)")
	fs.String("log-format", "", "log format: text or json (LOG_FORMAT)")
	fs.String("notify", "", "notification backend: log, rabbitmq or none (NOTIFY_BACKEND)")
	for key, flag := range map[string]string{
		"API_URL":         "api-url",
		"API_TOKEN":       "token",
		"API_TOKEN_FILE":  "token-file",
		"REQUEST_TIMEOUT": "timeout",
		"LOG_LEVEL":       "log-level",
		"LOG_FORMAT":      "log-format",
		"NOTIFY_BACKEND":  "notify",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	cf := &commandFlags{set: fs}
	fs.StringVar(&cf.store, "store", "", "store id")
	fs.StringVar(&cf.id, "id", "", "product id")
	fs.StringVar(&cf.name, "name", "", "store or product name")
	fs.StringVar(&cf.price, "price", "", "product price")
	fs.StringVar(&cf.stock, "stock", "", "product stock")
	fs.BoolVar(&cf.decrease, "decrease", false, "lower stock by one instead of raising it")
	fs.StringVar(&cf.username, "username", "", "username")
	fs.StringVar(&cf.password, "password", "", "password")
	fs.StringVar(&cf.role, "role", "", "employee role: employee or manager")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	positional := fs.Args()
	if len(positional) == 0 {
		fs.Usage()
		return errors.New("no command given")
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	c, err := newCLI(cfg, out, transport)
	if err != nil {
		return err
	}
	defer c.close()
	c.flags = cf

	return c.dispatch(ctx, positional)
}

func newCLI(cfg *config.Config, out io.Writer, transport http.RoundTripper) (*cli, error) {
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	sess, err := openSession(cfg)
	if err != nil {
		return nil, err
	}

	client, err := gateway.NewClient(gateway.Config{
		BaseURL:   cfg.APIURL,
		Timeout:   cfg.RequestTimeout,
		Transport: transport,
	}, sess, log)
	if err != nil {
		return nil, err
	}

	c := &cli{
		cfg:     cfg,
		log:     log,
		session: sess,
		client:  client,
		out:     out,
	}
	c.notifier = c.openNotifier()
	return c, nil
}

// openSession prefers an explicit token; otherwise the token file, which login
// writes and logout removes.
func openSession(cfg *config.Config) (*session.Session, error) {
	if cfg.APIToken != "" {
		return session.New(cfg.APIToken), nil
	}
	path := cfg.APITokenFile
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		path = filepath.Join(dir, "tokoadmin", "token")
	}
	return session.FromFile(path)
}

// openNotifier falls back to logging when the broker is unreachable.
func (c *cli) openNotifier() notify.Notifier {
	switch c.cfg.NotifyBackend {
	case config.NotifyNone:
		return notify.Nop{}
	case config.NotifyRabbitMQ:
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: c.cfg.RabbitMQURL, Queue: c.cfg.NotifyQueue, Logger: c.log})
		if err != nil {
			c.log.Warnf("Failed to connect to RabbitMQ, logging notifications instead: %v", err)
			return notify.NewLogNotifier(c.log)
		}
		c.closers = append(c.closers, mq.Close)
		return notify.NewBrokerNotifier(mq, c.log)
	default:
		return notify.NewLogNotifier(c.log)
	}
}

func (c *cli) close() {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.log.Warnf("Error during shutdown: %v", err)
		}
	}
}
