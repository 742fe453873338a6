package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/grbpwr-insights/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Orders interface {
		// OrdersInWindow returns every order of the tenant placed within the window, joined to its client.
		OrdersInWindow(ctx context.Context, tenantId int, w entity.DateWindow) ([]entity.OrderRecord, error)
		// PreviousOrderDates returns, per client, the latest order placed strictly before the given time.
		// Clients without such an order are absent from the map.
		PreviousOrderDates(ctx context.Context, tenantId int, clientIds []int, before time.Time) (map[int]time.Time, error)
		// AddOrders inserts orders, used by demo data seeding.
		AddOrders(ctx context.Context, orders []entity.OrderInsert) error
	}

	Clients interface {
		// ClientIdentity returns name and contact details of a single client.
		ClientIdentity(ctx context.Context, tenantId int, clientId int) (*entity.ClientIdentity, error)
		// ClientIdentities returns identities keyed by client id; unknown ids are absent.
		ClientIdentities(ctx context.Context, tenantId int, clientIds []int) (map[int]entity.ClientIdentity, error)
		// AddClient inserts a client and returns its id.
		AddClient(ctx context.Context, c *entity.ClientInsert) (int, error)
		// EnsureTenant creates the tenant row if it does not exist yet.
		EnsureTenant(ctx context.Context, tenantId int, name string) error
	}

	Admin interface {
		AddAdmin(ctx context.Context, username, pwHash string) error
		PasswordHashByUsername(ctx context.Context, username string) (string, error)
	}

	Repository interface {
		ContextStore
		Orders() Orders
		Clients() Clients
		Admin() Admin
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Ping(ctx context.Context) error
		Close()
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// ClientCategorizer classifies the client population of a window.
	ClientCategorizer interface {
		Categorize(ctx context.Context, tenantId int, w entity.DateWindow) (*entity.ClientCategories, error)
		Members(ctx context.Context, tenantId int, w entity.DateWindow, filter entity.MemberFilter) ([]entity.ClientCategorized, error)
	}

	// ClientReporter builds period-over-period categorization reports.
	ClientReporter interface {
		Report(ctx context.Context, tenantId int, c entity.ComparisonRequest) (*entity.ClientCategoriesReport, error)
	}
)
