// Package seed fills a tenant with fake clients and order history for demos and local runs.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"
	"github.com/jekabolt/grbpwr-insights/internal/dependency"
	"github.com/jekabolt/grbpwr-insights/internal/entity"
	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
)

type Config struct {
	TenantId   int    `mapstructure:"tenant_id"`
	TenantName string `mapstructure:"tenant_name"`
	Clients    int    `mapstructure:"clients"`
	// Orders per client are drawn uniformly from [OrdersMin, OrdersMax].
	OrdersMin int `mapstructure:"orders_min"`
	OrdersMax int `mapstructure:"orders_max"`
	// History is how far back order dates reach.
	History time.Duration `mapstructure:"history"`
	// Amounts are drawn uniformly from [AmountMin, AmountMax].
	AmountMin int   `mapstructure:"amount_min"`
	AmountMax int   `mapstructure:"amount_max"`
	Seed      int64 `mapstructure:"seed"`
}

func (c *Config) withDefaults() {
	if c.TenantId <= 0 {
		c.TenantId = 1
	}
	if c.TenantName == "" {
		c.TenantName = fmt.Sprintf("tenant %d", c.TenantId)
	}
	if c.Clients <= 0 {
		c.Clients = 100
	}
	if c.OrdersMin <= 0 {
		c.OrdersMin = 1
	}
	if c.OrdersMax < c.OrdersMin {
		c.OrdersMax = c.OrdersMin
	}
	if c.History <= 0 {
		c.History = 365 * 24 * time.Hour
	}
	if c.AmountMin <= 0 {
		c.AmountMin = 10
	}
	if c.AmountMax < c.AmountMin {
		c.AmountMax = c.AmountMin
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
}

// Result summarizes one seeding run.
type Result struct {
	Clients int
	Orders  int
	Total   decimal.Decimal
}

// Seeder writes fake data through the repository, one transaction per client.
type Seeder struct {
	rep  dependency.Repository
	c    Config
	fake faker.Faker
	rnd  *rand.Rand
	now  func() time.Time
	out  io.Writer
}

type Option func(*Seeder)

// WithNow fixes the clock order dates are generated against.
func WithNow(now func() time.Time) Option {
	return func(s *Seeder) {
		s.now = now
	}
}

// WithProgress sets where the progress bar is drawn; io.Discard hides it.
func WithProgress(w io.Writer) Option {
	return func(s *Seeder) {
		s.out = w
	}
}

func New(rep dependency.Repository, c Config, opts ...Option) *Seeder {
	c.withDefaults()
	s := &Seeder{
		rep:  rep,
		c:    c,
		fake: faker.NewWithSeed(rand.NewSource(c.Seed)),
		rnd:  rand.New(rand.NewSource(c.Seed)),
		now:  time.Now,
		out:  io.Discard,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	if err := s.rep.Clients().EnsureTenant(ctx, s.c.TenantId, s.c.TenantName); err != nil {
		return nil, err
	}

	bar := progressbar.NewOptions(s.c.Clients,
		progressbar.OptionSetWriter(s.out),
		progressbar.OptionSetDescription("seeding clients"),
		progressbar.OptionShowCount(),
	)
	defer bar.Finish()

	res := &Result{Total: decimal.Zero}
	now := s.now().UTC()
	for i := 0; i < s.c.Clients; i++ {
		client := s.client()
		var orders []entity.OrderInsert
		err := s.rep.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
			id, err := rep.Clients().AddClient(ctx, client)
			if err != nil {
				return err
			}
			orders = s.orders(id, now)
			return rep.Orders().AddOrders(ctx, orders)
		})
		if err != nil {
			return nil, fmt.Errorf("can't seed client %d of %d: %w", i+1, s.c.Clients, err)
		}
		res.Clients++
		res.Orders += len(orders)
		for _, o := range orders {
			res.Total = res.Total.Add(o.Amount)
		}
		_ = bar.Add(1)
	}

	slog.Default().InfoContext(ctx, "seeded tenant",
		slog.Int("tenant_id", s.c.TenantId),
		slog.Int("clients", res.Clients),
		slog.Int("orders", res.Orders),
		slog.String("total", res.Total.StringFixed(2)),
	)
	return res, nil
}

func (s *Seeder) client() *entity.ClientInsert {
	c := &entity.ClientInsert{
		TenantId: s.c.TenantId,
		Name:     s.fake.Person().Name(),
	}
	// some clients leave no contact details
	if s.rnd.Intn(4) > 0 {
		c.Phone = sql.NullString{String: s.fake.Phone().Number(), Valid: true}
	}
	if s.rnd.Intn(3) > 0 {
		c.Email = sql.NullString{String: s.fake.Internet().Email(), Valid: true}
	}
	return c
}

func (s *Seeder) orders(clientId int, now time.Time) []entity.OrderInsert {
	n := s.c.OrdersMin + s.rnd.Intn(s.c.OrdersMax-s.c.OrdersMin+1)
	out := make([]entity.OrderInsert, 0, n)
	from := now.Add(-s.c.History)
	for i := 0; i < n; i++ {
		cents := int64(s.c.AmountMin)*100 + s.rnd.Int63n(int64(s.c.AmountMax-s.c.AmountMin)*100+1)
		out = append(out, entity.OrderInsert{
			UUID:     uuid.NewString(),
			TenantId: s.c.TenantId,
			ClientId: clientId,
			Placed:   s.fake.Time().TimeBetween(from, now).UTC().Truncate(time.Second),
			Amount:   decimal.New(cents, -2),
		})
	}
	return out
}
