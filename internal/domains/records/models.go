package recorddomain

import (
	"encoding/json"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// EventTimeLayout mirrors an ISO-8601 local timestamp with microseconds.
const EventTimeLayout = "2006-01-02T15:04:05.000000"

var Tickers = []string{"AAPL", "AMZN", "MSFT", "INTC", "TBV"}

func IsTicker(s string) bool {
	return slices.Contains(Tickers, s)
}

type Record struct {
	EventTime string          `json:"EVENT_TIME"`
	Ticker    string          `json:"TICKER"`
	Price     decimal.Decimal `json:"PRICE"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventTime string      `json:"EVENT_TIME"`
		Ticker    string      `json:"TICKER"`
		Price     json.Number `json:"PRICE"`
	}{
		EventTime: r.EventTime,
		Ticker:    r.Ticker,
		Price:     json.Number(r.Price.String()),
	})
}

type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

type GeneratorOption func(g *Generator)

func WithRand(rnd *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		g.rnd = rnd
	}
}

func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next draws a record: uniform ticker, uniform price over the cent grid of [0, 100).
func (g *Generator) Next() Record {
	cents := g.rnd.Int64N(100 * 100)
	return Record{
		EventTime: g.now().Format(EventTimeLayout),
		Ticker:    Tickers[g.rnd.IntN(len(Tickers))],
		Price:     decimal.New(cents, -2),
	}
}
