package market

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"

	"github.com/BaSui01/agentpatterns/types"
)

type recordingLedger struct {
	settlements []Settlement
	err         error
}

func (l *recordingLedger) RecordSettlement(_ context.Context, s Settlement) error {
	if l.err != nil {
		return l.err
	}
	l.settlements = append(l.settlements, s)
	return nil
}

// failNthLedger 在第 failAt 次写入时失败一次
type failNthLedger struct {
	failAt    int
	calls     int
	err       error
	resources []string
}

func (l *failNthLedger) RecordSettlement(_ context.Context, s Settlement) error {
	l.calls++
	if l.calls == l.failAt {
		return l.err
	}
	l.resources = append(l.resources, s.Resource)
	return nil
}

type recordingObserver struct {
	seen []Settlement
}

func (o *recordingObserver) ObserveSettlement(s Settlement) {
	o.seen = append(o.seen, s)
}

func newTestAuction(t *testing.T, kind AuctionType, resource string, reserve float64, amounts map[types.AgentID]float64, order []types.AgentID) *Auction {
	t.Helper()
	a := NewAuction(kind, resource, WithReservePrice(reserve))
	for _, id := range order {
		require.NoError(t, a.AddBid(NewBid(id, amounts[id], resource)))
	}
	return a
}

func TestMarket_SettleAllocatesWinner(t *testing.T) {
	ledger := &recordingLedger{}
	observer := &recordingObserver{}
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	m := NewMarket("compute_market",
		WithLedger(ledger),
		WithObserver(observer),
		WithLogger(zap.NewNop()),
		WithTracer(tp.Tracer("test")),
	)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	order := []types.AgentID{"a", "b", "c"}
	a := newTestAuction(t, AuctionVickrey, "gpu_hours", 50, map[types.AgentID]float64{"a": 75, "b": 100, "c": 90}, order)
	m.AddAuction(a)

	s, err := m.Settle(context.Background(), a)
	require.NoError(t, err)
	require.True(t, s.Won())
	assert.Equal(t, types.AgentID("b"), s.Winner.Bidder())
	assert.Equal(t, 90.0, s.ClearingPrice)
	assert.Equal(t, 3, s.BidCount)
	assert.Equal(t, fixed, s.SettledAt)

	held, ok := m.Allocation().Get("b")
	require.True(t, ok)
	assert.Equal(t, []string{"gpu_hours"}, held)

	require.Len(t, ledger.settlements, 1)
	require.Len(t, observer.seen, 1)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "market.settle", spans[0].Name())
}

func TestMarket_SettleWithoutWinner(t *testing.T) {
	ledger := &recordingLedger{}
	m := NewMarket("m", WithLedger(ledger))

	a := newTestAuction(t, AuctionEnglish, "gpu", 100, map[types.AgentID]float64{"a": 75}, []types.AgentID{"a"})
	s, err := m.Settle(context.Background(), a)
	require.NoError(t, err)
	assert.False(t, s.Won())
	assert.Equal(t, 0, m.Allocation().Len())
	require.Len(t, ledger.settlements, 1, "closed auctions are still recorded")
}

func TestMarket_SettleLedgerError(t *testing.T) {
	boom := errors.New("disk full")
	ledger := &recordingLedger{err: boom}
	observer := &recordingObserver{}
	m := NewMarket("m", WithLedger(ledger), WithObserver(observer))

	a := newTestAuction(t, AuctionEnglish, "gpu", 0, map[types.AgentID]float64{"a": 10}, []types.AgentID{"a"})
	_, err := m.Settle(context.Background(), a)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 0, m.Allocation().Len(), "failed settlement must not allocate")
	assert.Empty(t, observer.seen)
	assert.False(t, m.IsSettled(a))

	// 账本恢复后可以重新结算，且只分配一次
	ledger.err = nil
	_, err = m.Settle(context.Background(), a)
	require.NoError(t, err)
	held, ok := m.Allocation().Get("a")
	require.True(t, ok)
	assert.Equal(t, []string{"gpu"}, held)
	assert.Len(t, observer.seen, 1)
	assert.Len(t, ledger.settlements, 1)
}

func TestMarket_SettleTwiceRejected(t *testing.T) {
	observer := &recordingObserver{}
	m := NewMarket("m", WithObserver(observer))
	a := newTestAuction(t, AuctionEnglish, "gpu", 0, map[types.AgentID]float64{"a": 10}, []types.AgentID{"a"})

	_, err := m.Settle(context.Background(), a)
	require.NoError(t, err)
	require.True(t, m.IsSettled(a))

	_, err = m.Settle(context.Background(), a)
	assert.ErrorIs(t, err, types.ErrDuplicate)
	held, _ := m.Allocation().Get("a")
	assert.Equal(t, []string{"gpu"}, held)
	assert.Len(t, observer.seen, 1)
}

func TestMarket_SettleAllResumesAfterLedgerError(t *testing.T) {
	boom := errors.New("disk full")
	ledger := &failNthLedger{failAt: 2, err: boom}
	m := NewMarket("m", WithLedger(ledger))
	m.AddAuction(newTestAuction(t, AuctionEnglish, "x", 0, map[types.AgentID]float64{"a": 10}, []types.AgentID{"a"}))
	m.AddAuction(newTestAuction(t, AuctionEnglish, "y", 0, map[types.AgentID]float64{"b": 20}, []types.AgentID{"b"}))

	settlements, err := m.SettleAll(context.Background())
	require.ErrorIs(t, err, boom)
	require.Len(t, settlements, 1)
	assert.Equal(t, 1, m.Allocation().Len())

	settlements, err = m.SettleAll(context.Background())
	require.NoError(t, err)
	require.Len(t, settlements, 1)
	assert.Equal(t, "y", settlements[0].Resource)
	assert.Equal(t, 2, m.Allocation().Len())
	assert.Equal(t, []string{"x", "y"}, ledger.resources)
}

func TestMarket_SettleAll(t *testing.T) {
	m := NewMarket("m")
	m.AddAuction(newTestAuction(t, AuctionEnglish, "x", 0, map[types.AgentID]float64{"a": 10}, []types.AgentID{"a"}))
	m.AddAuction(newTestAuction(t, AuctionDutch, "y", 0, map[types.AgentID]float64{"b": 20}, []types.AgentID{"b"}))

	settlements, err := m.SettleAll(context.Background())
	require.NoError(t, err)
	require.Len(t, settlements, 2)
	assert.Equal(t, "x", settlements[0].Resource)
	assert.Equal(t, "y", settlements[1].Resource)
	assert.Len(t, m.Auctions(), 2)
	assert.Equal(t, 2, m.Allocation().Len())
}

func TestMarket_SettleAllCancelled(t *testing.T) {
	m := NewMarket("m")
	m.AddAuction(NewAuction(AuctionEnglish, "x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	settlements, err := m.SettleAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, settlements)
}
