package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/contest"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/settlement"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/wallet"
)

func newReconcileService(env *settlementEnv, owner string) *ReconcileService {
	return NewReconcileService(
		env.contestRepo,
		env.walletRepo,
		env.settlementRepo,
		&seqIDGenerator{},
		nil,
		ReconcileConfig{Owner: owner, MaxWorkers: 2},
	)
}

func TestReconcileService_RepairsMissedCredit(t *testing.T) {
	t.Parallel()

	env := newSettlementEnv()
	amount := int64(3000)
	env.contestRepo.entries["c1"] = []contest.Entry{
		{ID: "e-a", ContestID: "c1", UserID: "u-a", Rank: 2, WinAmount: &amount, Status: contest.StatusPrizeAssigned},
	}

	service := newReconcileService(env, "sweeper-test")
	result, err := service.Reconcile(context.Background(), 7)
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}

	if result.Skipped {
		t.Fatal("sweep must not skip with a free lease")
	}
	if result.ScannedCount != 1 || result.IssuesFound != 1 || result.IssuesFixed != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	tx, ok, err := env.walletRepo.GetContestWinByEntry(context.Background(), "c1", "e-a")
	if err != nil || !ok {
		t.Fatalf("missing repaired credit: ok=%v err=%v", ok, err)
	}
	if tx.Amount != 3000 {
		t.Fatalf("repaired credit amount = %d", tx.Amount)
	}
	if env.contestRepo.entries["c1"][0].Status != contest.StatusPaid {
		t.Fatalf("entry status = %s, want paid", env.contestRepo.entries["c1"][0].Status)
	}
}

func TestReconcileService_AdvancesStuckPaidStatus(t *testing.T) {
	t.Parallel()

	env := newSettlementEnv()
	amount := int64(5000)
	env.contestRepo.entries["c1"] = []contest.Entry{
		{ID: "e-a", ContestID: "c1", UserID: "u-a", Rank: 1, WinAmount: &amount, Status: contest.StatusPrizeAssigned},
	}
	env.walletRepo.seed(wallet.LedgerTransaction{
		ID:        "tx-1",
		UserID:    "u-a",
		Type:      wallet.TransactionContestWin,
		Amount:    5000,
		ContestID: "c1",
		EntryID:   "e-a",
	})

	service := newReconcileService(env, "sweeper-test")
	result, err := service.Reconcile(context.Background(), 7)
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}

	if result.IssuesFound != 1 || result.IssuesFixed != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if got := env.walletRepo.creditCalls["e-a"]; got != 0 {
		t.Fatalf("credited entry must not be re-credited, calls=%d", got)
	}
	if env.contestRepo.entries["c1"][0].Status != contest.StatusPaid {
		t.Fatalf("entry status = %s, want paid", env.contestRepo.entries["c1"][0].Status)
	}
}

func TestReconcileService_SecondSweepFindsNothing(t *testing.T) {
	t.Parallel()

	env := newSettlementEnv()
	amount := int64(3000)
	env.contestRepo.entries["c1"] = []contest.Entry{
		{ID: "e-a", ContestID: "c1", UserID: "u-a", Rank: 2, WinAmount: &amount, Status: contest.StatusPrizeAssigned},
	}

	service := newReconcileService(env, "sweeper-test")
	if _, err := service.Reconcile(context.Background(), 7); err != nil {
		t.Fatalf("first sweep error: %v", err)
	}

	result, err := service.Reconcile(context.Background(), 7)
	if err != nil {
		t.Fatalf("second sweep error: %v", err)
	}
	if result.IssuesFound != 0 || result.IssuesFixed != 0 {
		t.Fatalf("second sweep must be clean: %+v", result)
	}
}

func TestReconcileService_SkipsWhenLeaseHeld(t *testing.T) {
	t.Parallel()

	env := newSettlementEnv()
	env.settlementRepo.leaseOwner = "other-instance"
	env.settlementRepo.leaseUntil = time.Now().Add(time.Minute)

	service := newReconcileService(env, "sweeper-test")
	result, err := service.Reconcile(context.Background(), 7)
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if !result.Skipped {
		t.Fatal("expected skipped run while another owner holds the lease")
	}
}

func TestReconcileService_TakesOverExpiredLease(t *testing.T) {
	t.Parallel()

	env := newSettlementEnv()
	env.settlementRepo.leaseOwner = "crashed-instance"
	env.settlementRepo.leaseUntil = time.Now().Add(-time.Minute)

	service := newReconcileService(env, "sweeper-test")
	result, err := service.Reconcile(context.Background(), 7)
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if result.Skipped {
		t.Fatal("expired lease must be taken over")
	}
}

func TestReconcileService_DrainsFailureLog(t *testing.T) {
	t.Parallel()

	env := newSettlementEnv()
	env.contestRepo.entries["c1"] = []contest.Entry{
		{ID: "e-b", ContestID: "c1", UserID: "u-b", Rank: 2, Status: contest.StatusFailed},
	}
	env.settlementRepo.failures = []settlement.FailureLog{
		{
			ID:        "fail-1",
			ContestID: "c1",
			EntryID:   "e-b",
			UserID:    "u-b",
			Amount:    3000,
			Rank:      2,
			Reason:    "wallet store unavailable",
		},
	}

	service := newReconcileService(env, "sweeper-test")
	result, err := service.Reconcile(context.Background(), 7)
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}

	if result.IssuesFound < 1 || result.IssuesFixed < 1 {
		t.Fatalf("failure log row was not repaired: %+v", result)
	}

	tx, ok, err := env.walletRepo.GetContestWinByEntry(context.Background(), "c1", "e-b")
	if err != nil || !ok {
		t.Fatalf("missing retried credit: ok=%v err=%v", ok, err)
	}
	if tx.Amount != 3000 {
		t.Fatalf("retried credit amount = %d", tx.Amount)
	}

	failure := env.settlementRepo.failures[0]
	if !failure.Processed || failure.ProcessedBy != "sweeper-test" {
		t.Fatalf("failure row not stamped: %+v", failure)
	}
	if env.contestRepo.entries["c1"][0].Status != contest.StatusPaid {
		t.Fatalf("entry status = %s, want paid", env.contestRepo.entries["c1"][0].Status)
	}
}
