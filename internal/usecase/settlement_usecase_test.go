package usecase

import (
	"context"
	"errors"
	"testing"

	"kept_house/internal/domain/entities"
	"kept_house/internal/usecase/interfaces"
	mock_interfaces "kept_house/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type settlementMocks struct {
	orders  *mock_interfaces.MockIOrderRepository
	carts   *mock_interfaces.MockICartRepository
	gateway *mock_interfaces.MockIPaymentGateway
	docs    *mock_interfaces.MockIItemDocumentRepository
	jobs    *mock_interfaces.MockIJobRepository
}

func newSettlement(t *testing.T) (*SettlementUseCase, settlementMocks) {
	ctrl := gomock.NewController(t)
	m := settlementMocks{
		orders:  mock_interfaces.NewMockIOrderRepository(ctrl),
		carts:   mock_interfaces.NewMockICartRepository(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
		docs:    mock_interfaces.NewMockIItemDocumentRepository(ctrl),
		jobs:    mock_interfaces.NewMockIJobRepository(ctrl),
	}
	notifier := quietNotifier(ctrl)
	finance := NewFinanceUseCase(m.jobs, passLocker(ctrl, nil), notifier)
	finance.now = fixedClock
	disposition := NewDispositionUseCase(m.docs, m.jobs, notifier)
	disposition.now = fixedClock
	uc := NewSettlementUseCase(m.orders, m.carts, m.gateway, disposition, finance, notifier)
	uc.now = fixedClock
	return uc, m
}

// pendingOrder buys items 1 and 3 of doc-1 (job-1) and item 1 of doc-2 (job-2).
func pendingOrder() entities.Order {
	return entities.Order{
		ID:            "ord-0000abcd1234",
		UserID:        "buyer-1",
		PaymentStatus: entities.PaymentStatusPending,
		Items: []entities.OrderItem{
			{ListingID: "doc-1_1", ItemDocumentID: "doc-1", JobID: "job-1", ItemNumber: 1, PhotoIndices: []int{0, 1}, UnitPrice: 120, Quantity: 1},
			{ListingID: "doc-1_3", ItemDocumentID: "doc-1", JobID: "job-1", ItemNumber: 3, PhotoIndices: []int{3, 4}, UnitPrice: 60, Quantity: 1},
			{ListingID: "doc-2_1", ItemDocumentID: "doc-2", JobID: "job-2", ItemNumber: 1, PhotoIndices: []int{0, 1}, UnitPrice: 40, Quantity: 1},
		},
		Total: 237.16,
	}
}

func approvedConfirmation(ref string) interfaces.PaymentConfirmation {
	return interfaces.PaymentConfirmation{PaymentID: "9001", Status: interfaces.ProviderStatusApproved, ExternalReference: ref}
}

func TestSettlementUseCase_HandlePaymentNotification_ProviderDown(t *testing.T) {
	uc, m := newSettlement(t)
	m.gateway.EXPECT().GetPayment(gomock.Any(), "9001").Return(interfaces.PaymentConfirmation{}, errors.New("timeout"))

	_, err := uc.HandlePaymentNotification(context.Background(), "9001")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestSettlementUseCase_HandlePaymentNotification_SettlesOrder(t *testing.T) {
	uc, m := newSettlement(t)
	order := pendingOrder()
	m.gateway.EXPECT().GetPayment(gomock.Any(), "9001").Return(approvedConfirmation("order:"+order.ID), nil)
	m.orders.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil)

	m.docs.EXPECT().GetByID(gomock.Any(), "doc-1").Return(approvedDocument("doc-1", "job-1"), nil)
	m.docs.EXPECT().GetByID(gomock.Any(), "doc-2").Return(approvedDocument("doc-2", "job-2"), nil)
	soldDocs := map[string][]int{}
	m.docs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.ItemDocument) (entities.ItemDocument, error) {
		soldDocs[d.ID] = d.SoldPhotoIndices
		return d, nil
	}).Times(2)

	m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(activeJob("job-1"), nil)
	m.jobs.EXPECT().GetByID(gomock.Any(), "job-2").Return(activeJob("job-2"), nil)
	posted := map[string]entities.LedgerEntry{}
	m.jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) {
		posted[j.ID] = j.Finance.Daily[len(j.Finance.Daily)-1]
		return j, nil
	}).Times(2)

	m.orders.EXPECT().Update(gomock.Any(), gomock.Any(), entities.PaymentStatusPending).DoAndReturn(func(_ context.Context, o entities.Order, _ entities.PaymentStatus) (entities.Order, error) {
		if o.PaymentStatus != entities.PaymentStatusPaid || o.ProviderPaymentRef != "9001" || o.PaidAt == nil {
			t.Fatalf("unexpected order write: %+v", o)
		}
		return o, nil
	})
	m.carts.EXPECT().Delete(gomock.Any(), "buyer-1").Return(nil)

	res, err := uc.HandlePaymentNotification(context.Background(), "9001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Action != ActionSettled {
		t.Fatalf("expected settled, got %s", res.Action)
	}
	if got := soldDocs["doc-1"]; len(got) != 4 {
		t.Fatalf("expected four sold photos on doc-1, got %v", got)
	}
	e := posted["job-1"]
	if e.Label != "Online Sale - Order #ABCD1234 - 2 item(s)" || e.Amount != 180 || e.Ref != "order:"+order.ID {
		t.Fatalf("unexpected job-1 entry: %+v", e)
	}
	if posted["job-2"].Amount != 40 {
		t.Fatalf("unexpected job-2 entry: %+v", posted["job-2"])
	}
}

func TestSettlementUseCase_SettleOrder_AlreadyPaid(t *testing.T) {
	uc, m := newSettlement(t)
	order := pendingOrder()
	order.PaymentStatus = entities.PaymentStatusPaid
	m.orders.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil)

	_, settled, err := uc.SettleOrder(context.Background(), order.ID, approvedConfirmation(""))
	if err != nil || settled {
		t.Fatalf("expected no-op, got settled=%v err=%v", settled, err)
	}
}

func TestSettlementUseCase_SettleOrder_RedeliveryFinishesWithoutDoublePosting(t *testing.T) {
	uc, m := newSettlement(t)
	order := pendingOrder()
	order.Items = order.Items[:1]

	// A previous attempt sold the photos and posted revenue, then failed
	// before flipping the order.
	doc := approvedDocument("doc-1", "job-1")
	doc.SoldPhotoIndices = []int{0, 1}
	job := activeJob("job-1")
	job.Finance.Gross = 120
	job.Finance.Daily = []entities.LedgerEntry{{Label: "x", Amount: 120, Ref: "order:" + order.ID}}

	m.orders.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil)
	m.docs.EXPECT().GetByID(gomock.Any(), "doc-1").Return(doc, nil)
	m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	m.orders.EXPECT().Update(gomock.Any(), gomock.Any(), entities.PaymentStatusPending).DoAndReturn(func(_ context.Context, o entities.Order, _ entities.PaymentStatus) (entities.Order, error) {
		return o, nil
	})
	m.carts.EXPECT().Delete(gomock.Any(), "buyer-1").Return(nil)

	_, settled, err := uc.SettleOrder(context.Background(), order.ID, approvedConfirmation(""))
	if err != nil || !settled {
		t.Fatalf("expected settled, got settled=%v err=%v", settled, err)
	}
}

func TestSettlementUseCase_SettleOrder_MissingJobIsSkipped(t *testing.T) {
	uc, m := newSettlement(t)
	order := pendingOrder()
	order.Items = order.Items[2:]

	m.orders.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil)
	m.docs.EXPECT().GetByID(gomock.Any(), "doc-2").Return(approvedDocument("doc-2", "job-2"), nil)
	m.docs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(bumpDocVersion)
	m.jobs.EXPECT().GetByID(gomock.Any(), "job-2").Return(entities.Job{}, nil)
	m.orders.EXPECT().Update(gomock.Any(), gomock.Any(), entities.PaymentStatusPending).DoAndReturn(func(_ context.Context, o entities.Order, _ entities.PaymentStatus) (entities.Order, error) {
		return o, nil
	})
	m.carts.EXPECT().Delete(gomock.Any(), "buyer-1").Return(nil)

	got, settled, err := uc.SettleOrder(context.Background(), order.ID, approvedConfirmation(""))
	if err != nil || !settled || got.PaymentStatus != entities.PaymentStatusPaid {
		t.Fatalf("expected paid order, got %+v settled=%v err=%v", got, settled, err)
	}
}

func TestSettlementUseCase_SettleOrder_MissingDocumentIsSkipped(t *testing.T) {
	uc, m := newSettlement(t)
	order := pendingOrder()
	order.Items = order.Items[2:]

	m.orders.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil)
	m.docs.EXPECT().GetByID(gomock.Any(), "doc-2").Return(entities.ItemDocument{}, nil)
	m.jobs.EXPECT().GetByID(gomock.Any(), "job-2").Return(activeJob("job-2"), nil)
	m.jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) {
		if j.Finance.Gross != 40 {
			t.Fatalf("expected revenue posted, got gross %v", j.Finance.Gross)
		}
		return j, nil
	})
	m.orders.EXPECT().Update(gomock.Any(), gomock.Any(), entities.PaymentStatusPending).DoAndReturn(func(_ context.Context, o entities.Order, _ entities.PaymentStatus) (entities.Order, error) {
		return o, nil
	})
	m.carts.EXPECT().Delete(gomock.Any(), "buyer-1").Return(nil)

	got, settled, err := uc.SettleOrder(context.Background(), order.ID, approvedConfirmation(""))
	if err != nil || !settled || got.PaymentStatus != entities.PaymentStatusPaid {
		t.Fatalf("expected paid order, got %+v settled=%v err=%v", got, settled, err)
	}
}

func TestSettlementUseCase_SettleOrder_LostRaceReportsDuplicate(t *testing.T) {
	uc, m := newSettlement(t)
	order := pendingOrder()
	order.Items = nil
	paid := order
	paid.PaymentStatus = entities.PaymentStatusPaid

	gomock.InOrder(
		m.orders.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil),
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any(), entities.PaymentStatusPending).Return(entities.Order{}, interfaces.ErrConcurrentUpdate),
		m.orders.EXPECT().GetByID(gomock.Any(), order.ID).Return(paid, nil),
	)

	_, settled, err := uc.SettleOrder(context.Background(), order.ID, approvedConfirmation(""))
	if err != nil || settled {
		t.Fatalf("expected duplicate, got settled=%v err=%v", settled, err)
	}
}

func TestSettlementUseCase_HandlePaymentNotification_Routing(t *testing.T) {
	t.Run("unknown reference is ignored", func(t *testing.T) {
		uc, m := newSettlement(t)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "9001").Return(approvedConfirmation("invoice:77"), nil)

		res, err := uc.HandlePaymentNotification(context.Background(), "9001")
		if err != nil || res.Action != ActionIgnored {
			t.Fatalf("expected ignored, got %+v err=%v", res, err)
		}
	})

	t.Run("rejected payment fails pending order", func(t *testing.T) {
		uc, m := newSettlement(t)
		order := pendingOrder()
		conf := approvedConfirmation("order:" + order.ID)
		conf.Status = interfaces.ProviderStatusRejected
		m.gateway.EXPECT().GetPayment(gomock.Any(), "9001").Return(conf, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any(), entities.PaymentStatusPending).DoAndReturn(func(_ context.Context, o entities.Order, _ entities.PaymentStatus) (entities.Order, error) {
			if o.PaymentStatus != entities.PaymentStatusFailed {
				t.Fatalf("expected failed, got %s", o.PaymentStatus)
			}
			return o, nil
		})

		res, err := uc.HandlePaymentNotification(context.Background(), "9001")
		if err != nil || res.Action != ActionFailed {
			t.Fatalf("expected failed, got %+v err=%v", res, err)
		}
	})

	t.Run("approved deposit activates job", func(t *testing.T) {
		uc, m := newSettlement(t)
		job := activeJob("job-1")
		job.Status = entities.JobStatusAwaitingDeposit
		job.DepositAmount = 500
		m.gateway.EXPECT().GetPayment(gomock.Any(), "9001").Return(approvedConfirmation("deposit:job-1"), nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		m.jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) {
			if j.Status != entities.JobStatusActive || j.DepositRef != "9001" {
				t.Fatalf("unexpected job write: %+v", j)
			}
			return j, nil
		})

		res, err := uc.HandlePaymentNotification(context.Background(), "9001")
		if err != nil || res.Action != ActionDepositConfirmed {
			t.Fatalf("expected deposit_confirmed, got %+v err=%v", res, err)
		}
	})

	t.Run("approved payment for missing order is acknowledged", func(t *testing.T) {
		uc, m := newSettlement(t)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "9001").Return(approvedConfirmation("order:gone"), nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Order{}, nil)

		res, err := uc.HandlePaymentNotification(context.Background(), "9001")
		if err != nil || res.Action != ActionIgnored {
			t.Fatalf("expected ignored, got %+v err=%v", res, err)
		}
	})
}

func TestSettlementUseCase_RefundOrder(t *testing.T) {
	t.Run("reverses revenue per job", func(t *testing.T) {
		uc, m := newSettlement(t)
		order := pendingOrder()
		order.Items = order.Items[:2]
		order.PaymentStatus = entities.PaymentStatusPaid
		job := activeJob("job-1")
		job.Finance = entities.JobFinance{Gross: 180, Fees: 90}

		m.orders.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		m.jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) {
			e := j.Finance.Daily[0]
			if e.Amount != -180 || e.Ref != "refund:"+order.ID || j.Finance.Gross != 0 || j.Finance.Fees != 0 {
				t.Fatalf("unexpected refund posting: %+v", j.Finance)
			}
			return j, nil
		})
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any(), entities.PaymentStatusPaid).DoAndReturn(func(_ context.Context, o entities.Order, _ entities.PaymentStatus) (entities.Order, error) {
			return o, nil
		})

		got, err := uc.RefundOrder(context.Background(), order.ID, "damaged in transit")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != entities.PaymentStatusRefunded || got.RefundedAt == nil {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("pending order cannot be refunded", func(t *testing.T) {
		uc, m := newSettlement(t)
		order := pendingOrder()
		m.orders.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil)

		_, err := uc.RefundOrder(context.Background(), order.ID, "changed mind")
		if !errors.Is(err, ErrOrderNotPaid) {
			t.Fatalf("expected ErrOrderNotPaid, got %v", err)
		}
	})
}
