package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotPaid        = errors.New("order is not paid")
	ErrOrderNotSettleable  = errors.New("order can no longer be settled")
	ErrInvalidPaymentID    = errors.New("invalid payment id")
	ErrUnknownExternalRef  = errors.New("unknown external reference")
	ErrRefundReasonMissing = errors.New("refund reason is required")
)

type SettlementAction string

const (
	ActionSettled          SettlementAction = "settled"
	ActionFailed           SettlementAction = "failed"
	ActionRefunded         SettlementAction = "refunded"
	ActionDepositConfirmed SettlementAction = "deposit_confirmed"
	ActionDuplicate        SettlementAction = "duplicate"
	ActionIgnored          SettlementAction = "ignored"
)

type SettlementResult struct {
	Action    SettlementAction `json:"action"`
	Reference string           `json:"reference,omitempty"`
	PaymentID string           `json:"payment_id"`
}

// ISettlementUseCase turns provider payment confirmations into dispositions
// and ledger entries.
type ISettlementUseCase interface {
	HandlePaymentNotification(ctx context.Context, paymentID string) (SettlementResult, error)
	SettleOrder(ctx context.Context, orderID string, conf interfaces.PaymentConfirmation) (entities.Order, bool, error)
	FailOrder(ctx context.Context, orderID string) (entities.Order, error)
	RefundOrder(ctx context.Context, orderID, reason string) (entities.Order, error)
}

type SettlementUseCase struct {
	orders      interfaces.IOrderRepository
	carts       interfaces.ICartRepository
	gateway     interfaces.IPaymentGateway
	disposition IDispositionUseCase
	finance     IFinanceUseCase
	notifier    interfaces.INotifier
	now         clock
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(
	orders interfaces.IOrderRepository,
	carts interfaces.ICartRepository,
	gateway interfaces.IPaymentGateway,
	disposition IDispositionUseCase,
	finance IFinanceUseCase,
	notifier interfaces.INotifier,
) *SettlementUseCase {
	return &SettlementUseCase{
		orders:      orders,
		carts:       carts,
		gateway:     gateway,
		disposition: disposition,
		finance:     finance,
		notifier:    notifier,
		now:         utcNow,
	}
}

// HandlePaymentNotification re-reads the payment from the provider and routes
// it by external reference. A provider read failure is returned so the
// provider redelivers; anything we cannot act on is acknowledged as ignored.
func (u *SettlementUseCase) HandlePaymentNotification(ctx context.Context, paymentID string) (SettlementResult, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return SettlementResult{}, ErrInvalidPaymentID
	}
	if u.gateway == nil {
		return SettlementResult{}, ErrGatewayNotConfigured
	}
	log := logger.Component(ctx, "settlement", "usecase").WithField("payment_id", paymentID)

	conf, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.WithError(err).Error("payment lookup failed")
		return SettlementResult{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	res := SettlementResult{Action: ActionIgnored, Reference: conf.ExternalReference, PaymentID: paymentID}
	kind, id := parseReference(conf.ExternalReference)
	log = log.WithFields(logger.Fields{"external_reference": conf.ExternalReference, "provider_status": conf.Status})

	switch kind {
	case "order":
		switch conf.Status {
		case interfaces.ProviderStatusApproved:
			_, settled, err := u.SettleOrder(ctx, id, conf)
			if errors.Is(err, ErrOrderNotFound) || errors.Is(err, ErrOrderNotSettleable) {
				log.WithError(err).Warn("approved payment for an order we cannot settle")
				return res, nil
			}
			if err != nil {
				return SettlementResult{}, err
			}
			res.Action = ActionDuplicate
			if settled {
				res.Action = ActionSettled
			}
		case interfaces.ProviderStatusRejected, interfaces.ProviderStatusCancelled:
			if _, err := u.FailOrder(ctx, id); err != nil && !errors.Is(err, ErrOrderNotFound) {
				return SettlementResult{}, err
			}
			res.Action = ActionFailed
		case interfaces.ProviderStatusRefunded:
			_, err := u.RefundOrder(ctx, id, "Refunded by payment provider")
			if errors.Is(err, ErrOrderNotFound) || errors.Is(err, ErrOrderNotPaid) {
				log.WithError(err).Warn("refund for an order that is not paid")
				return res, nil
			}
			if err != nil {
				return SettlementResult{}, err
			}
			res.Action = ActionRefunded
		}
	case "deposit":
		if conf.Status != interfaces.ProviderStatusApproved {
			break
		}
		_, applied, err := u.finance.ConfirmDeposit(ctx, id, paymentID)
		if errors.Is(err, ErrJobNotFound) || errors.Is(err, ledger.ErrDepositNotConfigured) {
			log.WithError(err).Warn("deposit payment for an unknown job")
			return res, nil
		}
		if err != nil {
			return SettlementResult{}, err
		}
		res.Action = ActionDuplicate
		if applied {
			res.Action = ActionDepositConfirmed
		}
	}
	log.WithField("action", res.Action).Info("payment notification handled")
	return res, nil
}

// SettleOrder applies a confirmed payment: it marks every purchased photo
// group sold, posts one revenue entry per job, flips the order to paid and
// clears the buyer's cart. Each step is idempotent, so a redelivered
// confirmation finishes a partially applied settlement without double
// posting. settled is false when the order was already paid.
func (u *SettlementUseCase) SettleOrder(ctx context.Context, orderID string, conf interfaces.PaymentConfirmation) (entities.Order, bool, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, false, err
	}
	log := logger.Component(ctx, "settlement", "usecase").WithField(logger.FieldOrderID, order.ID)

	switch order.PaymentStatus {
	case entities.PaymentStatusPaid:
		log.Info("order already settled")
		return order, false, nil
	case entities.PaymentStatusPending, entities.PaymentStatusFailed:
	default:
		return entities.Order{}, false, &ledger.StateError{Err: ErrOrderNotSettleable, Current: string(order.PaymentStatus)}
	}

	for _, g := range groupByDocument(order.Items) {
		_, _, err := u.disposition.MarkSold(ctx, g.docID, g.indices)
		if errors.Is(err, ErrItemDocumentNotFound) {
			log.WithField("item_document_id", g.docID).Warn("item document missing; photos not marked sold")
			continue
		}
		if err != nil {
			log.WithError(err).WithField("item_document_id", g.docID).Error("mark sold failed")
			return entities.Order{}, false, err
		}
	}

	for _, r := range revenueByJob(order.Items) {
		if r.amount <= 0 {
			continue
		}
		label := fmt.Sprintf("Online Sale - Order #%s - %d item(s)", order.ShortRef(), r.count)
		_, err := u.finance.PostRevenue(ctx, r.jobID, r.amount, label, OrderReference(order.ID))
		if errors.Is(err, ErrJobNotFound) {
			log.WithField(logger.FieldJobID, r.jobID).Warn("job missing; revenue not posted")
			continue
		}
		if err != nil {
			return entities.Order{}, false, err
		}
	}

	expected := order.PaymentStatus
	at := u.now()
	order.PaymentStatus = entities.PaymentStatusPaid
	order.PaidAt = &at
	order.ProviderPaymentRef = conf.PaymentID
	order.UpdatedAt = at
	saved, err := u.orders.Update(ctx, order, expected)
	if errors.Is(err, interfaces.ErrConcurrentUpdate) {
		current, lerr := u.loadOrder(ctx, orderID)
		if lerr == nil && current.PaymentStatus == entities.PaymentStatusPaid {
			return current, false, nil
		}
		return entities.Order{}, false, err
	}
	if err != nil {
		return entities.Order{}, false, err
	}

	if u.carts != nil {
		if err := u.carts.Delete(ctx, saved.UserID); err != nil {
			log.WithError(err).Warn("cart clear failed")
		}
	}
	log.WithFields(logger.Fields{"total": saved.Total, "payment_id": conf.PaymentID}).Info("order settled")
	publish(ctx, u.notifier, entities.DomainEvent{
		Type: entities.EventOrderPaid, EntityID: saved.ID,
		Payload: map[string]any{"total": saved.Total, "items": len(saved.Items)},
	})
	return saved, true, nil
}

// FailOrder records a declined payment. Paid or closed orders are left alone.
func (u *SettlementUseCase) FailOrder(ctx context.Context, orderID string) (entities.Order, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.PaymentStatus != entities.PaymentStatusPending {
		return order, nil
	}
	order.PaymentStatus = entities.PaymentStatusFailed
	order.UpdatedAt = u.now()
	saved, err := u.orders.Update(ctx, order, entities.PaymentStatusPending)
	if errors.Is(err, interfaces.ErrConcurrentUpdate) {
		return u.loadOrder(ctx, orderID)
	}
	return saved, err
}

// RefundOrder reverses the revenue of a paid order. Sold items stay sold.
func (u *SettlementUseCase) RefundOrder(ctx context.Context, orderID, reason string) (entities.Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Order{}, ErrRefundReasonMissing
	}
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.PaymentStatus != entities.PaymentStatusPaid {
		return entities.Order{}, &ledger.StateError{Err: ErrOrderNotPaid, Current: string(order.PaymentStatus)}
	}
	log := logger.Component(ctx, "settlement", "usecase").WithFields(logger.Fields{logger.FieldOrderID: order.ID, "reason": reason})

	for _, r := range revenueByJob(order.Items) {
		if r.amount <= 0 {
			continue
		}
		label := fmt.Sprintf("Refund - Order #%s - %d item(s)", order.ShortRef(), r.count)
		_, err := u.finance.PostRefund(ctx, r.jobID, r.amount, label, refundReference(order.ID))
		if errors.Is(err, ErrJobNotFound) {
			log.WithField(logger.FieldJobID, r.jobID).Warn("job missing; refund not posted")
			continue
		}
		if err != nil {
			return entities.Order{}, err
		}
	}

	at := u.now()
	order.PaymentStatus = entities.PaymentStatusRefunded
	order.RefundedAt = &at
	order.UpdatedAt = at
	saved, err := u.orders.Update(ctx, order, entities.PaymentStatusPaid)
	if err != nil {
		return entities.Order{}, err
	}
	log.Info("order refunded")
	return saved, nil
}

func (u *SettlementUseCase) loadOrder(ctx context.Context, id string) (entities.Order, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Order{}, ErrInvalidID
	}
	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

type documentGroup struct {
	docID   string
	indices []int
}

func groupByDocument(items []entities.OrderItem) []documentGroup {
	byDoc := make(map[string][]int)
	for _, it := range items {
		byDoc[it.ItemDocumentID] = append(byDoc[it.ItemDocumentID], it.PhotoIndices...)
	}
	out := make([]documentGroup, 0, len(byDoc))
	for id, idx := range byDoc {
		out = append(out, documentGroup{docID: id, indices: idx})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].docID < out[j].docID })
	return out
}

type jobRevenue struct {
	jobID  string
	amount float64
	count  int
}

// revenueByJob sums line totals per job in cents.
func revenueByJob(items []entities.OrderItem) []jobRevenue {
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	for _, it := range items {
		q := it.Quantity
		if q < 1 {
			q = 1
		}
		line := decimal.NewFromFloat(it.UnitPrice).Mul(decimal.NewFromInt(int64(q)))
		sums[it.JobID] = sums[it.JobID].Add(line)
		counts[it.JobID] += q
	}
	out := make([]jobRevenue, 0, len(sums))
	for id, sum := range sums {
		out = append(out, jobRevenue{jobID: id, amount: sum.Round(2).InexactFloat64(), count: counts[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].jobID < out[j].jobID })
	return out
}
