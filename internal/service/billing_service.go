package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	"github.com/mmynk/hostelbilling/internal/ledger"
	"github.com/mmynk/hostelbilling/internal/metrics"
	"github.com/mmynk/hostelbilling/internal/middleware"
	"github.com/mmynk/hostelbilling/internal/models"
	"github.com/mmynk/hostelbilling/internal/storage"
	"github.com/mmynk/hostelbilling/pkg/api"
	"github.com/mmynk/hostelbilling/pkg/api/apiconnect"
)

// Ensure BillingService implements the Connect handler interface
var _ apiconnect.BillingServiceHandler = (*BillingService)(nil)

// BillingService implements the Connect BillingService on top of a ledger.
// The ledger is the source of truth for bills; the store journals every
// receipt issued through this service.
type BillingService struct {
	ledger   *ledger.Ledger
	store    storage.Store
	metrics  *metrics.Metrics
	validate *validator.Validate
}

// NewBillingService creates a new BillingService. m may be nil.
func NewBillingService(l *ledger.Ledger, store storage.Store, m *metrics.Metrics) *BillingService {
	return &BillingService{
		ledger:   l,
		store:    store,
		metrics:  m,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// SyncJournal records every receipt the ledger holds that the journal has not
// seen yet, so payment history includes seeded payments. It is safe to call
// more than once.
func (s *BillingService) SyncJournal(ctx context.Context) error {
	added := 0
	for _, r := range s.ledger.Receipts() {
		_, err := s.store.GetReceipt(ctx, r.ReceiptID)
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to check receipt %s: %w", r.ReceiptID, err)
		}
		if err := s.store.CreateReceipt(ctx, &r); err != nil {
			return err
		}
		added++
	}
	slog.Info("Receipt journal synced", "added", added)
	return nil
}

// validateRequest runs struct tag validation on an incoming message.
func (s *BillingService) validateRequest(msg any) error {
	if err := s.validate.Struct(msg); err != nil {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return nil
}

// ledgerError maps ledger and model errors to Connect codes.
func ledgerError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrBillNotFound), errors.Is(err, ledger.ErrReceiptNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, ledger.ErrAlreadyPaid):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, models.ErrInvalidAmount), errors.Is(err, models.ErrInvalidDate):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// metricsMethod bounds the payment-method label set to the known catalogue.
func metricsMethod(key string) string {
	if models.PaymentMethodLabel(key) == key {
		return "other"
	}
	return key
}

// ListBills returns the bills matching the requested status.
func (s *BillingService) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	bills := s.ledger.ListBills(ledger.Filter{Status: models.Status(req.Msg.Status)})
	slog.Debug("ListBills", "status", req.Msg.Status, "count", len(bills))

	return connect.NewResponse(&api.ListBillsResponse{Bills: bills}), nil
}

// GetBill returns a single bill with its status as of the ledger clock.
func (s *BillingService) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	b, err := s.ledger.Bill(req.Msg.BillID)
	if err != nil {
		return nil, ledgerError(err)
	}
	return connect.NewResponse(&api.GetBillResponse{Bill: b}), nil
}

// GetDashboard returns aggregate statistics as of the ledger clock.
func (s *BillingService) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	stats := s.ledger.ComputeStats(s.ledger.Now())
	if s.metrics != nil {
		s.metrics.ObserveStats(stats)
	}
	return connect.NewResponse(&api.GetDashboardResponse{Stats: stats}), nil
}

// PayBill marks a bill as paid and returns its receipt.
func (s *BillingService) PayBill(ctx context.Context, req *connect.Request[api.PayBillRequest]) (*connect.Response[api.PayBillResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	now := s.ledger.Now()
	label := models.PaymentMethodLabel(req.Msg.Method)
	receipt, err := s.ledger.PayBill(req.Msg.BillID, label, now)
	if err != nil {
		slog.Warn("PayBill rejected", "bill_id", req.Msg.BillID, "error", err)
		return nil, ledgerError(err)
	}

	slog.Info("Bill paid",
		"bill_id", receipt.BillID,
		"receipt_id", receipt.ReceiptID,
		"amount", receipt.Amount.String(),
		"currency", receipt.Currency,
		"method", label,
		"request_id", middleware.GetRequestID(ctx),
	)

	// The payment already happened; a journal failure must not be reported
	// as a failed payment, and a disconnecting client must not skip it.
	if err := s.store.CreateReceipt(context.WithoutCancel(ctx), &receipt); err != nil {
		slog.Error("PayBill: failed to journal receipt", "receipt_id", receipt.ReceiptID, "error", err)
	}

	if s.metrics != nil {
		s.metrics.ObservePayment(metricsMethod(req.Msg.Method), receipt.Amount)
		s.metrics.ObserveStats(s.ledger.ComputeStats(now))
	}

	return connect.NewResponse(&api.PayBillResponse{Receipt: receipt}), nil
}

// ListReminders returns pending bills due within the reminder horizon.
func (s *BillingService) ListReminders(ctx context.Context, req *connect.Request[api.ListRemindersRequest]) (*connect.Response[api.ListRemindersResponse], error) {
	reminders := s.ledger.CollectReminders(s.ledger.Now())
	if reminders == nil {
		reminders = []models.Reminder{}
	}
	return connect.NewResponse(&api.ListRemindersResponse{Reminders: reminders}), nil
}

// GetReceipt returns the receipt for a paid bill, including seeded payments.
func (s *BillingService) GetReceipt(ctx context.Context, req *connect.Request[api.GetReceiptRequest]) (*connect.Response[api.GetReceiptResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	receipt, err := s.ledger.Receipt(req.Msg.ReceiptID)
	if err != nil {
		return nil, ledgerError(err)
	}
	return connect.NewResponse(&api.GetReceiptResponse{Receipt: receipt}), nil
}

// ListPayments returns the journaled receipts, latest paid date first.
func (s *BillingService) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	receipts, err := s.store.ListReceipts(ctx)
	if err != nil {
		slog.Error("ListPayments failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to load payment history: %w", err))
	}

	out := make([]models.Receipt, len(receipts))
	for i, r := range receipts {
		out[i] = *r
	}
	return connect.NewResponse(&api.ListPaymentsResponse{Receipts: out}), nil
}

// ListPaymentMethods returns the selectable payment methods.
func (s *BillingService) ListPaymentMethods(ctx context.Context, req *connect.Request[api.ListPaymentMethodsRequest]) (*connect.Response[api.ListPaymentMethodsResponse], error) {
	return connect.NewResponse(&api.ListPaymentMethodsResponse{Methods: models.PaymentMethods()}), nil
}
