// Package api defines the request and response messages of the
// billing.v1.BillingService RPC API. Messages are plain structs encoded as JSON.
package api

import "github.com/mmynk/hostelbilling/internal/models"

type ListBillsRequest struct {
	// Status is one of All, Pending, Overdue, Paid. Empty means All.
	Status string `json:"status" validate:"omitempty,oneof=All Pending Overdue Paid"`
}

type ListBillsResponse struct {
	Bills []models.Bill `json:"bills"`
}

type GetBillRequest struct {
	BillID string `json:"bill_id" validate:"required"`
}

type GetBillResponse struct {
	Bill models.Bill `json:"bill"`
}

type GetDashboardRequest struct{}

type GetDashboardResponse struct {
	Stats models.DashboardStats `json:"stats"`
}

type PayBillRequest struct {
	BillID string `json:"bill_id" validate:"required"`
	// Method is a payment method key from ListPaymentMethods. Unknown keys
	// are recorded verbatim.
	Method string `json:"method" validate:"required,max=64"`
}

type PayBillResponse struct {
	Receipt models.Receipt `json:"receipt"`
}

type ListRemindersRequest struct{}

type ListRemindersResponse struct {
	Reminders []models.Reminder `json:"reminders"`
}

type GetReceiptRequest struct {
	ReceiptID string `json:"receipt_id" validate:"required"`
}

type GetReceiptResponse struct {
	Receipt models.Receipt `json:"receipt"`
}

type ListPaymentsRequest struct{}

type ListPaymentsResponse struct {
	// Journaled receipts, seeded and issued, latest paid date first.
	Receipts []models.Receipt `json:"receipts"`
}

type ListPaymentMethodsRequest struct{}

type ListPaymentMethodsResponse struct {
	Methods []models.PaymentMethod `json:"methods"`
}
