// Package apiconnect wires the billing.v1.BillingService messages to Connect
// handlers and clients.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/hostelbilling/pkg/api"
)

// BillingServiceName is the fully-qualified name of the BillingService service.
const BillingServiceName = "billing.v1.BillingService"

// Procedure paths for each BillingService RPC.
const (
	BillingServiceListBillsProcedure          = "/billing.v1.BillingService/ListBills"
	BillingServiceGetBillProcedure            = "/billing.v1.BillingService/GetBill"
	BillingServiceGetDashboardProcedure       = "/billing.v1.BillingService/GetDashboard"
	BillingServicePayBillProcedure            = "/billing.v1.BillingService/PayBill"
	BillingServiceListRemindersProcedure      = "/billing.v1.BillingService/ListReminders"
	BillingServiceGetReceiptProcedure         = "/billing.v1.BillingService/GetReceipt"
	BillingServiceListPaymentsProcedure       = "/billing.v1.BillingService/ListPayments"
	BillingServiceListPaymentMethodsProcedure = "/billing.v1.BillingService/ListPaymentMethods"
)

// BillingServiceHandler is implemented by the server.
type BillingServiceHandler interface {
	ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error)
	GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error)
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
	PayBill(context.Context, *connect.Request[api.PayBillRequest]) (*connect.Response[api.PayBillResponse], error)
	ListReminders(context.Context, *connect.Request[api.ListRemindersRequest]) (*connect.Response[api.ListRemindersResponse], error)
	GetReceipt(context.Context, *connect.Request[api.GetReceiptRequest]) (*connect.Response[api.GetReceiptResponse], error)
	ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error)
	ListPaymentMethods(context.Context, *connect.Request[api.ListPaymentMethodsRequest]) (*connect.Response[api.ListPaymentMethodsResponse], error)
}

// NewBillingServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewBillingServiceHandler(svc BillingServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(handlerCodecs(), opts...)

	mux := http.NewServeMux()
	mux.Handle(BillingServiceListBillsProcedure,
		connect.NewUnaryHandler(BillingServiceListBillsProcedure, svc.ListBills, opts...))
	mux.Handle(BillingServiceGetBillProcedure,
		connect.NewUnaryHandler(BillingServiceGetBillProcedure, svc.GetBill, opts...))
	mux.Handle(BillingServiceGetDashboardProcedure,
		connect.NewUnaryHandler(BillingServiceGetDashboardProcedure, svc.GetDashboard, opts...))
	mux.Handle(BillingServicePayBillProcedure,
		connect.NewUnaryHandler(BillingServicePayBillProcedure, svc.PayBill, opts...))
	mux.Handle(BillingServiceListRemindersProcedure,
		connect.NewUnaryHandler(BillingServiceListRemindersProcedure, svc.ListReminders, opts...))
	mux.Handle(BillingServiceGetReceiptProcedure,
		connect.NewUnaryHandler(BillingServiceGetReceiptProcedure, svc.GetReceipt, opts...))
	mux.Handle(BillingServiceListPaymentsProcedure,
		connect.NewUnaryHandler(BillingServiceListPaymentsProcedure, svc.ListPayments, opts...))
	mux.Handle(BillingServiceListPaymentMethodsProcedure,
		connect.NewUnaryHandler(BillingServiceListPaymentMethodsProcedure, svc.ListPaymentMethods, opts...))

	return "/" + BillingServiceName + "/", mux
}

// BillingServiceClient is a client for the billing.v1.BillingService service.
type BillingServiceClient interface {
	ListBills(context.Context, *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error)
	GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error)
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
	PayBill(context.Context, *connect.Request[api.PayBillRequest]) (*connect.Response[api.PayBillResponse], error)
	ListReminders(context.Context, *connect.Request[api.ListRemindersRequest]) (*connect.Response[api.ListRemindersResponse], error)
	GetReceipt(context.Context, *connect.Request[api.GetReceiptRequest]) (*connect.Response[api.GetReceiptResponse], error)
	ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error)
	ListPaymentMethods(context.Context, *connect.Request[api.ListPaymentMethodsRequest]) (*connect.Response[api.ListPaymentMethodsResponse], error)
}

// NewBillingServiceClient constructs a client for the billing.v1.BillingService
// service. baseURL is the server root, e.g. http://localhost:8080.
func NewBillingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BillingServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{clientCodec()}, opts...)
	return &billingServiceClient{
		listBills:          connect.NewClient[api.ListBillsRequest, api.ListBillsResponse](httpClient, baseURL+BillingServiceListBillsProcedure, opts...),
		getBill:            connect.NewClient[api.GetBillRequest, api.GetBillResponse](httpClient, baseURL+BillingServiceGetBillProcedure, opts...),
		getDashboard:       connect.NewClient[api.GetDashboardRequest, api.GetDashboardResponse](httpClient, baseURL+BillingServiceGetDashboardProcedure, opts...),
		payBill:            connect.NewClient[api.PayBillRequest, api.PayBillResponse](httpClient, baseURL+BillingServicePayBillProcedure, opts...),
		listReminders:      connect.NewClient[api.ListRemindersRequest, api.ListRemindersResponse](httpClient, baseURL+BillingServiceListRemindersProcedure, opts...),
		getReceipt:         connect.NewClient[api.GetReceiptRequest, api.GetReceiptResponse](httpClient, baseURL+BillingServiceGetReceiptProcedure, opts...),
		listPayments:       connect.NewClient[api.ListPaymentsRequest, api.ListPaymentsResponse](httpClient, baseURL+BillingServiceListPaymentsProcedure, opts...),
		listPaymentMethods: connect.NewClient[api.ListPaymentMethodsRequest, api.ListPaymentMethodsResponse](httpClient, baseURL+BillingServiceListPaymentMethodsProcedure, opts...),
	}
}

type billingServiceClient struct {
	listBills          *connect.Client[api.ListBillsRequest, api.ListBillsResponse]
	getBill            *connect.Client[api.GetBillRequest, api.GetBillResponse]
	getDashboard       *connect.Client[api.GetDashboardRequest, api.GetDashboardResponse]
	payBill            *connect.Client[api.PayBillRequest, api.PayBillResponse]
	listReminders      *connect.Client[api.ListRemindersRequest, api.ListRemindersResponse]
	getReceipt         *connect.Client[api.GetReceiptRequest, api.GetReceiptResponse]
	listPayments       *connect.Client[api.ListPaymentsRequest, api.ListPaymentsResponse]
	listPaymentMethods *connect.Client[api.ListPaymentMethodsRequest, api.ListPaymentMethodsResponse]
}

func (c *billingServiceClient) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

func (c *billingServiceClient) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	return c.getBill.CallUnary(ctx, req)
}

func (c *billingServiceClient) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}

func (c *billingServiceClient) PayBill(ctx context.Context, req *connect.Request[api.PayBillRequest]) (*connect.Response[api.PayBillResponse], error) {
	return c.payBill.CallUnary(ctx, req)
}

func (c *billingServiceClient) ListReminders(ctx context.Context, req *connect.Request[api.ListRemindersRequest]) (*connect.Response[api.ListRemindersResponse], error) {
	return c.listReminders.CallUnary(ctx, req)
}

func (c *billingServiceClient) GetReceipt(ctx context.Context, req *connect.Request[api.GetReceiptRequest]) (*connect.Response[api.GetReceiptResponse], error) {
	return c.getReceipt.CallUnary(ctx, req)
}

func (c *billingServiceClient) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	return c.listPayments.CallUnary(ctx, req)
}

func (c *billingServiceClient) ListPaymentMethods(ctx context.Context, req *connect.Request[api.ListPaymentMethodsRequest]) (*connect.Response[api.ListPaymentMethodsResponse], error) {
	return c.listPaymentMethods.CallUnary(ctx, req)
}
