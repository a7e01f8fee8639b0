package abacatepay

import (
	"context"
	"net/http"
	"net/url"
)

// Customer is the payer identity attached to charges and QR codes.
type Customer struct {
	Name      string `json:"name"`
	Cellphone string `json:"cellphone"`
	Email     string `json:"email"`
	TaxID     string `json:"taxId"`
}

// Metadata carries the integrator's correlation fields.
type Metadata struct {
	ExternalID string `json:"externalId,omitempty"`
}

// CreateCustomer registers a customer.
func (c *Client) CreateCustomer(ctx context.Context, customer Customer) (Response, error) {
	return c.do(ctx, http.MethodPost, "/v1/customer/create", nil, customer)
}

// ListCustomers returns all registered customers.
func (c *Client) ListCustomers(ctx context.Context) (Response, error) {
	return c.do(ctx, http.MethodGet, "/v1/customer/list", nil, nil)
}

// Product is one line item on a billing charge.
type Product struct {
	ExternalID  string `json:"externalId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
}

// BillingRequest creates a hosted billing charge.
type BillingRequest struct {
	Frequency     string    `json:"frequency"`
	Methods       []string  `json:"methods"`
	Products      []Product `json:"products"`
	ReturnURL     string    `json:"returnUrl"`
	CompletionURL string    `json:"completionUrl"`
	CustomerID    string    `json:"customerId,omitempty"`
	ExternalID    string    `json:"externalId,omitempty"`
	AllowCoupons  bool      `json:"allowCoupons,omitempty"`
	Coupons       []string  `json:"coupons,omitempty"`
}

// CreateBilling creates a billing charge.
func (c *Client) CreateBilling(ctx context.Context, req BillingRequest) (Response, error) {
	return c.do(ctx, http.MethodPost, "/v1/billing/create", nil, req)
}

// ListBillings returns all billing charges.
func (c *Client) ListBillings(ctx context.Context) (Response, error) {
	return c.do(ctx, http.MethodGet, "/v1/billing/list", nil, nil)
}

// PixQRCodeRequest creates a standalone PIX QR code. Amount is in cents.
type PixQRCodeRequest struct {
	Amount      int64     `json:"amount"`
	Description string    `json:"description,omitempty"`
	ExpiresIn   int       `json:"expiresIn,omitempty"`
	Customer    *Customer `json:"customer,omitempty"`
	Metadata    *Metadata `json:"metadata,omitempty"`
}

// CreatePixQRCode creates a PIX QR code.
func (c *Client) CreatePixQRCode(ctx context.Context, req PixQRCodeRequest) (Response, error) {
	return c.do(ctx, http.MethodPost, "/v1/pixQrCode/create", nil, req)
}

// CheckPixQRCode fetches the current payment status of a QR code.
func (c *Client) CheckPixQRCode(ctx context.Context, id string) (Response, error) {
	query := url.Values{"id": {id}}
	return c.do(ctx, http.MethodGet, "/v1/pixQrCode/check", query, nil)
}

// SimulatePixPayment marks a QR code as paid in the sandbox environment.
func (c *Client) SimulatePixPayment(ctx context.Context, id string) (Response, error) {
	query := url.Values{"id": {id}}
	return c.do(ctx, http.MethodPost, "/v1/pixQrCode/simulate-payment", query, nil)
}

// CouponRequest creates a discount coupon. Discount is percent points
// for PERCENTAGE kind and cents for FIXED. MaxRedeems -1 means
// unlimited.
type CouponRequest struct {
	Code         string    `json:"code"`
	DiscountKind string    `json:"discountKind"`
	Discount     int64     `json:"discount"`
	Notes        string    `json:"notes,omitempty"`
	MaxRedeems   int       `json:"maxRedeems,omitempty"`
	Metadata     *Metadata `json:"metadata,omitempty"`
}

// CreateCoupon creates a coupon.
func (c *Client) CreateCoupon(ctx context.Context, req CouponRequest) (Response, error) {
	return c.do(ctx, http.MethodPost, "/v1/coupon/create", nil, req)
}

// ListCoupons returns all coupons.
func (c *Client) ListCoupons(ctx context.Context) (Response, error) {
	return c.do(ctx, http.MethodGet, "/v1/coupon/list", nil, nil)
}

// PixKey addresses the destination account of a withdrawal.
type PixKey struct {
	Type string `json:"type"`
	Key  string `json:"key"`
}

// WithdrawRequest moves funds out to a PIX key. Amount is in cents.
type WithdrawRequest struct {
	ExternalID  string `json:"externalId"`
	Method      string `json:"method"`
	Amount      int64  `json:"amount"`
	Pix         PixKey `json:"pix"`
	Description string `json:"description,omitempty"`
}

// CreateWithdraw creates a withdrawal.
func (c *Client) CreateWithdraw(ctx context.Context, req WithdrawRequest) (Response, error) {
	return c.do(ctx, http.MethodPost, "/v1/withdraw/create", nil, req)
}

// ListWithdraws returns all withdrawals.
func (c *Client) ListWithdraws(ctx context.Context) (Response, error) {
	return c.do(ctx, http.MethodGet, "/v1/withdraw/list", nil, nil)
}
