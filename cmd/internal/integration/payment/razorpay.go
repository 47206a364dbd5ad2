package payment

import (
	"errors"
	"os"

	"github.com/razorpay/razorpay-go"
)

// Intent is the provider-side charge intent a client completes the
// payment against.
type Intent struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"` // minor currency units
	Currency string `json:"currency"`
}

type IntentClient interface {
	CreateIntent(amountMinor int64) (*Intent, error)
}

type RazorpayClient struct {
	client   *razorpay.Client
	currency string
}

func NewRazorpayClient() *RazorpayClient {
	currency := os.Getenv("RAZORPAY_CURRENCY")
	if currency == "" {
		currency = "INR"
	}
	return &RazorpayClient{
		client:   razorpay.NewClient(os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET")),
		currency: currency,
	}
}

func (r *RazorpayClient) CreateIntent(amountMinor int64) (*Intent, error) {
	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": r.currency,
	}

	body, err := r.client.Order.Create(data, nil)
	if err != nil {
		return nil, err
	}

	orderID, _ := body["id"].(string)
	if orderID == "" {
		return nil, errors.New("provider response is missing an order id")
	}

	return &Intent{OrderID: orderID, Amount: amountMinor, Currency: r.currency}, nil
}
