package models

type CreateCheckoutRequest struct {
	SubmissionID string `json:"submissionId"`
}

type CheckoutResponse struct {
	OrderID string `json:"orderId"`
	URL     string `json:"url"`
}

type ConfirmCheckoutResponse struct {
	OrderID       string `json:"orderId"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId,omitempty"`
}
