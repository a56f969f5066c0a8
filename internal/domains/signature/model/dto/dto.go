package dto

import "pakt/shared/signature"

type SignRequest struct {
	URL string `json:"url" validate:"required,max=2048"`
}

type SignResponse struct {
	Signature string `json:"signature"`
	TimeStamp string `json:"timeStamp"`
	ClientID  string `json:"clientId"`
}

func (r *SignResponse) FromResult(result signature.Result, clientID string) {
	r.Signature = result.Signature
	r.TimeStamp = result.TimeStamp
	r.ClientID = clientID
}

// VerifyRequest is what a signed request carries in its headers.
type VerifyRequest struct {
	URL       string
	TimeStamp string
	Signature string
	ClientID  string
}
