package dto

type CreateAffiliateRequest struct {
	TargetURL string `json:"targetUrl"`
}
