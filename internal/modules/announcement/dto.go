package announcement

type SendRequest struct {
	Title          string `json:"title" binding:"required"`
	Message        string `json:"message" binding:"required"`
	TargetAudience string `json:"target_audience"`
}
