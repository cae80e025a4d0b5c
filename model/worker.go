package model

type WorkerStatus string

const (
	WorkerActive   WorkerStatus = "ACTIVE"
	WorkerInactive WorkerStatus = "INACTIVE"
)

// Worker carries only the digest of the QR credential. The raw token is
// handed to the caller once at issuance and never stored.
type Worker struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Role      string       `json:"role"`
	QRHash    string       `json:"qr_hash"`
	Status    WorkerStatus `json:"status"`
	CreatedAt string       `json:"created_at"`
	AvatarURL string       `json:"avatar_url,omitempty"`
}
