// Package identity issues and verifies workforce credentials: the per-worker
// QR token and the admin username/password pair. Only digests are ever
// stored; the raw token exists exactly once, in the return value of
// IssueWorkerCredential.
package identity

import (
	"errors"
	"strings"

	"whitelotus.com/wms/model"
	"whitelotus.com/wms/security"
)

var ErrWorkerNotFound = errors.New("worker not found")

// IssueWorkerCredential generates a fresh QR token and its digest. The caller
// persists the digest on the worker and shows the token to the administrator
// once; it cannot be re-displayed.
func IssueWorkerCredential() (token, digest string, err error) {
	token, err = security.GenerateSecretToken()
	if err != nil {
		return "", "", err
	}
	return token, security.Digest(token), nil
}

// VerifyWorkerToken hashes the presented token and scans the roster for a
// matching digest. Linear in roster size, which is fine at single-org scale.
func VerifyWorkerToken(presented string, workers []model.Worker) (*model.Worker, error) {
	digest := security.Digest(presented)
	for i := range workers {
		if workers[i].QRHash == digest {
			return &workers[i], nil
		}
	}
	return nil, ErrWorkerNotFound
}

// VerifyAdminCredentials checks the username case-insensitively and the
// password by digest. Both must match.
func VerifyAdminCredentials(username, password string, settings model.SystemSettings) bool {
	s := settings.MergeDefaults()
	if !strings.EqualFold(username, s.AdminUsername) {
		return false
	}
	return security.Verify(password, s.AdminPasswordHash)
}
